package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/makerun/cmd/makerun/commands"
	"go.trai.ch/makerun/internal/app"
	"go.trai.ch/makerun/internal/build"
	"go.trai.ch/makerun/internal/core/domain"
)

type mockApp struct {
	dispatchFunc func(ctx context.Context, req app.Request) error
	lastFunc     func(ctx context.Context, opts app.Options) error
}

func (m *mockApp) Dispatch(ctx context.Context, req app.Request) error {
	if m.dispatchFunc != nil {
		return m.dispatchFunc(ctx, req)
	}
	return nil
}

func (m *mockApp) Last(ctx context.Context, opts app.Options) error {
	if m.lastFunc != nil {
		return m.lastFunc(ctx, opts)
	}
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Dispatch(t *testing.T) {
	t.Run("passes positional arguments", func(t *testing.T) {
		var captured app.Request
		called := false
		mock := &mockApp{
			dispatchFunc: func(_ context.Context, req app.Request) error {
				captured = req
				called = true
				return nil
			},
		}

		_, err := execute(t, mock, "run", "/tmp/kernel.bin")
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "run", captured.Target)
		assert.Equal(t, "/tmp/kernel.bin", captured.BinPath)
		assert.Empty(t, captured.Extra)
		assert.False(t, captured.PropagateExit)
		assert.False(t, captured.DryRun)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.Request
		mock := &mockApp{
			dispatchFunc: func(_ context.Context, req app.Request) error {
				captured = req
				return nil
			},
		}

		_, err := execute(t, mock,
			"--config", "ci.yaml", "--propagate-exit", "-n", "--log-format", "json", "-v",
			"test", "target/debug/os_test")
		require.NoError(t, err)
		assert.Equal(t, "ci.yaml", captured.ConfigPath)
		assert.True(t, captured.PropagateExit)
		assert.True(t, captured.DryRun)
		assert.Equal(t, "json", captured.LogFormat)
		assert.True(t, captured.Verbose)
		assert.Equal(t, "test", captured.Target)
		assert.Equal(t, "target/debug/os_test", captured.BinPath)
	})

	t.Run("arguments after the target are not parsed as flags", func(t *testing.T) {
		var captured app.Request
		mock := &mockApp{
			dispatchFunc: func(_ context.Context, req app.Request) error {
				captured = req
				return nil
			},
		}

		_, err := execute(t, mock, "run", "-n", "--nocapture", "-v")
		require.NoError(t, err)
		assert.Equal(t, "run", captured.Target)
		assert.Equal(t, "-n", captured.BinPath)
		assert.Equal(t, []string{"--nocapture", "-v"}, captured.Extra)
		assert.False(t, captured.DryRun)
		assert.False(t, captured.Verbose)
	})

	t.Run("a target named like a subcommand is still a target", func(t *testing.T) {
		var captured app.Request
		mock := &mockApp{
			dispatchFunc: func(_ context.Context, req app.Request) error {
				captured = req
				return nil
			},
		}

		_, err := execute(t, mock, "version", "kernel.bin")
		require.NoError(t, err)
		assert.Equal(t, "version", captured.Target)
	})

	t.Run("returns error on dispatch failure", func(t *testing.T) {
		mock := &mockApp{
			dispatchFunc: func(_ context.Context, _ app.Request) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "run", "kernel.bin")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_NotEnoughArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "none", args: []string{}},
		{name: "one", args: []string{"run"}},
		{name: "one with flags", args: []string{"-n", "run"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockApp{
				dispatchFunc: func(_ context.Context, _ app.Request) error {
					panic("should not be called")
				},
			}

			_, err := execute(t, mock, tt.args...)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrNotEnoughArguments.Error())
		})
	}
}

func TestCommands_Last(t *testing.T) {
	t.Run("prints the latest record", func(t *testing.T) {
		var captured app.Options
		called := false
		mock := &mockApp{
			lastFunc: func(_ context.Context, opts app.Options) error {
				captured = opts
				called = true
				return nil
			},
			dispatchFunc: func(_ context.Context, _ app.Request) error {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "--last", "-c", "makerun.yaml")
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "makerun.yaml", captured.ConfigPath)
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			lastFunc: func(_ context.Context, _ app.Options) error {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "--last", "run", "kernel.bin")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnexpectedArguments.Error())
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--version")
	require.NoError(t, err)

	assert.Contains(t, out, "makerun version "+build.Version)
	assert.Contains(t, out, "commit: "+build.Commit)
}

func TestCommands_Help(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "makerun [flags] <make_target> <bin_path>")
	assert.Contains(t, out, "--propagate-exit")
	assert.Contains(t, out, domain.DefaultQEMUArgs())
}
