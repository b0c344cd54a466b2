package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/makerun/internal/core/domain"
)

const qemuSuffix = ` QEMU_ARGS="-display none -device isa-debug-exit,iobase=0xf4,iosize=0x04"`

func TestNewMakeCommand_String(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		binPath string
		want    string
	}{
		{
			name:    "kernel binary gets emulator flags",
			target:  "run",
			binPath: "/tmp/kernel.bin",
			want:    "make run BIN_PATH=/tmp/kernel.bin" + qemuSuffix,
		},
		{
			name:    "test binary runs without emulator flags",
			target:  "test",
			binPath: "/tmp/os_test",
			want:    "make test BIN_PATH=/tmp/os_test",
		},
		{
			name:    "suffix match is literal",
			target:  "test",
			binPath: "target/x86_64/debug/deps/kernel_os_test",
			want:    "make test BIN_PATH=target/x86_64/debug/deps/kernel_os_test",
		},
		{
			name:    "suffix must be at the end",
			target:  "run",
			binPath: "/tmp/os_test.bin",
			want:    "make run BIN_PATH=/tmp/os_test.bin" + qemuSuffix,
		},
		{
			name:    "arguments are kept verbatim",
			target:  "run-debug",
			binPath: "/tmp/with space/kernel",
			want:    "make run-debug BIN_PATH=/tmp/with space/kernel" + qemuSuffix,
		},
		{
			name:    "empty values are passed through",
			target:  "",
			binPath: "",
			want:    "make  BIN_PATH=" + qemuSuffix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := domain.NewMakeCommand(domain.Invocation{Target: tt.target, BinPath: tt.binPath})
			assert.Equal(t, tt.want, cmd.String())
		})
	}
}

func TestMakeCommand_Argv(t *testing.T) {
	t.Run("non-test binary", func(t *testing.T) {
		cmd := domain.NewMakeCommand(domain.Invocation{Target: "run", BinPath: "/tmp/kernel.bin"})

		assert.Equal(t, []string{
			"make",
			"run",
			"BIN_PATH=/tmp/kernel.bin",
			"QEMU_ARGS=-display none -device isa-debug-exit,iobase=0xf4,iosize=0x04",
		}, cmd.Argv())
		assert.True(t, cmd.HasVariable(domain.QEMUArgsVar))
	})

	t.Run("test binary", func(t *testing.T) {
		cmd := domain.NewMakeCommand(domain.Invocation{Target: "test", BinPath: "/tmp/os_test"})

		assert.Equal(t, []string{"make", "test", "BIN_PATH=/tmp/os_test"}, cmd.Argv())
		assert.False(t, cmd.HasVariable(domain.QEMUArgsVar))
	})

	t.Run("shell metacharacters stay inside one argument", func(t *testing.T) {
		cmd := domain.NewMakeCommand(domain.Invocation{Target: "run", BinPath: "/tmp/a;rm -rf b"})

		argv := cmd.Argv()
		assert.Len(t, argv, 4)
		assert.Equal(t, "BIN_PATH=/tmp/a;rm -rf b", argv[2])
	})
}

func TestInvocation_IsTestBinary(t *testing.T) {
	assert.True(t, domain.Invocation{BinPath: "os_test"}.IsTestBinary())
	assert.True(t, domain.Invocation{BinPath: "/deps/kernel-3f2a_os_test"}.IsTestBinary())
	assert.False(t, domain.Invocation{BinPath: "/deps/os_test-3f2a"}.IsTestBinary())
	assert.False(t, domain.Invocation{BinPath: ""}.IsTestBinary())
}
