package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/makerun/internal/core/domain"
)

func TestDefaultQEMUArgs(t *testing.T) {
	assert.Equal(t, "-display none -device isa-debug-exit,iobase=0xf4,iosize=0x04", domain.DefaultQEMUArgs())
}

func TestDebugExitDevice_String(t *testing.T) {
	d := domain.DebugExitDevice{IOBase: 0x501, IOSize: 0x02}
	assert.Equal(t, "isa-debug-exit,iobase=0x501,iosize=0x02", d.String())
}

func TestGuestExitCode(t *testing.T) {
	tests := []struct {
		status int
		want   uint32
		ok     bool
	}{
		{status: 33, want: domain.GuestExitSuccess, ok: true},
		{status: 35, want: domain.GuestExitFailed, ok: true},
		{status: 3, want: 1, ok: true},
		{status: 0, ok: false},
		{status: 1, ok: false},
		{status: 2, ok: false},
		{status: -1, ok: false},
	}

	for _, tt := range tests {
		got, ok := domain.GuestExitCode(tt.status)
		assert.Equal(t, tt.ok, ok, "status %d", tt.status)
		assert.Equal(t, tt.want, got, "status %d", tt.status)
	}
}
