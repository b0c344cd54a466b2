package domain

import "fmt"

// DebugExitDevice describes QEMU's isa-debug-exit device.
// A guest write of value v to the I/O port makes QEMU exit with status (v<<1)|1.
type DebugExitDevice struct {
	IOBase uint16
	IOSize uint16
}

// Guest exit codes written to the debug-exit port by the kernel test runner.
const (
	GuestExitSuccess uint32 = 0x10
	GuestExitFailed  uint32 = 0x11
)

// KernelDebugExit is the device the kernel writes its test result to.
var KernelDebugExit = DebugExitDevice{IOBase: 0xf4, IOSize: 0x04}

// String renders the device as a QEMU -device value.
func (d DebugExitDevice) String() string {
	return fmt.Sprintf("isa-debug-exit,iobase=0x%02x,iosize=0x%02x", d.IOBase, d.IOSize)
}

// DefaultQEMUArgs returns the emulator flags appended for non-test binaries.
func DefaultQEMUArgs() string {
	return "-display none -device " + KernelDebugExit.String()
}

// GuestExitCode decodes a process exit status produced by the debug-exit device.
// It returns false for statuses the device cannot produce (even values and 1).
func GuestExitCode(status int) (uint32, bool) {
	if status <= 1 || status&1 == 0 {
		return 0, false
	}
	return uint32(status) >> 1, true //nolint:gosec // status is positive
}
