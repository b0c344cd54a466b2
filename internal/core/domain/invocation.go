// Package domain contains the core types of makerun.
package domain

import "strings"

// TestBinarySuffix marks binaries produced by the test harness.
// Test binaries run with the emulator defaults the Makefile chooses.
const TestBinarySuffix = "os_test"

// Invocation holds the two positional arguments makerun is called with.
type Invocation struct {
	// Target is the make goal, passed through unmodified.
	Target string
	// BinPath is the binary path handed over by the build runner.
	BinPath string
}

// IsTestBinary reports whether BinPath names a test binary.
// The match is a literal suffix match, so "/tmp/kernel_os_test" is a test binary
// and "/tmp/os_test.bin" is not.
func (i Invocation) IsTestBinary() bool {
	return strings.HasSuffix(i.BinPath, TestBinarySuffix)
}
