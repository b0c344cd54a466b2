// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/makerun/internal/core/domain"
)

// Executor defines the interface for running make commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute starts the command, waits for it and returns an error if it could not
	// be started or exited with a non-zero status.
	//
	// The child reads from stdin and writes to stdout and stderr directly.
	Execute(ctx context.Context, cmd domain.MakeCommand, stdin io.Reader, stdout, stderr io.Writer) error
}
