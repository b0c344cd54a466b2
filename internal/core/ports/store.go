package ports

import "go.trai.ch/makerun/internal/core/domain"

// RunStore persists the latest run record.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RunStore interface {
	// Last returns the latest record under stateDir.
	// Returns nil, nil if nothing was recorded.
	Last(stateDir string) (*domain.RunRecord, error)

	// Put replaces the latest record under stateDir.
	Put(stateDir string, record domain.RunRecord) error
}
