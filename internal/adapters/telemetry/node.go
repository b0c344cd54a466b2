package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/makerun/internal/adapters/logger"
	"go.trai.ch/makerun/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer that makerun spans are created with.
const InstrumentationName = "go.trai.ch/makerun"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOTelTracer(InstrumentationName, log), nil
		},
	})
}
