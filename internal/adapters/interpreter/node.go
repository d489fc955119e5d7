package interpreter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pdfdiff/internal/adapters/logger"
	"go.trai.ch/pdfdiff/internal/adapters/setup"
	"go.trai.ch/pdfdiff/internal/adapters/telemetry"
	"go.trai.ch/pdfdiff/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{setup.NodeID, logger.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			provider, err := graft.Dep[ports.SetupProvider](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(provider, log, tracer), nil
		},
	})
}
