package compare

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pdfdiff/internal/adapters/interpreter" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pdfdiff/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pdfdiff/internal/adapters/pagecount"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pdfdiff/internal/adapters/telemetry"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pdfdiff/internal/core/ports"
)

// NodeID is the unique identifier for the comparator Graft node.
const NodeID graft.ID = "engine.compare"

func init() {
	graft.Register(graft.Node[ports.Comparator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			interpreter.NodeID,
			pagecount.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.Comparator, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			counter, err := graft.Dep[ports.PageCounter](ctx)
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

			return NewComparator(executor, counter, log, tracer), nil
		},
	})
}
