package pagecount

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pdfdiff/internal/adapters/interpreter"
	"go.trai.ch/pdfdiff/internal/core/ports"
)

// NodeID is the unique identifier for the page counter Graft node.
const NodeID graft.ID = "adapter.pagecount"

func init() {
	graft.Register(graft.Node[ports.PageCounter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{interpreter.NodeID},
		Run: func(ctx context.Context) (ports.PageCounter, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewCounter(executor), nil
		},
	})
}
