package setup

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/pdfdiff/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the setup detector Graft node.
const NodeID graft.ID = "adapter.setup"

func init() {
	graft.Register(graft.Node[ports.SetupProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SetupProvider, error) {
			root, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to determine project root")
			}
			return NewDetector(root), nil
		},
	})
}
