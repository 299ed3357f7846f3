package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mum/internal/adapters/logger"
	"go.trai.ch/mum/internal/core/ports"
)

// NodeID is the unique identifier for the task store Graft node.
const NodeID graft.ID = "adapter.store"

func init() {
	graft.Register(graft.Node[ports.TaskStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.TaskStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})
}
