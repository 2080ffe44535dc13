package driver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bootstrap/internal/adapters/logger"
	"go.trai.ch/bootstrap/internal/adapters/shell"
	"go.trai.ch/bootstrap/internal/adapters/toolchain"
	"go.trai.ch/bootstrap/internal/core/ports"
)

// NodeID is the unique identifier for the driver Graft node.
const NodeID graft.ID = "engine.driver"

func init() {
	graft.Register(graft.Node[*Driver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{toolchain.NodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Driver, error) {
			tc, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(tc, runner, log), nil
		},
	})
}
