package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cheflow/internal/adapters/berkshelf" //nolint:depguard // Wired in app layer
	"go.trai.ch/cheflow/internal/adapters/chef"      //nolint:depguard // Wired in app layer
	"go.trai.ch/cheflow/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cheflow/internal/adapters/cookbook"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cheflow/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cheflow/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cheflow/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			chef.NodeID,
			cookbook.NodeID,
			berkshelf.NodeID,
			prompt.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	connector, err := graft.Dep[ports.ServerConnector](ctx)
	if err != nil {
		return nil, err
	}

	cookbooks, err := graft.Dep[ports.CookbookLoader](ctx)
	if err != nil {
		return nil, err
	}

	lockfiles, err := graft.Dep[ports.LockfileEngine](ctx)
	if err != nil {
		return nil, err
	}

	confirmer, err := graft.Dep[ports.Confirmer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, connector, cookbooks, lockfiles, confirmer, log), nil
}
