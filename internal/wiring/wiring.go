// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cheflow/internal/adapters/berkshelf"
	_ "go.trai.ch/cheflow/internal/adapters/chef"
	_ "go.trai.ch/cheflow/internal/adapters/config"
	_ "go.trai.ch/cheflow/internal/adapters/cookbook"
	_ "go.trai.ch/cheflow/internal/adapters/logger"
	_ "go.trai.ch/cheflow/internal/adapters/prompt"
	// Register app nodes.
	_ "go.trai.ch/cheflow/internal/app"
)
