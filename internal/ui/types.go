package ui

import "github.com/elizacamber/composeplayground/internal/config"

// The playground is built on Bubble Tea, which follows the Elm Architecture (Model-View-Update).
// These shared types describe the pieces that move through that loop.

type (
	// scrollTickMsg advances the names list one animation frame.
	scrollTickMsg struct {
		id int
	}
	statusClearMsg struct {
		id int
	}
	clipboardMsg struct {
		what string
	}
)

// Type aliases to bridge to internal/config
type Config = config.Config
type ConfigBundle = config.ConfigBundle
type InputConfig = config.InputConfig
