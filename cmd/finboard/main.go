package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/finboard/finboard/internal/clock"
	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/migration"
	"github.com/finboard/finboard/internal/observability"
	"github.com/finboard/finboard/internal/server"
	"github.com/finboard/finboard/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,

		// Schema and bootstrap data
		migration.Module,

		// HTTP surface and domain modules
		server.Module,
	)
	app.Run()
}

func registerSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
