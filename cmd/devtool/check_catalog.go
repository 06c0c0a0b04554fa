package main

import (
	"context"

	"github.com/osse101/HexHarvest_Go/internal/catalog"
	"github.com/osse101/HexHarvest_Go/internal/clock"
	"github.com/osse101/HexHarvest_Go/internal/validation"
)

const defaultCatalogPath = "configs/" + catalog.ConfigFileName

type CheckCatalogCommand struct{}

func (c *CheckCatalogCommand) Name() string {
	return "check-catalog"
}

func (c *CheckCatalogCommand) Description() string {
	return "Validate a resource catalog file without touching the database"
}

func (c *CheckCatalogCommand) Run(_ context.Context, args []string) error {
	path := defaultCatalogPath
	if len(args) > 0 {
		path = args[0]
	}
	ui.Header("Checking " + path)

	loader := catalog.NewLoader(validation.NewSchemaValidator(), clock.NewReal())
	cfg, err := loader.Load(path)
	if err != nil {
		return err
	}
	if err := loader.Validate(cfg); err != nil {
		return err
	}

	ui.Info("%d resources, %d instances", len(cfg.Resources), len(cfg.Instances))
	ui.Success("Catalog version %s is valid", cfg.Version)
	return nil
}
