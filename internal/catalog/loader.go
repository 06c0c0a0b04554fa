// Package catalog loads the resource catalog file and syncs it into the database.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/osse101/HexHarvest_Go/internal/clock"
	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/logger"
	"github.com/osse101/HexHarvest_Go/internal/repository"
	"github.com/osse101/HexHarvest_Go/internal/scan"
	"github.com/osse101/HexHarvest_Go/internal/validation"
)

// ErrInvalidConfig is returned for catalogs that parse but are inconsistent
var ErrInvalidConfig = errors.New("invalid resource catalog")

// Config is the JSON resource catalog
type Config struct {
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Resources   []ResourceDef `json:"resources"`
	Instances   []InstanceDef `json:"instances"`
}

// ResourceDef is one resource type definition
type ResourceDef struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// InstanceDef places a harvestable deposit in a cell.
// Exactly one of ResetDeadline (RFC 3339) or ResetIn (duration from sync time) is set.
type InstanceDef struct {
	ID            string `json:"id"`
	ResourceID    string `json:"resource_id"`
	CellID        string `json:"cell_id"`
	ResetDeadline string `json:"reset_deadline,omitempty"`
	ResetIn       string `json:"reset_in,omitempty"`
}

// Loader handles loading, validating and syncing the resource catalog
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.ResourceCatalog) (*SyncResult, error)
}

// SyncResult counts the rows written by a sync
type SyncResult struct {
	ResourcesUpserted int
	InstancesUpserted int
}

type loader struct {
	schemas validation.SchemaValidator
	clock   clock.Clock
}

// NewLoader creates a Loader. Relative reset_in deadlines are resolved against clk.
func NewLoader(schemas validation.SchemaValidator, clk clock.Clock) Loader {
	return &loader{schemas: schemas, clock: clk}
}

// Load reads, schema-checks and parses a catalog file
func (l *loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemas.ValidateBytes(data, validation.SchemaResourceCatalog); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate checks cross references, cells and energy metadata
func (l *loader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Resources) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoResourcesDefined)
	}

	categories := make(map[string]domain.ResourceCategory, len(config.Resources))
	for _, res := range config.Resources {
		if _, dup := categories[res.ID]; dup {
			return fmt.Errorf(ErrFmtDuplicateResource, ErrInvalidConfig, res.ID)
		}
		category := domain.ResourceCategory(res.Category)
		categories[res.ID] = category

		if category == domain.ResourceCategoryEnergy {
			if err := l.schemas.ValidateBytes(res.Metadata, validation.SchemaEnergyMetadata); err != nil {
				return fmt.Errorf(ErrFmtInvalidMetadata, ErrInvalidConfig, res.ID, err)
			}
		}
	}

	seen := make(map[string]bool, len(config.Instances))
	for _, inst := range config.Instances {
		if seen[inst.ID] {
			return fmt.Errorf(ErrFmtDuplicateInstance, ErrInvalidConfig, inst.ID)
		}
		seen[inst.ID] = true

		category, ok := categories[inst.ResourceID]
		if !ok {
			return fmt.Errorf(ErrFmtUnknownResource, ErrInvalidConfig, inst.ID, inst.ResourceID)
		}
		if category != domain.ResourceCategoryHarvestable {
			return fmt.Errorf(ErrFmtNotHarvestable, ErrInvalidConfig, inst.ID, inst.ResourceID)
		}
		if _, err := scan.ParseCell(inst.CellID); err != nil {
			return fmt.Errorf(ErrFmtInvalidCell, ErrInvalidConfig, inst.ID, err)
		}
		if _, err := l.resolveDeadline(inst); err != nil {
			return err
		}
	}

	return nil
}

// SyncToDatabase upserts every resource, then every instance
func (l *loader) SyncToDatabase(ctx context.Context, config *Config, repo repository.ResourceCatalog) (*SyncResult, error) {
	result := &SyncResult{}

	for _, def := range config.Resources {
		res := domain.Resource{
			ID:       def.ID,
			Name:     def.Name,
			Category: domain.ResourceCategory(def.Category),
			Metadata: def.Metadata,
		}
		if err := repo.UpsertResource(ctx, res); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertResourceFailed, def.ID, err)
		}
		result.ResourcesUpserted++
	}

	for _, def := range config.Instances {
		deadline, err := l.resolveDeadline(def)
		if err != nil {
			return nil, err
		}
		cell, err := scan.ParseCell(def.CellID)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtInvalidCell, ErrInvalidConfig, def.ID, err)
		}
		inst := domain.ResourceInstance{
			ID:            def.ID,
			ResourceID:    def.ResourceID,
			CellID:        cell.String(),
			ResetDeadline: &deadline,
		}
		if err := repo.UpsertResourceInstance(ctx, inst); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertInstanceFailed, def.ID, err)
		}
		result.InstancesUpserted++
	}

	logger.FromContext(ctx).Info(LogMsgSyncCompleted,
		"resources", result.ResourcesUpserted,
		"instances", result.InstancesUpserted)
	return result, nil
}

func (l *loader) resolveDeadline(inst InstanceDef) (time.Time, error) {
	switch {
	case inst.ResetDeadline != "" && inst.ResetIn != "":
		return time.Time{}, fmt.Errorf(ErrFmtDeadlineConflict, ErrInvalidConfig, inst.ID)
	case inst.ResetDeadline != "":
		t, err := time.Parse(time.RFC3339, inst.ResetDeadline)
		if err != nil {
			return time.Time{}, fmt.Errorf(ErrFmtInvalidDeadline, ErrInvalidConfig, inst.ID, err)
		}
		return t.UTC(), nil
	case inst.ResetIn != "":
		d, err := time.ParseDuration(inst.ResetIn)
		if err != nil || d <= 0 {
			if err == nil {
				err = errors.New("must be positive")
			}
			return time.Time{}, fmt.Errorf(ErrFmtInvalidResetIn, ErrInvalidConfig, inst.ID, err)
		}
		return l.clock.Now().Add(d).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf(ErrFmtMissingDeadline, ErrInvalidConfig, inst.ID)
	}
}
