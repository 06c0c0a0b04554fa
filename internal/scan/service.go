// Package scan discovers harvestable resource instances around an H3 cell.
package scan

import (
	"context"
	"fmt"

	"github.com/uber/h3-go/v4"

	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/logger"
	"github.com/osse101/HexHarvest_Go/internal/metrics"
	"github.com/osse101/HexHarvest_Go/internal/repository"
)

// Service defines resource discovery
type Service interface {
	// FindHarvestableInstancesNear lists harvestable instances within radius rings of the cell
	FindHarvestableInstancesNear(ctx context.Context, cellID string, radius int) ([]domain.ResourceInstance, error)
}

type service struct {
	repo  repository.ResourceInstance
	disks *diskCache
}

// NewService creates a discovery service with a grid disk cache of cacheSize entries
func NewService(repo repository.ResourceInstance, cacheSize int) (Service, error) {
	disks, err := newDiskCache(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid disk cache: %w", err)
	}
	return &service{repo: repo, disks: disks}, nil
}

// FindHarvestableInstancesNear lists harvestable instances within radius rings of the cell
func (s *service) FindHarvestableInstancesNear(ctx context.Context, cellID string, radius int) ([]domain.ResourceInstance, error) {
	log := logger.FromContext(ctx)

	if radius < 0 || radius > MaxRadius {
		return nil, fmt.Errorf("%w: radius %d outside [0, %d]", domain.ErrInvalidInput, radius, MaxRadius)
	}

	cells, err := s.disk(cellID, radius)
	if err != nil {
		return nil, err
	}

	instances, err := s.repo.GetHarvestableInstancesInCells(ctx, cells)
	if err != nil {
		return nil, fmt.Errorf("failed to query resource instances: %w", err)
	}

	log.Debug("Discovered resource instances", "cell_id", cellID, "radius", radius, "cells", len(cells), "instances", len(instances))
	return instances, nil
}

// disk returns the cell IDs within radius rings of the cell, origin first
func (s *service) disk(cellID string, radius int) ([]string, error) {
	if cells, ok := s.disks.Get(cellID, radius); ok {
		metrics.ScanCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return cells, nil
	}
	metrics.ScanCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	origin, err := ParseCell(cellID)
	if err != nil {
		return nil, err
	}

	disk, err := h3.GridDisk(origin, radius)
	if err != nil {
		return nil, fmt.Errorf("%w: grid disk of %s: %v", domain.ErrInvalidCell, cellID, err)
	}

	cells := make([]string, 0, len(disk))
	cells = append(cells, origin.String())
	for _, c := range disk {
		if c != origin {
			cells = append(cells, c.String())
		}
	}

	s.disks.Set(cellID, radius, cells)
	return cells, nil
}

// ParseCell parses and validates an H3 cell index string
func ParseCell(cellID string) (h3.Cell, error) {
	cell := h3.Cell(h3.IndexFromString(cellID))
	if !cell.IsValid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidCell, cellID)
	}
	return cell, nil
}
