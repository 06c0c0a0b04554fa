package scan

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
)

// diskCache memoises grid disks. A disk never changes for a given cell and radius,
// so entries do not expire.
type diskCache struct {
	lru *lru.Cache[string, []string]
}

func newDiskCache(size int) (*diskCache, error) {
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	return &diskCache{lru: cache}, nil
}

func diskKey(cellID string, radius int) string {
	return cellID + ":" + strconv.Itoa(radius)
}

// Get returns the cells of the disk if cached
func (c *diskCache) Get(cellID string, radius int) ([]string, bool) {
	return c.lru.Get(diskKey(cellID, radius))
}

// Set stores a computed disk
func (c *diskCache) Set(cellID string, radius int, cells []string) {
	c.lru.Add(diskKey(cellID, radius), cells)
}

// Len returns the number of cached disks
func (c *diskCache) Len() int {
	return c.lru.Len()
}
