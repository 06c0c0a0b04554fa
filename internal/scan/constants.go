package scan

const (
	// DefaultCacheSize is the number of grid disks memoised
	DefaultCacheSize = 1024

	// MaxRadius bounds the ring count of a discovery query
	MaxRadius = 8
)
