package harvester

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/HexHarvest_Go/internal/domain"
)

// Rates holds the tunable accounting constants
type Rates struct {
	BaseMinutesPerUnit      float64 // Minutes of runtime one energy unit yields at efficiency 1.0
	ExtractionRatePerMinute float64 // Units each active operation extracts per minute
}

// DefaultRates returns the stock accounting constants
func DefaultRates() Rates {
	return Rates{
		BaseMinutesPerUnit:      DefaultBaseMinutesPerUnit,
		ExtractionRatePerMinute: DefaultExtractionRatePerMinute,
	}
}

// RemainingEnergy depletes initial energy over the elapsed minutes. Never negative.
func (r Rates) RemainingEnergy(initial, minutesElapsed, efficiency float64) float64 {
	remaining := initial - minutesElapsed/(r.BaseMinutesPerUnit*efficiency+Epsilon)
	return math.Max(0, remaining)
}

// EnergyDuration is how long total energy lasts at the given efficiency
func (r Rates) EnergyDuration(total, efficiency float64) time.Duration {
	minutes := total * r.BaseMinutesPerUnit * efficiency
	if minutes <= 0 {
		return 0
	}
	if minutes >= maxEnergyDuration.Minutes() {
		return maxEnergyDuration
	}
	return time.Duration(minutes * float64(time.Minute))
}

// remainingAt is the harvester's energy at the given instant
func (r Rates) remainingAt(h *domain.Harvester, efficiency float64, at time.Time) (float64, error) {
	if h.EnergyStartTime == nil {
		return h.InitialEnergy, nil
	}
	elapsed := at.Sub(*h.EnergyStartTime)
	if elapsed < 0 {
		return 0, fmt.Errorf("%w: harvester %s energy started at %s, after %s",
			domain.ErrNegativeElapsed, h.ID, h.EnergyStartTime.Format(time.RFC3339), at.Format(time.RFC3339))
	}
	return r.RemainingEnergy(h.InitialEnergy, elapsed.Minutes(), efficiency), nil
}
