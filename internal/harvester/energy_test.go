package harvester

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HexHarvest_Go/internal/domain"
)

func TestRemainingEnergy_NoElapsedTime(t *testing.T) {
	rates := DefaultRates()
	for _, initial := range []float64{0, 1, 10, 123.45} {
		for _, eff := range []float64{0.1, 0.5, 1} {
			assert.Equal(t, initial, rates.RemainingEnergy(initial, 0, eff), "initial=%v eff=%v", initial, eff)
		}
	}
}

func TestRemainingEnergy_NonIncreasingAndNonNegative(t *testing.T) {
	rates := DefaultRates()
	for _, eff := range []float64{0.05, 0.6, 1} {
		prev := math.Inf(1)
		for minutes := 0.0; minutes <= 5000; minutes += 7 {
			got := rates.RemainingEnergy(10, minutes, eff)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, prev)
			prev = got
		}
		assert.Equal(t, 0.0, prev, "fully drained after long enough")
	}
}

func TestRemainingEnergy_OneHourAtSixtyPercent(t *testing.T) {
	rates := DefaultRates()

	// 10 - 60/(60*0.6) = 8.333...
	got := rates.RemainingEnergy(10, 60, 0.6)
	assert.InDelta(t, 8.3333, got, 1e-3)
	assert.Equal(t, 8.0, math.Floor(got))
}

func TestRemainingEnergy_ZeroEfficiencyDrainsImmediately(t *testing.T) {
	rates := DefaultRates()
	assert.Equal(t, 0.0, rates.RemainingEnergy(10, 1, 0))
	assert.Equal(t, 10.0, rates.RemainingEnergy(10, 0, 0))
}

func TestRemainingEnergy_CustomBase(t *testing.T) {
	rates := Rates{BaseMinutesPerUnit: 30, ExtractionRatePerMinute: 1}
	assert.InDelta(t, 8.0, rates.RemainingEnergy(10, 60, 1), 1e-6)
}

func TestEnergyDuration(t *testing.T) {
	rates := DefaultRates()

	assert.InDelta(t, 360.0, rates.EnergyDuration(10, 0.6).Minutes(), 1e-6)
	assert.Equal(t, time.Duration(0), rates.EnergyDuration(0, 0.6))
	assert.Equal(t, time.Duration(0), rates.EnergyDuration(10, 0))
	assert.Equal(t, maxEnergyDuration, rates.EnergyDuration(1e15, 1))
}

func TestEnergyDuration_ConsistentWithRemaining(t *testing.T) {
	rates := DefaultRates()
	d := rates.EnergyDuration(10, 0.5)

	assert.InDelta(t, 0.0, rates.RemainingEnergy(10, d.Minutes(), 0.5), 1e-4)
	assert.Greater(t, rates.RemainingEnergy(10, d.Minutes()-1, 0.5), 0.0)
}

func TestRemainingAt(t *testing.T) {
	rates := DefaultRates()

	t.Run("never started returns initial", func(t *testing.T) {
		h := &domain.Harvester{ID: "h", InitialEnergy: 4}
		got, err := rates.remainingAt(h, 0.5, t0)
		require.NoError(t, err)
		assert.Equal(t, 4.0, got)
	})

	t.Run("depletes from start time", func(t *testing.T) {
		h := &domain.Harvester{ID: "h", InitialEnergy: 10, EnergyStartTime: timePtr(t0)}
		got, err := rates.remainingAt(h, 0.6, t0.Add(time.Hour))
		require.NoError(t, err)
		assert.InDelta(t, 8.3333, got, 1e-3)
	})

	t.Run("instant before start is an integrity fault", func(t *testing.T) {
		h := &domain.Harvester{ID: "h", InitialEnergy: 10, EnergyStartTime: timePtr(t0)}
		_, err := rates.remainingAt(h, 0.6, t0.Add(-time.Minute))
		assert.ErrorIs(t, err, domain.ErrNegativeElapsed)
		assert.ErrorIs(t, err, domain.ErrIntegrityFault)
	})
}
