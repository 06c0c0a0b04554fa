package harvester

import (
	"fmt"
	"time"

	"github.com/osse101/HexHarvest_Go/internal/domain"
)

// AccruedAt returns what the operation has extracted in its current window up to at.
// Operations that are not accruing yield zero. A window that would close before it opened
// is an integrity fault.
func (r Rates) AccruedAt(op domain.HarvestOperation, at time.Time) (float64, error) {
	if op.StartTime == nil || op.IsCompleted {
		return 0, nil
	}

	until := at
	if op.EndTime != nil && op.EndTime.Before(until) {
		until = *op.EndTime
	}

	elapsed := until.Sub(*op.StartTime)
	if elapsed < 0 {
		return 0, fmt.Errorf("%w: operation %s window starts at %s, accrual ends at %s",
			domain.ErrNegativeElapsed, op.ID, op.StartTime.Format(time.RFC3339), until.Format(time.RFC3339))
	}
	return elapsed.Minutes() * r.ExtractionRatePerMinute, nil
}

// Recalculate projects every open operation onto a new energy window.
// Completed operations are returned unchanged. Nothing is persisted.
func (r Rates) Recalculate(ops []domain.HarvestOperationWithInstance, newStart, newEnd time.Time) ([]domain.HarvestOperation, error) {
	out := make([]domain.HarvestOperation, 0, len(ops))
	for _, op := range ops {
		if op.IsCompleted {
			out = append(out, op.HarvestOperation)
			continue
		}

		next, err := r.recalculate(op, newStart, newEnd)
		if err != nil {
			return nil, err
		}
		out = append(out, next)
	}
	return out, nil
}

func (r Rates) recalculate(op domain.HarvestOperationWithInstance, newStart, newEnd time.Time) (domain.HarvestOperation, error) {
	next := op.HarvestOperation
	if op.ResetDeadline == nil {
		return next, fmt.Errorf("%w: instance %s of operation %s",
			domain.ErrMissingResetDeadline, op.ResourceInstanceID, op.ID)
	}
	deadline := *op.ResetDeadline

	// Bank the previous window
	accrued, err := r.AccruedAt(op.HarvestOperation, newStart)
	if err != nil {
		return next, err
	}
	next.PriorHarvested += accrued

	end := newEnd
	if deadline.Before(end) {
		end = deadline
	}
	next.EndTime = &end

	if !newStart.Before(end) {
		next.StartTime = nil
		next.IsCompleted = !newStart.Before(deadline)
		return next, nil
	}

	start := newStart
	next.StartTime = &start
	return next, nil
}

func countOpen(ops []domain.HarvestOperation) int {
	n := 0
	for _, op := range ops {
		if !op.IsCompleted {
			n++
		}
	}
	return n
}
