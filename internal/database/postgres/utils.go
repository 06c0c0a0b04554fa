package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/HexHarvest_Go/internal/database/generated"
	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// ---- Common Helper Functions ----

// parseHarvesterUUID parses a harvester ID. A malformed ID can never match a row,
// so it is reported as not found rather than as an internal error.
func parseHarvesterUUID(harvesterID string) (uuid.UUID, error) {
	u, err := uuid.Parse(harvesterID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s %q", domain.ErrHarvesterNotFound, ErrMsgInvalidHarvesterID, harvesterID)
	}
	return u, nil
}

// ptrTime converts a pgtype.Timestamptz to *time.Time.
// Returns nil if the timestamp is not valid.
func ptrTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

// toTimestamptz converts a *time.Time to pgtype.Timestamptz, nil becomes NULL
func toTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// ptrToText converts a string pointer to pgtype.Text
func ptrToText(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// strToText converts a string to pgtype.Text
func strToText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// mapPgError translates store-level conflicts into domain errors.
// Anything it does not recognise is wrapped with msg unchanged.
func mapPgError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeSerializationFailure, PgErrorCodeDeadlockDetected:
			return fmt.Errorf("%w: %s: %v", domain.ErrSerializationFailure, msg, err)
		case PgErrorCodeUniqueViolation:
			if pgErr.ConstraintName == ConstraintHarvesterOwnerCell {
				return fmt.Errorf("%w: %v", domain.ErrCellOccupied, err)
			}
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// ---- End Common Helper Functions ----

// mapHarvester maps a harvester row to the domain type
func mapHarvester(row generated.Harvester) *domain.Harvester {
	return &domain.Harvester{
		ID:              row.HarvesterID.String(),
		OwnerID:         row.OwnerID,
		ItemID:          row.ItemID,
		DeployedCellID:  textToPtr(row.DeployedCellID),
		DeployedAt:      ptrTime(row.DeployedAt),
		InitialEnergy:   row.InitialEnergy,
		EnergyStartTime: ptrTime(row.EnergyStartTime),
		EnergyEndTime:   ptrTime(row.EnergyEndTime),
		EnergySourceID:  textToPtr(row.EnergySourceID),
		CreatedAt:       row.CreatedAt.Time.UTC(),
		UpdatedAt:       row.UpdatedAt.Time.UTC(),
	}
}
