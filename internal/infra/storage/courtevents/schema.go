package courtevents

import (
	"context"
	"fmt"
)

const tableName = "court_events"

const schema = `
CREATE TABLE IF NOT EXISTS court_events (
    id               UUID PRIMARY KEY,
    facility_id      TEXT        NOT NULL,
    facility_name    TEXT        NOT NULL,
    court_number     INTEGER     NOT NULL CHECK (court_number > 0),
    customer_name    TEXT        NOT NULL,
    customer_phone   TEXT        NOT NULL,
    booking_date     TEXT        NOT NULL,
    start_time       TEXT        NOT NULL,
    duration_minutes INTEGER     NOT NULL CHECK (duration_minutes > 0),
    starts_at        TIMESTAMPTZ NOT NULL,
    ends_at          TIMESTAMPTZ NOT NULL CHECK (ends_at > starts_at),
    created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_court_events_court_time
    ON court_events (facility_id, court_number, starts_at, ends_at);
`

// EnsureSchema создает таблицу событий кортов, если ее нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}
