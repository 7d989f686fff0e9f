package security

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository persists audit events and serves the admin listing.
type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// PersistEvent inserts one audit event.
func (r *EventRepository) PersistEvent(ctx context.Context, event Event) error {
	query := `
		INSERT INTO security_events (
			event_type, service, level, user_id, ip_address,
			user_agent, request_id, path, details, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	detailsJSON := []byte("null")
	if len(event.Details) > 0 {
		detailsJSON, _ = json.Marshal(event.Details)
	}

	var ipAddr interface{}
	if event.IP != "" {
		ipAddr = event.IP
	}
	var userID interface{}
	if event.UserID != "" {
		userID = event.UserID
	}

	_, err := r.db.Exec(ctx, query,
		string(event.Event),
		event.Service,
		event.Level,
		userID,
		ipAddr,
		event.UserAgent,
		event.RequestID,
		event.Path,
		detailsJSON,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to persist security event: %w", err)
	}
	return nil
}

// StoredEvent is the admin-facing read model.
type StoredEvent struct {
	ID        int64           `json:"id"`
	EventType string          `json:"event_type"`
	Level     string          `json:"level"`
	UserID    *string         `json:"user_id,omitempty"`
	IP        *string         `json:"ip,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
	Path      string          `json:"path,omitempty"`
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// FetchRecent returns the newest events, capped at limit.
func (r *EventRepository) FetchRecent(ctx context.Context, limit int) ([]StoredEvent, error) {
	if limit < 1 || limit > 200 {
		limit = 100
	}

	query := `
		SELECT id, event_type, level, user_id, ip_address::text,
		       request_id, path, details, created_at
		FROM security_events
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []StoredEvent
	for rows.Next() {
		var e StoredEvent
		if err := rows.Scan(
			&e.ID, &e.EventType, &e.Level, &e.UserID, &e.IP,
			&e.RequestID, &e.Path, &e.Details, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
