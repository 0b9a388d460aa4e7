package store

import (
	"context"
	"errors"
	"time"

	"github.com/iac-appeals/aip-sync/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// SessionStore defines the contract for the per-user appeal session.
// The session holds the in-progress Appeal aggregate between requests,
// including draft edits not yet submitted to the case-management system.
type SessionStore interface {
	Get(ctx context.Context, userID string) (*model.Appeal, error)
	Save(ctx context.Context, userID string, appeal *model.Appeal) error
	Delete(ctx context.Context, userID string) error
}

// SubmissionRecord is one row of the local audit trail of case events
// submitted upstream.
type SubmissionRecord struct {
	ID          int64
	CcdCaseID   int64
	UserID      string
	EventID     string
	State       string
	SubmittedAt time.Time
}

// AuditStore defines the contract for the submission audit trail
type AuditStore interface {
	Record(ctx context.Context, rec *SubmissionRecord) error
	ListByCase(ctx context.Context, ccdCaseID int64) ([]SubmissionRecord, error)
}
