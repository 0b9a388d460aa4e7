package store

import (
	"context"
	"fmt"

	"github.com/iac-appeals/aip-sync/core/db"
)

type auditStore struct {
	db *db.DB
}

func newAuditStore(database *db.DB) AuditStore {
	return &auditStore{db: database}
}

func (s *auditStore) Record(ctx context.Context, rec *SubmissionRecord) error {
	const query = `
		INSERT INTO submission_audit (id, ccd_case_id, user_id, event_id, state, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.Pool().Exec(ctx, query,
		rec.ID, rec.CcdCaseID, rec.UserID, rec.EventID, rec.State, rec.SubmittedAt)
	if err != nil {
		return fmt.Errorf("recording submission: %w", err)
	}
	return nil
}

func (s *auditStore) ListByCase(ctx context.Context, ccdCaseID int64) ([]SubmissionRecord, error) {
	const query = `
		SELECT id, ccd_case_id, user_id, event_id, state, submitted_at
		FROM submission_audit
		WHERE ccd_case_id = $1
		ORDER BY submitted_at DESC`

	rows, err := s.db.Pool().Query(ctx, query, ccdCaseID)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var records []SubmissionRecord
	for rows.Next() {
		var rec SubmissionRecord
		if err := rows.Scan(&rec.ID, &rec.CcdCaseID, &rec.UserID, &rec.EventID, &rec.State, &rec.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return records, nil
}
