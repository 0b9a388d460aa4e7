package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/iac-appeals/aip-sync/common/id"
	"github.com/iac-appeals/aip-sync/common/logger"
	"github.com/iac-appeals/aip-sync/internal/auth"
	"github.com/iac-appeals/aip-sync/internal/codec"
	"github.com/iac-appeals/aip-sync/internal/journey"
	"github.com/iac-appeals/aip-sync/internal/model"
	"github.com/iac-appeals/aip-sync/internal/store"
)

var ErrTerminalState = errors.New("appeal is in a terminal state")

// UpdateAppealService synchronizes the session Appeal aggregate with the
// upstream case. Loading translates the remote case into an Appeal; submitting
// encodes the Appeal back and posts one event. A failed submission leaves the
// session untouched, so the upstream case remains the source of truth.
type UpdateAppealService interface {
	LoadAppeal(ctx context.Context, userToken string) (*model.Appeal, error)
	SubmitEvent(ctx context.Context, userToken string, appeal *model.Appeal, event model.Event) (*model.Appeal, error)

	// GetSession returns the cached aggregate, loading from upstream when no
	// session exists yet.
	GetSession(ctx context.Context, userToken string) (*model.Appeal, error)
	// SaveSession persists draft-only changes that must not cross the
	// upstream boundary yet.
	SaveSession(ctx context.Context, userToken string, appeal *model.Appeal) error

	// Submissions returns the local audit trail for a case, newest first.
	Submissions(ctx context.Context, ccdCaseID int64) ([]store.SubmissionRecord, error)
}

type updateAppealService struct {
	ccdClient CaseAPI
	authProv  auth.Provider
	codec     *codec.Codec
	sessions  store.SessionStore
	audit     store.AuditStore
}

func NewUpdateAppealService(
	ccdClient CaseAPI,
	authProv auth.Provider,
	caseCodec *codec.Codec,
	sessions store.SessionStore,
	audit store.AuditStore,
) UpdateAppealService {
	return &updateAppealService{
		ccdClient: ccdClient,
		authProv:  authProv,
		codec:     caseCodec,
		sessions:  sessions,
		audit:     audit,
	}
}

// LoadAppeal fetches the user's case, creating one when none exists, and
// rebuilds the session aggregate from it.
func (s *updateAppealService) LoadAppeal(ctx context.Context, userToken string) (*model.Appeal, error) {
	headers, err := s.authProv.Headers(ctx, userToken)
	if err != nil {
		return nil, fmt.Errorf("resolving security headers: %w", err)
	}

	user, err := s.authProv.UserDetails(ctx, userToken)
	if err != nil {
		return nil, fmt.Errorf("resolving user details: %w", err)
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(user.UID),
		Component: "aip.service.update_appeal",
	})

	details, err := s.loadOrCreateCase(ctx, user.UID, headers)
	if err != nil {
		return nil, err
	}

	return s.rebuildSession(ctx, user.UID, details, headers)
}

// SubmitEvent encodes the aggregate, posts the event and replaces the session
// with the post-event case state. Encoding failures surface before any
// upstream call is made.
func (s *updateAppealService) SubmitEvent(ctx context.Context, userToken string, appeal *model.Appeal, event model.Event) (*model.Appeal, error) {
	if appeal.AppealStatus.Terminal() {
		return nil, ErrTerminalState
	}

	headers, err := s.authProv.Headers(ctx, userToken)
	if err != nil {
		return nil, fmt.Errorf("resolving security headers: %w", err)
	}

	user, err := s.authProv.UserDetails(ctx, userToken)
	if err != nil {
		return nil, fmt.Errorf("resolving user details: %w", err)
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CcdCaseID: logger.Ptr(appeal.CcdCaseID),
		UserID:    logger.Ptr(user.UID),
		EventID:   logger.Ptr(event.ID),
		Component: "aip.service.update_appeal",
	})

	sc := logger.StartSpan(ctx, "update_appeal.submit_event")
	defer sc.End()
	ctx = sc.Context()

	caseData, err := s.codec.ToCaseData(appeal)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode case data", "error", err)
		return nil, fmt.Errorf("encoding case data: %w", err)
	}

	start, err := s.ccdClient.StartEvent(ctx, user.UID, appeal.CcdCaseID, event.ID, headers)
	if err != nil {
		slog.ErrorContext(ctx, "failed to start event", "error", err)
		return nil, fmt.Errorf("starting event: %w", err)
	}

	details, err := s.ccdClient.SubmitEvent(ctx, user.UID, appeal.CcdCaseID, event, caseData, start.Token, headers)
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to submit event", "error", err)
		return nil, fmt.Errorf("submitting event: %w", err)
	}

	slog.InfoContext(ctx, "event submitted", "state", details.State)

	s.recordSubmission(ctx, details, user.UID, event.ID)

	return s.rebuildSession(ctx, user.UID, details, headers)
}

func (s *updateAppealService) GetSession(ctx context.Context, userToken string) (*model.Appeal, error) {
	user, err := s.authProv.UserDetails(ctx, userToken)
	if err != nil {
		return nil, fmt.Errorf("resolving user details: %w", err)
	}

	appeal, err := s.sessions.Get(ctx, user.UID)
	if errors.Is(err, store.ErrNotFound) {
		return s.LoadAppeal(ctx, userToken)
	}
	if err != nil {
		return nil, fmt.Errorf("reading appeal session: %w", err)
	}
	return appeal, nil
}

func (s *updateAppealService) SaveSession(ctx context.Context, userToken string, appeal *model.Appeal) error {
	user, err := s.authProv.UserDetails(ctx, userToken)
	if err != nil {
		return fmt.Errorf("resolving user details: %w", err)
	}
	if err := s.sessions.Save(ctx, user.UID, appeal); err != nil {
		return fmt.Errorf("saving appeal session: %w", err)
	}
	return nil
}

// Submissions reads the audit trail back out. Support staff use it to
// reconstruct what an appellant submitted and when, without touching the
// upstream case.
func (s *updateAppealService) Submissions(ctx context.Context, ccdCaseID int64) ([]store.SubmissionRecord, error) {
	records, err := s.audit.ListByCase(ctx, ccdCaseID)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	return records, nil
}

func (s *updateAppealService) loadOrCreateCase(ctx context.Context, userID string, headers auth.SecurityHeaders) (model.CaseDetails, error) {
	cases, err := s.ccdClient.ListCases(ctx, userID, headers)
	if err != nil {
		return model.CaseDetails{}, fmt.Errorf("listing cases: %w", err)
	}

	if len(cases) == 0 {
		created, err := s.ccdClient.CreateCase(ctx, userID, headers)
		if err != nil {
			slog.ErrorContext(ctx, "failed to create case", "error", err)
			return model.CaseDetails{}, fmt.Errorf("creating case: %w", err)
		}
		slog.InfoContext(ctx, "case created", "ccd_case_id", created.ID)
		return created, nil
	}

	// A user holds at most one active appeal; take the most recently modified.
	latest := cases[0]
	for _, c := range cases[1:] {
		if c.LastModified > latest.LastModified {
			latest = c
		}
	}
	return latest, nil
}

// rebuildSession translates case details into the Appeal aggregate, attaches
// history, resolves the effective status and persists the session.
func (s *updateAppealService) rebuildSession(ctx context.Context, userID string, details model.CaseDetails, headers auth.SecurityHeaders) (*model.Appeal, error) {
	appeal, err := s.codec.ToAppeal(details)
	if err != nil {
		slog.ErrorContext(ctx, "failed to decode case data", "error", err)
		return nil, fmt.Errorf("decoding case data: %w", err)
	}

	history, err := s.ccdClient.CaseHistory(ctx, userID, details.ID, headers)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch case history", "error", err)
		return nil, fmt.Errorf("fetching case history: %w", err)
	}
	appeal.History = history

	appeal.AppealStatus = journey.ResolveStatus(model.AppealStatus(details.State), appeal)

	if err := s.sessions.Save(ctx, userID, appeal); err != nil {
		slog.ErrorContext(ctx, "failed to save appeal session", "error", err)
		return nil, fmt.Errorf("saving appeal session: %w", err)
	}

	return appeal, nil
}

// recordSubmission appends to the local audit trail. Audit failures are
// logged, not surfaced: the upstream submission already succeeded.
func (s *updateAppealService) recordSubmission(ctx context.Context, details model.CaseDetails, userID, eventID string) {
	caseID, err := strconv.ParseInt(details.ID, 10, 64)
	if err != nil {
		slog.WarnContext(ctx, "unparseable case id, skipping audit record", "ccd_case_id", details.ID)
		return
	}

	rec := &store.SubmissionRecord{
		ID:          id.New(),
		CcdCaseID:   caseID,
		UserID:      userID,
		EventID:     eventID,
		State:       details.State,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.audit.Record(ctx, rec); err != nil {
		slog.WarnContext(ctx, "failed to record submission audit", "error", err)
	}
}
