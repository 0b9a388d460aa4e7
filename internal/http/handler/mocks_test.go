package handler_test

import (
	"context"

	"github.com/iac-appeals/aip-sync/internal/model"
	"github.com/iac-appeals/aip-sync/internal/store"
)

type mockAppealService struct {
	loadAppealFn  func(ctx context.Context, userToken string) (*model.Appeal, error)
	submitEventFn func(ctx context.Context, userToken string, appeal *model.Appeal, event model.Event) (*model.Appeal, error)
	getSessionFn  func(ctx context.Context, userToken string) (*model.Appeal, error)
	saveSessionFn func(ctx context.Context, userToken string, appeal *model.Appeal) error
	submissionsFn func(ctx context.Context, ccdCaseID int64) ([]store.SubmissionRecord, error)
}

func (m *mockAppealService) LoadAppeal(ctx context.Context, userToken string) (*model.Appeal, error) {
	if m.loadAppealFn != nil {
		return m.loadAppealFn(ctx, userToken)
	}
	return &model.Appeal{}, nil
}

func (m *mockAppealService) SubmitEvent(ctx context.Context, userToken string, appeal *model.Appeal, event model.Event) (*model.Appeal, error) {
	if m.submitEventFn != nil {
		return m.submitEventFn(ctx, userToken, appeal, event)
	}
	return appeal, nil
}

func (m *mockAppealService) GetSession(ctx context.Context, userToken string) (*model.Appeal, error) {
	if m.getSessionFn != nil {
		return m.getSessionFn(ctx, userToken)
	}
	return &model.Appeal{}, nil
}

func (m *mockAppealService) SaveSession(ctx context.Context, userToken string, appeal *model.Appeal) error {
	if m.saveSessionFn != nil {
		return m.saveSessionFn(ctx, userToken, appeal)
	}
	return nil
}

func (m *mockAppealService) Submissions(ctx context.Context, ccdCaseID int64) ([]store.SubmissionRecord, error) {
	if m.submissionsFn != nil {
		return m.submissionsFn(ctx, ccdCaseID)
	}
	return nil, nil
}
