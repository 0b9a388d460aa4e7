package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iac-appeals/aip-sync/common/id"
	"github.com/iac-appeals/aip-sync/internal/auth"
	"github.com/iac-appeals/aip-sync/internal/ccd"
	"github.com/iac-appeals/aip-sync/internal/codec"
	"github.com/iac-appeals/aip-sync/internal/model"
	"github.com/iac-appeals/aip-sync/internal/service"
	"github.com/iac-appeals/aip-sync/internal/store"
)

var _ = Describe("UpdateAppealService", func() {
	var (
		ctx      context.Context
		caseAPI  *mockCaseAPI
		authProv *mockAuthProvider
		sessions *mockSessionStore
		audit    *mockAuditStore
		saved    map[string]*model.Appeal
		svc      service.UpdateAppealService
	)

	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())

		ctx = context.Background()
		caseAPI = &mockCaseAPI{}
		authProv = &mockAuthProvider{}
		audit = &mockAuditStore{}

		saved = map[string]*model.Appeal{}
		sessions = &mockSessionStore{
			saveFn: func(ctx context.Context, userID string, appeal *model.Appeal) error {
				saved[userID] = appeal
				return nil
			},
		}

		svc = service.NewUpdateAppealService(caseAPI, authProv, codec.New(), sessions, audit)
	})

	Describe("LoadAppeal", func() {
		It("creates a case when the user has none", func() {
			created := false
			caseAPI.listCasesFn = func(ctx context.Context, userID string, headers auth.SecurityHeaders) ([]model.CaseDetails, error) {
				return nil, nil
			}
			caseAPI.createCaseFn = func(ctx context.Context, userID string, headers auth.SecurityHeaders) (model.CaseDetails, error) {
				created = true
				return model.CaseDetails{
					ID:    "1600000000000000",
					State: "appealStarted",
					CaseData: model.CaseData{
						JourneyType: "aip",
					},
				}, nil
			}

			appeal, err := svc.LoadAppeal(ctx, "user-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())
			Expect(appeal.CcdCaseID).To(Equal("1600000000000000"))
			Expect(appeal.AppealStatus).To(Equal(model.StatusAppealStarted))
			Expect(saved).To(HaveKey("user-1"))
		})

		It("picks the most recently modified case when several exist", func() {
			caseAPI.listCasesFn = func(ctx context.Context, userID string, headers auth.SecurityHeaders) ([]model.CaseDetails, error) {
				return []model.CaseDetails{
					{ID: "100", State: "appealStarted", LastModified: "2020-01-01T00:00:00"},
					{ID: "200", State: "appealSubmitted", LastModified: "2020-03-01T00:00:00"},
					{ID: "150", State: "appealStarted", LastModified: "2020-02-01T00:00:00"},
				}, nil
			}

			appeal, err := svc.LoadAppeal(ctx, "user-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(appeal.CcdCaseID).To(Equal("200"))
		})

		It("attaches the case history to the rebuilt session", func() {
			caseAPI.listCasesFn = func(ctx context.Context, userID string, headers auth.SecurityHeaders) ([]model.CaseDetails, error) {
				return []model.CaseDetails{{ID: "100", State: "appealSubmitted"}}, nil
			}
			caseAPI.caseHistoryFn = func(ctx context.Context, userID, caseID string, headers auth.SecurityHeaders) ([]model.HistoryEvent, error) {
				return []model.HistoryEvent{
					{ID: "submitAppeal", CreatedDate: "2020-02-08T15:36:26.099"},
				}, nil
			}

			appeal, err := svc.LoadAppeal(ctx, "user-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(appeal.History).To(HaveLen(1))
			Expect(appeal.History[0].ID).To(Equal("submitAppeal"))
		})

		It("overlays the late-appeal status on a late submitted case", func() {
			caseAPI.listCasesFn = func(ctx context.Context, userID string, headers auth.SecurityHeaders) ([]model.CaseDetails, error) {
				return []model.CaseDetails{
					{
						ID:    "100",
						State: "appealSubmitted",
						CaseData: model.CaseData{
							JourneyType:         "aip",
							SubmissionOutOfTime: model.Yes,
						},
					},
				}, nil
			}

			appeal, err := svc.LoadAppeal(ctx, "user-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(appeal.AppealStatus).To(Equal(model.StatusLateAppealSubmitted))
		})
	})

	Describe("SubmitEvent", func() {
		var appeal *model.Appeal

		BeforeEach(func() {
			appeal = &model.Appeal{
				CcdCaseID:    "1600000000000000",
				AppealStatus: model.StatusAppealStarted,
			}
		})

		It("starts the event, submits it and rebuilds the session", func() {
			var gotToken string
			var gotEvent model.Event
			caseAPI.startEventFn = func(ctx context.Context, userID, caseID, eventID string, headers auth.SecurityHeaders) (ccd.StartEventResponse, error) {
				Expect(caseID).To(Equal("1600000000000000"))
				Expect(eventID).To(Equal(model.EventEditAppeal.ID))
				return ccd.StartEventResponse{Token: "start-token"}, nil
			}
			caseAPI.submitEventFn = func(ctx context.Context, userID, caseID string, event model.Event, data model.CaseData, eventToken string, headers auth.SecurityHeaders) (model.CaseDetails, error) {
				gotToken = eventToken
				gotEvent = event
				Expect(data.JourneyType).To(Equal("aip"))
				return model.CaseDetails{ID: caseID, State: "appealStarted", CaseData: data}, nil
			}

			updated, err := svc.SubmitEvent(ctx, "user-token", appeal, model.EventEditAppeal)
			Expect(err).NotTo(HaveOccurred())
			Expect(gotToken).To(Equal("start-token"))
			Expect(gotEvent.ID).To(Equal("editAppeal"))
			Expect(updated.AppealStatus).To(Equal(model.StatusAppealStarted))
			Expect(saved).To(HaveKey("user-1"))
		})

		It("records the submission in the audit trail", func() {
			var rec *store.SubmissionRecord
			audit.recordFn = func(ctx context.Context, r *store.SubmissionRecord) error {
				rec = r
				return nil
			}
			caseAPI.submitEventFn = func(ctx context.Context, userID, caseID string, event model.Event, data model.CaseData, eventToken string, headers auth.SecurityHeaders) (model.CaseDetails, error) {
				return model.CaseDetails{ID: caseID, State: "appealSubmitted", CaseData: data}, nil
			}

			_, err := svc.SubmitEvent(ctx, "user-token", appeal, model.EventSubmitAppeal)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec).NotTo(BeNil())
			Expect(rec.CcdCaseID).To(Equal(int64(1600000000000000)))
			Expect(rec.EventID).To(Equal("submitAppeal"))
			Expect(rec.State).To(Equal("appealSubmitted"))
		})

		It("still succeeds when the audit write fails", func() {
			audit.recordFn = func(ctx context.Context, r *store.SubmissionRecord) error {
				return errors.New("db down")
			}

			_, err := svc.SubmitEvent(ctx, "user-token", appeal, model.EventEditAppeal)
			Expect(err).NotTo(HaveOccurred())
		})

		It("refuses to submit from a terminal state", func() {
			appeal.AppealStatus = model.StatusEnded

			_, err := svc.SubmitEvent(ctx, "user-token", appeal, model.EventEditAppeal)
			Expect(err).To(MatchError(service.ErrTerminalState))
		})

		It("leaves the session untouched when the upstream submit fails", func() {
			caseAPI.submitEventFn = func(ctx context.Context, userID, caseID string, event model.Event, data model.CaseData, eventToken string, headers auth.SecurityHeaders) (model.CaseDetails, error) {
				return model.CaseDetails{}, errors.New("ccd unavailable")
			}

			_, err := svc.SubmitEvent(ctx, "user-token", appeal, model.EventEditAppeal)
			Expect(err).To(HaveOccurred())
			Expect(saved).To(BeEmpty())
		})

		It("surfaces encoding failures before any upstream call", func() {
			appeal.Application.DateLetterSent = &model.AppealDate{Year: "2020", Month: "13", Day: "1"}

			started := false
			caseAPI.startEventFn = func(ctx context.Context, userID, caseID, eventID string, headers auth.SecurityHeaders) (ccd.StartEventResponse, error) {
				started = true
				return ccd.StartEventResponse{}, nil
			}

			_, err := svc.SubmitEvent(ctx, "user-token", appeal, model.EventEditAppeal)
			Expect(err).To(HaveOccurred())
			Expect(started).To(BeFalse())
		})
	})

	Describe("GetSession", func() {
		It("returns the cached aggregate when one exists", func() {
			cached := &model.Appeal{CcdCaseID: "42", AppealStatus: model.StatusAppealStarted}
			sessions.getFn = func(ctx context.Context, userID string) (*model.Appeal, error) {
				Expect(userID).To(Equal("user-1"))
				return cached, nil
			}

			appeal, err := svc.GetSession(ctx, "user-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(appeal).To(BeIdenticalTo(cached))
		})

		It("falls back to loading from upstream when no session exists", func() {
			sessions.getFn = func(ctx context.Context, userID string) (*model.Appeal, error) {
				return nil, store.ErrNotFound
			}
			caseAPI.listCasesFn = func(ctx context.Context, userID string, headers auth.SecurityHeaders) ([]model.CaseDetails, error) {
				return []model.CaseDetails{{ID: "77", State: "appealStarted"}}, nil
			}

			appeal, err := svc.GetSession(ctx, "user-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(appeal.CcdCaseID).To(Equal("77"))
		})

		It("propagates unexpected store errors", func() {
			sessions.getFn = func(ctx context.Context, userID string) (*model.Appeal, error) {
				return nil, errors.New("redis timeout")
			}

			_, err := svc.GetSession(ctx, "user-token")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SaveSession", func() {
		It("persists the aggregate under the resolved user id", func() {
			appeal := &model.Appeal{CcdCaseID: "42"}

			Expect(svc.SaveSession(ctx, "user-token", appeal)).To(Succeed())
			Expect(saved["user-1"]).To(BeIdenticalTo(appeal))
		})

		It("rejects the save when the token cannot be resolved", func() {
			authProv.userDetailsFn = func(ctx context.Context, userToken string) (*auth.UserDetails, error) {
				return nil, auth.ErrUnauthorized
			}

			err := svc.SaveSession(ctx, "user-token", &model.Appeal{})
			Expect(err).To(MatchError(auth.ErrUnauthorized))
		})
	})

	Describe("Submissions", func() {
		It("reads the audit trail for the case", func() {
			audit.listByCaseFn = func(ctx context.Context, ccdCaseID int64) ([]store.SubmissionRecord, error) {
				Expect(ccdCaseID).To(Equal(int64(1234567890)))
				return []store.SubmissionRecord{{CcdCaseID: ccdCaseID, EventID: "submitAppeal"}}, nil
			}

			records, err := svc.Submissions(ctx, 1234567890)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].EventID).To(Equal("submitAppeal"))
		})

		It("wraps store failures", func() {
			storeErr := errors.New("connection reset")
			audit.listByCaseFn = func(ctx context.Context, ccdCaseID int64) ([]store.SubmissionRecord, error) {
				return nil, storeErr
			}

			_, err := svc.Submissions(ctx, 42)
			Expect(err).To(MatchError(storeErr))
		})
	})
})
