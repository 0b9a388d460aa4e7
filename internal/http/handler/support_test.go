package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iac-appeals/aip-sync/internal/http/dto"
	"github.com/iac-appeals/aip-sync/internal/http/handler"
	"github.com/iac-appeals/aip-sync/internal/http/middleware"
	"github.com/iac-appeals/aip-sync/internal/store"
)

var _ = Describe("SupportHandler", func() {
	var (
		svc      *mockAppealService
		router   *gin.Engine
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		svc = &mockAppealService{}
		supportHandler := handler.NewSupportHandler(svc)

		router = gin.New()
		router.Use(middleware.RequireAuth())
		router.GET("/support/submissions/:caseId", supportHandler.ListSubmissions)

		recorder = httptest.NewRecorder()
	})

	get := func(path string) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer support-token")
		router.ServeHTTP(recorder, req)
	}

	It("returns the submission history for a case", func() {
		var requested int64
		svc.submissionsFn = func(_ context.Context, ccdCaseID int64) ([]store.SubmissionRecord, error) {
			requested = ccdCaseID
			return []store.SubmissionRecord{
				{
					CcdCaseID:   ccdCaseID,
					UserID:      "user-1",
					EventID:     "submitAppeal",
					State:       "appealSubmitted",
					SubmittedAt: time.Date(2020, 2, 8, 15, 36, 26, 0, time.UTC),
				},
			}, nil
		}

		get("/support/submissions/1234567890")
		Expect(recorder.Code).To(Equal(http.StatusOK))
		Expect(requested).To(Equal(int64(1234567890)))

		var responses []dto.SubmissionResponse
		Expect(json.Unmarshal(recorder.Body.Bytes(), &responses)).To(Succeed())
		Expect(responses).To(HaveLen(1))
		Expect(responses[0].EventID).To(Equal("submitAppeal"))
		Expect(responses[0].State).To(Equal("appealSubmitted"))
		Expect(responses[0].SubmittedAt).To(Equal("2020-02-08T15:36:26Z"))
	})

	It("rejects a case id that is not a number", func() {
		svc.submissionsFn = func(context.Context, int64) ([]store.SubmissionRecord, error) {
			Fail("the audit trail must not be queried for a bad case id")
			return nil, nil
		}

		get("/support/submissions/not-a-case")
		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	})

	It("fails when the audit trail cannot be read", func() {
		svc.submissionsFn = func(context.Context, int64) ([]store.SubmissionRecord, error) {
			return nil, context.DeadlineExceeded
		}

		get("/support/submissions/1234567890")
		Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
	})
})
