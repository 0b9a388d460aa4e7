package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iac-appeals/aip-sync/internal/http/handler"
	"github.com/iac-appeals/aip-sync/internal/http/middleware"
	"github.com/iac-appeals/aip-sync/internal/journey"
	"github.com/iac-appeals/aip-sync/internal/model"
)

var _ = Describe("AppealHandler", func() {
	var (
		svc      *mockAppealService
		router   *gin.Engine
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		svc = &mockAppealService{}
		appealHandler := handler.NewAppealHandler(svc)

		router = gin.New()
		router.Use(middleware.RequireAuth())
		router.POST(journey.PathHearingCheckAndSend, appealHandler.SubmitHearingRequirements)

		recorder = httptest.NewRecorder()
	})

	post := func(path, body string) {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer user-token")
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, req)
	}

	Describe("SubmitHearingRequirements", func() {
		It("keeps the hearing answers in the session without posting an event", func() {
			var saved *model.Appeal
			svc.saveSessionFn = func(_ context.Context, _ string, appeal *model.Appeal) error {
				saved = appeal
				return nil
			}
			svc.submitEventFn = func(context.Context, string, *model.Appeal, model.Event) (*model.Appeal, error) {
				Fail("hearing answers must not be submitted upstream")
				return nil, nil
			}

			post(journey.PathHearingCheckAndSend, `{"witnessesOnHearing": true, "witnessNames": ["Ama Adjei"]}`)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(saved).NotTo(BeNil())
			Expect(saved.HearingRequirements.WitnessesOnHearing).To(HaveValue(BeTrue()))
			Expect(saved.HearingRequirements.WitnessNames).To(ConsistOf("Ama Adjei"))
		})

		It("fails when the session cannot be saved", func() {
			svc.saveSessionFn = func(context.Context, string, *model.Appeal) error {
				return context.DeadlineExceeded
			}

			post(journey.PathHearingCheckAndSend, `{"witnessesOnHearing": false}`)
			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
