package router

import (
	"github.com/gin-gonic/gin"

	"github.com/iac-appeals/aip-sync/internal/http/handler"
	"github.com/iac-appeals/aip-sync/internal/http/middleware"
	"github.com/iac-appeals/aip-sync/internal/journey"
	"github.com/iac-appeals/aip-sync/internal/service"
)

type RouterConfig struct {
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, resolver *journey.NextStepResolver, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	appeals := services.UpdateAppeal()
	guard := journey.NewGuard()

	overviewHandler := handler.NewOverviewHandler(appeals, resolver)
	appealHandler := handler.NewAppealHandler(appeals)
	evidenceHandler := handler.NewEvidenceHandler(appeals, services.Evidence())
	supportHandler := handler.NewSupportHandler(appeals)

	authed := router.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET(journey.PathOverview, overviewHandler.Get)
		authed.GET("/session", overviewHandler.GetSession)

		authed.POST("/view/document", evidenceHandler.Upload)
		authed.GET("/view/document/:fileId", evidenceHandler.View)
		authed.DELETE("/view/document/:fileId", evidenceHandler.Delete)

		authed.GET("/support/submissions/:caseId", supportHandler.ListSubmissions)
	}

	// Journey form routes additionally pass the status guard. Routes register
	// under the same path constants the guard tables use.
	guarded := router.Group("/")
	guarded.Use(middleware.RequireAuth(), middleware.JourneyGuard(appeals, guard))
	{
		guarded.PUT(journey.PathHomeOfficeRefNumber, appealHandler.UpdateHomeOfficeDetails)
		guarded.PUT(journey.PathDateLetterSent, appealHandler.UpdateHomeOfficeDetails)
		guarded.PUT(journey.PathEnterName, appealHandler.UpdatePersonalDetails)
		guarded.PUT(journey.PathEnterDob, appealHandler.UpdatePersonalDetails)
		guarded.PUT(journey.PathNationality, appealHandler.UpdatePersonalDetails)
		guarded.PUT(journey.PathEnterAddress, appealHandler.UpdatePersonalDetails)
		guarded.PUT(journey.PathContactDetails, appealHandler.UpdateContactDetails)
		guarded.PUT(journey.PathTypeOfAppeal, appealHandler.UpdateAppealType)
		guarded.PUT(journey.PathAppealLate, appealHandler.UpdateLateAppeal)
		guarded.PUT(journey.PathFeeSupport, appealHandler.UpdateFeeSupport)
		guarded.POST(journey.PathFeeSupport, appealHandler.RequestFeeRemission)
		guarded.POST(journey.PathCheckAndSend, appealHandler.SubmitAppeal)

		guarded.PUT(journey.PathCaseBuildingHomeOfficeDecisionWrong, appealHandler.UpdateReasonsForAppeal)
		guarded.POST(journey.PathCaseBuildingReasonsCheckAndSend, appealHandler.SubmitReasonsForAppeal)

		guarded.PUT(journey.PathClarifyingQuestionsList, appealHandler.UpdateClarifyingAnswer)
		guarded.POST(journey.PathClarifyingCheckAndSend, appealHandler.SubmitClarifyingAnswers)

		guarded.PUT(journey.PathCmaRequirementsTaskList, appealHandler.UpdateCmaRequirements)
		guarded.POST(journey.PathCmaCheckAndSend, appealHandler.SubmitCmaRequirements)

		guarded.POST(journey.PathHearingCheckAndSend, appealHandler.SubmitHearingRequirements)

		guarded.PUT(journey.PathFtpaApplicationGrounds, appealHandler.UpdateFtpaGrounds)
		guarded.POST(journey.PathFtpaCheckAndSend, appealHandler.SubmitFtpa)

		guarded.POST(journey.PathAskForMoreTimeReason, appealHandler.AskForMoreTime)
	}
}
