package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iac-appeals/aip-sync/internal/auth"
	"github.com/iac-appeals/aip-sync/internal/http/dto"
	"github.com/iac-appeals/aip-sync/internal/http/middleware"
	"github.com/iac-appeals/aip-sync/internal/model"
	"github.com/iac-appeals/aip-sync/internal/service"
)

// AppealHandler exposes the form-section updates and submissions of the
// appellant journey. Every write translates the whole aggregate and posts a
// single case event.
type AppealHandler struct {
	appeals service.UpdateAppealService
}

func NewAppealHandler(appeals service.UpdateAppealService) *AppealHandler {
	return &AppealHandler{appeals: appeals}
}

func (h *AppealHandler) UpdateHomeOfficeDetails(c *gin.Context) {
	var req dto.UpdateHomeOfficeDetailsRequest
	if !bind(c, &req) {
		return
	}
	h.submit(c, model.EventEditAppeal, func(appeal *model.Appeal) {
		if req.HomeOfficeRefNumber != "" {
			appeal.Application.HomeOfficeRefNumber = req.HomeOfficeRefNumber
		}
		if req.DateLetterSent != nil {
			appeal.Application.DateLetterSent = req.DateLetterSent.ToModel()
		}
	})
}

func (h *AppealHandler) UpdatePersonalDetails(c *gin.Context) {
	var req dto.UpdatePersonalDetailsRequest
	if !bind(c, &req) {
		return
	}
	h.submit(c, model.EventEditAppeal, func(appeal *model.Appeal) {
		pd := &appeal.Application.PersonalDetails
		if req.GivenNames != "" {
			pd.GivenNames = req.GivenNames
		}
		if req.FamilyName != "" {
			pd.FamilyName = req.FamilyName
		}
		if req.DateOfBirth != nil {
			pd.Dob = req.DateOfBirth.ToModel()
		}
		if req.Nationality != "" {
			pd.Nationality = req.Nationality
		}
		if req.Address != nil {
			pd.Address = req.Address
		}
	})
}

func (h *AppealHandler) UpdateContactDetails(c *gin.Context) {
	var req dto.UpdateContactDetailsRequest
	if !bind(c, &req) {
		return
	}
	h.submit(c, model.EventEditAppeal, func(appeal *model.Appeal) {
		appeal.Application.ContactDetails = model.ContactDetails{
			Email:      req.Email,
			WantsEmail: req.WantsEmail,
			Phone:      req.Phone,
			WantsSms:   req.WantsSms,
		}
	})
}

func (h *AppealHandler) UpdateAppealType(c *gin.Context) {
	var req dto.UpdateAppealTypeRequest
	if !bind(c, &req) {
		return
	}
	h.submit(c, model.EventEditAppeal, func(appeal *model.Appeal) {
		appeal.Application.AppealType = req.AppealType
	})
}

func (h *AppealHandler) UpdateLateAppeal(c *gin.Context) {
	var req dto.UpdateLateAppealRequest
	if !bind(c, &req) {
		return
	}
	h.submit(c, model.EventEditAppeal, func(appeal *model.Appeal) {
		late := true
		appeal.Application.IsAppealLate = &late
		appeal.Application.LateAppeal = &model.LateAppeal{
			Reason:   req.Reason,
			Evidence: req.Evidence,
		}
	})
}

func (h *AppealHandler) SubmitAppeal(c *gin.Context) {
	h.submit(c, model.EventSubmitAppeal, func(appeal *model.Appeal) {
		appeal.Application.IsEdit = false
	})
}

func (h *AppealHandler) UpdateReasonsForAppeal(c *gin.Context) {
	var req dto.UpdateReasonsForAppealRequest
	if !bind(c, &req) {
		return
	}
	h.submit(c, model.EventEditReasonsForAppeal, func(appeal *model.Appeal) {
		appeal.ReasonsForAppeal.ApplicationReason = req.ApplicationReason
	})
}

func (h *AppealHandler) SubmitReasonsForAppeal(c *gin.Context) {
	h.submit(c, model.EventSubmitReasonsForAppeal, func(appeal *model.Appeal) {
		appeal.ReasonsForAppeal.IsEdit = false
	})
}

func (h *AppealHandler) UpdateClarifyingAnswer(c *gin.Context) {
	var req dto.ClarifyingAnswerRequest
	if !bind(c, &req) {
		return
	}
	h.submit(c, model.EventEditClarifyingQuestionAnswers, func(appeal *model.Appeal) {
		for i := range appeal.DraftClarifyingQuestionsAnswers {
			q := &appeal.DraftClarifyingQuestionsAnswers[i]
			if q.ID == req.ID {
				q.Answer = req.Answer
				return
			}
		}
	})
}

func (h *AppealHandler) SubmitClarifyingAnswers(c *gin.Context) {
	h.submit(c, model.EventSubmitClarifyingQuestionAnswers, nil)
}

func (h *AppealHandler) UpdateCmaRequirements(c *gin.Context) {
	var req model.CmaRequirements
	if !bind(c, &req) {
		return
	}
	h.submit(c, model.EventEditCmaRequirements, func(appeal *model.Appeal) {
		req.IsEdit = false
		appeal.CmaRequirements = req
	})
}

func (h *AppealHandler) SubmitCmaRequirements(c *gin.Context) {
	h.submit(c, model.EventSubmitCmaRequirements, func(appeal *model.Appeal) {
		appeal.CmaRequirements.IsEdit = false
	})
}

// SubmitHearingRequirements records the hearing answers in the session. The
// appellant journey has no case event for them; the tribunal collects the
// answers out of band, so they stay session-held and never cross the
// upstream boundary.
func (h *AppealHandler) SubmitHearingRequirements(c *gin.Context) {
	var req model.HearingRequirements
	if !bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	token := middleware.UserToken(c)

	appeal, err := h.appeals.GetSession(ctx, token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read appeal session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read appeal session"})
		return
	}

	appeal.HearingRequirements = req

	if err := h.appeals.SaveSession(ctx, token, appeal); err != nil {
		slog.ErrorContext(ctx, "failed to save appeal session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save appeal session"})
		return
	}

	c.JSON(http.StatusOK, dto.AppealResponse{Appeal: appeal})
}

// UpdateFeeSupport records the fee-support answers while the appeal is still
// being drafted.
func (h *AppealHandler) UpdateFeeSupport(c *gin.Context) {
	var req dto.UpdateFeeSupportRequest
	if !bind(c, &req) {
		return
	}
	h.submit(c, model.EventEditAppeal, func(appeal *model.Appeal) {
		appeal.Application.RemissionOption = req.RemissionOption
		appeal.Application.AsylumSupportRefNumber = req.AsylumSupportRefNumber
		appeal.Application.HelpWithFeesOption = req.HelpWithFeesOption
		appeal.Application.HelpWithFeesRefNumber = req.HelpWithFeesRefNumber
		appeal.Application.FeeSupportPersisted = true
	})
}

// RequestFeeRemission submits a remission request against an already
// submitted appeal. The waiting-period deadline restarts from this event.
func (h *AppealHandler) RequestFeeRemission(c *gin.Context) {
	var req dto.UpdateFeeSupportRequest
	if !bind(c, &req) {
		return
	}
	h.submit(c, model.EventRequestFeeRemission, func(appeal *model.Appeal) {
		appeal.Application.RemissionOption = req.RemissionOption
		appeal.Application.AsylumSupportRefNumber = req.AsylumSupportRefNumber
		appeal.Application.HelpWithFeesOption = req.HelpWithFeesOption
		appeal.Application.HelpWithFeesRefNumber = req.HelpWithFeesRefNumber
		appeal.Application.FeeSupportPersisted = true
	})
}

// UpdateFtpaGrounds saves the draft permission-to-appeal grounds to the
// session. Nothing crosses the upstream boundary until SubmitFtpa.
func (h *AppealHandler) UpdateFtpaGrounds(c *gin.Context) {
	var req dto.UpdateFtpaGroundsRequest
	if !bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	token := middleware.UserToken(c)

	appeal, err := h.appeals.GetSession(ctx, token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read appeal session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read appeal session"})
		return
	}

	appeal.Ftpa.AppellantGrounds = req.Grounds
	if req.Evidence != nil {
		appeal.Ftpa.AppellantEvidence = append(appeal.Ftpa.AppellantEvidence, *req.Evidence)
	}

	if err := h.appeals.SaveSession(ctx, token, appeal); err != nil {
		slog.ErrorContext(ctx, "failed to save appeal session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save appeal session"})
		return
	}

	c.JSON(http.StatusOK, dto.AppealResponse{Appeal: appeal})
}

// SubmitFtpa posts the appellant's permission-to-appeal application.
func (h *AppealHandler) SubmitFtpa(c *gin.Context) {
	h.submit(c, model.EventApplyForFtpaAppellant, func(appeal *model.Appeal) {
		appeal.Ftpa.ApplicantType = "appellant"
		appeal.Ftpa.AppellantSubmissionDate = time.Now().UTC().Format("2006-01-02")
	})
}

// AskForMoreTime records a time-extension application. The decision arrives
// later through an externally submitted event.
func (h *AppealHandler) AskForMoreTime(c *gin.Context) {
	var req dto.AskForMoreTimeRequest
	if !bind(c, &req) {
		return
	}
	h.submit(c, model.EventMakeAnApplication, func(appeal *model.Appeal) {
		application := model.MakeAnApplication{
			Type:      model.ApplicationTypeTimeExtension,
			Details:   req.Reason,
			Applicant: "Appellant",
			Decision:  model.ApplicationDecisionPending,
			Date:      time.Now().UTC().Format("2006-01-02"),
			State:     string(appeal.AppealStatus),
		}
		appeal.MakeAnApplications = append([]model.MakeAnApplication{application}, appeal.MakeAnApplications...)
	})
}

// submit runs the mutation against the session aggregate and posts the event.
// The session is only replaced once the upstream accepts the submission.
func (h *AppealHandler) submit(c *gin.Context, event model.Event, mutate func(*model.Appeal)) {
	ctx := c.Request.Context()
	token := middleware.UserToken(c)

	appeal, err := h.appeals.GetSession(ctx, token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read appeal session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read appeal session"})
		return
	}

	if mutate != nil {
		mutate(appeal)
	}

	updated, err := h.appeals.SubmitEvent(ctx, token, appeal, event)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, service.ErrTerminalState):
			status = http.StatusConflict
		case errors.Is(err, auth.ErrUnauthorized):
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{"error": "failed to update appeal"})
		return
	}

	c.JSON(http.StatusOK, dto.AppealResponse{Appeal: updated})
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
