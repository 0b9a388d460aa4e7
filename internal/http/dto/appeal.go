package dto

import (
	"time"

	"github.com/iac-appeals/aip-sync/internal/journey"
	"github.com/iac-appeals/aip-sync/internal/model"
	"github.com/iac-appeals/aip-sync/internal/store"
)

// AppealResponse is the session aggregate as the journey frontend consumes
// it. The aggregate is already JSON-shaped, so it passes through.
type AppealResponse struct {
	Appeal *model.Appeal `json:"appeal"`
}

// OverviewResponse is the appeal-overview page payload.
type OverviewResponse struct {
	CcdCaseID             string            `json:"ccdCaseId"`
	AppealReferenceNumber string            `json:"appealReferenceNumber,omitempty"`
	AppealStatus          string            `json:"appealStatus"`
	NextStep              *journey.NextStep `json:"nextStep"`
}

func ToOverviewResponse(appeal *model.Appeal, step *journey.NextStep) *OverviewResponse {
	return &OverviewResponse{
		CcdCaseID:             appeal.CcdCaseID,
		AppealReferenceNumber: appeal.AppealReferenceNumber,
		AppealStatus:          string(appeal.AppealStatus),
		NextStep:              step,
	}
}

// Date mirrors the day/month/year triple the journey forms post.
type Date struct {
	Year  string `json:"year" binding:"required"`
	Month string `json:"month" binding:"required"`
	Day   string `json:"day" binding:"required"`
}

func (d *Date) ToModel() *model.AppealDate {
	if d == nil {
		return nil
	}
	return &model.AppealDate{Year: d.Year, Month: d.Month, Day: d.Day}
}

type UpdateHomeOfficeDetailsRequest struct {
	HomeOfficeRefNumber string `json:"homeOfficeRefNumber,omitempty" binding:"omitempty,max=50"`
	DateLetterSent      *Date  `json:"dateLetterSent,omitempty"`
}

type UpdatePersonalDetailsRequest struct {
	GivenNames  string         `json:"givenNames,omitempty" binding:"omitempty,max=255"`
	FamilyName  string         `json:"familyName,omitempty" binding:"omitempty,max=255"`
	DateOfBirth *Date          `json:"dob,omitempty"`
	Nationality string         `json:"nationality,omitempty" binding:"omitempty,len=2"`
	Address     *model.Address `json:"address,omitempty"`
}

type UpdateContactDetailsRequest struct {
	Email      string `json:"email,omitempty" binding:"omitempty,email,max=255"`
	WantsEmail bool   `json:"wantsEmail"`
	Phone      string `json:"phone,omitempty" binding:"omitempty,max=30"`
	WantsSms   bool   `json:"wantsSms"`
}

type UpdateAppealTypeRequest struct {
	AppealType string `json:"appealType" binding:"required,max=100"`
}

type UpdateLateAppealRequest struct {
	Reason   string          `json:"reason" binding:"required,max=5000"`
	Evidence *model.Evidence `json:"evidence,omitempty"`
}

type UpdateReasonsForAppealRequest struct {
	ApplicationReason string `json:"applicationReason" binding:"required,max=10000"`
}

type ClarifyingAnswerRequest struct {
	ID     string `json:"id" binding:"required"`
	Answer string `json:"answer" binding:"required,max=10000"`
}

type UpdateFeeSupportRequest struct {
	RemissionOption        string `json:"remissionOption" binding:"required,max=100"`
	AsylumSupportRefNumber string `json:"asylumSupportRefNumber,omitempty" binding:"omitempty,max=50"`
	HelpWithFeesOption     string `json:"helpWithFeesOption,omitempty" binding:"omitempty,max=100"`
	HelpWithFeesRefNumber  string `json:"helpWithFeesRefNumber,omitempty" binding:"omitempty,max=50"`
}

type UpdateFtpaGroundsRequest struct {
	Grounds  string          `json:"grounds" binding:"required,max=10000"`
	Evidence *model.Evidence `json:"evidence,omitempty"`
}

type AskForMoreTimeRequest struct {
	Reason string `json:"reason" binding:"required,max=5000"`
}

type SubmitResponse struct {
	AppealStatus string `json:"appealStatus"`
}

// SubmissionResponse is one entry of a case's submission history as the
// support view renders it.
type SubmissionResponse struct {
	EventID     string `json:"eventId"`
	State       string `json:"state"`
	UserID      string `json:"userId"`
	SubmittedAt string `json:"submittedAt"`
}

func ToSubmissionResponses(records []store.SubmissionRecord) []SubmissionResponse {
	responses := make([]SubmissionResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, SubmissionResponse{
			EventID:     rec.EventID,
			State:       rec.State,
			UserID:      rec.UserID,
			SubmittedAt: rec.SubmittedAt.UTC().Format(time.RFC3339),
		})
	}
	return responses
}

type UploadEvidenceResponse struct {
	FileID       string `json:"fileId"`
	Name         string `json:"name"`
	DateUploaded string `json:"dateUploaded"`
}

func ToUploadEvidenceResponse(ev *model.Evidence) *UploadEvidenceResponse {
	return &UploadEvidenceResponse{
		FileID:       ev.FileID,
		Name:         ev.Name,
		DateUploaded: ev.DateUploaded,
	}
}
