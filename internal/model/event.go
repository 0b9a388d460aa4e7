package model

// Event is a CCD domain event the appellant journey can submit. The ID is the
// CCD event identifier; summary and description travel with the submission.
type Event struct {
	ID          string
	Summary     string
	Description string
}

var (
	EventEditAppeal = Event{
		ID:          "editAppeal",
		Summary:     "Update appeal case AIP",
		Description: "Update appeal case AIP",
	}
	EventSubmitAppeal = Event{
		ID:          "submitAppeal",
		Summary:     "Submit appeal case AIP",
		Description: "Submit appeal case AIP",
	}
	EventEditReasonsForAppeal = Event{
		ID:          "editReasonsForAppeal",
		Summary:     "Edit reasons for appeal case AIP",
		Description: "Edit reasons for appeal case AIP",
	}
	EventSubmitReasonsForAppeal = Event{
		ID:          "submitReasonsForAppeal",
		Summary:     "Submits reasons for appeal case AIP",
		Description: "Submits reasons for appeal case AIP",
	}
	EventEditCmaRequirements = Event{
		ID:          "editCmaRequirements",
		Summary:     "Edit CMA requirements for appeal case AIP",
		Description: "Edit CMA requirements for appeal case AIP",
	}
	EventSubmitCmaRequirements = Event{
		ID:          "submitCmaRequirements",
		Summary:     "Submits CMA requirements for appeal case AIP",
		Description: "Submits CMA requirements for appeal case AIP",
	}
	EventEditClarifyingQuestionAnswers = Event{
		ID:          "editClarifyingQuestionAnswers",
		Summary:     "Edit clarifying question answers for appeal case AIP",
		Description: "Edit clarifying question answers for appeal case AIP",
	}
	EventSubmitClarifyingQuestionAnswers = Event{
		ID:          "submitClarifyingQuestionAnswers",
		Summary:     "Submits clarifying question answers for appeal case AIP",
		Description: "Submits clarifying question answers for appeal case AIP",
	}
	EventRequestFeeRemission = Event{
		ID:          "requestFeeRemission",
		Summary:     "Request a fee remission for appeal case AIP",
		Description: "Request a fee remission for appeal case AIP",
	}
	EventMakeAnApplication = Event{
		ID:          "makeAnApplication",
		Summary:     "Make an application for appeal case AIP",
		Description: "Make an application for appeal case AIP",
	}
	EventApplyForFtpaAppellant = Event{
		ID:          "applyForFTPAAppellant",
		Summary:     "Apply for FTPA for appeal case AIP",
		Description: "Apply for FTPA for appeal case AIP",
	}
)

// HistoryEvent is one entry of the append-only case history CCD returns.
// Externally authored; never mutated by this service.
type HistoryEvent struct {
	ID          string `json:"id"`
	CreatedDate string `json:"createdDate"`
}
