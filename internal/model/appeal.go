package model

// Appeal is the session-scoped aggregate for one appellant's case journey.
// It is created from a CCD case on load, owned exclusively by the in-flight
// request, and replaced wholesale after every confirmed event submission.
type Appeal struct {
	CcdCaseID             string       `json:"ccdCaseId"`
	AppealStatus          AppealStatus `json:"appealStatus"`
	AppealCreatedDate     string       `json:"appealCreatedDate,omitempty"`
	AppealLastModified    string       `json:"appealLastModified,omitempty"`
	AppealReferenceNumber string       `json:"appealReferenceNumber,omitempty"`

	Application         AppealApplication   `json:"application"`
	ReasonsForAppeal    ReasonsForAppeal    `json:"reasonsForAppeal"`
	HearingRequirements HearingRequirements `json:"hearingRequirements"`
	CmaRequirements     CmaRequirements     `json:"cmaRequirements"`

	DraftClarifyingQuestionsAnswers []ClarifyingQuestion `json:"draftClarifyingQuestionsAnswers,omitempty"`
	MakeAnApplications              []MakeAnApplication  `json:"makeAnApplications,omitempty"`
	RespondentDocuments             []RespondentDocument `json:"respondentDocuments,omitempty"`

	Directions []Direction    `json:"directions,omitempty"`
	History    []HistoryEvent `json:"history,omitempty"`

	// DocumentMap is the only place document-store URLs are held. Everything
	// else refers to documents by the opaque internal id.
	DocumentMap []DocumentMapEntry `json:"documentMap,omitempty"`

	OutOfTimeDecisionType  string `json:"outOfTimeDecisionType,omitempty"`
	OutOfTimeDecisionMaker string `json:"outOfTimeDecisionMaker,omitempty"`

	Ftpa FtpaDetails `json:"ftpa"`

	RemovedFromOnlineReason string `json:"removedFromOnlineReason,omitempty"`
	RemovedFromOnlineDate   string `json:"removedFromOnlineDate,omitempty"`
}

// AppealApplication holds the appellant-entered application details.
type AppealApplication struct {
	HomeOfficeRefNumber string          `json:"homeOfficeRefNumber,omitempty"`
	DateLetterSent      *AppealDate     `json:"dateLetterSent,omitempty"`
	AppealType          string          `json:"appealType,omitempty"`
	IsAppealLate        *bool           `json:"isAppealLate,omitempty"`
	LateAppeal          *LateAppeal     `json:"lateAppeal,omitempty"`
	PersonalDetails     PersonalDetails `json:"personalDetails"`
	ContactDetails      ContactDetails  `json:"contactDetails"`

	// Fee and remission state. These belong to the always-emit field family:
	// CCD partial-update semantics require explicit values even when unset.
	FeeSupportPersisted    bool       `json:"feeSupportPersisted,omitempty"`
	RemissionOption        string     `json:"remissionOption,omitempty"`
	RemissionDecision      string     `json:"remissionDecision,omitempty"`
	AsylumSupportRefNumber string     `json:"asylumSupportRefNumber,omitempty"`
	HelpWithFeesOption     string     `json:"helpWithFeesOption,omitempty"`
	HelpWithFeesRefNumber  string     `json:"helpWithFeesRefNumber,omitempty"`
	LocalAuthorityLetters  []Evidence `json:"localAuthorityLetters,omitempty"`

	// IsEdit marks an in-progress answer change from a check-your-answers
	// page. Session-only; never crosses the CCD boundary.
	IsEdit bool `json:"isEdit,omitempty"`

	SaveAndAskForMoreTime bool `json:"saveAndAskForMoreTime,omitempty"`
}

// AppealDate is a date as captured by the journey forms, one component per
// field. Components are strings because the forms post strings and a partial
// date must survive a round trip through session.
type AppealDate struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

type PersonalDetails struct {
	GivenNames  string      `json:"givenNames,omitempty"`
	FamilyName  string      `json:"familyName,omitempty"`
	Dob         *AppealDate `json:"dob,omitempty"`
	Nationality string      `json:"nationality,omitempty"`
	Address     *Address    `json:"address,omitempty"`
}

type Address struct {
	Line1    string `json:"line1,omitempty"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city,omitempty"`
	County   string `json:"county,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

type ContactDetails struct {
	Email      string `json:"email,omitempty"`
	WantsEmail bool   `json:"wantsEmail,omitempty"`
	Phone      string `json:"phone,omitempty"`
	WantsSms   bool   `json:"wantsSms,omitempty"`
}

// LateAppeal carries the out-of-time explanation and optional evidence.
type LateAppeal struct {
	Reason   string    `json:"reason,omitempty"`
	Evidence *Evidence `json:"evidence,omitempty"`
}

// Evidence references an uploaded document by internal file id. Name is the
// display name derived from the stored filename.
type Evidence struct {
	FileID string `json:"fileId"`
	Name   string `json:"name"`
	// ID is the stored filename on the CCD side, kept so re-encoding can
	// reproduce the exact document_filename.
	ID           string `json:"id,omitempty"`
	DateUploaded string `json:"dateUploaded,omitempty"`
	Description  string `json:"description,omitempty"`
}

type ReasonsForAppeal struct {
	ApplicationReason string     `json:"applicationReason,omitempty"`
	Evidences         []Evidence `json:"evidences,omitempty"`
	IsEdit            bool       `json:"isEdit,omitempty"`
}

type HearingRequirements struct {
	WitnessesOnHearing             *bool         `json:"witnessesOnHearing,omitempty"`
	WitnessNames                   []string      `json:"witnessNames,omitempty"`
	IsHearingLoopNeeded            *bool         `json:"isHearingLoopNeeded,omitempty"`
	IsHearingRoomNeeded            *bool         `json:"isHearingRoomNeeded,omitempty"`
	IsInterpreterServicesNeeded    *bool         `json:"isInterpreterServicesNeeded,omitempty"`
	InterpreterLanguages           []string      `json:"interpreterLanguages,omitempty"`
	IsAppellantAttendingTheHearing *bool         `json:"isAppellantAttendingTheHearing,omitempty"`
	IsAppellantGivingOralEvidence  *bool         `json:"isAppellantGivingOralEvidence,omitempty"`
	DatesToAvoid                   []DateToAvoid `json:"datesToAvoid,omitempty"`
	OtherNeeds                     *OtherNeeds   `json:"otherNeeds,omitempty"`
}

type CmaRequirements struct {
	AccessNeeds  *AccessNeeds  `json:"accessNeeds,omitempty"`
	OtherNeeds   *OtherNeeds   `json:"otherNeeds,omitempty"`
	DatesToAvoid []DateToAvoid `json:"datesToAvoid,omitempty"`
	IsEdit       bool          `json:"isEdit,omitempty"`
}

type AccessNeeds struct {
	IsInterpreterServicesNeeded *bool  `json:"isInterpreterServicesNeeded,omitempty"`
	InterpreterLanguage         string `json:"interpreterLanguage,omitempty"`
	IsHearingLoopNeeded         *bool  `json:"isHearingLoopNeeded,omitempty"`
	IsHearingRoomNeeded         *bool  `json:"isHearingRoomNeeded,omitempty"`
}

type OtherNeeds struct {
	MultimediaEvidence                *bool  `json:"multimediaEvidence,omitempty"`
	BringOwnMultimediaEquipment       *bool  `json:"bringOwnMultimediaEquipment,omitempty"`
	BringOwnMultimediaEquipmentReason string `json:"bringOwnMultimediaEquipmentReason,omitempty"`
	SingleSexAppointment              *bool  `json:"singleSexAppointment,omitempty"`
	SingleSexTypeAppointment          string `json:"singleSexTypeAppointment,omitempty"`
	SingleSexAppointmentReason        string `json:"singleSexAppointmentReason,omitempty"`
	PrivateAppointment                *bool  `json:"privateAppointment,omitempty"`
	PrivateAppointmentReason          string `json:"privateAppointmentReason,omitempty"`
	HealthConditions                  *bool  `json:"healthConditions,omitempty"`
	HealthConditionsReason            string `json:"healthConditionsReason,omitempty"`
	PastExperiences                   *bool  `json:"pastExperiences,omitempty"`
	PastExperiencesReason             string `json:"pastExperiencesReason,omitempty"`
	AnythingElse                      *bool  `json:"anythingElse,omitempty"`
	AnythingElseReason                string `json:"anythingElseReason,omitempty"`
}

type DateToAvoid struct {
	Date   AppealDate `json:"date"`
	Reason string     `json:"reason,omitempty"`
}

// ClarifyingQuestion is a tribunal-authored question together with the
// appellant's draft answer and supporting evidence.
type ClarifyingQuestion struct {
	ID                 string     `json:"id,omitempty"`
	Question           string     `json:"question"`
	Answer             string     `json:"answer,omitempty"`
	DateSent           string     `json:"dateSent,omitempty"`
	DueDate            string     `json:"dueDate,omitempty"`
	SupportingEvidence []Evidence `json:"supportingEvidence,omitempty"`
}

// MakeAnApplication is an appellant application (time extension, adjournment,
// withdrawal, ...) with the tribunal's decision when one has been made.
type MakeAnApplication struct {
	ID             string     `json:"id,omitempty"`
	Type           string     `json:"type"`
	Details        string     `json:"details,omitempty"`
	Applicant      string     `json:"applicant,omitempty"`
	Decision       string     `json:"decision,omitempty"`
	DecisionReason string     `json:"decisionReason,omitempty"`
	DecisionDate   string     `json:"decisionDate,omitempty"`
	Date           string     `json:"date,omitempty"`
	State          string     `json:"state,omitempty"`
	Evidence       []Evidence `json:"evidence,omitempty"`
}

type RespondentDocument struct {
	DateUploaded string   `json:"dateUploaded,omitempty"`
	Evidence     Evidence `json:"evidence"`
}

// Direction is an externally issued instruction tagged by purpose. Consulted
// for deadlines, never authored here.
type Direction struct {
	ID          string `json:"id,omitempty"`
	Tag         string `json:"tag"`
	Parties     string `json:"parties,omitempty"`
	DateDue     string `json:"dateDue"`
	DateSent    string `json:"dateSent,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	UniqueID    string `json:"uniqueId,omitempty"`
}

// FtpaDetails models the permission-to-appeal sub-flow state.
type FtpaDetails struct {
	ApplicantType                 string     `json:"applicantType,omitempty"`
	AppellantGrounds              string     `json:"appellantGrounds,omitempty"`
	AppellantEvidence             []Evidence `json:"appellantEvidence,omitempty"`
	AppellantSubmissionDate       string     `json:"appellantSubmissionDate,omitempty"`
	AppellantDecisionOutcomeType  string     `json:"appellantDecisionOutcomeType,omitempty"`
	RespondentDecisionOutcomeType string     `json:"respondentDecisionOutcomeType,omitempty"`
	DecisionDate                  string     `json:"decisionDate,omitempty"`
}

// DocumentMapEntry pairs an opaque internal file id with the external
// document-store URL. Ids are unique within a map.
type DocumentMapEntry struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Decision values for appellant applications.
const (
	ApplicationDecisionPending = "Pending"
	ApplicationDecisionGranted = "Granted"
	ApplicationDecisionRefused = "Refused"

	ApplicationTypeTimeExtension = "Time extension"
)

// PendingTimeExtension reports whether the latest time-extension application
// by the appellant is still undecided.
func (a *Appeal) PendingTimeExtension() bool {
	app := a.latestTimeExtension()
	return app != nil && app.Decision == ApplicationDecisionPending
}

// TimeExtensionDecision returns the decision on the latest appellant
// application, or "" when no application exists.
func (a *Appeal) TimeExtensionDecision() string {
	app := a.latestTimeExtension()
	if app == nil {
		return ""
	}
	return app.Decision
}

func (a *Appeal) latestTimeExtension() *MakeAnApplication {
	for i := range a.MakeAnApplications {
		app := &a.MakeAnApplications[i]
		if app.Applicant == "Appellant" {
			return app
		}
	}
	return nil
}
