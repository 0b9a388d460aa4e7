package model

// YesOrNo is the CCD three-valued boolean encoding: "Yes", "No" or absent.
// Absent must decode to an unset internal value, not false.
type YesOrNo string

const (
	Yes YesOrNo = "Yes"
	No  YesOrNo = "No"
)

// Subscriber values on a CCD subscription entry.
const (
	SubscriberAppellant = "appellant"
	SubscriberSupporter = "supporter"
)

// JourneyTypeAip marks a case as an appellant-in-person journey. Emitted on
// every outbound payload.
const JourneyTypeAip = "aip"

// CaseDetails is the envelope CCD returns for a case.
type CaseDetails struct {
	ID           string   `json:"id"`
	State        string   `json:"state"`
	CaseData     CaseData `json:"case_data"`
	CreatedDate  string   `json:"created_date,omitempty"`
	LastModified string   `json:"last_modified,omitempty"`
}

// CaseData is the flat CCD case record. Every field is optional on the wire;
// the codec decides per field whether absence or an explicit default is
// emitted. Field names follow the CCD schema exactly.
type CaseData struct {
	JourneyType string `json:"journeyType,omitempty"`

	AppealType                string `json:"appealType,omitempty"`
	AppealReferenceNumber     string `json:"appealReferenceNumber,omitempty"`
	HomeOfficeReferenceNumber string `json:"homeOfficeReferenceNumber,omitempty"`
	HomeOfficeDecisionDate    string `json:"homeOfficeDecisionDate,omitempty"`

	AppellantGivenNames      string                  `json:"appellantGivenNames,omitempty"`
	AppellantFamilyName      string                  `json:"appellantFamilyName,omitempty"`
	AppellantDateOfBirth     string                  `json:"appellantDateOfBirth,omitempty"`
	AppellantNationalities   []NationalityCollection `json:"appellantNationalities,omitempty"`
	AppellantAddress         *CCDAddress             `json:"appellantAddress,omitempty"`
	AppellantHasFixedAddress YesOrNo                 `json:"appellantHasFixedAddress,omitempty"`

	Subscriptions []SubscriptionCollection `json:"subscriptions,omitempty"`

	SubmissionOutOfTime             YesOrNo             `json:"submissionOutOfTime,omitempty"`
	ApplicationOutOfTimeExplanation string              `json:"applicationOutOfTimeExplanation,omitempty"`
	ApplicationOutOfTimeDocument    *SupportingDocument `json:"applicationOutOfTimeDocument,omitempty"`
	OutOfTimeDecisionType           string              `json:"outOfTimeDecisionType,omitempty"`
	OutOfTimeDecisionMaker          string              `json:"outOfTimeDecisionMaker,omitempty"`

	ReasonsForAppealDecision  string                         `json:"reasonsForAppealDecision,omitempty"`
	ReasonsForAppealDocuments []SupportingEvidenceCollection `json:"reasonsForAppealDocuments,omitempty"`

	RespondentDocuments []RespondentEvidenceCollection `json:"respondentDocuments,omitempty"`
	Directions          []DirectionCollection          `json:"directions,omitempty"`

	DraftClarifyingQuestionsAnswers []ClarifyingQuestionCollection `json:"draftClarifyingQuestionsAnswers,omitempty"`
	ClarifyingQuestionsAnswers      []ClarifyingQuestionCollection `json:"clarifyingQuestionsAnswers,omitempty"`

	MakeAnApplications []MakeAnApplicationCollection `json:"makeAnApplications,omitempty"`

	// Fee and remission family. CCD interprets absence as "unchanged" on some
	// partial-update paths and as "not applicable" on others, so these are
	// always emitted: explicit null (nil pointer) or "No" when unset. No
	// omitempty here on purpose.
	FeeSupportPersisted    YesOrNo                        `json:"feeSupportPersisted"`
	RemissionOption        *string                        `json:"remissionOption"`
	RemissionDecision      *string                        `json:"remissionDecision"`
	AsylumSupportRefNumber *string                        `json:"asylumSupportRefNumber"`
	HelpWithFeesOption     *string                        `json:"helpWithFeesOption"`
	HelpWithFeesRefNumber  *string                        `json:"helpWithFeesRefNumber"`
	LocalAuthorityLetters  []SupportingEvidenceCollection `json:"localAuthorityLetters"`

	CmaRequirements   *CmaRequirementsData    `json:"cmaRequirements,omitempty"`
	DatesToAvoid      []DateToAvoidCollection `json:"datesToAvoid,omitempty"`
	DatesToAvoidYesNo YesOrNo                 `json:"datesToAvoidYesNo,omitempty"`

	IsInterpreterServicesNeeded YesOrNo `json:"isInterpreterServicesNeeded,omitempty"`
	IsHearingLoopNeeded         YesOrNo `json:"isHearingLoopNeeded,omitempty"`
	IsHearingRoomNeeded         YesOrNo `json:"isHearingRoomNeeded,omitempty"`

	MultimediaEvidence           YesOrNo `json:"multimediaEvidence,omitempty"`
	SingleSexCourt               YesOrNo `json:"singleSexCourt,omitempty"`
	InCameraCourt                YesOrNo `json:"inCameraCourt,omitempty"`
	PhysicalOrMentalHealthIssues YesOrNo `json:"physicalOrMentalHealthIssues,omitempty"`
	PastExperiences              YesOrNo `json:"pastExperiences,omitempty"`
	AdditionalRequests           YesOrNo `json:"additionalRequests,omitempty"`

	FtpaAppellantGrounds              string                         `json:"ftpaAppellantGrounds,omitempty"`
	FtpaAppellantEvidenceDocuments    []SupportingEvidenceCollection `json:"ftpaAppellantEvidenceDocuments,omitempty"`
	FtpaAppellantApplicationDate      string                         `json:"ftpaAppellantApplicationDate,omitempty"`
	FtpaAppellantDecisionOutcomeType  string                         `json:"ftpaAppellantDecisionOutcomeType,omitempty"`
	FtpaRespondentDecisionOutcomeType string                         `json:"ftpaRespondentDecisionOutcomeType,omitempty"`
	FtpaApplicantType                 string                         `json:"ftpaApplicantType,omitempty"`

	RemovedFromOnlineReason string `json:"removeAppealFromOnlineReason,omitempty"`
	RemovedFromOnlineDate   string `json:"removeAppealFromOnlineDate,omitempty"`
}

// SupportingDocument is the CCD document reference triple.
type SupportingDocument struct {
	DocumentURL       string `json:"document_url"`
	DocumentFilename  string `json:"document_filename"`
	DocumentBinaryURL string `json:"document_binary_url"`
}

// CCDAddress is the CCD AddressUK complex type.
type CCDAddress struct {
	AddressLine1 string `json:"AddressLine1,omitempty"`
	AddressLine2 string `json:"AddressLine2,omitempty"`
	PostTown     string `json:"PostTown,omitempty"`
	County       string `json:"County,omitempty"`
	PostCode     string `json:"PostCode,omitempty"`
	Country      string `json:"Country,omitempty"`
}

// Collection wrappers. CCD stores lists as {id, value} pairs; the id may be
// absent on create but must be preserved on update, so wrappers carry it as an
// optional string.

type NationalityCollection struct {
	ID    string      `json:"id,omitempty"`
	Value Nationality `json:"value"`
}

type Nationality struct {
	Code string `json:"code"`
}

type SubscriptionCollection struct {
	ID    string       `json:"id,omitempty"`
	Value Subscription `json:"value"`
}

type Subscription struct {
	Subscriber   string  `json:"subscriber"`
	WantsEmail   YesOrNo `json:"wantsEmail"`
	Email        string  `json:"email,omitempty"`
	WantsSms     YesOrNo `json:"wantsSms"`
	MobileNumber string  `json:"mobileNumber,omitempty"`
}

type SupportingEvidenceCollection struct {
	ID    string             `json:"id,omitempty"`
	Value SupportingDocument `json:"value"`
}

type RespondentEvidenceCollection struct {
	ID    string                     `json:"id,omitempty"`
	Value RespondentEvidenceDocument `json:"value"`
}

type RespondentEvidenceDocument struct {
	DateUploaded string             `json:"dateUploaded,omitempty"`
	Document     SupportingDocument `json:"document"`
	Description  string             `json:"description,omitempty"`
}

type DirectionCollection struct {
	ID    string         `json:"id,omitempty"`
	Value DirectionValue `json:"value"`
}

type DirectionValue struct {
	Tag           string   `json:"tag"`
	DateDue       string   `json:"dateDue"`
	Parties       string   `json:"parties,omitempty"`
	DateSent      string   `json:"dateSent,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
	UniqueID      string   `json:"uniqueId,omitempty"`
	PreviousDates []string `json:"previousDates,omitempty"`
}

type ClarifyingQuestionCollection struct {
	ID    string                  `json:"id,omitempty"`
	Value ClarifyingQuestionValue `json:"value"`
}

type ClarifyingQuestionValue struct {
	Question           string                         `json:"question"`
	Answer             string                         `json:"answer,omitempty"`
	DateSent           string                         `json:"dateSent,omitempty"`
	DueDate            string                         `json:"dueDate,omitempty"`
	SupportingEvidence []SupportingEvidenceCollection `json:"supportingEvidence,omitempty"`
}

type MakeAnApplicationCollection struct {
	ID    string                 `json:"id,omitempty"`
	Value MakeAnApplicationValue `json:"value"`
}

type MakeAnApplicationValue struct {
	Type           string                         `json:"type"`
	Details        string                         `json:"details,omitempty"`
	Applicant      string                         `json:"applicant,omitempty"`
	ApplicantRole  string                         `json:"applicantRole,omitempty"`
	Decision       string                         `json:"decision,omitempty"`
	DecisionReason string                         `json:"decisionReason,omitempty"`
	DecisionDate   string                         `json:"decisionDate,omitempty"`
	Date           string                         `json:"date,omitempty"`
	State          string                         `json:"state,omitempty"`
	Evidence       []SupportingEvidenceCollection `json:"evidence,omitempty"`
}

type DateToAvoidCollection struct {
	ID    string           `json:"id,omitempty"`
	Value DateToAvoidValue `json:"value"`
}

type DateToAvoidValue struct {
	DateToAvoid       string `json:"dateToAvoid"`
	DateToAvoidReason string `json:"dateToAvoidReason,omitempty"`
}

// CmaRequirementsData is the nested CMA block CCD keeps alongside the flat
// access-needs fields.
type CmaRequirementsData struct {
	MultimediaEvidenceDescription string `json:"multimediaEvidenceDescription,omitempty"`
	SingleSexCourtType            string `json:"singleSexCourtType,omitempty"`
	SingleSexCourtTypeDescription string `json:"singleSexCourtTypeDescription,omitempty"`
	InCameraCourtDescription      string `json:"inCameraCourtDescription,omitempty"`
	HealthIssuesDescription       string `json:"physicalOrMentalHealthIssuesDescription,omitempty"`
	PastExperiencesDescription    string `json:"pastExperiencesDescription,omitempty"`
	AdditionalRequestsDescription string `json:"additionalRequestsDescription,omitempty"`
	InterpreterLanguage           string `json:"interpreterLanguage,omitempty"`
}
