package journey

import "github.com/iac-appeals/aip-sync/internal/model"

// Page paths of the appellant journey. The guard works on paths, not
// handlers, so the table lives here rather than in the HTTP layer.
const (
	PathOverview  = "/appeal-overview"
	PathForbidden = "/forbidden"
	PathLogout    = "/logout"
	PathCookies   = "/cookie-policy"
	PathHealth    = "/health"

	PathGuidanceCaseworker        = "/tribunal-caseworker"
	PathGuidanceHomeOfficeDoc     = "/home-office-documents"
	PathGuidanceEvidenceToSupport = "/evidence-to-support-appeal"

	// Document viewer pages are matched by prefix: the file id is the final
	// path segment.
	PathDocumentViewerPrefix = "/view/document"

	PathTaskList            = "/about-appeal"
	PathHomeOfficeRefNumber = "/home-office-reference-number"
	PathDateLetterSent      = "/date-letter-sent"
	PathEnterName           = "/name"
	PathEnterDob            = "/date-birth"
	PathNationality         = "/nationality"
	PathEnterPostcode       = "/address"
	PathEnterAddress        = "/manual-address"
	PathContactDetails      = "/contact-preferences"
	PathTypeOfAppeal        = "/appeal-type"
	PathCheckAndSend        = "/check-answers"
	PathAppealLate          = "/late-appeal"
	PathConfirmation        = "/appeal-details-sent"
	PathFeeSupport          = "/fee-support"
	PathAsylumSupport       = "/asylum-support"
	PathHelpWithFees        = "/help-with-fees"

	PathCaseBuildingHomeOfficeDecisionWrong = "/case-building/home-office-decision-wrong"
	PathCaseBuildingReasonsCheckAndSend     = "/case-building/check-answer"
	PathCaseBuildingSupportingEvidence      = "/case-building/supporting-evidence"

	PathClarifyingQuestionsList = "/questions-about-appeal"
	PathClarifyingQuestion      = "/question"
	PathClarifyingAnythingElse  = "/anything-else"
	PathClarifyingCheckAndSend  = "/check-your-answers"

	PathCmaRequirementsTaskList = "/appointment-needs"
	PathCmaAccessNeeds          = "/appointment-access-needs"
	PathCmaOtherNeeds           = "/appointment-other-needs"
	PathCmaDatesToAvoid         = "/appointment-dates-avoid"
	PathCmaCheckAndSend         = "/appointment-check-answers"

	PathHearingNeedsTaskList = "/hearing-needs"
	PathHearingWitnesses     = "/hearing-witnesses"
	PathHearingAccessNeeds   = "/hearing-access-needs"
	PathHearingDatesToAvoid  = "/hearing-dates-avoid"
	PathHearingCheckAndSend  = "/hearing-check-answers"

	PathAskForMoreTimeReason   = "/ask-for-more-time"
	PathAskForMoreTimeEvidence = "/supporting-evidence-ask-for-more-time"
	PathAskForMoreTimeCheck    = "/check-answer-ask-for-more-time"

	PathPayLater = "/pay-later"
	PathPayNow   = "/pay-now"

	PathFtpaApplicationGrounds  = "/ftpa-grounds"
	PathFtpaApplicationEvidence = "/ftpa-evidence"
	PathFtpaCheckAndSend        = "/ftpa-check-answers"

	PathOutOfTimeDecisionViewer = "/out-of-time-decision"
	PathHomeOfficeResponse      = "/home-office-response"
)

var commonPaths = []string{
	PathOverview,
	PathForbidden,
	PathLogout,
	PathCookies,
	PathHealth,
	PathGuidanceCaseworker,
	PathGuidanceHomeOfficeDoc,
	PathGuidanceEvidenceToSupport,
}

var appealFormPaths = []string{
	PathTaskList,
	PathHomeOfficeRefNumber,
	PathDateLetterSent,
	PathEnterName,
	PathEnterDob,
	PathNationality,
	PathEnterPostcode,
	PathEnterAddress,
	PathContactDetails,
	PathTypeOfAppeal,
	PathCheckAndSend,
	PathAppealLate,
	PathFeeSupport,
	PathAsylumSupport,
	PathHelpWithFees,
}

var askForMoreTimePaths = []string{
	PathAskForMoreTimeReason,
	PathAskForMoreTimeEvidence,
	PathAskForMoreTimeCheck,
}

// statusPaths is the allowed-path set per effective status. A request is
// permitted when its path is registered under the current status, under
// common, or under the document-viewer prefix.
var statusPaths = map[model.AppealStatus][]string{
	model.StatusAppealStarted:        appealFormPaths,
	model.StatusAppealStartedPartial: appealFormPaths,

	// Fee-support pages stay reachable after submission so a remission
	// request can still be raised against the submitted appeal.
	model.StatusAppealSubmitted:     {PathConfirmation, PathFeeSupport, PathAsylumSupport, PathHelpWithFees},
	model.StatusLateAppealSubmitted: {PathConfirmation, PathFeeSupport, PathAsylumSupport, PathHelpWithFees, PathOutOfTimeDecisionViewer},
	model.StatusLateAppealRejected:  {PathOutOfTimeDecisionViewer},

	model.StatusPendingPayment: {PathPayNow, PathPayLater, PathConfirmation},

	model.StatusAwaitingRespondentEvidence: {PathConfirmation},

	model.StatusAwaitingReasonsForAppeal: joined(
		[]string{
			PathCaseBuildingHomeOfficeDecisionWrong,
			PathCaseBuildingSupportingEvidence,
			PathCaseBuildingReasonsCheckAndSend,
		},
		askForMoreTimePaths,
	),
	model.StatusAwaitingReasonsForAppealPartial: joined(
		[]string{
			PathCaseBuildingHomeOfficeDecisionWrong,
			PathCaseBuildingSupportingEvidence,
			PathCaseBuildingReasonsCheckAndSend,
		},
		askForMoreTimePaths,
	),
	model.StatusReasonsForAppealSubmitted: {PathHomeOfficeResponse},

	model.StatusAwaitingClarifyingQuestionsAnswers: joined(
		[]string{
			PathClarifyingQuestionsList,
			PathClarifyingQuestion,
			PathClarifyingAnythingElse,
			PathClarifyingCheckAndSend,
		},
		askForMoreTimePaths,
	),
	model.StatusClarifyingQuestionsAnswersSubmitted: {},

	model.StatusAwaitingCmaRequirements: joined(
		[]string{
			PathCmaRequirementsTaskList,
			PathCmaAccessNeeds,
			PathCmaOtherNeeds,
			PathCmaDatesToAvoid,
			PathCmaCheckAndSend,
		},
		askForMoreTimePaths,
	),
	model.StatusCmaRequirementsSubmitted: {},
	model.StatusCmaAdjustmentsAgreed:     {},
	model.StatusCmaListed:                {},

	model.StatusSubmitHearingRequirements: joined(
		[]string{
			PathHearingNeedsTaskList,
			PathHearingWitnesses,
			PathHearingAccessNeeds,
			PathHearingDatesToAvoid,
			PathHearingCheckAndSend,
		},
		askForMoreTimePaths,
	),

	model.StatusRespondentReview:   {PathHomeOfficeResponse},
	model.StatusDecisionWithdrawn:  {PathHomeOfficeResponse},
	model.StatusDecisionMaintained: {PathHomeOfficeResponse},
	model.StatusListing:            {},
	model.StatusPrepareForHearing:  {},
	model.StatusFinalBundling:      {},
	model.StatusPreHearing:         {},
	model.StatusDecided:            {PathFtpaApplicationGrounds, PathFtpaApplicationEvidence, PathFtpaCheckAndSend},
	model.StatusFtpaSubmitted:      {},
	model.StatusFtpaDecided:        {},
	model.StatusAppealTakenOffline: {},
	model.StatusEnded:              {},
}

func joined(groups ...[]string) []string {
	var all []string
	for _, group := range groups {
		all = append(all, group...)
	}
	return all
}
