package model

// AppealStatus is the effective workflow state of an appeal. It is derived
// from the raw CCD case state plus appellant-specific overlays, so it is a
// strictly richer enumeration than the states CCD itself reports.
type AppealStatus string

const (
	StatusAppealStarted                       AppealStatus = "appealStarted"
	StatusAppealStartedPartial                AppealStatus = "appealStartedPartial"
	StatusAppealSubmitted                     AppealStatus = "appealSubmitted"
	StatusLateAppealSubmitted                 AppealStatus = "lateAppealSubmitted"
	StatusLateAppealRejected                  AppealStatus = "lateAppealRejected"
	StatusPendingPayment                      AppealStatus = "pendingPayment"
	StatusAwaitingRespondentEvidence          AppealStatus = "awaitingRespondentEvidence"
	StatusAwaitingReasonsForAppeal            AppealStatus = "awaitingReasonsForAppeal"
	StatusAwaitingReasonsForAppealPartial     AppealStatus = "awaitingReasonsForAppealPartial"
	StatusReasonsForAppealSubmitted           AppealStatus = "reasonsForAppealSubmitted"
	StatusRespondentReview                    AppealStatus = "respondentReview"
	StatusDecisionWithdrawn                   AppealStatus = "decisionWithdrawn"
	StatusDecisionMaintained                  AppealStatus = "decisionMaintained"
	StatusAwaitingClarifyingQuestionsAnswers  AppealStatus = "awaitingClarifyingQuestionsAnswers"
	StatusClarifyingQuestionsAnswersSubmitted AppealStatus = "clarifyingQuestionsAnswersSubmitted"
	StatusAwaitingCmaRequirements             AppealStatus = "awaitingCmaRequirements"
	StatusCmaRequirementsSubmitted            AppealStatus = "cmaRequirementsSubmitted"
	StatusCmaAdjustmentsAgreed                AppealStatus = "cmaAdjustmentsAgreed"
	StatusCmaListed                           AppealStatus = "cmaListed"
	StatusSubmitHearingRequirements           AppealStatus = "submitHearingRequirements"
	StatusListing                             AppealStatus = "listing"
	StatusPrepareForHearing                   AppealStatus = "prepareForHearing"
	StatusFinalBundling                       AppealStatus = "finalBundling"
	StatusPreHearing                          AppealStatus = "preHearing"
	StatusDecided                             AppealStatus = "decided"
	StatusFtpaSubmitted                       AppealStatus = "ftpaSubmitted"
	StatusFtpaDecided                         AppealStatus = "ftpaDecided"
	StatusAppealTakenOffline                  AppealStatus = "appealTakenOffline"
	StatusEnded                               AppealStatus = "ended"
)

// Terminal reports whether the status is absorbing: once reached, the
// late-appeal overlays no longer apply and navigation is restricted to
// read-only pages.
func (s AppealStatus) Terminal() bool {
	switch s {
	case StatusEnded, StatusAppealTakenOffline, StatusFtpaDecided:
		return true
	}
	return false
}
