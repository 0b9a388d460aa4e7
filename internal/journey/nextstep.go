package journey

import (
	"context"
	"fmt"

	"github.com/iac-appeals/aip-sync/internal/flags"
	"github.com/iac-appeals/aip-sync/internal/model"
)

// Link is a titled URL rendered in the info / useful-documents side boxes.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CallToAction is the primary action of the "do this next" card.
type CallToAction struct {
	URL       string `json:"url,omitempty"`
	Label     string `json:"label,omitempty"`
	RespondBy string `json:"respondBy,omitempty"`
}

// NextStep is the structured "what to do next" payload for the overview
// page. One shape for every status; absent parts are nil/empty.
type NextStep struct {
	DescriptionParagraphs []string      `json:"descriptionParagraphs"`
	CTA                   *CallToAction `json:"cta,omitempty"`
	Deadline              string        `json:"deadline,omitempty"`
	Info                  *Link         `json:"info,omitempty"`
	UsefulDocuments       *Link         `json:"usefulDocuments,omitempty"`
	AllowedAskForMoreTime bool          `json:"allowedAskForMoreTime"`

	RemovedFromOnlineReason string `json:"removedFromOnlineReason,omitempty"`
	RemovedFromOnlineDate   string `json:"removedFromOnlineDate,omitempty"`
}

// stepContext carries the cross-cutting inputs each status handler composes
// with: the computed deadline and the flag variations in force.
type stepContext struct {
	deadline      string
	feeRemission  bool
	ftpaEnabled   bool
	setAside      bool
	hearingBundle bool
}

type stepFunc func(appeal *model.Appeal, sc stepContext) NextStep

// NextStepResolver maps an effective status to the overview payload. One
// handler per status in a lookup table; statuses without a handler fall back
// to the nothing-to-do default.
type NextStepResolver struct {
	flags     flags.Provider
	deadlines *DeadlineCalculator
	handlers  map[model.AppealStatus]stepFunc
}

func NewNextStepResolver(flagProvider flags.Provider, deadlines *DeadlineCalculator) *NextStepResolver {
	r := &NextStepResolver{
		flags:     flagProvider,
		deadlines: deadlines,
	}
	r.handlers = map[model.AppealStatus]stepFunc{
		model.StatusAppealStarted:        r.appealStarted,
		model.StatusAppealStartedPartial: r.appealStartedPartial,
		model.StatusAppealSubmitted:      r.appealSubmitted,
		model.StatusLateAppealSubmitted:  r.lateAppealSubmitted,
		model.StatusLateAppealRejected:   r.lateAppealRejected,
		model.StatusPendingPayment:       r.pendingPayment,

		model.StatusAwaitingRespondentEvidence: r.awaitingRespondentEvidence,

		model.StatusAwaitingReasonsForAppeal:        r.awaitingReasonsForAppeal,
		model.StatusAwaitingReasonsForAppealPartial: r.awaitingReasonsForAppealPartial,
		model.StatusReasonsForAppealSubmitted:       r.reasonsForAppealSubmitted,

		model.StatusRespondentReview:   r.respondentReview,
		model.StatusDecisionWithdrawn:  r.decisionWithdrawn,
		model.StatusDecisionMaintained: r.decisionMaintained,

		model.StatusAwaitingClarifyingQuestionsAnswers:  r.awaitingClarifyingQuestions,
		model.StatusClarifyingQuestionsAnswersSubmitted: r.clarifyingQuestionsSubmitted,

		model.StatusAwaitingCmaRequirements:  r.awaitingCmaRequirements,
		model.StatusCmaRequirementsSubmitted: r.cmaRequirementsSubmitted,
		model.StatusCmaAdjustmentsAgreed:     r.cmaAdjustmentsAgreed,
		model.StatusCmaListed:                r.cmaListed,

		model.StatusSubmitHearingRequirements: r.submitHearingRequirements,
		model.StatusListing:                   r.listing,
		model.StatusPrepareForHearing:         r.prepareForHearing,
		model.StatusFinalBundling:             r.finalBundling,
		model.StatusPreHearing:                r.preHearing,

		model.StatusDecided:       r.decided,
		model.StatusFtpaSubmitted: r.ftpaSubmitted,
		model.StatusFtpaDecided:   r.ftpaDecided,

		model.StatusAppealTakenOffline: r.appealTakenOffline,
		model.StatusEnded:              r.ended,
	}
	return r
}

// Resolve builds the payload for the appeal's effective status. Flag
// lookups happen here, once per request; handlers stay pure.
func (r *NextStepResolver) Resolve(ctx context.Context, appeal *model.Appeal) (NextStep, error) {
	sc := stepContext{}

	var err error
	if sc.feeRemission, err = r.flags.GetVariation(ctx, flags.FeeRemission, false); err != nil {
		return NextStep{}, fmt.Errorf("resolving fee remission flag: %w", err)
	}
	if sc.ftpaEnabled, err = r.flags.GetVariation(ctx, flags.Ftpa, false); err != nil {
		return NextStep{}, fmt.Errorf("resolving ftpa flag: %w", err)
	}
	if sc.setAside, err = r.flags.GetVariation(ctx, flags.SetAside, false); err != nil {
		return NextStep{}, fmt.Errorf("resolving set aside flag: %w", err)
	}
	if sc.hearingBundle, err = r.flags.GetVariation(ctx, flags.HearingBundle, false); err != nil {
		return NextStep{}, fmt.Errorf("resolving hearing bundle flag: %w", err)
	}

	sc.deadline = r.deadlines.Deadline(appeal.AppealStatus, appeal, sc.feeRemission)

	handler, ok := r.handlers[appeal.AppealStatus]
	if !ok {
		return NextStep{
			Deadline:              DeadlineTBC,
			DescriptionParagraphs: []string{textNothingToDo},
		}, nil
	}

	step := handler(appeal, sc)
	r.applyTimeExtensionWording(appeal, &step)
	return step, nil
}

// applyTimeExtensionWording overlays the ask-for-more-time sub-state onto
// any status that supports it. The deadline itself never changes here, only
// the wording around it.
func (r *NextStepResolver) applyTimeExtensionWording(appeal *model.Appeal, step *NextStep) {
	if !step.AllowedAskForMoreTime || step.CTA == nil {
		return
	}
	switch appeal.TimeExtensionDecision() {
	case model.ApplicationDecisionPending:
		step.DescriptionParagraphs = []string{textAskForMoreTimeDescription}
		step.CTA.RespondBy = textAskForMoreTimeRespondBy
	case model.ApplicationDecisionGranted:
		step.CTA.RespondBy = textNowRespondBy
	case model.ApplicationDecisionRefused:
		step.CTA.RespondBy = textStillRespondBy
	}
}

func (r *NextStepResolver) appealStarted(_ *model.Appeal, _ stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textAppealStartedDescription},
		CTA:                   &CallToAction{URL: PathTaskList, Label: textContinue},
	}
}

func (r *NextStepResolver) appealStartedPartial(_ *model.Appeal, _ stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textAppealStartedFinish},
		CTA:                   &CallToAction{URL: PathTaskList, Label: textContinue},
	}
}

func (r *NextStepResolver) appealSubmitted(appeal *model.Appeal, sc stepContext) NextStep {
	step := NextStep{
		Deadline: sc.deadline,
		Info:     &Link{Title: infoHelpfulTitle, URL: PathGuidanceCaseworker},
	}

	if sc.feeRemission && appeal.Application.RemissionOption != "" {
		step.DescriptionParagraphs = []string{
			textAppealSubmittedSent,
			textRemissionFee,
			textRemissionChecking,
			textRemissionByDate,
		}
		// The remission variant replaces the caseworker info box.
		step.Info = nil
		return step
	}

	step.DescriptionParagraphs = []string{
		textAppealSubmittedSent,
		textAppealSubmittedContact,
	}
	return step
}

func (r *NextStepResolver) lateAppealSubmitted(appeal *model.Appeal, sc stepContext) NextStep {
	step := r.appealSubmitted(appeal, sc)
	if step.Info != nil {
		step.DescriptionParagraphs = []string{
			textAppealSubmittedSent,
			textLateAppealSubmittedDecide,
		}
	}
	return step
}

func (r *NextStepResolver) lateAppealRejected(_ *model.Appeal, _ stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textLateAppealRejected},
		UsefulDocuments:       &Link{Title: usefulDocumentsTitle, URL: PathOutOfTimeDecisionViewer},
	}
}

func (r *NextStepResolver) pendingPayment(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textPendingPaymentSent, textPendingPaymentDue},
		CTA:                   &CallToAction{URL: PathPayNow, Label: textPendingPaymentCta},
		Deadline:              sc.deadline,
	}
}

func (r *NextStepResolver) awaitingRespondentEvidence(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textAwaitingRespondentEvidence},
		Deadline:              sc.deadline,
		Info:                  &Link{Title: infoHelpfulTitle, URL: PathGuidanceCaseworker},
	}
}

func (r *NextStepResolver) awaitingReasonsForAppeal(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textAwaitingReasonsDescription},
		CTA: &CallToAction{
			URL:       PathCaseBuildingHomeOfficeDecisionWrong,
			RespondBy: textRespondBy,
		},
		Deadline:              sc.deadline,
		Info:                  &Link{Title: infoHomeOfficeDocsTitle, URL: PathGuidanceHomeOfficeDoc},
		UsefulDocuments:       &Link{Title: usefulHomeOfficeBundle, URL: PathDocumentViewerPrefix},
		AllowedAskForMoreTime: true,
	}
}

func (r *NextStepResolver) awaitingReasonsForAppealPartial(appeal *model.Appeal, sc stepContext) NextStep {
	step := r.awaitingReasonsForAppeal(appeal, sc)
	step.DescriptionParagraphs = []string{textAwaitingReasonsPartial}
	return step
}

func (r *NextStepResolver) reasonsForAppealSubmitted(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textReasonsSubmitted},
		Deadline:              sc.deadline,
	}
}

func (r *NextStepResolver) respondentReview(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textRespondentReview},
		Deadline:              sc.deadline,
	}
}

func (r *NextStepResolver) decisionWithdrawn(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textDecisionWithdrawn},
		Deadline:              sc.deadline,
		UsefulDocuments:       &Link{Title: usefulDocumentsTitle, URL: PathHomeOfficeResponse},
	}
}

func (r *NextStepResolver) decisionMaintained(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textDecisionMaintained},
		Deadline:              sc.deadline,
		UsefulDocuments:       &Link{Title: usefulDocumentsTitle, URL: PathHomeOfficeResponse},
	}
}

func (r *NextStepResolver) awaitingClarifyingQuestions(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textAwaitingClarifyingQuestions},
		CTA: &CallToAction{
			URL:       PathClarifyingQuestionsList,
			RespondBy: textRespondBy,
		},
		Deadline:              sc.deadline,
		AllowedAskForMoreTime: true,
	}
}

func (r *NextStepResolver) clarifyingQuestionsSubmitted(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textClarifyingQuestionsSubmitted},
		Deadline:              sc.deadline,
	}
}

func (r *NextStepResolver) awaitingCmaRequirements(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textAwaitingCmaRequirements},
		CTA: &CallToAction{
			URL:       PathCmaRequirementsTaskList,
			RespondBy: textRespondBy,
		},
		Deadline:              sc.deadline,
		AllowedAskForMoreTime: true,
	}
}

func (r *NextStepResolver) cmaRequirementsSubmitted(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textCmaRequirementsSubmitted},
		Deadline:              sc.deadline,
	}
}

func (r *NextStepResolver) cmaAdjustmentsAgreed(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textCmaAdjustmentsAgreed},
		Deadline:              sc.deadline,
	}
}

func (r *NextStepResolver) cmaListed(_ *model.Appeal, _ stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textCmaListed},
		Deadline:              DeadlineTBC,
	}
}

func (r *NextStepResolver) submitHearingRequirements(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textSubmitHearingRequirements},
		CTA: &CallToAction{
			URL:       PathHearingNeedsTaskList,
			RespondBy: textRespondBy,
		},
		Deadline:              sc.deadline,
		AllowedAskForMoreTime: true,
	}
}

func (r *NextStepResolver) listing(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textListing},
		Deadline:              sc.deadline,
	}
}

func (r *NextStepResolver) prepareForHearing(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textPrepareForHearing},
		Deadline:              sc.deadline,
	}
}

func (r *NextStepResolver) finalBundling(_ *model.Appeal, sc stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textFinalBundling},
		Deadline:              sc.deadline,
	}
}

func (r *NextStepResolver) preHearing(_ *model.Appeal, sc stepContext) NextStep {
	step := NextStep{
		DescriptionParagraphs: []string{textFinalBundling},
		Deadline:              sc.deadline,
	}
	if sc.hearingBundle {
		step.DescriptionParagraphs = []string{textPreHearing}
		step.UsefulDocuments = &Link{Title: usefulDocumentsTitle, URL: PathDocumentViewerPrefix}
	}
	return step
}

func (r *NextStepResolver) decided(_ *model.Appeal, sc stepContext) NextStep {
	step := NextStep{
		DescriptionParagraphs: []string{textDecided},
		Deadline:              sc.deadline,
		UsefulDocuments:       &Link{Title: usefulDocumentsTitle, URL: PathDocumentViewerPrefix},
	}
	if sc.ftpaEnabled {
		step.DescriptionParagraphs = append(step.DescriptionParagraphs, textDecidedFtpaCta)
		step.CTA = &CallToAction{URL: PathFtpaApplicationGrounds, Label: textContinue}
	}
	return step
}

func (r *NextStepResolver) ftpaSubmitted(appeal *model.Appeal, sc stepContext) NextStep {
	description := textFtpaSubmittedRespondent
	if appeal.Ftpa.ApplicantType == "appellant" {
		description = textFtpaSubmittedAppellant
	}
	return NextStep{
		DescriptionParagraphs: []string{description},
		Deadline:              sc.deadline,
	}
}

// FTPA decision outcome codes as CCD records them.
const (
	FtpaOutcomeGranted          = "granted"
	FtpaOutcomePartiallyGranted = "partiallyGranted"
	FtpaOutcomeRefused          = "refused"
	FtpaOutcomeNotAdmitted      = "notAdmitted"
	FtpaOutcomeReheardRule35    = "reheardRule35"
	FtpaOutcomeRemadeRule31     = "remadeRule31"
	FtpaOutcomeRemadeRule32     = "remadeRule32"
)

func (r *NextStepResolver) ftpaDecided(appeal *model.Appeal, sc stepContext) NextStep {
	outcome := appeal.Ftpa.AppellantDecisionOutcomeType
	if outcome == "" {
		outcome = appeal.Ftpa.RespondentDecisionOutcomeType
	}

	var description string
	switch outcome {
	case FtpaOutcomeGranted:
		description = textFtpaGranted
	case FtpaOutcomePartiallyGranted:
		description = textFtpaPartiallyGranted
	case FtpaOutcomeRefused:
		description = textFtpaRefused
	case FtpaOutcomeNotAdmitted:
		description = textFtpaNotAdmitted
	// Rule 35 and rule 31/32 outcomes only surface once set-aside handling
	// is switched on; before that the overview stays neutral.
	case FtpaOutcomeReheardRule35:
		description = textNothingToDo
		if sc.setAside {
			description = textFtpaReheard
		}
	case FtpaOutcomeRemadeRule31, FtpaOutcomeRemadeRule32:
		description = textNothingToDo
		if sc.setAside {
			description = textFtpaRemade
		}
	default:
		description = textNothingToDo
	}

	return NextStep{
		DescriptionParagraphs: []string{description},
		Deadline:              sc.deadline,
		UsefulDocuments:       &Link{Title: usefulDocumentsTitle, URL: PathDocumentViewerPrefix},
	}
}

func (r *NextStepResolver) appealTakenOffline(appeal *model.Appeal, _ stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs:   []string{textAppealTakenOffline},
		RemovedFromOnlineReason: appeal.RemovedFromOnlineReason,
		RemovedFromOnlineDate:   appeal.RemovedFromOnlineDate,
	}
}

func (r *NextStepResolver) ended(_ *model.Appeal, _ stepContext) NextStep {
	return NextStep{
		DescriptionParagraphs: []string{textEnded, textEndedContactIfWrong},
		UsefulDocuments:       &Link{Title: usefulDocumentsTitle, URL: PathDocumentViewerPrefix},
	}
}
