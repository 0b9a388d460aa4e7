package journey

import (
	"time"

	"github.com/iac-appeals/aip-sync/internal/codec"
	"github.com/iac-appeals/aip-sync/internal/model"
)

// DeadlineTBC is the sentinel for statuses with no defined deadline rule.
const DeadlineTBC = "TBC"

// Direction tags consulted for direction-driven deadlines.
const (
	DirectionTagRequestReasonsForAppeal    = "requestReasonsForAppeal"
	DirectionTagRequestClarifyingQuestions = "requestClarifyingQuestions"
	DirectionTagRequestCmaRequirements     = "requestCmaRequirements"
	DirectionTagRespondentEvidence         = "respondentEvidence"
	DirectionTagHearingRequirements        = "legalRepresentativeHearingRequirements"
)

// WaitingPeriods are the configured day counts added to a triggering history
// event to produce a waiting-period deadline.
type WaitingPeriods struct {
	// AfterSubmission applies from the submitAppeal event. The pre-remission
	// journey used the shorter period; the fee-remission flag switches to the
	// longer one.
	AfterSubmission             int
	AfterSubmissionPreRemission int
	AfterReasonsForAppeal       int
	AfterCmaRequirements        int
	AfterRemissionRequest       int
}

// DefaultWaitingPeriods match the tribunal's published service levels.
func DefaultWaitingPeriods() WaitingPeriods {
	return WaitingPeriods{
		AfterSubmission:             14,
		AfterSubmissionPreRemission: 5,
		AfterReasonsForAppeal:       14,
		AfterCmaRequirements:        14,
		AfterRemissionRequest:       14,
	}
}

// DeadlineCalculator computes the next-action deadline for an effective
// status from the appeal's history and directions.
//
// Lookup misses are expected steady state: a status with no rule yields the
// TBC sentinel, a direction-driven status with no matching direction yields
// empty. Malformed external dates degrade the same way; they are externally
// authored and a broken one must not take the overview page down.
type DeadlineCalculator struct {
	periods WaitingPeriods
}

func NewDeadlineCalculator(periods WaitingPeriods) *DeadlineCalculator {
	return &DeadlineCalculator{periods: periods}
}

// Deadline returns the formatted deadline ("22 February 2020"), empty when
// the status defines a rule but the inputs cannot satisfy it, or TBC when no
// rule exists. feeRemissionEnabled selects the post-flag submission waiting
// period and the remission-request rule.
func (c *DeadlineCalculator) Deadline(status model.AppealStatus, appeal *model.Appeal, feeRemissionEnabled bool) string {
	switch status {
	case model.StatusAppealStarted, model.StatusAppealStartedPartial:
		return ""

	case model.StatusAppealSubmitted, model.StatusLateAppealSubmitted,
		model.StatusAwaitingRespondentEvidence, model.StatusPendingPayment:
		if feeRemissionEnabled && appeal.Application.RemissionOption != "" {
			if deadline := c.eventDeadline(appeal.History, model.EventRequestFeeRemission.ID, c.periods.AfterRemissionRequest); deadline != "" {
				return deadline
			}
		}
		days := c.periods.AfterSubmissionPreRemission
		if feeRemissionEnabled {
			days = c.periods.AfterSubmission
		}
		return c.eventDeadline(appeal.History, model.EventSubmitAppeal.ID, days)

	case model.StatusAwaitingReasonsForAppeal, model.StatusAwaitingReasonsForAppealPartial:
		return c.directionDeadline(appeal.Directions, DirectionTagRequestReasonsForAppeal)

	case model.StatusReasonsForAppealSubmitted:
		return c.eventDeadline(appeal.History, model.EventSubmitReasonsForAppeal.ID, c.periods.AfterReasonsForAppeal)

	case model.StatusAwaitingClarifyingQuestionsAnswers:
		return c.directionDeadline(appeal.Directions, DirectionTagRequestClarifyingQuestions)

	case model.StatusAwaitingCmaRequirements:
		return c.directionDeadline(appeal.Directions, DirectionTagRequestCmaRequirements)

	case model.StatusCmaRequirementsSubmitted:
		return c.eventDeadline(appeal.History, model.EventSubmitCmaRequirements.ID, c.periods.AfterCmaRequirements)

	case model.StatusSubmitHearingRequirements:
		return c.directionDeadline(appeal.Directions, DirectionTagHearingRequirements)

	default:
		return DeadlineTBC
	}
}

// eventDeadline finds the triggering event and adds the waiting period. CCD
// history arrives newest first; with duplicate event ids the most recent
// occurrence wins, consistently.
func (c *DeadlineCalculator) eventDeadline(history []model.HistoryEvent, eventID string, days int) string {
	for _, event := range history {
		if event.ID != eventID {
			continue
		}
		triggered, err := parseHistoryDate(event.CreatedDate)
		if err != nil {
			return ""
		}
		return triggered.AddDate(0, 0, days).Format("02 January 2006")
	}
	return ""
}

// directionDeadline returns the due date of the most recent direction with
// the given tag. Directions arrive newest first; absent list or no tag match
// degrades to empty.
func (c *DeadlineCalculator) directionDeadline(directions []model.Direction, tag string) string {
	for _, direction := range directions {
		if direction.Tag != tag {
			continue
		}
		formatted, err := codec.FormatDayMonthYear(direction.DateDue)
		if err != nil {
			return ""
		}
		return formatted
	}
	return ""
}

func parseHistoryDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04:05.000", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	_, err := time.Parse(time.RFC3339, s)
	return time.Time{}, err
}
