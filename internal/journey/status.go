package journey

import (
	"github.com/iac-appeals/aip-sync/internal/model"
)

// Out-of-time decision values CCD records against a late appeal.
const (
	OutOfTimeDecisionApproved = "approved"
	OutOfTimeDecisionRejected = "rejected"
	OutOfTimeDecisionInTime   = "inTime"
)

// ResolveStatus derives the effective workflow status from the raw CCD state
// plus appellant-specific overlays.
//
// Precedence: a terminal ended state always wins; the late-appeal overlays
// only ever apply to non-terminal states.
func ResolveStatus(rawState model.AppealStatus, appeal *model.Appeal) model.AppealStatus {
	if rawState == model.StatusEnded {
		return model.StatusEnded
	}

	isLate := appeal.Application.IsAppealLate != nil && *appeal.Application.IsAppealLate

	if isLate && appeal.OutOfTimeDecisionType == OutOfTimeDecisionRejected {
		return model.StatusLateAppealRejected
	}
	if isLate && rawState == model.StatusAppealSubmitted {
		return model.StatusLateAppealSubmitted
	}
	return rawState
}
