package journey_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iac-appeals/aip-sync/internal/journey"
	"github.com/iac-appeals/aip-sync/internal/model"
)

func boolPtr(b bool) *bool { return &b }

var _ = Describe("ResolveStatus", func() {
	It("passes through the raw state for an in-time appeal", func() {
		appeal := &model.Appeal{}
		appeal.Application.IsAppealLate = boolPtr(false)

		status := journey.ResolveStatus(model.StatusAppealSubmitted, appeal)
		Expect(status).To(Equal(model.StatusAppealSubmitted))
	})

	It("overlays lateAppealSubmitted on a late submitted appeal", func() {
		appeal := &model.Appeal{}
		appeal.Application.IsAppealLate = boolPtr(true)

		status := journey.ResolveStatus(model.StatusAppealSubmitted, appeal)
		Expect(status).To(Equal(model.StatusLateAppealSubmitted))
	})

	It("overlays lateAppealRejected once the tribunal rejects the late appeal", func() {
		appeal := &model.Appeal{OutOfTimeDecisionType: journey.OutOfTimeDecisionRejected}
		appeal.Application.IsAppealLate = boolPtr(true)

		status := journey.ResolveStatus(model.StatusAppealSubmitted, appeal)
		Expect(status).To(Equal(model.StatusLateAppealRejected))
	})

	It("applies the rejection overlay whatever the raw state", func() {
		appeal := &model.Appeal{OutOfTimeDecisionType: journey.OutOfTimeDecisionRejected}
		appeal.Application.IsAppealLate = boolPtr(true)

		status := journey.ResolveStatus(model.StatusAwaitingRespondentEvidence, appeal)
		Expect(status).To(Equal(model.StatusLateAppealRejected))
	})

	It("lets ended win over every overlay", func() {
		appeal := &model.Appeal{OutOfTimeDecisionType: journey.OutOfTimeDecisionRejected}
		appeal.Application.IsAppealLate = boolPtr(true)

		status := journey.ResolveStatus(model.StatusEnded, appeal)
		Expect(status).To(Equal(model.StatusEnded))
	})

	It("does not treat an approved decision as rejected", func() {
		appeal := &model.Appeal{OutOfTimeDecisionType: journey.OutOfTimeDecisionApproved}
		appeal.Application.IsAppealLate = boolPtr(true)

		status := journey.ResolveStatus(model.StatusAwaitingRespondentEvidence, appeal)
		Expect(status).To(Equal(model.StatusAwaitingRespondentEvidence))
	})
})
