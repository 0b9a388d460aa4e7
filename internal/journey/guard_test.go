package journey_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iac-appeals/aip-sync/internal/journey"
	"github.com/iac-appeals/aip-sync/internal/model"
)

var _ = Describe("Guard", func() {
	var guard *journey.Guard

	BeforeEach(func() {
		guard = journey.NewGuard()
	})

	Describe("IsAllowed", func() {
		It("allows form pages registered for the current status", func() {
			Expect(guard.IsAllowed(model.StatusAppealStarted, journey.PathHomeOfficeRefNumber)).To(BeTrue())
			Expect(guard.IsAllowed(model.StatusAwaitingReasonsForAppeal, journey.PathCaseBuildingHomeOfficeDecisionWrong)).To(BeTrue())
		})

		It("rejects pages belonging to another stage", func() {
			Expect(guard.IsAllowed(model.StatusAppealSubmitted, journey.PathCaseBuildingHomeOfficeDecisionWrong)).To(BeFalse())
			Expect(guard.IsAllowed(model.StatusAwaitingReasonsForAppeal, journey.PathHomeOfficeRefNumber)).To(BeFalse())
		})

		It("always allows the common pages", func() {
			Expect(guard.IsAllowed(model.StatusEnded, journey.PathOverview)).To(BeTrue())
			Expect(guard.IsAllowed(model.StatusAppealStarted, journey.PathCookies)).To(BeTrue())
		})

		It("allows document viewer pages by prefix", func() {
			Expect(guard.IsAllowed(model.StatusEnded, "/view/document/12345")).To(BeTrue())
		})

		It("allows nothing stage-specific in a terminal state", func() {
			Expect(guard.IsAllowed(model.StatusEnded, journey.PathCheckAndSend)).To(BeFalse())
		})
	})

	Describe("BlocksForPendingTimeExtension", func() {
		pendingExtension := func() *model.Appeal {
			return &model.Appeal{
				MakeAnApplications: []model.MakeAnApplication{
					{
						Type:      model.ApplicationTypeTimeExtension,
						Applicant: "Appellant",
						Decision:  model.ApplicationDecisionPending,
					},
				},
			}
		}

		It("blocks ask-for-more-time pages while a request is pending", func() {
			Expect(guard.BlocksForPendingTimeExtension(pendingExtension(), journey.PathAskForMoreTimeReason)).To(BeTrue())
		})

		It("does not block other pages", func() {
			Expect(guard.BlocksForPendingTimeExtension(pendingExtension(), journey.PathCaseBuildingHomeOfficeDecisionWrong)).To(BeFalse())
		})

		It("does not block once the request is decided", func() {
			appeal := pendingExtension()
			appeal.MakeAnApplications[0].Decision = model.ApplicationDecisionGranted

			Expect(guard.BlocksForPendingTimeExtension(appeal, journey.PathAskForMoreTimeReason)).To(BeFalse())
		})
	})
})
