package journey_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iac-appeals/aip-sync/internal/flags"
	"github.com/iac-appeals/aip-sync/internal/journey"
	"github.com/iac-appeals/aip-sync/internal/model"
)

var _ = Describe("NextStepResolver", func() {
	var (
		ctx      context.Context
		provider *flags.StaticProvider
		resolver *journey.NextStepResolver
	)

	BeforeEach(func() {
		ctx = context.Background()
		provider = flags.NewStaticProvider(nil)
		resolver = journey.NewNextStepResolver(provider, journey.NewDeadlineCalculator(journey.DefaultWaitingPeriods()))
	})

	It("points a fresh appeal at the task list", func() {
		appeal := &model.Appeal{AppealStatus: model.StatusAppealStarted}

		step, err := resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())
		Expect(step.CTA.URL).To(Equal(journey.PathTaskList))
		Expect(step.DescriptionParagraphs).NotTo(BeEmpty())
		Expect(step.AllowedAskForMoreTime).To(BeFalse())
	})

	It("carries the computed deadline for a submitted appeal", func() {
		appeal := &model.Appeal{
			AppealStatus: model.StatusAppealSubmitted,
			History: []model.HistoryEvent{
				{ID: "submitAppeal", CreatedDate: "2020-02-08T15:36:26.099"},
			},
		}

		step, err := resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())
		Expect(step.Deadline).To(Equal("13 February 2020"))
		Expect(step.Info).NotTo(BeNil())
	})

	It("switches to the remission wording when the flag is on and remission was requested", func() {
		provider.Set(flags.FeeRemission, true)
		appeal := &model.Appeal{AppealStatus: model.StatusAppealSubmitted}
		appeal.Application.RemissionOption = "feeWaiverFromHo"

		step, err := resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())
		Expect(step.Info).To(BeNil())
		Expect(len(step.DescriptionParagraphs)).To(BeNumerically(">", 2))
	})

	It("allows asking for more time while reasons are awaited", func() {
		appeal := &model.Appeal{
			AppealStatus: model.StatusAwaitingReasonsForAppeal,
			Directions: []model.Direction{
				{Tag: "requestReasonsForAppeal", DateDue: "2020-05-07"},
			},
		}

		step, err := resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())
		Expect(step.AllowedAskForMoreTime).To(BeTrue())
		Expect(step.Deadline).To(Equal("07 May 2020"))
		Expect(step.CTA.URL).To(Equal(journey.PathCaseBuildingHomeOfficeDecisionWrong))
	})

	Context("time extension wording", func() {
		awaitingReasons := func(decision string) *model.Appeal {
			return &model.Appeal{
				AppealStatus: model.StatusAwaitingReasonsForAppeal,
				Directions: []model.Direction{
					{Tag: "requestReasonsForAppeal", DateDue: "2020-05-07"},
				},
				MakeAnApplications: []model.MakeAnApplication{
					{
						Type:      model.ApplicationTypeTimeExtension,
						Applicant: "Appellant",
						Decision:  decision,
					},
				},
			}
		}

		It("replaces the description while a request is pending", func() {
			step, err := resolver.Resolve(ctx, awaitingReasons(model.ApplicationDecisionPending))
			Expect(err).NotTo(HaveOccurred())
			Expect(step.DescriptionParagraphs).To(HaveLen(1))
			Expect(step.DescriptionParagraphs[0]).To(ContainSubstring("considering your request"))
			Expect(step.Deadline).To(Equal("07 May 2020"))
		})

		It("uses the now-respond-by wording after a grant", func() {
			step, err := resolver.Resolve(ctx, awaitingReasons(model.ApplicationDecisionGranted))
			Expect(err).NotTo(HaveOccurred())
			Expect(step.CTA.RespondBy).To(ContainSubstring("now need to respond"))
		})

		It("uses the still-respond-by wording after a refusal", func() {
			step, err := resolver.Resolve(ctx, awaitingReasons(model.ApplicationDecisionRefused))
			Expect(err).NotTo(HaveOccurred())
			Expect(step.CTA.RespondBy).To(ContainSubstring("still need to respond"))
		})

		It("leaves statuses without ask-for-more-time untouched", func() {
			appeal := &model.Appeal{
				AppealStatus: model.StatusAppealSubmitted,
				MakeAnApplications: []model.MakeAnApplication{
					{
						Type:      model.ApplicationTypeTimeExtension,
						Applicant: "Appellant",
						Decision:  model.ApplicationDecisionPending,
					},
				},
			}

			step, err := resolver.Resolve(ctx, appeal)
			Expect(err).NotTo(HaveOccurred())
			Expect(step.DescriptionParagraphs[0]).NotTo(ContainSubstring("considering your request"))
		})
	})

	It("only offers the permission-to-appeal action when the flag is on", func() {
		appeal := &model.Appeal{AppealStatus: model.StatusDecided}

		step, err := resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())
		Expect(step.CTA).To(BeNil())

		provider.Set(flags.Ftpa, true)
		step, err = resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())
		Expect(step.CTA).NotTo(BeNil())
		Expect(step.CTA.URL).To(Equal(journey.PathFtpaApplicationGrounds))
	})

	It("selects the wording for the permission-to-appeal outcome", func() {
		appeal := &model.Appeal{
			AppealStatus: model.StatusFtpaDecided,
			Ftpa:         model.FtpaDetails{AppellantDecisionOutcomeType: journey.FtpaOutcomeGranted},
		}

		granted, err := resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())

		appeal.Ftpa.AppellantDecisionOutcomeType = journey.FtpaOutcomeRefused
		refused, err := resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())

		Expect(granted.DescriptionParagraphs).NotTo(Equal(refused.DescriptionParagraphs))
	})

	It("keeps set-aside outcomes neutral until the flag is on", func() {
		appeal := &model.Appeal{
			AppealStatus: model.StatusFtpaDecided,
			Ftpa:         model.FtpaDetails{AppellantDecisionOutcomeType: journey.FtpaOutcomeReheardRule35},
		}

		step, err := resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())
		Expect(step.DescriptionParagraphs).To(ConsistOf("Nothing to do next"))

		provider.Set(flags.SetAside, true)
		step, err = resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())
		Expect(step.DescriptionParagraphs).NotTo(ConsistOf("Nothing to do next"))
	})

	It("treats remade decisions the same way", func() {
		appeal := &model.Appeal{
			AppealStatus: model.StatusFtpaDecided,
			Ftpa:         model.FtpaDetails{RespondentDecisionOutcomeType: journey.FtpaOutcomeRemadeRule32},
		}

		step, err := resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())
		Expect(step.DescriptionParagraphs).To(ConsistOf("Nothing to do next"))

		provider.Set(flags.SetAside, true)
		step, err = resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())
		Expect(step.DescriptionParagraphs).NotTo(ConsistOf("Nothing to do next"))
	})

	It("falls back to the nothing-to-do default for unknown statuses", func() {
		appeal := &model.Appeal{AppealStatus: model.AppealStatus("somethingNew")}

		step, err := resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())
		Expect(step.Deadline).To(Equal(journey.DeadlineTBC))
		Expect(step.DescriptionParagraphs).To(ConsistOf("Nothing to do next"))
	})

	It("surfaces the removal details when the appeal is taken offline", func() {
		appeal := &model.Appeal{
			AppealStatus:            model.StatusAppealTakenOffline,
			RemovedFromOnlineReason: "Transferred to a legal representative",
			RemovedFromOnlineDate:   "2020-07-01",
		}

		step, err := resolver.Resolve(ctx, appeal)
		Expect(err).NotTo(HaveOccurred())
		Expect(step.RemovedFromOnlineReason).To(Equal("Transferred to a legal representative"))
		Expect(step.RemovedFromOnlineDate).To(Equal("2020-07-01"))
	})
})
