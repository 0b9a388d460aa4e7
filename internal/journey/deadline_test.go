package journey_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iac-appeals/aip-sync/internal/journey"
	"github.com/iac-appeals/aip-sync/internal/model"
)

var _ = Describe("DeadlineCalculator", func() {
	var calc *journey.DeadlineCalculator

	BeforeEach(func() {
		calc = journey.NewDeadlineCalculator(journey.DefaultWaitingPeriods())
	})

	submittedOn := func(date string) []model.HistoryEvent {
		return []model.HistoryEvent{
			{ID: "submitAppeal", CreatedDate: date},
		}
	}

	Context("after submission", func() {
		It("adds the post-remission waiting period when the flag is on", func() {
			appeal := &model.Appeal{History: submittedOn("2020-02-08T15:36:26.099")}

			deadline := calc.Deadline(model.StatusAppealSubmitted, appeal, true)
			Expect(deadline).To(Equal("22 February 2020"))
		})

		It("adds the shorter pre-remission waiting period when the flag is off", func() {
			appeal := &model.Appeal{History: submittedOn("2020-02-08T15:36:26.099")}

			deadline := calc.Deadline(model.StatusAppealSubmitted, appeal, false)
			Expect(deadline).To(Equal("13 February 2020"))
		})

		It("counts from the remission request when one was made", func() {
			appeal := &model.Appeal{
				History: []model.HistoryEvent{
					{ID: "requestFeeRemission", CreatedDate: "2020-02-21T15:36:26.099"},
					{ID: "submitAppeal", CreatedDate: "2020-02-08T15:36:26.099"},
				},
			}
			appeal.Application.RemissionOption = "asylumSupportFromHo"

			deadline := calc.Deadline(model.StatusAppealSubmitted, appeal, true)
			Expect(deadline).To(Equal("06 March 2020"))
		})

		It("uses the most recent occurrence of a duplicated event", func() {
			appeal := &model.Appeal{
				History: []model.HistoryEvent{
					{ID: "submitAppeal", CreatedDate: "2020-03-01T09:00:00.000"},
					{ID: "submitAppeal", CreatedDate: "2020-02-08T15:36:26.099"},
				},
			}

			deadline := calc.Deadline(model.StatusAppealSubmitted, appeal, true)
			Expect(deadline).To(Equal("15 March 2020"))
		})

		It("degrades to empty when the trigger event is missing", func() {
			deadline := calc.Deadline(model.StatusAppealSubmitted, &model.Appeal{}, true)
			Expect(deadline).To(BeEmpty())
		})

		It("degrades to empty on a malformed history date", func() {
			appeal := &model.Appeal{History: submittedOn("not-a-date")}

			deadline := calc.Deadline(model.StatusAppealSubmitted, appeal, true)
			Expect(deadline).To(BeEmpty())
		})
	})

	Context("direction driven statuses", func() {
		It("formats the due date of the matching direction", func() {
			appeal := &model.Appeal{
				Directions: []model.Direction{
					{Tag: "requestReasonsForAppeal", DateDue: "2020-05-07"},
				},
			}

			deadline := calc.Deadline(model.StatusAwaitingReasonsForAppeal, appeal, false)
			Expect(deadline).To(Equal("07 May 2020"))
		})

		It("takes the most recent direction when the tag repeats", func() {
			appeal := &model.Appeal{
				Directions: []model.Direction{
					{Tag: "requestClarifyingQuestions", DateDue: "2020-06-12"},
					{Tag: "requestClarifyingQuestions", DateDue: "2020-05-07"},
				},
			}

			deadline := calc.Deadline(model.StatusAwaitingClarifyingQuestionsAnswers, appeal, false)
			Expect(deadline).To(Equal("12 June 2020"))
		})

		It("ignores directions with other tags", func() {
			appeal := &model.Appeal{
				Directions: []model.Direction{
					{Tag: "respondentEvidence", DateDue: "2020-05-07"},
				},
			}

			deadline := calc.Deadline(model.StatusAwaitingCmaRequirements, appeal, false)
			Expect(deadline).To(BeEmpty())
		})
	})

	It("returns no deadline while the appeal is being drafted", func() {
		deadline := calc.Deadline(model.StatusAppealStarted, &model.Appeal{}, false)
		Expect(deadline).To(BeEmpty())
	})

	It("returns the TBC sentinel for statuses without a rule", func() {
		deadline := calc.Deadline(model.StatusListing, &model.Appeal{}, false)
		Expect(deadline).To(Equal(journey.DeadlineTBC))
	})
})
