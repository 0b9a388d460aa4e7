package codec_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iac-appeals/aip-sync/internal/codec"
	"github.com/iac-appeals/aip-sync/internal/model"
)

var _ = Describe("Dates", func() {
	Describe("ToIsoDate", func() {
		It("zero-pads single digit components", func() {
			iso, err := codec.ToIsoDate(model.AppealDate{Year: "2019", Month: "2", Day: "1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(iso).To(Equal("2019-02-01"))
		})

		It("is idempotent for already padded components", func() {
			iso, err := codec.ToIsoDate(model.AppealDate{Year: "2019", Month: "02", Day: "01"})
			Expect(err).NotTo(HaveOccurred())
			Expect(iso).To(Equal("2019-02-01"))
		})

		It("rejects non-numeric components", func() {
			_, err := codec.ToIsoDate(model.AppealDate{Year: "2019", Month: "February", Day: "1"})
			Expect(err).To(HaveOccurred())
		})

		It("rejects out of range components", func() {
			_, err := codec.ToIsoDate(model.AppealDate{Year: "2019", Month: "13", Day: "1"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("FromCcdDate", func() {
		It("splits into unpadded components", func() {
			date, err := codec.FromCcdDate("2019-02-01")
			Expect(err).NotTo(HaveOccurred())
			Expect(date).To(Equal(&model.AppealDate{Year: "2019", Month: "2", Day: "1"}))
		})

		It("returns nil for an absent date", func() {
			date, err := codec.FromCcdDate("")
			Expect(err).NotTo(HaveOccurred())
			Expect(date).To(BeNil())
		})

		It("accepts ccd timestamps", func() {
			date, err := codec.FromCcdDate("2020-02-08T15:36:26.099")
			Expect(err).NotTo(HaveOccurred())
			Expect(date).To(Equal(&model.AppealDate{Year: "2020", Month: "2", Day: "8"}))
		})

		It("surfaces malformed dates", func() {
			_, err := codec.FromCcdDate("08/02/2020")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("FormatDayMonthYear", func() {
		It("renders the display format", func() {
			formatted, err := codec.FormatDayMonthYear("2020-05-07")
			Expect(err).NotTo(HaveOccurred())
			Expect(formatted).To(Equal("07 May 2020"))
		})
	})

	It("round trips through encode and decode", func() {
		original := model.AppealDate{Year: "2019", Month: "2", Day: "1"}
		iso, err := codec.ToIsoDate(original)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := codec.FromCcdDate(iso)
		Expect(err).NotTo(HaveOccurred())
		Expect(*decoded).To(Equal(original))
	})
})
