package codec_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iac-appeals/aip-sync/common/id"
	"github.com/iac-appeals/aip-sync/internal/codec"
	"github.com/iac-appeals/aip-sync/internal/model"
)

var _ = Describe("DocumentMap", func() {
	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())
	})

	Describe("AddToDocumentMap", func() {
		It("registers a url under a fresh id", func() {
			var docMap []model.DocumentMapEntry
			fileID := codec.AddToDocumentMap("http://dm-store/documents/abc", &docMap)

			Expect(fileID).NotTo(BeEmpty())
			Expect(docMap).To(HaveLen(1))
			Expect(docMap[0].URL).To(Equal("http://dm-store/documents/abc"))
		})

		It("returns the existing id when the url is already mapped", func() {
			var docMap []model.DocumentMapEntry
			first := codec.AddToDocumentMap("http://dm-store/documents/abc", &docMap)
			second := codec.AddToDocumentMap("http://dm-store/documents/abc", &docMap)

			Expect(second).To(Equal(first))
			Expect(docMap).To(HaveLen(1))
		})

		It("assigns distinct ids to distinct urls", func() {
			var docMap []model.DocumentMapEntry
			first := codec.AddToDocumentMap("http://dm-store/documents/abc", &docMap)
			second := codec.AddToDocumentMap("http://dm-store/documents/def", &docMap)

			Expect(second).NotTo(Equal(first))
			Expect(docMap).To(HaveLen(2))
		})
	})

	Describe("DocumentMapToDocStoreURL", func() {
		It("resolves a mapped id", func() {
			var docMap []model.DocumentMapEntry
			fileID := codec.AddToDocumentMap("http://dm-store/documents/abc", &docMap)

			url, err := codec.DocumentMapToDocStoreURL(fileID, docMap)
			Expect(err).NotTo(HaveOccurred())
			Expect(url).To(Equal("http://dm-store/documents/abc"))
		})

		It("fails for an unmapped id", func() {
			_, err := codec.DocumentMapToDocStoreURL("12345", nil)
			Expect(err).To(MatchError(codec.ErrDocumentNotFound))
		})
	})

	Describe("FileIDToName", func() {
		It("strips the generated prefix", func() {
			Expect(codec.FileIDToName("000001-evidence.pdf")).To(Equal("evidence.pdf"))
		})

		It("keeps the remainder intact when the name contains dashes", func() {
			Expect(codec.FileIDToName("000001-my-evidence.pdf")).To(Equal("my-evidence.pdf"))
		})

		It("passes through names without a prefix", func() {
			Expect(codec.FileIDToName("evidence.pdf")).To(Equal("evidence.pdf"))
		})
	})
})
