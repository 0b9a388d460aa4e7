package service_test

import (
	"context"
	"errors"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iac-appeals/aip-sync/common/id"
	"github.com/iac-appeals/aip-sync/internal/auth"
	"github.com/iac-appeals/aip-sync/internal/codec"
	"github.com/iac-appeals/aip-sync/internal/docstore"
	"github.com/iac-appeals/aip-sync/internal/model"
	"github.com/iac-appeals/aip-sync/internal/service"
)

var _ = Describe("EvidenceService", func() {
	var (
		ctx      context.Context
		docs     *mockDocumentAPI
		authProv *mockAuthProvider
		svc      service.EvidenceService
		appeal   *model.Appeal
	)

	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())

		ctx = context.Background()
		docs = &mockDocumentAPI{}
		authProv = &mockAuthProvider{}
		svc = service.NewEvidenceService(docs, authProv)
		appeal = &model.Appeal{CcdCaseID: "1600000000000000"}
	})

	Describe("Upload", func() {
		It("stores the document and registers it in the document map", func() {
			docs.uploadFn = func(ctx context.Context, headers auth.SecurityHeaders, filename string, content io.Reader) (*docstore.Document, error) {
				Expect(filename).To(Equal("passport.pdf"))
				body, err := io.ReadAll(content)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(body)).To(Equal("file-bytes"))
				return &docstore.Document{
					Name: "passport.pdf",
					URL:  "http://dm-store/documents/abc-123",
				}, nil
			}

			evidence, err := svc.Upload(ctx, "user-token", appeal, "passport.pdf", strings.NewReader("file-bytes"))
			Expect(err).NotTo(HaveOccurred())
			Expect(evidence.Name).To(Equal("passport.pdf"))
			Expect(evidence.FileID).NotTo(BeEmpty())
			Expect(evidence.DateUploaded).To(MatchRegexp(`^\d{4}-\d{2}-\d{2}$`))

			url, err := codec.DocumentMapToDocStoreURL(evidence.FileID, appeal.DocumentMap)
			Expect(err).NotTo(HaveOccurred())
			Expect(url).To(Equal("http://dm-store/documents/abc-123"))
		})

		It("does not touch the map when the upload fails", func() {
			docs.uploadFn = func(ctx context.Context, headers auth.SecurityHeaders, filename string, content io.Reader) (*docstore.Document, error) {
				return nil, errors.New("dm-store unavailable")
			}

			_, err := svc.Upload(ctx, "user-token", appeal, "passport.pdf", strings.NewReader(""))
			Expect(err).To(HaveOccurred())
			Expect(appeal.DocumentMap).To(BeEmpty())
		})
	})

	Describe("Delete", func() {
		It("resolves the file id through the map before deleting", func() {
			fileID := codec.AddToDocumentMap("http://dm-store/documents/abc-123", &appeal.DocumentMap)

			var deleted string
			docs.deleteFn = func(ctx context.Context, headers auth.SecurityHeaders, documentURL string) error {
				deleted = documentURL
				return nil
			}

			Expect(svc.Delete(ctx, "user-token", appeal, fileID)).To(Succeed())
			Expect(deleted).To(Equal("http://dm-store/documents/abc-123"))
		})

		It("rejects a file id with no map entry", func() {
			err := svc.Delete(ctx, "user-token", appeal, "999")
			Expect(err).To(MatchError(codec.ErrDocumentNotFound))
		})
	})

	Describe("Fetch", func() {
		It("streams the binary from the resolved store URL", func() {
			fileID := codec.AddToDocumentMap("http://dm-store/documents/abc-123", &appeal.DocumentMap)

			docs.fetchBinaryFn = func(ctx context.Context, headers auth.SecurityHeaders, binaryURL string) (io.ReadCloser, string, error) {
				Expect(binaryURL).To(Equal("http://dm-store/documents/abc-123/binary"))
				return io.NopCloser(strings.NewReader("pdf-bytes")), "application/pdf", nil
			}

			body, contentType, err := svc.Fetch(ctx, "user-token", appeal, fileID)
			Expect(err).NotTo(HaveOccurred())
			defer body.Close()

			Expect(contentType).To(Equal("application/pdf"))
			content, err := io.ReadAll(body)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("pdf-bytes"))
		})

		It("rejects a file id with no map entry", func() {
			_, _, err := svc.Fetch(ctx, "user-token", appeal, "999")
			Expect(err).To(MatchError(codec.ErrDocumentNotFound))
		})
	})
})
