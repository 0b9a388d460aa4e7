package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/iac-appeals/aip-sync/common/logger"
	"github.com/iac-appeals/aip-sync/internal/auth"
	"github.com/iac-appeals/aip-sync/internal/codec"
	"github.com/iac-appeals/aip-sync/internal/model"
)

// EvidenceService uploads and removes supporting documents, keeping the
// aggregate's document map as the single holder of store URLs.
type EvidenceService interface {
	Upload(ctx context.Context, userToken string, appeal *model.Appeal, filename string, content io.Reader) (*model.Evidence, error)
	Delete(ctx context.Context, userToken string, appeal *model.Appeal, fileID string) error
	Fetch(ctx context.Context, userToken string, appeal *model.Appeal, fileID string) (io.ReadCloser, string, error)
}

type evidenceService struct {
	docs     DocumentAPI
	authProv auth.Provider
}

func NewEvidenceService(docs DocumentAPI, authProv auth.Provider) EvidenceService {
	return &evidenceService{docs: docs, authProv: authProv}
}

func (s *evidenceService) Upload(ctx context.Context, userToken string, appeal *model.Appeal, filename string, content io.Reader) (*model.Evidence, error) {
	headers, err := s.authProv.Headers(ctx, userToken)
	if err != nil {
		return nil, fmt.Errorf("resolving security headers: %w", err)
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CcdCaseID: logger.Ptr(appeal.CcdCaseID),
		Component: "aip.service.evidence",
	})

	doc, err := s.docs.Upload(ctx, headers, filename, content)
	if err != nil {
		slog.ErrorContext(ctx, "failed to upload document", "error", err, "filename", filename)
		return nil, fmt.Errorf("uploading document: %w", err)
	}

	fileID := codec.AddToDocumentMap(doc.URL, &appeal.DocumentMap)

	slog.InfoContext(ctx, "document uploaded", "file_id", fileID)

	return &model.Evidence{
		FileID:       fileID,
		Name:         doc.Name,
		DateUploaded: time.Now().UTC().Format("2006-01-02"),
	}, nil
}

func (s *evidenceService) Delete(ctx context.Context, userToken string, appeal *model.Appeal, fileID string) error {
	headers, err := s.authProv.Headers(ctx, userToken)
	if err != nil {
		return fmt.Errorf("resolving security headers: %w", err)
	}

	url, err := codec.DocumentMapToDocStoreURL(fileID, appeal.DocumentMap)
	if err != nil {
		return fmt.Errorf("resolving document: %w", err)
	}

	if err := s.docs.Delete(ctx, headers, url); err != nil {
		slog.ErrorContext(ctx, "failed to delete document", "error", err, "file_id", fileID)
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

func (s *evidenceService) Fetch(ctx context.Context, userToken string, appeal *model.Appeal, fileID string) (io.ReadCloser, string, error) {
	headers, err := s.authProv.Headers(ctx, userToken)
	if err != nil {
		return nil, "", fmt.Errorf("resolving security headers: %w", err)
	}

	url, err := codec.DocumentMapToDocStoreURL(fileID, appeal.DocumentMap)
	if err != nil {
		return nil, "", fmt.Errorf("resolving document: %w", err)
	}

	return s.docs.FetchBinary(ctx, headers, url+"/binary")
}
