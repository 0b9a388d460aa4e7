package service

import (
	"context"
	"io"

	"github.com/iac-appeals/aip-sync/internal/auth"
	"github.com/iac-appeals/aip-sync/internal/ccd"
	"github.com/iac-appeals/aip-sync/internal/docstore"
	"github.com/iac-appeals/aip-sync/internal/model"
)

// CaseAPI is the slice of the case-management client the services consume.
// Satisfied by *ccd.Client.
type CaseAPI interface {
	ListCases(ctx context.Context, userID string, headers auth.SecurityHeaders) ([]model.CaseDetails, error)
	CreateCase(ctx context.Context, userID string, headers auth.SecurityHeaders) (model.CaseDetails, error)
	StartEvent(ctx context.Context, userID, caseID, eventID string, headers auth.SecurityHeaders) (ccd.StartEventResponse, error)
	SubmitEvent(ctx context.Context, userID, caseID string, event model.Event, data model.CaseData, eventToken string, headers auth.SecurityHeaders) (model.CaseDetails, error)
	CaseHistory(ctx context.Context, userID, caseID string, headers auth.SecurityHeaders) ([]model.HistoryEvent, error)
}

// DocumentAPI is the slice of the document-store client the services consume.
// Satisfied by *docstore.Client.
type DocumentAPI interface {
	Upload(ctx context.Context, headers auth.SecurityHeaders, filename string, content io.Reader) (*docstore.Document, error)
	Delete(ctx context.Context, headers auth.SecurityHeaders, documentURL string) error
	FetchBinary(ctx context.Context, headers auth.SecurityHeaders, binaryURL string) (io.ReadCloser, string, error)
}
