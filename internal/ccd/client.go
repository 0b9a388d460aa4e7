// Package ccd is the HTTP client for the upstream case-management API. All
// calls authenticate with the citizen's bearer token plus a service token.
package ccd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/iac-appeals/aip-sync/common/logger"
	"github.com/iac-appeals/aip-sync/core/config"
	"github.com/iac-appeals/aip-sync/internal/auth"
	"github.com/iac-appeals/aip-sync/internal/model"
)

const startAppealEventID = "startAppeal"

type Client struct {
	baseURL        string
	jurisdictionID string
	caseType       string
	httpClient     *http.Client
}

func NewClient(cfg config.CcdConfig) *Client {
	return &Client{
		baseURL:        cfg.BaseURL,
		jurisdictionID: cfg.JurisdictionID,
		caseType:       cfg.CaseType,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// StartEventResponse carries the token that authorizes one event submission.
type StartEventResponse struct {
	Token   string `json:"token"`
	EventID string `json:"event_id"`
}

type eventSubmission struct {
	Event struct {
		ID          string `json:"id"`
		Summary     string `json:"summary"`
		Description string `json:"description"`
	} `json:"event"`
	Data              model.CaseData `json:"data"`
	EventToken        string         `json:"event_token"`
	IgnoreWarning     bool           `json:"ignore_warning"`
	SupplementaryData map[string]any `json:"supplementary_data_request,omitempty"`
}

func (c *Client) casePath(userID string) string {
	return fmt.Sprintf("%s/citizens/%s/jurisdictions/%s/case-types/%s",
		c.baseURL, userID, c.jurisdictionID, c.caseType)
}

// ListCases returns every case the user holds in this jurisdiction.
func (c *Client) ListCases(ctx context.Context, userID string, headers auth.SecurityHeaders) ([]model.CaseDetails, error) {
	var cases []model.CaseDetails
	err := c.do(ctx, http.MethodGet, c.casePath(userID)+"/cases", headers, nil, &cases)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}
	return cases, nil
}

// CreateCase starts and submits a startAppeal event, producing a fresh case
// in state appealStarted.
func (c *Client) CreateCase(ctx context.Context, userID string, headers auth.SecurityHeaders) (model.CaseDetails, error) {
	var start StartEventResponse
	url := fmt.Sprintf("%s/event-triggers/%s/token", c.casePath(userID), startAppealEventID)
	if err := c.do(ctx, http.MethodGet, url, headers, nil, &start); err != nil {
		return model.CaseDetails{}, fmt.Errorf("starting case creation: %w", err)
	}

	submission := eventSubmission{
		Data:       model.CaseData{JourneyType: model.JourneyTypeAip},
		EventToken: start.Token,
	}
	submission.Event.ID = startAppealEventID
	submission.Event.Summary = "Create case AIP"
	submission.Event.Description = "Create case AIP"

	var created model.CaseDetails
	if err := c.do(ctx, http.MethodPost, c.casePath(userID)+"/cases", headers, submission, &created); err != nil {
		return model.CaseDetails{}, fmt.Errorf("submitting case creation: %w", err)
	}
	return created, nil
}

// GetCase fetches a single case by id.
func (c *Client) GetCase(ctx context.Context, userID, caseID string, headers auth.SecurityHeaders) (model.CaseDetails, error) {
	var details model.CaseDetails
	url := fmt.Sprintf("%s/cases/%s", c.casePath(userID), caseID)
	if err := c.do(ctx, http.MethodGet, url, headers, nil, &details); err != nil {
		return model.CaseDetails{}, fmt.Errorf("fetching case %s: %w", caseID, err)
	}
	return details, nil
}

// StartEvent obtains the event token that must accompany a SubmitEvent call.
func (c *Client) StartEvent(ctx context.Context, userID, caseID, eventID string, headers auth.SecurityHeaders) (StartEventResponse, error) {
	var start StartEventResponse
	url := fmt.Sprintf("%s/cases/%s/event-triggers/%s/token", c.casePath(userID), caseID, eventID)
	if err := c.do(ctx, http.MethodGet, url, headers, nil, &start); err != nil {
		return StartEventResponse{}, fmt.Errorf("starting event %s: %w", eventID, err)
	}
	return start, nil
}

// SubmitEvent posts an event with the full case data payload. The returned
// CaseDetails reflect the post-event state of the case.
func (c *Client) SubmitEvent(
	ctx context.Context,
	userID, caseID string,
	event model.Event,
	data model.CaseData,
	eventToken string,
	headers auth.SecurityHeaders,
) (model.CaseDetails, error) {
	submission := eventSubmission{
		Data:       data,
		EventToken: eventToken,
	}
	submission.Event.ID = event.ID
	submission.Event.Summary = event.Summary
	submission.Event.Description = event.Description

	var details model.CaseDetails
	url := fmt.Sprintf("%s/cases/%s/events", c.casePath(userID), caseID)
	if err := c.do(ctx, http.MethodPost, url, headers, submission, &details); err != nil {
		return model.CaseDetails{}, fmt.Errorf("submitting event %s: %w", event.ID, err)
	}
	return details, nil
}

// CaseHistory returns the audit log of events on a case, newest first.
func (c *Client) CaseHistory(ctx context.Context, userID, caseID string, headers auth.SecurityHeaders) ([]model.HistoryEvent, error) {
	var history []model.HistoryEvent
	url := fmt.Sprintf("%s/cases/%s/events", c.casePath(userID), caseID)
	if err := c.do(ctx, http.MethodGet, url, headers, nil, &history); err != nil {
		return nil, fmt.Errorf("fetching case history: %w", err)
	}
	return history, nil
}

func (c *Client) do(ctx context.Context, method, url string, headers auth.SecurityHeaders, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", headers.UserToken)
	req.Header.Set("ServiceAuthorization", headers.ServiceToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling case API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return auth.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("case API returned status %d: %s", resp.StatusCode, logger.Truncate(string(raw), 512))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
