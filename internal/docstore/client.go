// Package docstore is the HTTP client for the document store that holds
// uploaded evidence files.
package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/iac-appeals/aip-sync/core/config"
	"github.com/iac-appeals/aip-sync/internal/auth"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.DocStoreConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Document is an uploaded file as the document store reports it. URL is the
// store's self link; BinaryURL serves the raw bytes.
type Document struct {
	Name      string
	URL       string
	BinaryURL string
}

type uploadResponse struct {
	Embedded struct {
		Documents []struct {
			OriginalDocumentName string `json:"originalDocumentName"`
			Links                struct {
				Self struct {
					Href string `json:"href"`
				} `json:"self"`
				Binary struct {
					Href string `json:"href"`
				} `json:"binary"`
			} `json:"_links"`
		} `json:"documents"`
	} `json:"_embedded"`
}

// Upload stores a single file with restricted classification and returns its
// store location.
func (c *Client) Upload(ctx context.Context, headers auth.SecurityHeaders, filename string, content io.Reader) (*Document, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("files", filename)
	if err != nil {
		return nil, fmt.Errorf("creating multipart file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copying file content: %w", err)
	}
	if err := writer.WriteField("classification", "RESTRICTED"); err != nil {
		return nil, fmt.Errorf("writing classification: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents", &buf)
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Authorization", headers.UserToken)
	req.Header.Set("ServiceAuthorization", headers.ServiceToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uploading document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("document store returned status %d", resp.StatusCode)
	}

	var body uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding upload response: %w", err)
	}
	if len(body.Embedded.Documents) == 0 {
		return nil, fmt.Errorf("document store returned no documents")
	}

	doc := body.Embedded.Documents[0]
	binaryURL := doc.Links.Binary.Href
	if binaryURL == "" {
		binaryURL = doc.Links.Self.Href + "/binary"
	}

	return &Document{
		Name:      doc.OriginalDocumentName,
		URL:       doc.Links.Self.Href,
		BinaryURL: binaryURL,
	}, nil
}

// Delete removes a document by its store URL.
func (c *Client) Delete(ctx context.Context, headers auth.SecurityHeaders, documentURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, documentURL, nil)
	if err != nil {
		return fmt.Errorf("building delete request: %w", err)
	}
	req.Header.Set("Authorization", headers.UserToken)
	req.Header.Set("ServiceAuthorization", headers.ServiceToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("document store returned status %d", resp.StatusCode)
	}
	return nil
}

// FetchBinary streams the raw bytes of a stored document. The caller owns
// closing the returned reader.
func (c *Client) FetchBinary(ctx context.Context, headers auth.SecurityHeaders, binaryURL string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, binaryURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building fetch request: %w", err)
	}
	req.Header.Set("Authorization", headers.UserToken)
	req.Header.Set("ServiceAuthorization", headers.ServiceToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching document: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", fmt.Errorf("document store returned status %d", resp.StatusCode)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}
