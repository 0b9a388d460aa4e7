package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// IdamClient fetches user details from the identity provider.
type IdamClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewIdamClient(baseURL string) *IdamClient {
	return &IdamClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type userInfoResponse struct {
	UID        string `json:"uid"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Sub        string `json:"sub"`
}

func (c *IdamClient) UserDetails(ctx context.Context, userToken string) (*UserDetails, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/o/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("building userinfo request: %w", err)
	}
	req.Header.Set("Authorization", userToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching user details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var body userInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding user details: %w", err)
	}

	return &UserDetails{
		UID:        body.UID,
		GivenName:  body.GivenName,
		FamilyName: body.FamilyName,
		Email:      body.Sub,
	}, nil
}
