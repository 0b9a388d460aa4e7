package auth

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base32"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// S2SClient leases service-to-service tokens and caches them until shortly
// before expiry. The lease endpoint expects a TOTP derived from the shared
// secret.
type S2SClient struct {
	baseURL          string
	microserviceName string
	secret           string
	tokenTTL         time.Duration
	httpClient       *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewS2SClient(baseURL, microserviceName, secret string, tokenTTL time.Duration) *S2SClient {
	return &S2SClient{
		baseURL:          baseURL,
		microserviceName: microserviceName,
		secret:           secret,
		tokenTTL:         tokenTTL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Token returns a cached service token, leasing a fresh one when the cached
// token is within a minute of expiry.
func (c *S2SClient) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Until(c.expiresAt) > time.Minute {
		return c.token, nil
	}

	token, err := c.lease(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.expiresAt = time.Now().Add(c.tokenTTL)
	return token, nil
}

func (c *S2SClient) lease(ctx context.Context) (string, error) {
	otp, err := totp(c.secret, time.Now())
	if err != nil {
		return "", fmt.Errorf("computing one-time password: %w", err)
	}

	payload, err := json.Marshal(map[string]string{
		"microservice":    c.microserviceName,
		"oneTimePassword": otp,
	})
	if err != nil {
		return "", fmt.Errorf("encoding lease request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/lease", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building lease request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("leasing service token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading lease response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lease returned status %d", resp.StatusCode)
	}

	return "Bearer " + strings.TrimSpace(string(body)), nil
}

// totp computes an RFC 6238 one-time password over a 30 second window with
// 8 digits, matching what the lease endpoint verifies.
func totp(secret string, now time.Time) (string, error) {
	key, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.ToUpper(secret))
	if err != nil {
		return "", fmt.Errorf("decoding secret: %w", err)
	}

	counter := uint64(now.Unix()) / 30
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	code := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return fmt.Sprintf("%08d", code%100000000), nil
}
