// Package httpauth implements the session AuthService and ProfileService
// against a GoTrue-style REST identity service: password-grant sign-in,
// signup, logout, and a profiles table read keyed by principal id. The
// session artifact (token plus principal) is persisted through a storage
// slot so a session survives between invocations.
package httpauth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lexhall/lawdesk/internal/storage"
	"github.com/lexhall/lawdesk/pkg/types"
)

// SessionSlot is the collection name of the persisted session artifact.
const SessionSlot = "session"

// ErrNoProfile is returned when the profiles table has no row for the
// principal.
var ErrNoProfile = errors.New("profile not found")

// Client talks to the identity service over HTTP. It implements
// session.AuthService and session.ProfileService.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	slots   storage.Adapter

	token     string
	principal *types.Principal
}

// artifact is the persisted session shape.
type artifact struct {
	AccessToken string          `json:"access_token"`
	Principal   types.Principal `json:"principal"`
}

// New creates a client for the identity service at baseURL. The storage
// adapter holds the persisted session artifact.
func New(cfg types.AuthConfig, slots storage.Adapter) *Client {
	return &Client{
		baseURL: cfg.URL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: 15 * time.Second},
		slots:   slots,
	}
}

// SignIn performs a password-grant token request. The service's error
// message is returned verbatim on failure.
func (c *Client) SignIn(ctx context.Context, email, password string) (types.Principal, error) {
	var resp struct {
		AccessToken string          `json:"access_token"`
		User        types.Principal `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password",
		map[string]any{"email": email, "password": password}, &resp)
	if err != nil {
		return types.Principal{}, err
	}

	c.token = resp.AccessToken
	c.principal = &resp.User
	c.persistSession()
	return resp.User, nil
}

// SignUp registers a new identity with the full name attached as user
// metadata. The identity is not signed in.
func (c *Client) SignUp(ctx context.Context, email, password, fullName string) (types.Principal, error) {
	var resp struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/v1/signup", map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]any{"full_name": fullName},
	}, &resp)
	if err != nil {
		return types.Principal{}, err
	}
	return types.Principal{ID: resp.ID, Email: resp.Email}, nil
}

// SignOut revokes the session remotely and clears the local artifact. The
// local artifact is cleared even when the remote call fails.
func (c *Client) SignOut(ctx context.Context) error {
	var remoteErr error
	if c.token != "" {
		remoteErr = c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, nil)
	}
	c.token = ""
	c.principal = nil
	_ = c.slots.Delete(storage.Key(SessionSlot))
	return remoteErr
}

// Current returns the principal of the persisted session, or nil when no
// session artifact exists. A rejected token clears the artifact.
func (c *Client) Current(ctx context.Context) (*types.Principal, error) {
	if c.principal != nil {
		return c.principal, nil
	}

	data, ok, err := c.slots.Read(storage.Key(SessionSlot))
	if err != nil || !ok {
		return nil, err
	}
	var art artifact
	if err := json.Unmarshal(data, &art); err != nil || art.AccessToken == "" {
		_ = c.slots.Delete(storage.Key(SessionSlot))
		return nil, nil
	}

	c.token = art.AccessToken
	var user types.Principal
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, &user); err != nil {
		// Expired or revoked session.
		c.token = ""
		_ = c.slots.Delete(storage.Key(SessionSlot))
		return nil, nil
	}
	c.principal = &user
	return c.principal, nil
}

// FetchProfile reads the profiles row for the principal id.
func (c *Client) FetchProfile(ctx context.Context, principalID string) (types.Profile, error) {
	var rows []types.Profile
	path := fmt.Sprintf("/rest/v1/profiles?id=eq.%s&select=*", principalID)
	if err := c.do(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return types.Profile{}, err
	}
	if len(rows) == 0 {
		return types.Profile{}, ErrNoProfile
	}
	return rows[0], nil
}

// persistSession writes the session artifact. Persistence trouble is not a
// sign-in failure; the session just won't survive this process.
func (c *Client) persistSession() {
	if c.principal == nil {
		return
	}
	data, err := json.Marshal(artifact{AccessToken: c.token, Principal: *c.principal})
	if err != nil {
		return
	}
	_ = c.slots.Write(storage.Key(SessionSlot), data)
}

// do issues one JSON request. Non-2xx responses are turned into errors
// carrying the service's message verbatim.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(serviceMessage(data, resp.Status))
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// serviceMessage extracts the error message from a GoTrue/PostgREST error
// body, falling back to the HTTP status line.
func serviceMessage(body []byte, status string) string {
	var e struct {
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil {
		switch {
		case e.ErrorDescription != "":
			return e.ErrorDescription
		case e.Msg != "":
			return e.Msg
		case e.Message != "":
			return e.Message
		}
	}
	return status
}
