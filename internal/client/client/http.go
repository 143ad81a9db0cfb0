package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/physiofit/clinic/internal/client/models"
	"github.com/physiofit/clinic/internal/common"
	"github.com/physiofit/clinic/internal/logging"
)

// maxErrorBody caps how much of a failed response is kept in APIError.
const maxErrorBody = 4 << 10

var _ Client = (*HTTPClient)(nil)

// HTTPClient talks to the clinic REST API. Authenticated calls take the
// access token from the token source installed with SetTokenSource.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	token   func() string
	log     logging.Logger
}

// NewHTTPClient validates baseURL and returns a client. A zero timeout leaves
// requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if log == nil {
		log = logging.Nop{}
	}

	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}, nil
}

// SetTokenSource installs the function consulted for the bearer token on
// every authenticated request. An empty token sends no Authorization header.
func (c *HTTPClient) SetTokenSource(fn func() string) {
	c.token = fn
}

// Password fields are pre-encoded so the caller's bytes can be wiped.
type tokenRequest struct {
	Email    string          `json:"email"`
	Password json.RawMessage `json:"password"`
}

type registerRequest struct {
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Password  json.RawMessage `json:"password"`
	Password2 json.RawMessage `json:"password2"`
}

func (c *HTTPClient) ObtainToken(ctx context.Context, email string, password []byte) (*models.Credential, error) {
	var cred models.Credential
	pw := models.Secret(password).Quote()
	defer common.WipeByteArray(pw)

	req := tokenRequest{Email: email, Password: pw}
	if err := c.do(ctx, http.MethodPost, "token/", nil, req, &cred, false); err != nil {
		return nil, err
	}
	if cred.Access == "" {
		return nil, errors.New("token response has no access token")
	}
	return &cred, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	pw, pw2 := req.Password.Quote(), req.Password2.Quote()
	defer common.WipeByteArray(pw)
	defer common.WipeByteArray(pw2)

	body := registerRequest{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  pw,
		Password2: pw2,
	}
	return c.do(ctx, http.MethodPost, "users/register/", nil, body, nil, false)
}

func (c *HTTPClient) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, true)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any, auth bool) error {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	target := c.baseURL.ResolveReference(ref)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		defer common.WipeByteArray(b)
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth && c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerScheme+" "+tok)
		}
	}

	log := c.log.With("request_id", requestID, "method", method, "path", target.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Warn(ctx, "request rejected", "status", resp.StatusCode)
		return mapStatus(resp.StatusCode, b)
	}
	log.Debug(ctx, "request done", "status", resp.StatusCode)

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapStatus(code int, body []byte) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", ErrUnauthorized, code)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w (status %d)", ErrUnavailable, code)
	default:
		return &APIError{StatusCode: code, Body: strings.TrimSpace(string(body))}
	}
}
