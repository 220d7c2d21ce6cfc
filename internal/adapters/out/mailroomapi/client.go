// Package mailroomapi is the HTTP client the front desk terminal uses to talk to the
// mailroom service.
package mailroomapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"slices"
	"strings"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/pickup"
	"mailroom/internal/generated/servers"
	"mailroom/internal/pkg/errs"
)

const defaultTimeout = 30 * time.Second

// APIError is an error response of the service. It unwraps to the errs sentinel matching
// its status code, so callers can use errors.Is as they would against the core.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

// Error includes the per-field messages, sorted by field name.
func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("mailroom api: %d %s", e.Status, e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for name, msg := range e.Fields {
		parts = append(parts, name+": "+msg)
	}
	slices.Sort(parts)
	return fmt.Sprintf("mailroom api: %d %s (%s)", e.Status, e.Message, strings.Join(parts, ", "))
}

// Unwrap maps the HTTP status back to the matching errs sentinel.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return errs.ErrUnauthenticated
	case http.StatusForbidden:
		return errs.ErrForbidden
	case http.StatusNotFound:
		return errs.ErrObjectNotFound
	case http.StatusConflict:
		return errs.ErrInvalidTransition
	case http.StatusUnprocessableEntity:
		return errs.ErrValueIsInvalid
	default:
		return nil
	}
}

// Client calls the REST API. Login stores the bearer token used by later calls; a Client
// is meant for one operator at a time.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// NewClient targets baseURL, e.g. "http://localhost:8080". A nil httpClient gets a
// default one with a timeout.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("base_url", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// WithToken returns a client that authenticates with an already issued token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Token returns the bearer token of the current session, or "" when logged out.
func (c *Client) Token() string {
	return c.token
}

// Login opens a session and keeps its token.
func (c *Client) Login(ctx context.Context, email, password string) (servers.LoginResponse, error) {
	body, err := json.Marshal(servers.LoginRequest{Email: email, Password: password})
	if err != nil {
		return servers.LoginResponse{}, err
	}

	var out servers.LoginResponse
	if err = c.do(ctx, http.MethodPost, "/api/login", "application/json", bytes.NewReader(body), &out); err != nil {
		return servers.LoginResponse{}, err
	}
	c.token = out.Token
	return out, nil
}

// Logout revokes the current session.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/logout", "", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// GetPackage fetches one package with its history.
func (c *Client) GetPackage(ctx context.Context, id kernel.UUID) (servers.PackageDetail, error) {
	var out servers.PackageDetail
	err := c.do(ctx, http.MethodGet, "/api/packages/"+id.String(), "", nil, &out)
	return out, err
}

// PendingPackages returns one page of pending packages, newest first.
func (c *Client) PendingPackages(ctx context.Context, page int) (servers.PackagePage, error) {
	q := url.Values{}
	q.Set("status", string(servers.PackageStatusPending))
	if page > 1 {
		q.Set("page", fmt.Sprint(page))
	}

	var out servers.PackagePage
	err := c.do(ctx, http.MethodGet, "/api/packages?"+q.Encode(), "", nil, &out)
	return out, err
}

// Collect implements pickup.Collector by posting the bundle as a multipart form.
func (c *Client) Collect(ctx context.Context, packageID kernel.UUID, bundle pickup.Bundle) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	if err := form.WriteField("collector_name", bundle.Identity.Name); err != nil {
		return err
	}
	if err := form.WriteField("collector_cpf", bundle.Identity.CPF.String()); err != nil {
		return err
	}
	if err := form.WriteField("signature", dataURL(bundle.Signature)); err != nil {
		return err
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="photo"; filename="photo"`)
	header.Set("Content-Type", bundle.Photo.ContentType)
	part, err := form.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err = part.Write(bundle.Photo.Data); err != nil {
		return err
	}
	if err = form.Close(); err != nil {
		return err
	}

	path := "/api/packages/" + packageID.String() + "/collect"
	return c.do(ctx, http.MethodPost, path, form.FormDataContentType(), &buf, nil)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body servers.Error
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		}
		if body.Fields != nil {
			apiErr.Fields = *body.Fields
		}
	}
	return apiErr
}

func dataURL(img pickup.Image) string {
	contentType := img.ContentType
	if contentType == "" {
		contentType = "image/png"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
