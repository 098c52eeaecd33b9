package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/common"
	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

const (
	DefaultBaseURL = "https://api.rccmaldives.com/ess"
	DefaultFileURL = "https://hros.rccmaldives.com/assets/document/"
	DefaultTimeout = 15 * time.Second

	maxBodySize = 8 << 20
)

// HTTPClient talks to the PHP backend over HTTP.
type HTTPClient struct {
	baseURL string
	fileURL string
	http    *http.Client
	maxBody int64
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds every request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithMaxBodySize caps the size of an API response body.
func WithMaxBodySize(n int64) Option {
	return func(c *HTTPClient) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func NewHTTPClient(baseURL, fileURL string, opts ...Option) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if fileURL == "" {
		fileURL = DefaultFileURL
	}
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		fileURL: strings.TrimRight(fileURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		maxBody: maxBodySize,
		log:     logging.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *HTTPClient) get(ctx context.Context, op, path string, query url.Values) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c.do(ctx, op, req)
}

func (c *HTTPClient) postForm(ctx context.Context, op, path string, form url.Values) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(ctx, op, req)
}

// postMultipart sends fields in the given order as multipart/form-data.
func (c *HTTPClient) postMultipart(ctx context.Context, op, path string, fields [][2]string) (*envelope, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), &buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(ctx, op, req)
}

func (c *HTTPClient) send(ctx context.Context, op string, req *http.Request) (*http.Response, error) {
	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", op, ctxErr)
		}
		c.log.Warn(ctx, "request failed", "op", op, "request_id", reqID, "error", err)
		return nil, fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	c.log.Debug(ctx, "request", "op", op, "request_id", reqID,
		"status", resp.StatusCode, "elapsed", time.Since(start))
	return resp, nil
}

func (c *HTTPClient) do(ctx context.Context, op string, req *http.Request) (*envelope, error) {
	resp, err := c.send(ctx, op, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", op, ctxErr)
		}
		return nil, fmt.Errorf("%s: %w: read body: %v", op, ErrUnavailable, err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, &ParseError{Op: op, Err: fmt.Errorf("%w: over %d bytes", ErrResponseTooLarge, c.maxBody)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, httpStatusError(op, resp.StatusCode, body)
	}
	return decodeEnvelope(op, body)
}

// httpStatusError maps a non-2xx response. A message in the body wins, as the
// backend uses it for failed logins.
func httpStatusError(op string, code int, body []byte) error {
	var env envelope
	if json.Unmarshal(body, &env) == nil && env.Message != "" {
		return &ApplicationError{Op: op, Message: env.Message, StatusCode: code}
	}
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	return fmt.Errorf("%s: %w: http %d", op, ErrUnavailable, code)
}

func empQuery(empNo string) url.Values {
	return url.Values{"emp_no": {empNo}}
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	const op = "login"
	env, err := c.postForm(ctx, op, "/auth/index.php", url.Values{
		"username": {username},
		"password": {password},
	})
	if err != nil {
		return nil, err
	}
	return decodeRequired[*models.User](op, env.Data)
}

func (c *HTTPClient) Employee(ctx context.Context, empNo string) (models.Employee, error) {
	const op = "employee"
	env, err := c.get(ctx, op, "/employees/index.php", empQuery(empNo))
	if err != nil {
		return models.Employee{}, err
	}
	return decodeRequired[models.Employee](op, env.Data)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, empNo string, p models.ProfileUpdate) error {
	_, err := c.postMultipart(ctx, "update profile", "/employees/update_profile.php", [][2]string{
		{"emp_no", empNo},
		{"contact_number", p.ContactNumber},
		{"email", p.Email},
		{"present_address", p.PresentAddress},
		{"emergency_contact_number", p.EmergencyContactNumber},
		{"emergency_contact_name", p.EmergencyContactName},
	})
	return err
}

func (c *HTTPClient) Documents(ctx context.Context, empNo string) ([]models.Document, error) {
	const op = "documents"
	env, err := c.get(ctx, op, "/document/index.php", empQuery(empNo))
	if err != nil {
		return nil, err
	}
	return decodeList[models.Document](op, env.Data)
}

func (c *HTTPClient) Notices(ctx context.Context) ([]models.Notice, error) {
	const op = "notices"
	env, err := c.get(ctx, op, "/settings/index.php", url.Values{"type": {"notices"}})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Notice](op, env.Data)
}

func (c *HTTPClient) Holidays(ctx context.Context) ([]models.Holiday, error) {
	const op = "holidays"
	env, err := c.get(ctx, op, "/settings/index.php", url.Values{"type": {"holidays"}})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Holiday](op, env.Data)
}

func (c *HTTPClient) LeaveBalances(ctx context.Context, empNo string) (models.LeaveBalances, error) {
	const op = "leave balances"
	env, err := c.get(ctx, op, "/leaves/balances.php", empQuery(empNo))
	if err != nil {
		return nil, err
	}
	if isEmpty(env.Data) {
		return models.LeaveBalances{}, nil
	}
	return decodeRequired[models.LeaveBalances](op, env.Data)
}

func (c *HTTPClient) LeaveHistory(ctx context.Context, empNo string) ([]models.LeaveRecord, error) {
	const op = "leave history"
	env, err := c.get(ctx, op, "/leaves/index.php", empQuery(empNo))
	if err != nil {
		return nil, err
	}
	return decodeList[models.LeaveRecord](op, env.Data)
}

func (c *HTTPClient) Handbook(ctx context.Context) ([]models.HandbookSection, error) {
	const op = "handbook"
	env, err := c.get(ctx, op, "/handbook/index.php", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.HandbookSection](op, env.Data)
}

func (c *HTTPClient) ChatMessages(ctx context.Context, empNo string) ([]models.Message, error) {
	const op = "chat messages"
	env, err := c.get(ctx, op, "/chat/index.php", empQuery(empNo))
	if err != nil {
		return nil, err
	}
	return decodeList[models.Message](op, env.Messages)
}

func (c *HTTPClient) SendChatMessage(ctx context.Context, empNo, text string) error {
	_, err := c.postForm(ctx, "send chat message", "/chat/send.php", url.Values{
		"emp_no":  {empNo},
		"message": {text},
	})
	return err
}

func (c *HTTPClient) Birthdays(ctx context.Context) ([]models.Birthday, error) {
	const op = "birthdays"
	env, err := c.get(ctx, op, "/birthday/index.php", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Birthday](op, env.Data)
}

// FileURL is the public address of a stored document file.
func (c *HTTPClient) FileURL(name string) string {
	return c.fileURL + "/" + url.PathEscape(name)
}

// DownloadFile streams a document file. The caller closes the reader.
func (c *HTTPClient) DownloadFile(ctx context.Context, name string) (io.ReadCloser, error) {
	const op = "download file"
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("%s: %w: %q", op, common.ErrorValidation, name)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.FileURL(name), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	resp, err := c.send(ctx, op, req)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%s %s: %w", op, name, common.ErrorNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		resp.Body.Close()
		return nil, fmt.Errorf("%s: %w: http %d", op, ErrUnavailable, resp.StatusCode)
	}
	return resp.Body, nil
}

