package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/contextutil"

	"go.uber.org/zap"
)

const maxErrorBody = 64 << 10

// Client talks JSON to the administration backend. Every call forwards the
// caller's bearer token, tenant and request id taken from ctx.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger ...*zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q: scheme and host are required", baseURL)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	l := zap.L().Named("backend.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("backend.client")
	}

	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		logger:  l,
	}, nil
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Do sends body as JSON (when non-nil) and decodes a 2xx JSON answer into
// out (when non-nil). Non-2xx answers become *apperror.AppError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.readError(req, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		c.logger.Error("decode backend response failed",
			zap.String("method", method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return apperror.Wrap(err, apperror.CodeBackendError, "Respuesta inválida del servidor", http.StatusBadGateway)
	}
	return nil
}

// Upload posts a single file as multipart/form-data under field.
func (c *Client) Upload(ctx context.Context, path, field, filename string, content io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, content); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.readError(req, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return apperror.Wrap(err, apperror.CodeBackendError, "Respuesta inválida del servidor", http.StatusBadGateway)
	}
	return nil
}

// File is a binary payload returned by the backend.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Download fetches a binary payload such as a spreadsheet export.
func (c *Client) Download(ctx context.Context, path string, query url.Values) (File, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return File{}, err
	}

	resp, err := c.send(req)
	if err != nil {
		return File{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return File{}, c.readError(req, resp)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return File{}, apperror.Wrap(err, apperror.CodeServiceUnavailable, apperror.ErrBackendUnavailable.Message, http.StatusServiceUnavailable)
	}

	f := File{
		ContentType: resp.Header.Get("Content-Type"),
		Content:     content,
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		f.Name = params["filename"]
	}
	return f, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	target, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		q := target.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		target.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	if token := contextutil.GetAccessToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if tenant := contextutil.GetTenantID(ctx); tenant != "" {
		req.Header.Set("X-Tenant-ID", tenant)
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}
	return req, nil
}

// resolve accepts both backend-relative paths and the absolute "next" links
// returned by paginated endpoints, as long as they point to the same host.
func (c *Client) resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid backend path %q: %w", path, err)
	}
	if ref.IsAbs() {
		if ref.Host != c.baseURL.Host {
			return nil, fmt.Errorf("backend link %q points outside %s", path, c.baseURL.Host)
		}
		return ref, nil
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + "/" + strings.TrimLeft(ref.Path, "/")
	u.RawQuery = ref.RawQuery
	return &u, nil
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		contextutil.GetLogger(req.Context(), c.logger).Error("backend request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, apperror.Wrap(err, apperror.CodeServiceUnavailable, apperror.ErrBackendUnavailable.Message, http.StatusServiceUnavailable)
	}

	contextutil.GetLogger(req.Context(), c.logger).Debug("backend request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	return resp, nil
}

func (c *Client) readError(req *http.Request, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	appErr := DecodeError(resp.StatusCode, raw)

	contextutil.GetLogger(req.Context(), c.logger).Warn("backend returned error",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("code", appErr.Code),
		zap.String("message", appErr.Message),
	)
	return appErr
}
