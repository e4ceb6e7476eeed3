package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	"github.com/printshophq/printshop-admin/internal/console/session"
)

// APIError carries the server's {message} body alongside the status code
// so callers can surface rejection text verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is the single HTTP gateway the console talks through. Every
// request is decorated with the session's bearer token; every 401 tears
// the session down before the error reaches the caller. One attempt per
// call, no retry.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store

	// OnUnauthorized fires once per 401 response, after the session has
	// been cleared.
	OnUnauthorized func()
}

func New(baseURL string, store *session.Store) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		session: store,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		c.session.Clear()
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return &APIError{StatusCode: res.StatusCode, Message: extractMessage(res.Body, "session expired")}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		fallback := fmt.Sprintf("request failed with status %d", res.StatusCode)
		return &APIError{StatusCode: res.StatusCode, Message: extractMessage(res.Body, fallback)}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func extractMessage(r io.Reader, fallback string) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || body.Message == "" {
		return fallback
	}
	return body.Message
}

// UploadResult is the stored location of an uploaded image.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// UploadImage sends a multipart image upload.
func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader) (UploadResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filepath.Base(filename))
	if err != nil {
		return UploadResult{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return UploadResult{}, err
	}
	if err := writer.Close(); err != nil {
		return UploadResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/admin/upload/image", body)
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out UploadResult
	err = c.send(req, &out)
	return out, err
}

func (c *Client) DeleteImage(ctx context.Context, publicID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/upload/image", map[string]string{"public_id": publicID}, nil)
}

func setQuery(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func withQuery(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

func idPath(prefix string, id int, suffix string) string {
	return prefix + "/" + strconv.Itoa(id) + suffix
}
