package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkurbatovs/pulse/internal/client/models"
	"github.com/dkurbatovs/pulse/internal/logging"
)

// HTTPClient talks JSON over HTTP to the Pulse backend.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the given base URL. A zero timeout
// leaves request deadlines entirely to the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (models.UserRecord, error) {
	var user models.UserRecord
	err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &user)
	return user, err
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var sess models.Session
	err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &sess)
	return sess, err
}

func (c *HTTPClient) GlobalFeed(ctx context.Context, token string) ([]models.PostEntity, error) {
	var posts []models.PostEntity
	err := c.do(ctx, http.MethodGet, "/posts", token, nil, &posts)
	return posts, err
}

func (c *HTTPClient) UserFeed(ctx context.Context, token, userID string) ([]models.PostEntity, error) {
	var posts []models.PostEntity
	path := fmt.Sprintf("/posts/%s/posts", url.PathEscape(userID))
	err := c.do(ctx, http.MethodGet, path, token, nil, &posts)
	return posts, err
}

func (c *HTTPClient) ToggleLike(ctx context.Context, token, postID, userID string) (models.PostEntity, error) {
	body := map[string]string{"userId": userID}
	var post models.PostEntity
	path := fmt.Sprintf("/posts/%s/like", url.PathEscape(postID))
	err := c.do(ctx, http.MethodPatch, path, token, body, &post)
	return post, err
}

func (c *HTTPClient) AddComment(ctx context.Context, token, postID, comment string) (models.PostEntity, error) {
	body := map[string]string{"comment": comment}
	var post models.PostEntity
	path := fmt.Sprintf("/posts/%s/comment", url.PathEscape(postID))
	err := c.do(ctx, http.MethodPatch, path, token, body, &post)
	return post, err
}

// do performs one round trip: marshal body, attach headers, issue the
// request, and decode either the success shape into out or the {"msg"}
// error envelope into a *RequestError. Transport-level failures come back
// wrapped around ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	log := c.log.With("request_id", uuid.NewString(), "method", method, "path", path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(ctx, log, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Warn(ctx, "undecodable response", "status", resp.StatusCode, "error", err)
			return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
		}
	}

	log.Debug(ctx, "request completed", "status", resp.StatusCode)
	return nil
}

func (c *HTTPClient) decodeError(ctx context.Context, log logging.Logger, resp *http.Response) error {
	var envelope struct {
		Msg string `json:"msg"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Msg == "" {
		envelope.Msg = http.StatusText(resp.StatusCode)
	}
	log.Warn(ctx, "request rejected", "status", resp.StatusCode, "msg", envelope.Msg)
	return &RequestError{StatusCode: resp.StatusCode, Msg: envelope.Msg}
}
