package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/httperr"
)

// ======================================================
// CLIENT
// ======================================================

// Client talks to the remote marketplace API. Three flavors exist, differing
// only by the bearer token attached at construction time: user, admin and
// public (no token). Every call is a single attempt — no retry, no backoff;
// a failure is terminal for that user action.
type Client struct {
	base  string
	token string
	kind  string
	http  *http.Client
	log   *logrus.Entry
}

func newClient(cfg *config.Config, token, kind string) *Client {
	return &Client{
		base:  cfg.APIBaseURL,
		token: token,
		kind:  kind,
		http:  &http.Client{Timeout: 30 * time.Second},
		log:   logrus.WithField("client", kind),
	}
}

func NewUserClient(cfg *config.Config, token string) *Client {
	return newClient(cfg, token, "user")
}

func NewAdminClient(cfg *config.Config, token string) *Client {
	return newClient(cfg, token, "admin")
}

func NewPublicClient(cfg *config.Config) *Client {
	return newClient(cfg, "", "public")
}

// ======================================================
// TRANSPORT
// ======================================================

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"error_code"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("path", path).Warn("upstream request failed")
		return httperr.ErrUpstream(0, "network_error", "")
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var eb errorBody
		_ = json.NewDecoder(res.Body).Decode(&eb)

		code := eb.Code
		if code == "" {
			code = eb.Error
		}
		if code == "" {
			code = "upstream_error"
		}

		c.log.WithFields(logrus.Fields{
			"path":   path,
			"status": res.StatusCode,
			"code":   code,
		}).Warn("upstream error response")

		return httperr.ErrUpstream(res.StatusCode, code, eb.Message)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return httperr.ErrUpstream(res.StatusCode, "invalid_response", "")
		}
	}

	return nil
}
