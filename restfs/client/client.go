// Package client wraps resty for the Files.com REST API.
package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/code19m/errx"
	"github.com/go-resty/resty/v2"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/filestore/filescomwr"
	"github.com/rise-and-shine/filescom/logger"
	"github.com/rise-and-shine/filescom/restfs/types"
)

const (
	headerAPIKey  = "X-FilesAPI-Key"
	headerSession = "X-FilesAPI-Auth"
)

//nolint:gochecknoglobals // static lookup table
var retryableStatuses = []int{
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
	509,
}

// Client holds two resty clients: api talks to the REST root with credentials,
// transfer follows upload and download URIs without them.
type Client struct {
	api       *resty.Client
	transfer  *resty.Client
	sessionID string
}

// New creates a REST client. With username/password a session is created before New returns.
func New(ctx context.Context, cfg Config, log logger.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.RootURL == "" {
		cfg.RootURL = DefaultRootURL
	}
	cfg.Network = cfg.Network.WithDefaults()

	c := &Client{
		api: newResty(cfg.Network, log).
			SetBaseURL(strings.TrimRight(cfg.RootURL, "/")).
			SetHeader("Accept", "application/json"),
		transfer: newResty(cfg.Network, log),
	}

	if cfg.APIKey != "" {
		c.api.SetHeader(headerAPIKey, cfg.APIKey)
		return c, nil
	}

	var s types.Session
	resp, err := c.R(ctx).
		SetBody(types.SessionRequest{Username: cfg.Username, Password: cfg.Password}).
		SetResult(&s).
		Post("/sessions")
	if err = Check(resp, err); err != nil {
		return nil, errx.Wrap(err,
			errx.WithCode(filestore.CodeAuthenticationFailed),
			errx.WithType(errx.T_Authentication),
			errx.WithDetails(errx.D{"username": cfg.Username}),
		)
	}
	if s.ID == "" {
		return nil, types.MissingField(filestore.CodeAuthenticationFailed, "session id")
	}

	c.sessionID = s.ID
	c.api.SetHeader(headerSession, s.ID)
	return c, nil
}

func newResty(n filescomwr.NetworkConfig, log logger.Logger) *resty.Client {
	return resty.New().
		SetLogger(log).
		SetTimeout(n.Timeout).
		SetRetryCount(n.MaxRetries).
		SetRetryWaitTime(n.MinRetryDelay).
		SetRetryMaxWaitTime(n.MaxRetryDelay).
		AddRetryCondition(func(r *resty.Response, _ error) bool {
			return r != nil && slices.Contains(retryableStatuses, r.StatusCode())
		})
}

// SessionID returns the session created during New, or "" for API key auth.
func (c *Client) SessionID() string {
	return c.sessionID
}

// R starts an authenticated request against the REST root.
func (c *Client) R(ctx context.Context) *resty.Request {
	return c.api.R().SetContext(ctx).SetError(&types.APIError{})
}

// Transfer starts an unauthenticated request against an absolute upload or download URI.
func (c *Client) Transfer(ctx context.Context) *resty.Request {
	return c.transfer.R().SetContext(ctx)
}

// Check turns a transport error or an error status into a typed error.
func Check(resp *resty.Response, err error) error {
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return errx.Wrap(err, errx.WithCode(types.CodeRequestFailed),
				errx.WithDetails(errx.D{"method": urlErr.Op, "url": urlErr.URL}))
		}
		return errx.Wrap(err, errx.WithCode(types.CodeRequestFailed))
	}
	if !resp.IsError() {
		return nil
	}

	apiErr, _ := resp.Error().(*types.APIError)
	return types.StatusError(resp.Request.Method, resp.Request.URL, resp.StatusCode(), apiErr)
}

// EscapePath escapes every segment of a remote path for use in a request URL.
func EscapePath(p string) string {
	segments := strings.Split(strings.Trim(p, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
