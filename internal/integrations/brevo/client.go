package brevo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger is the logging surface this client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client relays lead-capture submissions to the mailing provider's
// hosted form endpoint as a browser-style form POST.
type Client struct {
	formURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a lead-capture client.
func NewClient(formURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		formURL: formURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SubmitLead forwards a lead to the provider.
//
// The provider's response body carries no useful information, so it is
// drained and discarded. Server-error statuses are tolerated: the
// original front-end proceeded to its thank-you page regardless of the
// remote outcome, and the relay keeps that contract. Only client-error
// statuses (a malformed submission on our side) are reported.
func (c *Client) SubmitLead(ctx context.Context, lead Lead) error {
	form := url.Values{}
	form.Set("FIRSTNAME", lead.FirstName)
	form.Set("LASTNAME", lead.LastName)
	form.Set("EMAIL", lead.Email)
	form.Set("SMS", lead.Phone)
	form.Set("SMS__COUNTRY_CODE", lead.CountryCode)
	form.Set("locale", lead.Locale)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.formURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 400:
		c.log.Info("SubmitLead: accepted email=%s status=%d", lead.Email, resp.StatusCode)
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		c.log.Warn("SubmitLead: rejected email=%s status=%d", lead.Email, resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	default:
		c.log.Error("SubmitLead: provider error email=%s status=%d, proceeding anyway", lead.Email, resp.StatusCode)
		return nil
	}
}
