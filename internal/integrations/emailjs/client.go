package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ladypant/store-booking-service/pkg/metrics"
)

const sendPath = "/api/v1.0/email/send"

// Config holds the EmailJS account settings
type Config struct {
	Enabled    bool
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
	Timeout    time.Duration
}

// Client sends booking confirmation emails through the EmailJS REST API.
// Sends are best-effort: a failure never affects the booking it belongs to.
type Client struct {
	cfg        Config
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// NewClient creates a new EmailJS client. rec may be nil when metrics are disabled.
func NewClient(cfg Config, rec MetricsRecorder, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		metrics: rec,
		log:     log,
	}
}

// Send delivers one confirmation email. When the provider is disabled in
// configuration, the send is skipped and reported as success.
func (c *Client) Send(ctx context.Context, conf Confirmation) error {
	if !c.cfg.Enabled {
		c.log.Info("emailjs: disabled, skipping confirmation for %s", conf.ToEmail)
		c.record(metrics.NotificationSkipped)
		return nil
	}

	replyTo := conf.ReplyTo
	if replyTo == "" {
		replyTo = conf.ToEmail
	}

	payload := sendRequest{
		ServiceID:  c.cfg.ServiceID,
		TemplateID: c.cfg.TemplateID,
		UserID:     c.cfg.PublicKey,
		TemplateParams: templateParams{
			ToEmail:      conf.ToEmail,
			ToName:       conf.ToName,
			BookingDate:  conf.Date,
			BookingTime:  conf.Time,
			BookingItems: strconv.Itoa(conf.Items),
			Phone:        conf.Phone,
			Email:        replyTo,
			BookingID:    conf.BookingID,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.record(metrics.NotificationFailed)
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	url := c.cfg.BaseURL + sendPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.record(metrics.NotificationFailed)
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(metrics.NotificationFailed)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.record(metrics.NotificationFailed)
		return fmt.Errorf("%w: status %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}

	c.log.Info("emailjs: confirmation sent to %s for booking %s", conf.ToEmail, conf.BookingID)
	c.record(metrics.NotificationSent)
	return nil
}

func (c *Client) record(outcome string) {
	if c.metrics != nil {
		c.metrics.RecordNotification(outcome)
	}
}
