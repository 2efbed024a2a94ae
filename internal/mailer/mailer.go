// Package mailer delivers the rendered reflection over SMTP.
package mailer

import (
	"fmt"
	"time"

	"github.com/inbucket/html2text"
	"github.com/rs/zerolog/log"
	gomail "gopkg.in/gomail.v2"

	"github.com/stateanchor/stateanchor/internal/model"
)

// sleepFunc is the sleep used between retries (injectable for tests).
var sleepFunc = time.Sleep

const maxBackoff = 32 * time.Second

// dialSender abstracts gomail's DialAndSend for testing.
type dialSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends one HTML email per run, with a plain-text alternative and a
// bounded retry loop around the SMTP dial.
type Mailer struct {
	dialer  dialSender
	cfg     model.MailConfig
	backoff time.Duration
	retries int
}

// New creates a Mailer from configuration.
func New(cfg model.MailConfig) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.From == "" || cfg.To == "" {
		return nil, fmt.Errorf("sender and recipient addresses are required")
	}

	retries := cfg.RetryCount
	if retries <= 0 {
		retries = 3
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = 100 * time.Millisecond
	}

	return &Mailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		cfg:     cfg,
		backoff: backoff,
		retries: retries,
	}, nil
}

// Send delivers the HTML body to the configured recipient. A text/plain
// alternative is derived from the HTML for clients that prefer it.
func (m *Mailer) Send(htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Subject", m.cfg.Subject)

	plain, err := html2text.FromString(htmlBody, html2text.Options{TextOnly: true})
	if err != nil {
		// The text part is a nicety; the HTML body is the deliverable.
		log.Warn().Err(err).Msg("plain-text conversion failed, sending HTML only")
		msg.SetBody("text/html", htmlBody)
	} else {
		msg.SetBody("text/plain", plain)
		msg.AddAlternative("text/html", htmlBody)
	}

	var lastErr error
	backoff := m.backoff
	for attempt := 0; attempt <= m.retries; attempt++ {
		err := m.dialer.DialAndSend(msg)
		if err == nil {
			log.Info().Str("to", m.cfg.To).Int("attempt", attempt+1).Msg("mail sent")
			return nil
		}
		lastErr = err

		if attempt < m.retries {
			log.Warn().Err(lastErr).Dur("backoff", backoff).Int("attempt", attempt+1).Msg("send failed, retrying")
			sleepFunc(backoff)
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}
	}
	return fmt.Errorf("send mail after %d attempts: %w", m.retries+1, lastErr)
}
