// Package mail provides the outbound mail implementations of the Mailer
// service: a real SMTP transport and a log-only transport for development.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"

	"plateful/config"
	"plateful/internal/domain/service"

	"github.com/pkg/errors"
)

// NewMailer selects the Mailer implementation from config. Unknown providers
// fall back to the log mailer so a misconfigured environment still boots.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mail != nil && cfg.Mail.Provider == "smtp" {
		return &smtpMailer{cfg: cfg, logger: logger}
	}
	if cfg.Mail != nil && cfg.Mail.Provider != "" && cfg.Mail.Provider != "log" {
		logger.Warn("unknown mail provider, falling back to log",
			slog.String("provider", cfg.Mail.Provider))
	}

	return &logMailer{logger: logger}
}

// smtpMailer delivers mail through a plain SMTP relay.
type smtpMailer struct {
	cfg    *config.Config
	logger *slog.Logger
}

func (m *smtpMailer) SendLoginCode(ctx context.Context, email, code string) error {
	smtpCfg := m.cfg.Mail.SMTP
	addr := net.JoinHostPort(smtpCfg.Host, smtpCfg.Port)

	var auth smtp.Auth
	if smtpCfg.UserName != "" {
		auth = smtp.PlainAuth("", smtpCfg.UserName, smtpCfg.Password, smtpCfg.Host)
	}

	message := buildLoginCodeMessage(smtpCfg.From, email, code)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, smtpCfg.From, []string{email}, message)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "send login code mail")
		}
		m.logger.Info("login code mail sent")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "send login code mail")
	}
}

// buildLoginCodeMessage renders the RFC 5322 message body.
func buildLoginCodeMessage(from, to, code string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	b.WriteString("Subject: Your login code\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Your login code is %s\r\n", code)
	b.WriteString("\r\nIt expires in 5 minutes. If you did not request it, ignore this mail.\r\n")

	return []byte(b.String())
}

// logMailer writes codes to the application log instead of sending mail.
// Development only; it defeats the point of the code flow in production.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) SendLoginCode(_ context.Context, email, code string) error {
	m.logger.Info("login code issued",
		slog.String("email", email),
		slog.String("code", code))

	return nil
}
