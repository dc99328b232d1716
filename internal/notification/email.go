package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wneessen/go-mail"
)

var ErrMailerDisabled = errors.New("mailer is not configured")

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	TLS     string
	SSL     bool
	Timeout time.Duration
}

type SMTPMailer struct {
	client *mail.Client
	from   string
	name   string
	logger logger.Logger
}

func NewSMTPMailer(cfg SMTPConfig, logger logger.Logger) (*SMTPMailer, error) {
	if cfg.Host == "" || cfg.From == "" {
		logger.Warn("smtp host or sender is empty, confirmation emails disabled")
		return &SMTPMailer{logger: logger}, nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
		mail.WithTLSPortPolicy(tlsPolicy(cfg.TLS)),
	}
	if cfg.SSL {
		opts = append(opts, mail.WithSSL())
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPMailer{client: client, from: cfg.From, name: cfg.FromName, logger: logger}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, email domain.Email) error {
	if m.client == nil {
		return ErrMailerDisabled
	}

	msg, err := m.message(email)
	if err != nil {
		return err
	}

	if err = m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	m.logger.Debug("email sent",
		logger.String("to", email.To),
		logger.String("subject", email.Subject),
	)
	return nil
}

func (m *SMTPMailer) message(email domain.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	var err error
	if m.name != "" {
		err = msg.FromFormat(m.name, m.from)
	} else {
		err = msg.From(m.from)
	}
	if err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err = msg.To(email.To); err != nil {
		return nil, fmt.Errorf("set recipient %q: %w", email.To, err)
	}

	msg.Subject(email.Subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, email.Text)
	if email.HTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	}

	return msg, nil
}

func tlsPolicy(s string) mail.TLSPolicy {
	switch s {
	case "mandatory":
		return mail.TLSMandatory
	case "none":
		return mail.NoTLS
	default:
		return mail.TLSOpportunistic
	}
}
