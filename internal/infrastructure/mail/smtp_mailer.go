package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"net/textproto"
	"time"

	"github.com/google/uuid"
	jwemail "github.com/jordan-wright/email"

	"pgw_comprovantes/internal/config"
	"pgw_comprovantes/internal/domain/entities"
)

const sendTimeout = 30 * time.Second

// Mailer delivers composed messages through an implicit-TLS SMTP relay
// with credential authentication. Every failure mode is categorized into
// an EmailOutcome tag instead of surfacing as a Go error.
type Mailer struct {
	from      string
	addr      string
	auth      smtp.Auth
	tlsConfig *tls.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		from:      cfg.EmailFrom,
		addr:      fmt.Sprintf("%s:%d", cfg.SMTPServer, cfg.SMTPPort),
		auth:      smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPServer),
		tlsConfig: &tls.Config{ServerName: cfg.SMTPServer},
	}
}

func (m *Mailer) Send(ctx context.Context, msg entities.OutboundEmail) entities.EmailOutcome {
	messageID := fmt.Sprintf("<%s@pgwpay.com.br>", uuid.New())

	e := jwemail.NewEmail()
	e.From = m.from
	e.To = []string{msg.To}
	e.Subject = msg.Subject
	e.HTML = []byte(msg.HTMLBody)
	e.Headers.Set("Message-ID", messageID)
	// Delivery/read notifications go back to the sender.
	e.Headers.Set("Return-Path", m.from)
	e.Headers.Set("Disposition-Notification-To", m.from)

	for _, at := range msg.Attachments {
		a, err := e.Attach(bytes.NewReader(at.Content), at.Filename, at.ContentType)
		if err != nil {
			log.Printf("[receipt][mailer] attach failed to=%s filename=%s err=%v", msg.To, at.Filename, err)
			return entities.EmailOutcome{
				Success:   false,
				Message:   fmt.Sprintf("Unexpected error sending email: %v", err),
				MessageID: messageID,
				Recipient: msg.To,
				ErrorTag:  entities.EmailErrorUnexpected,
			}
		}
		if at.Inline {
			a.HTMLRelated = true
			a.Header.Set("Content-ID", fmt.Sprintf("<%s>", at.ContentID))
			a.Header.Set("Content-Disposition", "inline")
		}
	}

	log.Printf("[receipt][mailer] send start to=%s message_id=%s", msg.To, messageID)

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- e.SendWithTLS(m.addr, m.auth, m.tlsConfig) }()

	var err error
	select {
	case err = <-errCh:
	case <-sendCtx.Done():
		err = sendCtx.Err()
	}

	if err != nil {
		tag, message := categorize(err)
		log.Printf("[receipt][mailer] send failed to=%s message_id=%s error_type=%s err=%v", msg.To, messageID, tag, err)
		return entities.EmailOutcome{
			Success:   false,
			Message:   message,
			MessageID: messageID,
			Recipient: msg.To,
			ErrorTag:  tag,
		}
	}

	log.Printf("[receipt][mailer] send success to=%s message_id=%s", msg.To, messageID)
	return entities.EmailOutcome{
		Success:   true,
		Message:   "Email sent successfully",
		MessageID: messageID,
		Recipient: msg.To,
	}
}

// categorize maps a transport failure onto the enumerated outcome tags.
//
// A single-recipient send cannot observe which SMTP phase refused, so the
// reply code decides: 550/551/553 are recipient refusals, 552/554 are
// message rejections, 530/534/535/538 are authentication failures.
func categorize(err error) (entities.EmailErrorTag, string) {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535, 538:
			return entities.EmailErrorAuth, fmt.Sprintf("SMTP Authentication Error: %v", err)
		case 550, 551, 553:
			return entities.EmailErrorRecipientsRefused, fmt.Sprintf("All recipients refused: %v", err)
		case 552, 554:
			return entities.EmailErrorRecipientRejected, fmt.Sprintf("Email rejected for recipient: %v", err)
		default:
			return entities.EmailErrorSMTP, fmt.Sprintf("SMTP Error: %v", err)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return entities.EmailErrorConnection, fmt.Sprintf("SMTP Connection Error: %v", err)
	}

	return entities.EmailErrorUnexpected, fmt.Sprintf("Unexpected error sending email: %v", err)
}
