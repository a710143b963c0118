package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"strings"
	"testing"

	"pgw_comprovantes/internal/config"
	"pgw_comprovantes/internal/domain/entities"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		name string
		err  error
		tag  entities.EmailErrorTag
	}{
		{"auth 530", &textproto.Error{Code: 530, Msg: "auth required"}, entities.EmailErrorAuth},
		{"auth 534", &textproto.Error{Code: 534, Msg: "mechanism too weak"}, entities.EmailErrorAuth},
		{"auth 535", &textproto.Error{Code: 535, Msg: "bad credentials"}, entities.EmailErrorAuth},
		{"auth 538", &textproto.Error{Code: 538, Msg: "encryption required"}, entities.EmailErrorAuth},
		{"refused 550", &textproto.Error{Code: 550, Msg: "mailbox unavailable"}, entities.EmailErrorRecipientsRefused},
		{"refused 551", &textproto.Error{Code: 551, Msg: "user not local"}, entities.EmailErrorRecipientsRefused},
		{"refused 553", &textproto.Error{Code: 553, Msg: "mailbox name not allowed"}, entities.EmailErrorRecipientsRefused},
		{"rejected 552", &textproto.Error{Code: 552, Msg: "exceeded storage"}, entities.EmailErrorRecipientRejected},
		{"rejected 554", &textproto.Error{Code: 554, Msg: "transaction failed"}, entities.EmailErrorRecipientRejected},
		{"other smtp code", &textproto.Error{Code: 451, Msg: "try again later"}, entities.EmailErrorSMTP},
		{"wrapped smtp code", fmt.Errorf("send: %w", &textproto.Error{Code: 535, Msg: "bad credentials"}), entities.EmailErrorAuth},
		{"net error", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, entities.EmailErrorConnection},
		{"deadline", context.DeadlineExceeded, entities.EmailErrorConnection},
		{"canceled", context.Canceled, entities.EmailErrorConnection},
		{"unexpected", errors.New("boom"), entities.EmailErrorUnexpected},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tag, message := categorize(tc.err)
			if tag != tc.tag {
				t.Fatalf("expected %s, got %s", tc.tag, tag)
			}
			if message == "" {
				t.Fatalf("expected a message for %v", tc.err)
			}
		})
	}
}

func TestNewMailer(t *testing.T) {
	m := NewMailer(&config.Config{
		EmailFrom:    "comprovantes@pgwpay.com.br",
		SMTPServer:   "smtp.example.com",
		SMTPPort:     465,
		SMTPUsername: "user",
		SMTPPassword: "pass",
	})

	if m.addr != "smtp.example.com:465" {
		t.Fatalf("unexpected addr: %q", m.addr)
	}
	if m.tlsConfig.ServerName != "smtp.example.com" {
		t.Fatalf("unexpected tls server name: %q", m.tlsConfig.ServerName)
	}
	if m.from != "comprovantes@pgwpay.com.br" {
		t.Fatalf("unexpected from: %q", m.from)
	}
}

func TestSend_ConnectionFailureIsReported(t *testing.T) {
	// Nothing listens here; the dial fails immediately and must come back
	// as a categorized outcome, never as a panic or a Go error.
	m := NewMailer(&config.Config{
		EmailFrom:    "comprovantes@pgwpay.com.br",
		SMTPServer:   "127.0.0.1",
		SMTPPort:     1,
		SMTPUsername: "user",
		SMTPPassword: "pass",
	})

	outcome := m.Send(context.Background(), entities.OutboundEmail{
		To:       "x@test.com",
		Subject:  "Comprovante de Pagamento - POLICROM",
		HTMLBody: "<html></html>",
	})

	if outcome.Success {
		t.Fatalf("expected failure outcome")
	}
	if outcome.ErrorTag != entities.EmailErrorConnection && outcome.ErrorTag != entities.EmailErrorUnexpected {
		t.Fatalf("unexpected tag: %s", outcome.ErrorTag)
	}
	if !strings.HasPrefix(outcome.MessageID, "<") || !strings.Contains(outcome.MessageID, "@pgwpay.com.br>") {
		t.Fatalf("unexpected message id: %q", outcome.MessageID)
	}
	if outcome.Recipient != "x@test.com" {
		t.Fatalf("unexpected recipient: %q", outcome.Recipient)
	}
}
