package response

import (
	"encoding/base64"
	"testing"

	"pgw_comprovantes/internal/domain/entities"
)

func TestFromReceiptResult(t *testing.T) {
	t.Run("success outcome", func(t *testing.T) {
		resp := FromReceiptResult(entities.ReceiptResult{
			PDF: []byte("%PDF-stub"),
			Email: entities.EmailOutcome{
				Success:   true,
				Message:   "Email sent successfully",
				MessageID: "<abc@pgwpay.com.br>",
				Recipient: "x@test.com",
			},
		})

		if !resp.EmailSent || resp.EmailRecipient != "x@test.com" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if resp.EmailResponse.MessageID != "<abc@pgwpay.com.br>" {
			t.Fatalf("unexpected message id: %q", resp.EmailResponse.MessageID)
		}
		decoded, err := base64.StdEncoding.DecodeString(resp.PDFBase64)
		if err != nil || string(decoded) != "%PDF-stub" {
			t.Fatalf("unexpected pdf encoding: %q err=%v", resp.PDFBase64, err)
		}
	})

	t.Run("missing recipient placeholder", func(t *testing.T) {
		resp := FromReceiptResult(entities.ReceiptResult{
			PDF: []byte("%PDF-stub"),
			Email: entities.EmailOutcome{
				Success: false,
				Message: "No recipient email provided",
			},
		})

		if resp.EmailSent {
			t.Fatalf("expected email_sent false")
		}
		if resp.EmailRecipient != "Não fornecido" {
			t.Fatalf("unexpected recipient: %q", resp.EmailRecipient)
		}
	})

	t.Run("failure tag is surfaced", func(t *testing.T) {
		resp := FromReceiptResult(entities.ReceiptResult{
			Email: entities.EmailOutcome{
				Success:   false,
				Message:   "SMTP Authentication Error: 535",
				Recipient: "x@test.com",
				ErrorTag:  entities.EmailErrorAuth,
			},
		})

		if resp.EmailResponse.ErrorType != "AUTH_ERROR" {
			t.Fatalf("unexpected error type: %q", resp.EmailResponse.ErrorType)
		}
	})
}
