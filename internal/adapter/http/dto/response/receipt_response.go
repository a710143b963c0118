package response

import (
	"encoding/base64"

	"pgw_comprovantes/internal/domain/entities"
)

type EmailOutcomeResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"message_id,omitempty"`
	Recipient string `json:"recipient"`
	ErrorType string `json:"error_type,omitempty"`
}

type ReceiptResponse struct {
	Message        string               `json:"message"`
	EmailSent      bool                 `json:"email_sent"`
	EmailRecipient string               `json:"email_recipient"`
	EmailResponse  EmailOutcomeResponse `json:"email_response"`
	PDFBase64      string               `json:"pdf_base64"`
}

func FromReceiptResult(r entities.ReceiptResult) ReceiptResponse {
	recipient := r.Email.Recipient
	if recipient == "" {
		recipient = "Não fornecido"
	}

	return ReceiptResponse{
		Message:        "PDF gerado e e-mail enviado com sucesso",
		EmailSent:      r.Email.Success,
		EmailRecipient: recipient,
		EmailResponse: EmailOutcomeResponse{
			Success:   r.Email.Success,
			Message:   r.Email.Message,
			MessageID: r.Email.MessageID,
			Recipient: r.Email.Recipient,
			ErrorType: string(r.Email.ErrorTag),
		},
		PDFBase64: base64.StdEncoding.EncodeToString(r.PDF),
	}
}
