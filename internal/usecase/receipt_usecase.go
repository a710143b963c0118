package usecase

import (
	"context"
	"errors"
	"log"

	"pgw_comprovantes/internal/domain/document"
	"pgw_comprovantes/internal/domain/entities"
	"pgw_comprovantes/internal/domain/receipt"
	"pgw_comprovantes/internal/usecase/interfaces"
)

var ErrDocumentEngineNotConfigured = errors.New("document engine not configured")

const receiptFilename = "recibo.pdf"

// IReceiptUseCase encapsulates the "render receipt and deliver it" behavior.
//
// One record in, one result out. Only payload and render defects abort; a
// missing, invalid or undeliverable recipient degrades to a categorized
// EmailOutcome while the PDF is still produced.

type IReceiptUseCase interface {
	GenerateAndSend(ctx context.Context, rec entities.PaymentRecord) (entities.ReceiptResult, error)
}

type ReceiptUseCase struct {
	engine interfaces.IDocumentEngine
	mailer interfaces.IMailer

	// logoPNG is loaded once at startup; nil means the asset is
	// unavailable and every logo embed is omitted.
	logoPNG []byte
}

var _ IReceiptUseCase = (*ReceiptUseCase)(nil)

func NewReceiptUseCase(engine interfaces.IDocumentEngine, mailer interfaces.IMailer, logoPNG []byte) *ReceiptUseCase {
	return &ReceiptUseCase{engine: engine, mailer: mailer, logoPNG: logoPNG}
}

func (u *ReceiptUseCase) GenerateAndSend(ctx context.Context, rec entities.PaymentRecord) (entities.ReceiptResult, error) {
	log.Printf("[receipt][usecase] generate start email=%s id_pagamento=%s", rec.Email, rec.Data.DadosPagamento.IDPagamento)

	fields, err := receipt.Extract(rec)
	if err != nil {
		log.Printf("[receipt][usecase] extract failed id_pagamento=%s err=%v", rec.Data.DadosPagamento.IDPagamento, err)
		return entities.ReceiptResult{}, err
	}

	if u.engine == nil {
		log.Printf("[receipt][usecase] document engine not configured")
		return entities.ReceiptResult{}, ErrDocumentEngineNotConfigured
	}

	blocks := document.ComposeReceipt(fields)
	pdf, err := u.engine.Render(blocks)
	if err != nil {
		log.Printf("[receipt][usecase] pdf render failed id_pagamento=%s err=%v", rec.Data.DadosPagamento.IDPagamento, err)
		return entities.ReceiptResult{}, err
	}
	log.Printf("[receipt][usecase] pdf rendered id_pagamento=%s bytes=%d", rec.Data.DadosPagamento.IDPagamento, len(pdf))

	outcome := u.sendReceiptEmail(ctx, rec.Email, fields, pdf)
	log.Printf("[receipt][usecase] generate done email=%s sent=%t error_type=%s", rec.Email, outcome.Success, outcome.ErrorTag)

	return entities.ReceiptResult{PDF: pdf, Email: outcome}, nil
}

func (u *ReceiptUseCase) sendReceiptEmail(ctx context.Context, to string, fields receipt.Fields, pdf []byte) entities.EmailOutcome {
	if to == "" {
		log.Printf("[receipt][usecase] no recipient email provided, skipping send")
		return entities.EmailOutcome{Success: false, Message: "No recipient email provided"}
	}
	if !receipt.IsValidEmail(to) {
		log.Printf("[receipt][usecase] invalid recipient email=%s", to)
		return entities.EmailOutcome{
			Success:   false,
			Message:   "Invalid email address: " + to,
			Recipient: to,
			ErrorTag:  entities.EmailErrorInvalidEmail,
		}
	}
	if u.mailer == nil {
		log.Printf("[receipt][usecase] mailer not configured, skipping send email=%s", to)
		return entities.EmailOutcome{
			Success:   false,
			Message:   "Mailer not configured",
			Recipient: to,
			ErrorTag:  entities.EmailErrorUnexpected,
		}
	}

	logoAvailable := len(u.logoPNG) > 0

	msg := entities.OutboundEmail{
		To:       to,
		Subject:  document.EmailSubject(fields),
		HTMLBody: document.ComposeEmailHTML(fields, logoAvailable),
	}
	if logoAvailable {
		msg.Attachments = append(msg.Attachments,
			entities.MailAttachment{
				Filename:    "logo.png",
				ContentType: "image/png",
				ContentID:   document.LogoHeaderCID,
				Inline:      true,
				Content:     u.logoPNG,
			},
			entities.MailAttachment{
				Filename:    "logo_footer.png",
				ContentType: "image/png",
				ContentID:   document.LogoFooterCID,
				Inline:      true,
				Content:     u.logoPNG,
			},
		)
	}
	msg.Attachments = append(msg.Attachments, entities.MailAttachment{
		Filename:    receiptFilename,
		ContentType: "application/pdf",
		Content:     pdf,
	})

	return u.mailer.Send(ctx, msg)
}
