package document

import (
	"fmt"
	"html"
	"strings"

	"pgw_comprovantes/internal/domain/entities"
	"pgw_comprovantes/internal/domain/receipt"
)

// Content identifiers of the two inline logo embeds. Header and footer are
// independent attachments so mail clients render both without re-fetching.
const (
	LogoHeaderCID = "logo"
	LogoFooterCID = "logo_footer"
)

// EmailSubject builds the message subject for an extracted field set.
func EmailSubject(f receipt.Fields) string {
	return "Comprovante de Pagamento - " + f.NomeFavorecido
}

// ComposeEmailHTML renders the email body for an extracted field set.
//
// The markup is a fixed skeleton filled with escaped values: same fields
// in, same document out. When the logo asset is unavailable both cid
// embeds are omitted and the surrounding layout is kept.
func ComposeEmailHTML(f receipt.Fields, logoAvailable bool) string {
	headerLogo := ""
	footerLogo := ""
	if logoAvailable {
		headerLogo = fmt.Sprintf(`<div style="background-color: #ffffff; display: inline-block; padding: 10px; border-radius: 5px;"><img src="cid:%s" alt="PGW Logo" height="80" style="display: block;"></div>`, LogoHeaderCID)
		footerLogo = fmt.Sprintf(`<img src="cid:%s" height="50" style="display: inline-block; margin-bottom: 15px;" alt="PGW Logo">`, LogoFooterCID)
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Comprovante de Pagamento</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f5f5f5;">
<table cellpadding="0" cellspacing="0" border="0" width="100%" style="max-width: 600px; margin: 0 auto; background-color: #ffffff;">
`)

	// Cabeçalho
	fmt.Fprintf(&b, `<tr><td style="background-color: #546375; text-align: center; padding: 20px 0;">%s</td></tr>
`, headerLogo)

	// Conteúdo
	b.WriteString(`<tr><td style="padding: 30px 40px;">
<h1 style="color: #4a4746; font-size: 22px; margin: 0 0 20px; text-align: center;">Comprovante de Pagamento</h1>
<p style="margin: 0 0 20px; font-size: 14px; color: #333333; line-height: 1.5;">Prezado cliente,</p>
`)
	fmt.Fprintf(&b, `<p style="margin: 0 0 20px; font-size: 14px; color: #333333; line-height: 1.5;">O pagamento de <strong style="color: #000;">R$ %s</strong> solicitado por <strong style="color: #000;">%s</strong> foi efetivado com sucesso. Seguem as informações do pagamento:</p>
`, html.EscapeString(f.ValorPagamento), html.EscapeString(f.ReferenciaEmpresa))

	// Detalhes da transação: mesma ordem fixa da seção de pagamento do PDF.
	b.WriteString(`<table cellpadding="0" cellspacing="0" border="0" width="100%" style="margin: 20px 0; border-collapse: collapse; border: 1px solid #e0e0e0; border-radius: 4px;">
<tr><td style="background-color: #f9f9f9; padding: 10px 15px; border-bottom: 1px solid #e0e0e0; font-weight: bold;" colspan="2">Detalhes da Transação</td></tr>
`)
	writeEmailRow(&b, "Recebedor:", f.NomeFavorecido)
	writeEmailRow(&b, "Chave PIX utilizada:", f.ChavePix)
	writeEmailRow(&b, "CPF/CNPJ:", f.CPFCNPJFavorecido)
	writeEmailRow(&b, "Valor:", "R$ "+f.ValorPagamento)
	writeEmailRow(&b, "Descrição:", f.MensagemAoRecebedor)
	b.WriteString("</table>\n")

	b.WriteString(`<p style="margin: 25px 0; font-size: 14px; color: #333333; line-height: 1.5; font-style: italic; text-align: center;">O comprovante de pagamento está anexo a este e-mail.</p>
`)
	fmt.Fprintf(&b, `<div style="background-color: #f9f9f9; border: 1px solid #e0e0e0; border-radius: 4px; padding: 15px; margin: 20px 0; text-align: center;"><p style="margin: 0; font-size: 14px; color: #4a4746; font-style: italic;">%s</p></div>
`, html.EscapeString(entities.DisclosureSentence))
	b.WriteString(`<p style="margin: 20px 0 0; font-size: 12px; color: #666666; font-style: italic;">Este e-mail foi enviado automaticamente pelo sistema de pagamentos PGW. Por favor, não responda a este e-mail.</p>
</td></tr>
`)

	// Rodapé
	fmt.Fprintf(&b, `<tr><td style="background-color: #f1f1f1; padding: 30px; text-align: center;">
<p style="margin: 0 0 15px; font-size: 14px; color: #333333;">Caso tenha qualquer dúvida, entre em contato conosco: <a href="mailto:%[1]s" style="color: #0066cc; text-decoration: none;">%[1]s</a></p>
%[2]s
<p style="margin: 0 0 5px; font-size: 12px; color: #666666;"><a href="%[3]s" style="color: #0066cc; text-decoration: none;">www.pgwpay.com.br</a></p>
<p style="margin: 0 0 5px; font-size: 12px; color: #666666;">%[4]s</p>
<p style="margin: 0 0 15px; font-size: 12px; color: #666666;">© 2023 | Todos os direitos reservados a %[5]s.<br>CNPJ: %[6]s</p>
<div style="margin-top: 10px;">
<a href="%[7]s" style="display: inline-block; margin: 0 5px;"><img src="https://cdn-icons-png.flaticon.com/32/733/733547.png" width="24" alt="Facebook"></a>
<a href="%[8]s" style="display: inline-block; margin: 0 5px;"><img src="https://cdn-icons-png.flaticon.com/32/1384/1384063.png" width="24" alt="Instagram"></a>
<a href="%[9]s" style="display: inline-block; margin: 0 5px;"><img src="https://cdn-icons-png.flaticon.com/32/3536/3536505.png" width="24" alt="LinkedIn"></a>
</div>
</td></tr>
</table>
</body>
</html>
`, entities.ContactEmail, footerLogo, entities.WebsiteURL, entities.CompanyAddress,
		entities.PayerName, entities.PayerCNPJ,
		entities.FacebookURL, entities.InstagramURL, entities.LinkedInURL)

	return b.String()
}

func writeEmailRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, `<tr><td style="padding: 10px 15px; border-bottom: 1px solid #e0e0e0; width: 40%%; font-weight: bold; color: #4a4746;">%s</td><td style="padding: 10px 15px; border-bottom: 1px solid #e0e0e0; color: #333333;">%s</td></tr>
`, html.EscapeString(label), html.EscapeString(value))
}
