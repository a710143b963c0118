package entities

// Payer identity printed on every receipt. The sender is always the same
// operating entity, so these are constants rather than payload fields.
const (
	PayerName    = "PGW PAYMENTS INTERNET LTDA"
	PayerCNPJ    = "33.392.629/0001-83"
	PayerAgencia = "7633"
	PayerConta   = "16677-7"
)

// Disclosure and footer constants shared by the PDF and the email body.
const (
	DisclosureSentence = "Importante: A PGW Payments utilizou a plataforma do BANCO ITAÚ no processamento desta transação."

	ContactEmail   = "contato@pgwpay.com.br"
	WebsiteURL     = "https://www.pgwpay.com.br"
	CompanyAddress = "Rua Aurora, 817 | 8º andar | São Paulo | SP"
	FacebookURL    = "https://www.facebook.com/pgwpay"
	InstagramURL   = "https://www.instagram.com/pgwpay"
	LinkedInURL    = "https://www.linkedin.com/company/pgwpay"
)
