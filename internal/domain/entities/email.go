package entities

// EmailErrorTag categorizes a failed send.
//
// Transport failures never abort the request; they are captured here and
// reported inside the response, so callers can tell an invalid address from
// a relay outage without parsing free-text messages.

type EmailErrorTag string

const (
	EmailErrorNone              EmailErrorTag = ""
	EmailErrorInvalidEmail      EmailErrorTag = "INVALID_EMAIL"
	EmailErrorRecipientRejected EmailErrorTag = "RECIPIENT_REJECTED"
	EmailErrorAuth              EmailErrorTag = "AUTH_ERROR"
	EmailErrorConnection        EmailErrorTag = "CONNECTION_ERROR"
	EmailErrorRecipientsRefused EmailErrorTag = "RECIPIENTS_REFUSED"
	EmailErrorSMTP              EmailErrorTag = "SMTP_ERROR"
	EmailErrorUnexpected        EmailErrorTag = "UNEXPECTED_ERROR"
)

// EmailOutcome is the per-send result returned alongside the PDF.
type EmailOutcome struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	MessageID string        `json:"message_id,omitempty"`
	Recipient string        `json:"recipient"`
	ErrorTag  EmailErrorTag `json:"error_type,omitempty"`
}

// MailAttachment is one part of the outgoing message. Inline parts are
// referenced from the HTML body by ContentID instead of being downloaded.
type MailAttachment struct {
	Filename    string
	ContentType string
	ContentID   string
	Inline      bool
	Content     []byte
}

// OutboundEmail is the fully-composed message handed to the mailer.
type OutboundEmail struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []MailAttachment
}

// ReceiptResult is the artifact of one invocation: the rendered PDF plus
// the email-send outcome. Nothing survives past the response.
type ReceiptResult struct {
	PDF   []byte
	Email EmailOutcome
}
