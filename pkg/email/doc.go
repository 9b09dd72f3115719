// Package email sends transactional email through a provider-agnostic
// EmailSender interface.
//
// Three implementations are available:
//   - SMTPSender delivers through an SMTP relay with github.com/wneessen/go-mail.
//     Implicit TLS on port 465 is the default, STARTTLS and plain are opt-in.
//   - The Postmark sender uses github.com/mrz1836/postmark.
//   - DevSender writes every message to a directory for local previews.
//
// New picks one from Config.Provider (MAIL_PROVIDER). All senders validate
// SendEmailParams first and wrap delivery failures in ErrFailedToSendEmail.
//
// Attachments with a ContentID are sent inline so HTML can reference them:
//
//	params := email.SendEmailParams{
//	    SendTo:   "owner@example.com",
//	    ReplyTo:  "visitor@example.com",
//	    Subject:  "New Inquiry",
//	    BodyHTML: `<img src="cid:logo">...`,
//	    BodyText: "...",
//	    Attachments: []email.Attachment{{
//	        Filename: "logo.png", ContentType: "image/png",
//	        ContentID: "logo", Data: png,
//	    }},
//	}
//	err := sender.SendEmail(ctx, params)
//
// The templates subpackage renders templ components to strings.
package email
