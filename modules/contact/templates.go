package contact

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/tboywixxy/yorkshire-global/pkg/email/templates"
	"github.com/tboywixxy/yorkshire-global/pkg/sanitizer"
)

// LogoContentID is the inline logo reference used by both emails.
const LogoContentID = "yorkshire_logo"

const (
	companyName  = "Yorkshire Global Consulting Inc."
	locationLine = "Ontario, Canada"
	ackSubject   = "We received your message"
)

// RenderedEmail is one rendered message.
type RenderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

// RenderOwnerEmail renders the notification sent to the site owner.
func RenderOwnerEmail(s Submission, year int) (RenderedEmail, error) {
	ctx := context.Background()
	s = s.Trimmed()

	html, err := templates.Render(ctx, emailShell(
		"New Contact Form Submission",
		fmt.Sprintf("New inquiry from %s (%s)", s.FullName, s.Organization),
		year,
		ownerBody(s),
	))
	if err != nil {
		return RenderedEmail{}, fmt.Errorf("render owner html: %w", err)
	}

	text, err := templates.Render(ctx, templates.Join(
		templates.Text("New contact form submission\n\n"),
		textLine("Full name", s.FullName),
		textLine("Email", s.Email),
		textLine("Phone", s.Phone),
		textLine("Company", s.Organization),
		textLine("Service", ServiceLabel(s.Service)),
		templates.Text("\nMessage:\n"+sanitizer.NormalizeNewlines(s.Message)+"\n"),
	))
	if err != nil {
		return RenderedEmail{}, fmt.Errorf("render owner text: %w", err)
	}

	return RenderedEmail{
		Subject: fmt.Sprintf("New Inquiry: %s — %s", sanitizer.SingleLine(s.Service), sanitizer.SingleLine(s.Organization)),
		HTML:    html,
		Text:    text,
	}, nil
}

// RenderAckEmail renders the acknowledgment sent to the submitter.
func RenderAckEmail(s Submission, year int) (RenderedEmail, error) {
	ctx := context.Background()
	s = s.Trimmed()

	html, err := templates.Render(ctx, emailShell(
		ackSubject,
		"Thanks — your message has been received.",
		year,
		ackBody(s),
	))
	if err != nil {
		return RenderedEmail{}, fmt.Errorf("render ack html: %w", err)
	}

	text, err := templates.Render(ctx, templates.Join(
		templates.Text("Hi "+s.FullName+",\n\n"),
		templates.Text("We’ve received your inquiry and will respond within 24 hours.\n\n"),
		templates.Text("Summary:\n"),
		textLine("Service", ServiceLabel(s.Service)),
		textLine("Company", s.Organization),
		templates.Text("\n— "+companyName),
	))
	if err != nil {
		return RenderedEmail{}, fmt.Errorf("render ack text: %w", err)
	}

	return RenderedEmail{Subject: ackSubject, HTML: html, Text: text}, nil
}

func textLine(label, value string) templ.Component {
	return templates.Text(label + ": " + sanitizer.SingleLine(value) + "\n")
}

// mailtoURL is the owner email's reply link.
func mailtoURL(addr string) templ.SafeURL {
	return templ.URL("mailto:" + url.PathEscape(addr))
}

// messageLines splits the message on any line ending. The template joins
// the lines with <br> and escapes each one.
func messageLines(msg string) []string {
	return strings.Split(sanitizer.NormalizeNewlines(msg), "\n")
}
