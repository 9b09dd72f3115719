package contact

import "github.com/tboywixxy/yorkshire-global/pkg/sanitizer"

// Submission is one contact form post. It is never persisted.
type Submission struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Organization   string `json:"organization"`
	Service        string `json:"service"`
	Message        string `json:"message"`
	CompanyWebsite string `json:"companyWebsite"` // honeypot, always empty from a real browser
	StartedAt      int64  `json:"startedAt"`      // unix milliseconds when the form was first shown
	TurnstileToken string `json:"turnstileToken"`
}

var cleanMessage = sanitizer.Compose(sanitizer.NormalizeNewlines, sanitizer.Trim)

// Trimmed returns a copy with surrounding whitespace removed from every text
// field. Line breaks in the message become LF.
func (s Submission) Trimmed() Submission {
	s.FullName = sanitizer.Trim(s.FullName)
	s.Email = sanitizer.Trim(s.Email)
	s.Phone = sanitizer.Trim(s.Phone)
	s.Organization = sanitizer.Trim(s.Organization)
	s.Service = sanitizer.Trim(s.Service)
	s.Message = cleanMessage(s.Message)
	s.CompanyWebsite = sanitizer.Trim(s.CompanyWebsite)
	s.TurnstileToken = sanitizer.Trim(s.TurnstileToken)
	return s
}

// SubmitResponse is the success body of POST /api/contact.
type SubmitResponse struct {
	OK bool `json:"ok"`
}

// Service keys accepted in Submission.Service.
const (
	ServiceSSDLC             = "ssdlc"
	ServiceCybersecurity     = "cybersecurity"
	ServiceBusinessAnalysis  = "businessAnalysis"
	ServiceProjectManagement = "projectManagement"
	ServiceStrategy          = "strategy"
	ServiceOther             = "other"
)

var serviceKeys = []string{
	ServiceSSDLC,
	ServiceCybersecurity,
	ServiceBusinessAnalysis,
	ServiceProjectManagement,
	ServiceStrategy,
	ServiceOther,
}

var serviceLabels = map[string]string{
	ServiceSSDLC:             "Secure Software Development Lifecycle (SSDLC)",
	ServiceCybersecurity:     "Cybersecurity",
	ServiceBusinessAnalysis:  "Business Analysis",
	ServiceProjectManagement: "Project Management",
	ServiceStrategy:          "Strategy & Advisory",
	ServiceOther:             "Other",
}

// ServiceKeys returns the accepted service keys in display order.
func ServiceKeys() []string {
	return append([]string(nil), serviceKeys...)
}

// ServiceLabel returns the human label for key, or key itself when unknown.
func ServiceLabel(key string) string {
	if label, ok := serviceLabels[key]; ok {
		return label
	}
	return key
}
