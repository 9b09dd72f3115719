package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/tboywixxy/yorkshire-global/modules/contact"
	"github.com/tboywixxy/yorkshire-global/pkg/logger"
	"github.com/tboywixxy/yorkshire-global/pkg/sanitizer"
	"github.com/tboywixxy/yorkshire-global/pkg/statemachine"
	"github.com/tboywixxy/yorkshire-global/pkg/validator"
)

// State is a form lifecycle state.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// Event moves the form between states.
type Event string

const (
	EventSubmit    Event = "submit"
	EventInvalid   Event = "invalid"
	EventValid     Event = "valid"
	EventSucceeded Event = "succeeded"
	EventFailed    Event = "failed"
	EventDismiss   Event = "dismiss"
)

// Form level error kinds. Field kinds come from the contact package.
const (
	KindBlocked         = "blocked"
	KindCaptchaRequired = "captchaRequired"
	KindFailedGeneric   = "failedGeneric"
)

// Popup reasons.
const (
	ReasonSuccess       = "success"
	ReasonBlocked       = "blocked"
	ReasonInvalidEmail  = "invalidEmail"
	ReasonFixForm       = "fixForm"
	ReasonFailed        = "failed"
	ReasonNetworkFailed = "networkFailed"
)

// PopupType is the popup style.
type PopupType string

const (
	PopupSuccess PopupType = "success"
	PopupError   PopupType = "error"
)

// Popup is the modal shown after a submit attempt. Message carries the
// server's error text when there is one; otherwise the UI localizes Reason.
type Popup struct {
	Open    bool
	Type    PopupType
	Reason  string
	Message string
}

// Transport sends HTTP requests. *http.Client implements it.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

const maxResponseBytes = 64 << 10

// Controller holds the state of one contact form.
type Controller struct {
	transport  Transport
	endpoint   string
	lang       string
	now        func() time.Time
	minElapsed time.Duration
	log        *slog.Logger
	machine    *statemachine.Machine[State, Event]

	mu        sync.Mutex
	values    contact.Submission
	errors    map[string]string
	formError string
	popup     Popup
}

// New creates a Controller with empty fields and the first service
// preselected. startedAt is taken from the clock now.
func New(transport Transport, opts ...Option) *Controller {
	c := &Controller{
		transport:  transport,
		endpoint:   DefaultEndpoint,
		now:        time.Now,
		minElapsed: contact.DefaultMinElapsed,
		log:        slog.New(slog.DiscardHandler),
		errors:     make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = http.DefaultClient
	}

	c.machine = statemachine.MustNew(StateIdle,
		statemachine.WithTransition[State, Event](StateIdle, StateValidating, EventSubmit),
		statemachine.WithTransition[State, Event](StateValidating, StateIdle, EventInvalid),
		statemachine.WithTransition[State, Event](StateValidating, StateSubmitting, EventValid),
		statemachine.WithTransition[State, Event](StateSubmitting, StateSuccess, EventSucceeded),
		statemachine.WithTransition[State, Event](StateSubmitting, StateError, EventFailed),
		statemachine.WithTransition[State, Event](StateSuccess, StateIdle, EventDismiss),
		statemachine.WithTransition[State, Event](StateError, StateIdle, EventDismiss),
		statemachine.WithObserver[State, Event](func(from, to State, event Event) {
			c.log.Debug("contact form transition",
				logger.Component("contactform"),
				slog.String("from", string(from)),
				slog.String("to", string(to)),
				logger.Event(string(event)),
			)
		}),
	)

	c.resetLocked()
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.machine.Current()
}

// Values returns the current field values, startedAt and token.
func (c *Controller) Values() contact.Submission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

// StartedAt returns when the form was (re)shown, in unix milliseconds.
func (c *Controller) StartedAt() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.StartedAt
}

// Errors returns the error kind per field.
func (c *Controller) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.errors)
}

// FormError returns the form level error: a kind, or the server's message.
func (c *Controller) FormError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formError
}

// Popup returns the result dialog shown after a post.
func (c *Controller) Popup() Popup {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.popup
}

// Set updates one field by its JSON name. Input is capped the way the form
// inputs cap it, and the phone keeps only phone characters. The field's
// error and the form error are cleared.
func (c *Controller) Set(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch field {
	case contact.FieldFullName:
		c.values.FullName = sanitizer.TruncateRunes(value, contact.MaxFullNameLen)
	case contact.FieldEmail:
		c.values.Email = sanitizer.TruncateRunes(value, contact.MaxEmailLen)
	case contact.FieldPhone:
		c.values.Phone = sanitizer.SanitizePhone(value, contact.MaxPhoneLen)
	case contact.FieldOrganization:
		c.values.Organization = sanitizer.TruncateRunes(value, contact.MaxOrganizationLen)
	case contact.FieldService:
		c.values.Service = value
	case contact.FieldMessage:
		c.values.Message = value
	case contact.FieldCompanyWebsite:
		c.values.CompanyWebsite = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	delete(c.errors, field)
	c.formError = ""
	return nil
}

// SetToken stores the token issued by the Turnstile widget.
func (c *Controller) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values.TurnstileToken = token
	if token != "" && c.formError == KindCaptchaRequired {
		c.formError = ""
	}
}

// ExpireToken drops the token, as when the widget reports expiry.
func (c *Controller) ExpireToken() {
	c.SetToken("")
}

// DismissPopup closes the popup and returns to idle.
func (c *Controller) DismissPopup() {
	c.mu.Lock()
	c.popup = Popup{}
	c.mu.Unlock()

	if st := c.machine.Current(); st == StateSuccess || st == StateError {
		_ = c.machine.Fire(context.Background(), EventDismiss, nil)
	}
}

// Submit validates the form and, when it passes, posts it. It returns nil
// once the server accepted the submission. There are no retries.
func (c *Controller) Submit(ctx context.Context) error {
	if err := c.machine.Fire(ctx, EventSubmit, nil); err != nil {
		return fmt.Errorf("%w: %s", ErrBusy, c.machine.Current())
	}

	payload, err := c.validate()
	if err != nil {
		_ = c.machine.Fire(ctx, EventInvalid, nil)
		return err
	}
	_ = c.machine.Fire(ctx, EventValid, nil)

	serverMsg, err := c.post(ctx, payload)

	c.mu.Lock()
	c.values.TurnstileToken = ""
	switch {
	case err == nil:
		c.resetLocked()
		c.popup = Popup{Open: true, Type: PopupSuccess, Reason: ReasonSuccess}
	case serverMsg != "":
		c.formError = serverMsg
		c.popup = Popup{Open: true, Type: PopupError, Reason: ReasonFailed, Message: serverMsg}
	case errors.Is(err, ErrNetwork):
		c.formError = KindFailedGeneric
		c.popup = Popup{Open: true, Type: PopupError, Reason: ReasonNetworkFailed}
	default:
		c.formError = KindFailedGeneric
		c.popup = Popup{Open: true, Type: PopupError, Reason: ReasonFailed}
	}
	c.mu.Unlock()

	if err != nil {
		c.log.WarnContext(ctx, "contact form submission failed",
			logger.Component("contactform"),
			logger.Error(err),
		)
		_ = c.machine.Fire(ctx, EventFailed, nil)
		return err
	}
	_ = c.machine.Fire(ctx, EventSucceeded, nil)
	return nil
}

// validate runs the local checks in the form's order and returns the
// payload to post.
func (c *Controller) validate() (contact.Submission, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if contact.HoneypotFilled(c.values.CompanyWebsite) {
		c.errors = make(map[string]string)
		c.formError = KindBlocked
		c.popup = Popup{Open: true, Type: PopupError, Reason: ReasonBlocked}
		return contact.Submission{}, ErrBlocked
	}

	if !validator.IsEmail(strings.TrimSpace(c.values.Email)) {
		c.errors[contact.FieldEmail] = contact.KindEmailInvalid
		c.popup = Popup{Open: true, Type: PopupError, Reason: ReasonInvalidEmail}
		return contact.Submission{}, fmt.Errorf("%w: email", ErrInvalid)
	}

	c.errors = make(map[string]string)
	c.formError = ""
	for _, verr := range contact.ValidateFields(c.values) {
		c.errors[verr.Field] = verr.TranslationKey
	}
	if contact.TooFast(c.values.StartedAt, c.now(), c.minElapsed) {
		c.formError = KindBlocked
	}
	if len(c.errors) > 0 || c.formError != "" {
		c.popup = Popup{Open: true, Type: PopupError, Reason: ReasonFixForm}
		return contact.Submission{}, ErrInvalid
	}

	if strings.TrimSpace(c.values.TurnstileToken) == "" {
		c.formError = KindCaptchaRequired
		return contact.Submission{}, ErrCaptchaRequired
	}

	c.popup = Popup{}
	return c.values, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

// post sends payload. On a non-2xx reply it returns the server's error
// text, if any, with ErrRejected.
func (c *Controller) post(ctx context.Context, payload contact.Submission) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := c.endpoint
	if c.lang != "" {
		sep := "?"
		if strings.Contains(endpoint, "?") {
			sep = "&"
		}
		endpoint += sep + "lang=" + c.lang
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.transport.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return "", nil
	}

	var er errorResponse
	_ = json.Unmarshal(raw, &er)
	return er.Error, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
}

// resetLocked clears every field and restarts the speed gate clock.
func (c *Controller) resetLocked() {
	c.values = contact.Submission{
		Service:   contact.ServiceKeys()[0],
		StartedAt: c.now().UnixMilli(),
	}
	c.errors = make(map[string]string)
	c.formError = ""
}

