// Package ui holds the presentation components shared by the rendered pages:
// alert banners, the confirmation dialog, and tab sets.
package ui

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AlertKind selects the banner style.
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertDanger  AlertKind = "danger"
)

// SuccessParam is the query parameter carrying a one-time success message.
const SuccessParam = "success"

// DefaultDismissDelay is how long a success banner stays before it closes
// itself.
const DefaultDismissDelay = 5 * time.Second

// MsgCorrectFields is the body of the banner shown above a rejected form.
const MsgCorrectFields = "Please correct the highlighted fields before submitting."

// Alert is a dismissible banner.
type Alert struct {
	// ID is unique per banner so that the auto-dismiss timer closes exactly
	// this one.
	ID      string
	Kind    AlertKind
	Heading string
	// Message is plain text.
	Message string
	// DismissAfter closes the banner automatically when positive.
	DismissAfter time.Duration
	// ReplaceURL, when set, replaces the current location once the banner
	// is shown, without navigating.
	ReplaceURL string
}

// NewAlert returns a banner of the given kind with a fresh id.  Markup in the
// message is stripped.
func NewAlert(kind AlertKind, heading, message string) Alert {
	return Alert{
		ID:      "alert-" + uuid.New().String(),
		Kind:    kind,
		Heading: heading,
		Message: PlainText(message),
	}
}

// ErrorAlert is the banner prepended to a form that failed validation.
func ErrorAlert() Alert {
	return NewAlert(AlertDanger, "Error!", MsgCorrectFields)
}

// Class returns the CSS classes of the banner element.
func (a Alert) Class() string {
	c := "alert alert-" + string(a.Kind) + " alert-dismissible fade show"
	if a.Kind == AlertSuccess {
		c += " mb-4"
	}
	return c
}

// DismissMillis returns the auto-dismiss delay in milliseconds, or 0.
func (a Alert) DismissMillis() int64 {
	if a.DismissAfter <= 0 {
		return 0
	}
	return a.DismissAfter.Milliseconds()
}

// SuccessFromURL reads the success message of u.  When present, it returns
// the banner to show and the URL to replace the current one with: the same
// path and query without the success parameter.  The query string of the
// returned URL is omitted entirely when nothing else remains.
func SuccessFromURL(u *url.URL, delay time.Duration) (Alert, *url.URL, bool) {
	if u == nil {
		return Alert{}, nil, false
	}
	query := u.Query()
	msg := query.Get(SuccessParam)
	if msg == "" {
		return Alert{}, nil, false
	}
	alert := NewAlert(AlertSuccess, "Success!", msg)
	alert.DismissAfter = delay

	clean := &url.URL{Path: u.Path, RawQuery: stripParam(u.RawQuery, SuccessParam)}
	alert.ReplaceURL = clean.String()
	return alert, clean, true
}

// stripParam removes every occurrence of key from a raw query, keeping the
// remaining pairs in their original order and encoding.
func stripParam(rawQuery, key string) string {
	var kept []string
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		k, _, _ := strings.Cut(pair, "=")
		if name, err := url.QueryUnescape(k); err == nil && name == key {
			continue
		}
		kept = append(kept, pair)
	}
	return strings.Join(kept, "&")
}

// WithSuccess returns a copy of u carrying a success message, for redirects
// after a completed submission.
func WithSuccess(u *url.URL, message string) *url.URL {
	c := *u
	query := c.Query()
	query.Set(SuccessParam, strings.TrimSpace(message))
	c.RawQuery = query.Encode()
	return &c
}
