// Package validation evaluates back-office forms: per-field rules selected by
// field name and type, followed by the form-level rules of the form's kind.
// Validation never changes field values; it only reports failures and the
// resulting validity state of every evaluated field.
package validation

import (
	"errors"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/sitecrew/erpui/erpui/form"
)

// Failure is a single failed rule.
type Failure struct {
	Field   string
	Message string
}

// Result is the outcome of validating a form.
type Result struct {
	// Failures in evaluation order.  A field appears at most once, carrying
	// the message of the last rule that failed it.
	Failures []Failure
	// States holds the validity of every evaluated field by name.
	States map[string]form.Validity
}

// Valid reports whether no rule failed.
func (r Result) Valid() bool {
	return len(r.Failures) == 0
}

// State returns the validity of the named field.
func (r Result) State(field string) form.Validity {
	return r.States[field]
}

// Message returns the failure message of the named field, if any.
func (r Result) Message(field string) string {
	for _, f := range r.Failures {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// First returns the first failure.
func (r Result) First() (Failure, bool) {
	if len(r.Failures) == 0 {
		return Failure{}, false
	}
	return r.Failures[0], true
}

// Err returns the failures as criterio field errors, or nil if the form is
// valid.
func (r Result) Err() error {
	var errs criterio.FieldErrorsBuilder
	for _, f := range r.Failures {
		errs = errs.Append(f.Field, errors.New(f.Message))
	}
	return errs.ToError()
}

func (r *Result) fail(field, message string) {
	if r.States == nil {
		r.States = make(map[string]form.Validity)
	}
	r.States[field] = form.Invalid
	for idx := range r.Failures {
		if r.Failures[idx].Field == field {
			r.Failures[idx].Message = message
			return
		}
	}
	r.Failures = append(r.Failures, Failure{Field: field, Message: message})
}

func (r *Result) pass(field string) {
	if r.States == nil {
		r.States = make(map[string]form.Validity)
	}
	r.States[field] = form.Valid
}

// Validator evaluates forms against the field rules and the form-level rules
// of their kind.
type Validator struct {
	// Now is the clock used by rules that compare dates with today.
	Now func() time.Time
	// FormRules maps a form kind to its form-level rule.  Kinds without an
	// entry only get the field rules.
	FormRules map[form.Kind]FormRule
}

// New returns a Validator with the built-in form rules and the wall clock.
func New() *Validator {
	rules := make(map[form.Kind]FormRule, len(builtinFormRules))
	for k, r := range builtinFormRules {
		rules[k] = r
	}
	return &Validator{Now: time.Now, FormRules: rules}
}

var defaultValidator = New()

// Field validates a single element with the default validator.
func Field(e form.Element) (form.Validity, string) {
	return defaultValidator.Field(e)
}

// Form validates a form with the default validator.
func Form(f form.Form) Result {
	return defaultValidator.Form(f)
}

// Field validates a single element.  Disabled and hidden elements are not
// evaluated and stay unchecked.
func (v *Validator) Field(e form.Element) (form.Validity, string) {
	if e.Skipped() {
		return form.Unchecked, ""
	}
	if msg := fieldMessage(e); msg != "" {
		return form.Invalid, msg
	}
	return form.Valid, ""
}

// Form validates every element and then applies the form-level rule of the
// form's kind.
func (v *Validator) Form(f form.Form) Result {
	var res Result
	for _, e := range f.Elements() {
		key := e.Name
		if key == "" {
			key = e.ID
		}
		state, msg := v.Field(e)
		switch state {
		case form.Invalid:
			res.fail(key, msg)
		case form.Valid:
			res.pass(key)
		}
	}
	if rule, ok := v.FormRules[f.Kind]; ok && rule != nil {
		now := time.Now
		if v.Now != nil {
			now = v.Now
		}
		for _, failure := range rule(f, now()) {
			res.fail(failure.Field, failure.Message)
		}
	}
	return res
}
