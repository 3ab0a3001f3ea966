package validation

import "github.com/sitecrew/erpui/erpui/form"

// Outcome is what happens to a submission after validation.
type Outcome int

const (
	// Submit sends the form.
	Submit Outcome = iota
	// Reject blocks the submission; the failures are shown on the form.
	Reject
	// Confirm pauses the submission until the user confirms it.
	Confirm
)

func (o Outcome) String() string {
	switch o {
	case Reject:
		return "reject"
	case Confirm:
		return "confirm"
	default:
		return "submit"
	}
}

// Decide returns the outcome of a submission.  confirmed is set once the
// user accepted the confirmation dialog; the form's confirmation flag is then
// treated as cleared so the submission is not intercepted a second time.
func Decide(f form.Form, res Result, confirmed bool) Outcome {
	if !res.Valid() {
		return Reject
	}
	if f.Confirm != nil && !confirmed {
		return Confirm
	}
	return Submit
}
