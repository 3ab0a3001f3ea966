package form

// Validity is the displayed validation state of a field.
type Validity int

const (
	Unchecked Validity = iota
	Valid
	Invalid
)

func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unchecked"
	}
}

// Class returns the CSS class that displays the state, or the empty string
// for unchecked fields.
func (v Validity) Class() string {
	switch v {
	case Valid:
		return "is-valid"
	case Invalid:
		return "is-invalid"
	default:
		return ""
	}
}
