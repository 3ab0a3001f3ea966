// Package visibility shows or hides dependent field groups based on the value
// of a controlling select element.
package visibility

import "github.com/sitecrew/erpui/erpui/form"

// Rule reveals the elements of Group while the controlling element's value
// equals Equals, and hides them otherwise.
type Rule struct {
	// Controller is the name of the controlling element.
	Controller string
	// ControllerID is the id of the controlling element in rendered markup.
	// Falls back to Controller when empty.
	ControllerID string
	// Equals is the value that reveals the group.
	Equals string
	// Group is the class shared by the dependent elements.
	Group string
}

// CheckDetails reveals the check number and bank fields for check payments.
var CheckDetails = Rule{
	Controller:   "payment_method",
	ControllerID: "paid_payment_method",
	Equals:       "check",
	Group:        "check-details",
}

// Visible reports whether the group is shown for the controller value.
func (r Rule) Visible(value string) bool {
	return value == r.Equals
}

// ID returns the id of the controlling element in rendered markup.
func (r Rule) ID() string {
	if r.ControllerID != "" {
		return r.ControllerID
	}
	return r.Controller
}

// Apply sets the hidden state of every element in the rule's group from the
// current controller value.  Forms without the controller or without any
// element of the group are left untouched; the returned flag is false in
// that case.
func (r Rule) Apply(f *form.Form) bool {
	ctrl, ok := r.controller(f)
	if !ok {
		return false
	}
	show := r.Visible(ctrl.Value)
	applied := false
	for pidx := range f.Pages {
		elems := f.Pages[pidx].Elements
		for idx := range elems {
			if elems[idx].Group != r.Group {
				continue
			}
			elems[idx].Hidden = !show
			applied = true
		}
	}
	return applied
}

func (r Rule) controller(f *form.Form) (*form.Element, bool) {
	if e, ok := f.Lookup(r.Controller); ok {
		return e, true
	}
	id := r.ID()
	for pidx := range f.Pages {
		elems := f.Pages[pidx].Elements
		for idx := range elems {
			if elems[idx].ID == id {
				return &elems[idx], true
			}
		}
	}
	return nil, false
}

// ApplyAll applies every rule in order.
func ApplyAll(f *form.Form, rules ...Rule) {
	for _, r := range rules {
		r.Apply(f)
	}
}
