package form

import (
	"net/url"
	"strings"
)

const (
	CheckboxInput ElementType = "checkbox"
	DateInput     ElementType = "date"
	EmailInput    ElementType = "email"
	HiddenInput   ElementType = "hidden"
	NumberInput   ElementType = "number"
	TelInput      ElementType = "tel"
	TextInput     ElementType = "text"
	TimeInput     ElementType = "time"
	TextArea      ElementType = "textarea"
	Select        ElementType = "select"
)

// ElementType defines the type of a form input element:
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/input
type ElementType string

// Kind tags a form with the set of form-level rules that apply to it.
type Kind string

const (
	KindGeneric  Kind = ""
	KindWorklog  Kind = "worklog"
	KindPayment  Kind = "payment"
	KindInvoice  Kind = "invoice"
	KindEmployee Kind = "employee"
	KindProject  Kind = "project"
	KindExpense  Kind = "expense"
)

// Confirmation marks a form whose submission must be confirmed by the user
// before it is sent.  Empty fields fall back to the defaults.
type Confirmation struct {
	Title   string
	Message string
}

const (
	DefaultConfirmTitle   = "Confirm Action"
	DefaultConfirmMessage = "Are you sure you want to proceed?"
)

// WithDefaults returns a copy of the Confirmation with empty fields set to
// the default title and message.
func (c Confirmation) WithDefaults() Confirmation {
	if strings.TrimSpace(c.Title) == "" {
		c.Title = DefaultConfirmTitle
	}
	if strings.TrimSpace(c.Message) == "" {
		c.Message = DefaultConfirmMessage
	}
	return c
}

// Form is the top level type for defining a back-office web form.
type Form struct {
	// ID of the rendered form element.
	ID string
	// The Name appears at the top of the form and in the HTML title.  It is
	// also the key under which the form is registered with the service.
	Name string
	// The Description appears under the Name.
	Description string
	// Action is the path the form posts to.
	Action string
	// Kind selects the form-level validation rules.
	Kind Kind
	// If set, submission is paused until the user confirms.
	Confirm *Confirmation
	// Each Page groups a set of elements.  The last page contains the submit
	// button.
	Pages []Page
}

// Page represents a group of form elements rendered together.
type Page struct {
	// The Description appears above the page elements.
	Description string
	// Each element creates an input field on the form.
	Elements []Element
}

// Element represents a single form element (field).
type Element struct {
	// ID of the element.  Must be unique.
	ID string
	// Name of the element.  Used as key to retrieve the value on submission.
	Name string
	// The Label of the field as it appears on the rendered form.
	Label string
	// Current raw value of the field.
	Value string
	// Whether the element represents a required form field.
	Required bool
	// An optional description rendered under the input field.
	Description string
	// Type is the HTML input element type.
	Type ElementType
	// ValueList holds the options of a select element or the suggested
	// values (datalist) of an input element.
	ValueList []string
	// Read only fields can't be edited.
	ReadOnly bool
	// Disabled fields are neither validated nor submitted.
	Disabled bool
	// Group is the class of the enclosing field group (for example
	// "check-details").  Empty for ungrouped fields.
	Group string
	// Hidden is set while the enclosing group is not displayed.
	Hidden bool
}

// Trimmed returns the element value without surrounding whitespace.
func (e Element) Trimmed() string {
	return strings.TrimSpace(e.Value)
}

// Skipped reports whether validation ignores the element.
func (e Element) Skipped() bool {
	return e.Disabled || e.Type == HiddenInput
}

// Elements returns all elements of the form in page order.
func (f Form) Elements() []Element {
	var elems []Element
	for _, p := range f.Pages {
		elems = append(elems, p.Elements...)
	}
	return elems
}

// Lookup returns a pointer to the first element with the given name.
func (f *Form) Lookup(name string) (*Element, bool) {
	for pidx := range f.Pages {
		elems := f.Pages[pidx].Elements
		for idx := range elems {
			if elems[idx].Name == name {
				return &elems[idx], true
			}
		}
	}
	return nil, false
}

// Has reports whether the form contains an element with the given name.
func (f Form) Has(name string) bool {
	_, ok := f.Lookup(name)
	return ok
}

// Value returns the raw value of the named element, or the empty string if
// the form has no such element.
func (f Form) Value(name string) string {
	if e, ok := f.Lookup(name); ok {
		return e.Value
	}
	return ""
}

// Values returns the name to raw value mapping of all enabled elements.
func (f Form) Values() map[string]string {
	values := make(map[string]string)
	for _, e := range f.Elements() {
		if e.Disabled || e.Name == "" {
			continue
		}
		values[e.Name] = e.Value
	}
	return values
}

// Fill sets the value of every named element from the submitted values.
// Elements without a submitted value are cleared.
func (f *Form) Fill(values url.Values) {
	for pidx := range f.Pages {
		elems := f.Pages[pidx].Elements
		for idx := range elems {
			if elems[idx].Name == "" || elems[idx].Disabled {
				continue
			}
			elems[idx].Value = values.Get(elems[idx].Name)
		}
	}
}

// Clone returns a deep copy of the form so that rendering or validating a
// request never touches the registered definition.
func (f Form) Clone() Form {
	c := f
	if f.Confirm != nil {
		confirm := *f.Confirm
		c.Confirm = &confirm
	}
	c.Pages = make([]Page, len(f.Pages))
	for pidx, p := range f.Pages {
		c.Pages[pidx].Description = p.Description
		c.Pages[pidx].Elements = make([]Element, len(p.Elements))
		copy(c.Pages[pidx].Elements, p.Elements)
		for idx := range c.Pages[pidx].Elements {
			if vl := p.Elements[idx].ValueList; vl != nil {
				c.Pages[pidx].Elements[idx].ValueList = append([]string(nil), vl...)
			}
		}
	}
	return c
}

// DetectKind infers the form kind of markup that carries no explicit kind.
// The first matching heuristic wins: worklog by id or action path, payment
// by id or the presence of a payment_method field, invoice by id or action
// path.
func DetectKind(id, action string, fieldNames []string) Kind {
	if id == "worklogForm" || action == "/worklogs" {
		return KindWorklog
	}
	if id == "paymentForm" {
		return KindPayment
	}
	for _, name := range fieldNames {
		if name == "payment_method" {
			return KindPayment
		}
	}
	if id == "invoiceForm" || action == "/invoices" {
		return KindInvoice
	}
	return KindGeneric
}
