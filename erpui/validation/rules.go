package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sitecrew/erpui/erpui/form"
)

const (
	MsgRequired        = "This field is required"
	MsgPositiveNumber  = "Please enter a valid positive number"
	MsgDate            = "Please enter a valid date"
	MsgTime            = "Please enter a valid time"
	MsgDuration        = "Please enter a valid duration in minutes"
	MsgCheckNumber     = "Check number is required for check payments"
	MsgExitAfterEntry  = "Exit time must be after entry time"
	MsgInvoiceAmount   = "Invoice amount must be greater than zero"
	MsgHourlyRate      = "Hourly rate must be greater than zero"
	MsgProjectValue    = "Project value must be greater than zero"
	MsgEndAfterStart   = "End date must be after start date"
	MsgExpenseAmount   = "Expense amount must be greater than zero"
	MsgExpenseInFuture = "Expense date cannot be in the future"
	MsgPaymentAmount   = "Payment amount must be greater than zero"
	MsgPaymentInFuture = "Payment date cannot be in the future"
	MsgWorklogInFuture = "Work log date cannot be in the future"
)

const (
	dateLayout        = "2006-01-02"
	maxNameLen        = 100
	maxDescriptionLen = 200
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// IsDate reports whether s is a YYYY-MM-DD string naming a real calendar
// day.  "2024-02-30" has the right shape but is not a date.
func IsDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// IsTime reports whether s is a 24-hour H:MM or HH:MM time.
func IsTime(s string) bool {
	return timePattern.MatchString(s)
}

func isCurrency(name string) bool {
	return name == "hourly_rate" || name == "amount" || name == "value" || strings.Contains(name, "amount")
}

// fieldMessage returns the message of the first failing field rule.  The
// required check short-circuits; after it, exactly one name or type keyed
// rule is selected.
func fieldMessage(e form.Element) string {
	value := e.Trimmed()
	if e.Required && value == "" {
		return MsgRequired
	}

	switch {
	case isCurrency(e.Name):
		if value == "" {
			return ""
		}
		if n, ok := form.LeadingFloat(value); !ok || n < 0 {
			return MsgPositiveNumber
		}
	case e.Type == form.DateInput:
		if value != "" && !IsDate(value) {
			return MsgDate
		}
	case e.Type == form.TimeInput:
		if value != "" && !IsTime(value) {
			return MsgTime
		}
	case e.Name == "lunch_duration":
		if value == "" {
			return ""
		}
		if n, ok := form.LeadingInt(value); !ok || n < 0 {
			return MsgDuration
		}
	case e.Name == "check_number" && e.Group != "" && !e.Hidden:
		if value == "" {
			return MsgCheckNumber
		}
	}
	return ""
}

// FormRule checks the cross-field constraints of one form kind.  now is the
// validator's clock reading.
type FormRule func(f form.Form, now time.Time) []Failure

var builtinFormRules = map[form.Kind]FormRule{
	form.KindWorklog:  worklogRule,
	form.KindPayment:  paymentRule,
	form.KindInvoice:  invoiceRule,
	form.KindEmployee: employeeRule,
	form.KindProject:  projectRule,
	form.KindExpense:  expenseRule,
}

// worklogRule requires the entry time to be strictly before the exit time.
// HH:MM values are zero padded, so string order is time order.
func worklogRule(f form.Form, now time.Time) []Failure {
	failures := inFuture(f, "work_date", now, MsgWorklogInFuture)
	entry, exit := f.Value("entry_time"), f.Value("exit_time")
	if entry == "" || exit == "" {
		return failures
	}
	if entry >= exit {
		failures = append(failures, Failure{Field: "exit_time", Message: MsgExitAfterEntry})
	}
	return failures
}

func paymentRule(f form.Form, now time.Time) []Failure {
	var failures []Failure
	if n, ok := form.LeadingFloat(f.Value("amount")); ok && n <= 0 {
		failures = append(failures, Failure{Field: "amount", Message: MsgPaymentAmount})
	}
	if f.Value("payment_method") == "check" {
		if check, ok := f.Lookup("check_number"); ok && check.Trimmed() == "" {
			failures = append(failures, Failure{Field: "check_number", Message: MsgCheckNumber})
		}
	}
	return append(failures, inFuture(f, "payment_date", now, MsgPaymentInFuture)...)
}

// invoiceRule only rejects amounts that read as a number; a missing amount
// is left to the required check.
func invoiceRule(f form.Form, _ time.Time) []Failure {
	failures := tooLong(f, "description", "Description", maxDescriptionLen)
	if !f.Has("amount_charged") {
		return failures
	}
	if n, ok := form.LeadingFloat(f.Value("amount_charged")); ok && n <= 0 {
		failures = append(failures, Failure{Field: "amount_charged", Message: MsgInvoiceAmount})
	}
	return failures
}

func employeeRule(f form.Form, _ time.Time) []Failure {
	var failures []Failure
	failures = append(failures, tooLong(f, "name", "Name", maxNameLen)...)
	if n, ok := form.LeadingFloat(f.Value("hourly_rate")); ok && n <= 0 {
		failures = append(failures, Failure{Field: "hourly_rate", Message: MsgHourlyRate})
	}
	return failures
}

func projectRule(f form.Form, _ time.Time) []Failure {
	var failures []Failure
	failures = append(failures, tooLong(f, "name", "Name", maxNameLen)...)
	failures = append(failures, tooLong(f, "client", "Client name", maxNameLen)...)
	failures = append(failures, tooLong(f, "description", "Description", maxDescriptionLen)...)
	if n, ok := form.LeadingFloat(f.Value("value")); ok && n <= 0 {
		failures = append(failures, Failure{Field: "value", Message: MsgProjectValue})
	}
	start, end := strings.TrimSpace(f.Value("start_date")), strings.TrimSpace(f.Value("end_date"))
	if IsDate(start) && IsDate(end) && start > end {
		failures = append(failures, Failure{Field: "end_date", Message: MsgEndAfterStart})
	}
	return failures
}

func expenseRule(f form.Form, now time.Time) []Failure {
	failures := tooLong(f, "description", "Description", maxDescriptionLen)
	if n, ok := form.LeadingFloat(f.Value("amount")); ok && n <= 0 {
		failures = append(failures, Failure{Field: "amount", Message: MsgExpenseAmount})
	}
	return append(failures, inFuture(f, "expense_date", now, MsgExpenseInFuture)...)
}

func tooLong(f form.Form, field, label string, limit int) []Failure {
	if utf8.RuneCountInString(strings.TrimSpace(f.Value(field))) <= limit {
		return nil
	}
	return []Failure{{Field: field, Message: fmt.Sprintf("%s is too long (maximum %d characters)", label, limit)}}
}

// inFuture fails a date field set to a day after now.  Dates that do not
// parse are left to the field rules.
func inFuture(f form.Form, field string, now time.Time, message string) []Failure {
	if d := strings.TrimSpace(f.Value(field)); IsDate(d) && d > now.Format(dateLayout) {
		return []Failure{{Field: field, Message: message}}
	}
	return nil
}
