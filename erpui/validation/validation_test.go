package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitecrew/erpui/erpui/form"
)

func TestFieldRules(t *testing.T) {
	tests := []struct {
		name  string
		elem  form.Element
		state form.Validity
		msg   string
	}{
		{"required empty", form.Element{Name: "name", Required: true, Value: "  "}, form.Invalid, MsgRequired},
		{"optional empty", form.Element{Name: "notes"}, form.Valid, ""},
		{"disabled", form.Element{Name: "name", Required: true, Disabled: true}, form.Unchecked, ""},
		{"hidden type", form.Element{Name: "id", Type: form.HiddenInput, Required: true}, form.Unchecked, ""},
		{"amount ok", form.Element{Name: "amount", Value: "12.50"}, form.Valid, ""},
		{"amount zero", form.Element{Name: "amount", Value: "0"}, form.Valid, ""},
		{"amount negative", form.Element{Name: "amount", Value: "-1"}, form.Invalid, MsgPositiveNumber},
		{"amount text", form.Element{Name: "amount", Value: "lots"}, form.Invalid, MsgPositiveNumber},
		{"amount-like name", form.Element{Name: "amount_paid", Value: "x"}, form.Invalid, MsgPositiveNumber},
		{"hourly rate", form.Element{Name: "hourly_rate", Value: "-3"}, form.Invalid, MsgPositiveNumber},
		{"date ok", form.Element{Name: "log_date", Type: form.DateInput, Value: "2024-02-29"}, form.Valid, ""},
		{"date impossible", form.Element{Name: "log_date", Type: form.DateInput, Value: "2024-02-30"}, form.Invalid, MsgDate},
		{"date shape", form.Element{Name: "log_date", Type: form.DateInput, Value: "2024-2-3"}, form.Invalid, MsgDate},
		{"time ok", form.Element{Name: "entry_time", Type: form.TimeInput, Value: "7:05"}, form.Valid, ""},
		{"time hour range", form.Element{Name: "entry_time", Type: form.TimeInput, Value: "24:00"}, form.Invalid, MsgTime},
		{"time minute range", form.Element{Name: "entry_time", Type: form.TimeInput, Value: "12:60"}, form.Invalid, MsgTime},
		{"lunch ok", form.Element{Name: "lunch_duration", Value: "45"}, form.Valid, ""},
		{"lunch negative", form.Element{Name: "lunch_duration", Value: "-5"}, form.Invalid, MsgDuration},
		{"lunch text", form.Element{Name: "lunch_duration", Value: "half hour"}, form.Invalid, MsgDuration},
		{"check shown empty", form.Element{Name: "check_number", Group: "check-details"}, form.Invalid, MsgCheckNumber},
		{"check hidden empty", form.Element{Name: "check_number", Group: "check-details", Hidden: true}, form.Valid, ""},
		{"check ungrouped", form.Element{Name: "check_number"}, form.Valid, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state, msg := Field(tc.elem)
			assert.Equal(t, tc.state, state)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func TestRequiredShortCircuits(t *testing.T) {
	state, msg := Field(form.Element{Name: "log_date", Type: form.DateInput, Required: true})
	assert.Equal(t, form.Invalid, state)
	assert.Equal(t, MsgRequired, msg)
}

func TestNameRuleBeatsType(t *testing.T) {
	// currency rules are keyed by name and win over the date type rule
	state, _ := Field(form.Element{Name: "amount", Type: form.DateInput, Value: "15"})
	assert.Equal(t, form.Valid, state)
}

func single(kind form.Kind, elems ...form.Element) form.Form {
	return form.Form{Kind: kind, Pages: []form.Page{{Elements: elems}}}
}

func TestWorklogForm(t *testing.T) {
	f := single(form.KindWorklog,
		form.Element{Name: "entry_time", Type: form.TimeInput, Value: "09:00"},
		form.Element{Name: "exit_time", Type: form.TimeInput, Value: "09:00"},
	)
	res := Form(f)
	require.False(t, res.Valid())
	assert.Equal(t, []Failure{{Field: "exit_time", Message: MsgExitAfterEntry}}, res.Failures)
	assert.Equal(t, form.Valid, res.State("entry_time"))
	assert.Equal(t, form.Invalid, res.State("exit_time"))

	f.Pages[0].Elements[1].Value = "17:30"
	assert.True(t, Form(f).Valid())
}

func TestPaymentForm(t *testing.T) {
	f := single(form.KindPayment,
		form.Element{Name: "payment_method", Type: form.Select, Value: "check"},
		form.Element{Name: "check_number"},
	)
	res := Form(f)
	assert.Equal(t, MsgCheckNumber, res.Message("check_number"))

	f.Pages[0].Elements[0].Value = "cash"
	assert.True(t, Form(f).Valid())
}

func TestInvoiceForm(t *testing.T) {
	f := single(form.KindInvoice, form.Element{Name: "amount_charged", Value: "0"})
	assert.Equal(t, MsgInvoiceAmount, Form(f).Message("amount_charged"))

	f.Pages[0].Elements[0].Value = ""
	assert.True(t, Form(f).Valid(), "empty amount is left to the required flag")

	f.Pages[0].Elements[0].Value = "100"
	assert.True(t, Form(f).Valid())
}

func TestFormRuleOverridesFieldMessage(t *testing.T) {
	// the field rule fires first, the form rule replaces its message
	f := single(form.KindWorklog,
		form.Element{Name: "entry_time", Value: "10:00"},
		form.Element{Name: "exit_time", Type: form.TimeInput, Value: "09:0", Required: true},
	)
	res := Form(f)
	assert.Len(t, res.Failures, 1)
	assert.Equal(t, MsgExitAfterEntry, res.Message("exit_time"))
}

func TestKindsDoNotCombine(t *testing.T) {
	// a worklog form carrying a payment method still only gets worklog rules
	f := single(form.KindWorklog,
		form.Element{Name: "payment_method", Value: "check"},
		form.Element{Name: "check_number"},
	)
	assert.True(t, Form(f).Valid())
}

func TestSupplementalKinds(t *testing.T) {
	v := New()
	v.Now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	emp := single(form.KindEmployee,
		form.Element{Name: "name", Value: "Ana"},
		form.Element{Name: "hourly_rate", Value: "0"},
	)
	assert.Equal(t, MsgHourlyRate, v.Form(emp).Message("hourly_rate"))

	proj := single(form.KindProject,
		form.Element{Name: "start_date", Type: form.DateInput, Value: "2024-05-10"},
		form.Element{Name: "end_date", Type: form.DateInput, Value: "2024-05-01"},
	)
	assert.Equal(t, MsgEndAfterStart, v.Form(proj).Message("end_date"))

	exp := single(form.KindExpense,
		form.Element{Name: "expense_date", Type: form.DateInput, Value: "2024-06-02"},
		form.Element{Name: "amount", Value: "20"},
	)
	got := v.Form(exp).Failures
	want := []Failure{{Field: "expense_date", Message: MsgExpenseInFuture}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expense failures mismatch (-want +got):\n%s", diff)
	}

	pay := single(form.KindPayment,
		form.Element{Name: "amount", Value: "0"},
		form.Element{Name: "payment_method", Type: form.Select, Value: "cash"},
		form.Element{Name: "payment_date", Type: form.DateInput, Value: "2024-06-02"},
	)
	got = v.Form(pay).Failures
	want = []Failure{
		{Field: "amount", Message: MsgPaymentAmount},
		{Field: "payment_date", Message: MsgPaymentInFuture},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payment failures mismatch (-want +got):\n%s", diff)
	}
	pay.Pages[0].Elements[0].Value = "250"
	pay.Pages[0].Elements[2].Value = "2024-06-01"
	assert.True(t, v.Form(pay).Valid(), "today is not in the future")

	work := single(form.KindWorklog,
		form.Element{Name: "work_date", Type: form.DateInput, Value: "2025-01-01"},
		form.Element{Name: "entry_time", Type: form.TimeInput, Value: "08:00"},
		form.Element{Name: "exit_time", Type: form.TimeInput, Value: "17:00"},
	)
	assert.Equal(t, MsgWorklogInFuture, v.Form(work).Message("work_date"))

	long := strings.Repeat("x", 201)
	for _, kind := range []form.Kind{form.KindInvoice, form.KindProject, form.KindExpense} {
		f := single(kind, form.Element{Name: "description", Type: form.TextArea, Value: long})
		assert.Equal(t, "Description is too long (maximum 200 characters)", v.Form(f).Message("description"), kind)

		f.Pages[0].Elements[0].Value = long[:200]
		assert.Empty(t, v.Form(f).Message("description"), kind)
	}
}

func TestResultErr(t *testing.T) {
	assert.NoError(t, Result{}.Err())

	f := single(form.KindGeneric,
		form.Element{Name: "name", Required: true},
		form.Element{Name: "amount", Value: "-2"},
	)
	err := Form(f).Err()
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "name", fieldErrs[0].Field)
	assert.Equal(t, MsgRequired, fieldErrs[0].Err.Error())
}

func TestDecide(t *testing.T) {
	plain := single(form.KindGeneric, form.Element{Name: "notes"})
	confirm := plain
	confirm.Confirm = &form.Confirmation{}
	bad := Result{Failures: []Failure{{Field: "x", Message: "y"}}}

	assert.Equal(t, Submit, Decide(plain, Result{}, false))
	assert.Equal(t, Reject, Decide(confirm, bad, true))
	assert.Equal(t, Confirm, Decide(confirm, Result{}, false))
	assert.Equal(t, Submit, Decide(confirm, Result{}, true))
}
