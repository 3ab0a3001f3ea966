package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitecrew/erpui/erpui/form"
	"github.com/sitecrew/erpui/erpui/validation"
)

const worklogYAML = `
- date: 2024-05-13
  entry: "08:00"
  exit: "17:00"
  lunch: "45"
- date: 2024-05-19
  entry: "08:00"
  exit: "12:00"
- date: 2024-05-20
  entry: "08:00"
  exit: "17:00"
`

func TestPayrollReport(t *testing.T) {
	entries, err := readWorklog(strings.NewReader(worklogYAML))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 45, entries[0].Lunch)
	assert.Equal(t, 0, entries[1].Lunch)

	week := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	report, err := payrollReport(entries, 20, week)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-13 to 2024-05-19: 12.50 hours, 250.00 due", report)
}

func TestReadWorklogErrors(t *testing.T) {
	entries, err := readWorklog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = readWorklog(strings.NewReader("- date: 13/05/2024\n  entry: \"08:00\"\n"))
	assert.ErrorContains(t, err, "entry 1")

	entries, err = readWorklog(strings.NewReader("- date: 2024-05-13\n  entry: \"8am\"\n  exit: \"17:00\"\n"))
	require.NoError(t, err)
	_, err = payrollReport(entries, 20, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}

const savedPayment = `<!DOCTYPE html>
<html><body>
<form id="paidForm" action="/forms/payment" data-kind="payment">
	<input type="number" id="paid_amount" name="amount" value="120" required>
	<select id="paid_payment_method" name="payment_method">
		<option value="cash">Cash</option>
		<option value="check" selected>Check</option>
	</select>
	<div class="check-details" style="display: none">
		<input type="text" id="check_number" name="check_number">
	</div>
</form>
</body></html>`

func TestCheckPage(t *testing.T) {
	f, res, err := checkPage(strings.NewReader(savedPayment))
	require.NoError(t, err)
	assert.Equal(t, form.KindPayment, f.Kind)
	assert.Equal(t, []validation.Failure{{Field: "check_number", Message: validation.MsgCheckNumber}}, res.Failures)

	page := strings.Replace(savedPayment, `name="check_number">`, `name="check_number" value="1042">`, 1)
	_, res, err = checkPage(strings.NewReader(page))
	require.NoError(t, err)
	assert.True(t, res.Valid())

	_, _, err = checkPage(strings.NewReader("<p>no form here</p>"))
	assert.Error(t, err)
}
