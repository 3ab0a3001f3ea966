package erpui

import (
	"github.com/sitecrew/erpui/erpui/form"
	"github.com/sitecrew/erpui/erpui/visibility"
)

// PaymentMethods are the options of the payment method selector.  Choosing
// "check" reveals the check details.
var PaymentMethods = []string{"cash", "bank_transfer", "check", "card"}

// BackOfficeForms returns the forms of the construction back-office: work
// logs, employee payments, invoices, employees, projects, and expenses.
func BackOfficeForms() []form.Form {
	return []form.Form{
		{
			ID:          "worklogForm",
			Name:        "Work log",
			Description: "Hours worked by an employee on a single day",
			Kind:        form.KindWorklog,
			Pages: []form.Page{{Elements: []form.Element{
				{ID: "employee_id", Name: "employee_id", Label: "Employee", Type: form.TextInput, Required: true},
				{ID: "work_date", Name: "work_date", Label: "Date", Type: form.DateInput, Required: true},
				{ID: "entry_time", Name: "entry_time", Label: "Entry time", Type: form.TimeInput, Required: true},
				{ID: "exit_time", Name: "exit_time", Label: "Exit time", Type: form.TimeInput, Required: true},
				{
					ID:          "lunch_duration",
					Name:        "lunch_duration",
					Label:       "Lunch (minutes)",
					Type:        form.NumberInput,
					Description: "Lunches longer than 30 minutes deduct half an hour",
				},
				{ID: "notes", Name: "notes", Label: "Notes", Type: form.TextArea},
			}}},
		},
		{
			ID:          "paidForm",
			Name:        "Payment",
			Description: "Record a payment to an employee",
			Kind:        form.KindPayment,
			Confirm: &form.Confirmation{
				Title:   "Record payment",
				Message: "The payment will be marked as paid. Continue?",
			},
			Pages: []form.Page{{Elements: []form.Element{
				{ID: "paid_employee_id", Name: "employee_id", Label: "Employee", Type: form.TextInput, Required: true},
				{ID: "paid_week", Name: "week_date", Label: "Week of", Type: form.DateInput, Required: true},
				{ID: "paid_amount", Name: "amount", Label: "Amount", Type: form.NumberInput, Required: true},
				{ID: "payment_date", Name: "payment_date", Label: "Paid on", Type: form.DateInput},
				{
					ID:        visibility.CheckDetails.ControllerID,
					Name:      visibility.CheckDetails.Controller,
					Label:     "Payment method",
					Type:      form.Select,
					ValueList: PaymentMethods,
					Required:  true,
				},
				{ID: "check_number", Name: "check_number", Label: "Check number", Type: form.TextInput, Group: visibility.CheckDetails.Group},
				{ID: "bank_name", Name: "bank_name", Label: "Bank", Type: form.TextInput, Group: visibility.CheckDetails.Group},
			}}},
		},
		{
			ID:          "invoiceForm",
			Name:        "Invoice",
			Description: "Bill a client for project work",
			Kind:        form.KindInvoice,
			Pages: []form.Page{{Elements: []form.Element{
				{ID: "invoice_project", Name: "project_id", Label: "Project", Type: form.TextInput, Required: true},
				{ID: "invoice_date", Name: "invoice_date", Label: "Invoice date", Type: form.DateInput, Required: true},
				{ID: "due_date", Name: "due_date", Label: "Due date", Type: form.DateInput},
				{ID: "amount_charged", Name: "amount_charged", Label: "Amount", Type: form.NumberInput, Required: true},
				{ID: "invoice_description", Name: "description", Label: "Description", Type: form.TextArea},
			}}},
		},
		{
			ID:          "employeeForm",
			Name:        "Employee",
			Description: "Add an employee",
			Kind:        form.KindEmployee,
			Pages: []form.Page{{Elements: []form.Element{
				{ID: "employee_name", Name: "name", Label: "Name", Type: form.TextInput, Required: true},
				{ID: "employee_phone", Name: "phone", Label: "Phone", Type: form.TelInput},
				{ID: "hourly_rate", Name: "hourly_rate", Label: "Hourly rate", Type: form.NumberInput, Required: true},
				{ID: "employee_active", Name: "active", Label: "Active", Type: form.Select, ValueList: []string{"yes", "no"}, Value: "yes"},
			}}},
		},
		{
			ID:          "projectForm",
			Name:        "Project",
			Description: "Add a construction project",
			Kind:        form.KindProject,
			Pages: []form.Page{{Elements: []form.Element{
				{ID: "project_name", Name: "name", Label: "Name", Type: form.TextInput, Required: true},
				{ID: "project_client", Name: "client", Label: "Client", Type: form.TextInput, Required: true},
				{ID: "project_value", Name: "value", Label: "Contract value", Type: form.NumberInput},
				{ID: "start_date", Name: "start_date", Label: "Start date", Type: form.DateInput, Required: true},
				{ID: "end_date", Name: "end_date", Label: "End date", Type: form.DateInput},
			}}},
		},
		{
			ID:          "expenseForm",
			Name:        "Expense",
			Description: "Record a project expense",
			Kind:        form.KindExpense,
			Confirm:     &form.Confirmation{},
			Pages: []form.Page{{Elements: []form.Element{
				{ID: "expense_project", Name: "project_id", Label: "Project", Type: form.TextInput},
				{ID: "expense_date", Name: "expense_date", Label: "Date", Type: form.DateInput, Required: true},
				{ID: "expense_amount", Name: "amount", Label: "Amount", Type: form.NumberInput, Required: true},
				{ID: "expense_category", Name: "category", Label: "Category", Type: form.Select, ValueList: []string{"materials", "equipment", "permits", "other"}},
				{ID: "expense_description", Name: "description", Label: "Description", Type: form.TextArea},
			}}},
		},
	}
}
