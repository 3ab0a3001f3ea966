package form

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/sitecrew/erpui/templates"
)

var allElementTypes = []ElementType{CheckboxInput, DateInput, EmailInput, HiddenInput, NumberInput, TelInput, TextInput, TimeInput, TextArea, Select}

func TestFormElementsHTML(t *testing.T) {
	testElements := make([]Element, len(allElementTypes))
	for idx := range allElementTypes {
		elemType := allElementTypes[idx]
		elem := Element{
			ID:          fmt.Sprintf("id%s", elemType),
			Name:        string(elemType),
			Label:       fmt.Sprintf("Element type %s", elemType),
			Description: fmt.Sprintf("An element of type %s", elemType),
			ValueList: []string{ // will only have effect on the types where it's valid
				fmt.Sprintf("%s option one", elemType),
				fmt.Sprintf("%s option two", elemType),
				fmt.Sprintf("%s option three", elemType),
			},
			Type:     elemType,
			Required: idx%2 == 0,
			Group:    "grp",
		}
		testElements[idx] = elem
	}

	testPage := Page{
		Description: "One of each element supported by the back office",
		Elements:    testElements,
	}
	testForm := Form{
		ID:      "exampleForm",
		Pages:   []Page{testPage},
		Name:    "Example form",
		Action:  "/forms/example",
		Kind:    KindExpense,
		Confirm: &Confirmation{Title: "Sure?"},
	}

	// render form and check if it's valid HTML
	tmpl := template.New("layout")
	tmpl, err := tmpl.Parse(templates.Layout)
	if err != nil {
		t.Fatalf("Failed to parse Layout template: %s", err.Error())
	}
	tmpl, err = tmpl.Parse(templates.Form)
	if err != nil {
		t.Fatalf("Failed to parse Form template: %s", err.Error())
	}

	data := make(map[string]interface{})
	data["Title"] = testForm.Name
	data["Form"] = testForm
	data["Hours"] = true

	formHTML := new(bytes.Buffer)
	if err := tmpl.Execute(formHTML, data); err != nil {
		t.Fatalf("Failed to render form: %v", err.Error())
	}

	if _, err := html.Parse(formHTML); err != nil {
		t.Fatalf("Bad HTML when rendering form: %v", err.Error())
	}
}

func testForm() Form {
	return Form{
		ID:      "paymentForm",
		Name:    "Payment",
		Confirm: &Confirmation{Title: "Pay"},
		Pages: []Page{
			{Elements: []Element{
				{ID: "m", Name: "payment_method", Type: Select, ValueList: []string{"cash", "check"}},
				{ID: "c", Name: "check_number", Group: "check-details"},
			}},
			{Elements: []Element{
				{ID: "n", Name: "notes", Disabled: true, Value: "keep"},
				{ID: "x", Type: HiddenInput, Value: "unnamed"},
			}},
		},
	}
}

func TestFillAndValues(t *testing.T) {
	f := testForm()
	f.Fill(url.Values{
		"payment_method": {"check"},
		"notes":          {"ignored"},
		"extra":          {"dropped"},
	})

	want := map[string]string{
		"payment_method": "check",
		"check_number":   "",
	}
	if diff := cmp.Diff(want, f.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "keep", f.Value("notes"), "disabled fields are not filled")
	assert.Equal(t, "", f.Value("missing"))
	assert.True(t, f.Has("check_number"))
	assert.Len(t, f.Elements(), 4)
}

func TestLookupReturnsElementInForm(t *testing.T) {
	f := testForm()
	e, ok := f.Lookup("check_number")
	require.True(t, ok)
	e.Hidden = true
	assert.True(t, f.Pages[0].Elements[1].Hidden)

	_, ok = f.Lookup("nope")
	assert.False(t, ok)
}

func TestClone(t *testing.T) {
	f := testForm()
	c := f.Clone()
	if diff := cmp.Diff(f, c); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	c.Pages[0].Elements[0].Value = "cash"
	c.Pages[0].Elements[0].ValueList[0] = "card"
	c.Confirm.Title = "Changed"
	assert.Equal(t, "", f.Pages[0].Elements[0].Value)
	assert.Equal(t, "cash", f.Pages[0].Elements[0].ValueList[0])
	assert.Equal(t, "Pay", f.Confirm.Title)
}

func TestElementSkipped(t *testing.T) {
	assert.True(t, Element{Disabled: true}.Skipped())
	assert.True(t, Element{Type: HiddenInput}.Skipped())
	assert.False(t, Element{Type: TextInput, Hidden: true}.Skipped())
	assert.Equal(t, "x y", Element{Value: "  x y\t"}.Trimmed())
}

func TestConfirmationDefaults(t *testing.T) {
	c := Confirmation{Message: "  "}.WithDefaults()
	assert.Equal(t, DefaultConfirmTitle, c.Title)
	assert.Equal(t, DefaultConfirmMessage, c.Message)

	c = Confirmation{Title: "Delete", Message: "Gone for good?"}.WithDefaults()
	assert.Equal(t, "Delete", c.Title)
	assert.Equal(t, "Gone for good?", c.Message)
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		action string
		fields []string
		want   Kind
	}{
		{"worklog by id", "worklogForm", "/x", nil, KindWorklog},
		{"worklog by action", "f", "/worklogs", []string{"payment_method"}, KindWorklog},
		{"payment by id", "paymentForm", "/invoices", nil, KindPayment},
		{"payment by field", "paidForm", "/payments", []string{"amount", "payment_method"}, KindPayment},
		{"invoice by id", "invoiceForm", "", nil, KindInvoice},
		{"invoice by action", "", "/invoices", []string{"amount_charged"}, KindInvoice},
		{"generic", "employeeForm", "/employees", []string{"name"}, KindGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectKind(tt.id, tt.action, tt.fields))
		})
	}
}

func TestValidity(t *testing.T) {
	assert.Equal(t, "", Unchecked.Class())
	assert.Equal(t, "is-valid", Valid.Class())
	assert.Equal(t, "is-invalid", Invalid.Class())
	assert.Equal(t, "invalid", Invalid.String())
}

func TestLeadingNumbers(t *testing.T) {
	floats := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5", 12.5, true},
		{" 12.5kg", 12.5, true},
		{"-3", -3, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3x", 1000, true},
		{"2e", 2, true},
		{"kg", 0, false},
		{"", 0, false},
		{"-", 0, false},
	}
	for _, tt := range floats {
		got, ok := LeadingFloat(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	ints := []struct {
		in   string
		want int
		ok   bool
	}{
		{"45", 45, true},
		{"45min", 45, true},
		{"+7", 7, true},
		{"-10", -10, true},
		{"4.5", 4, true},
		{"99999999999999999999", math.MaxInt, true},
		{"-99999999999999999999", math.MinInt, true},
		{"min", 0, false},
		{"", 0, false},
	}
	for _, tt := range ints {
		got, ok := LeadingInt(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
