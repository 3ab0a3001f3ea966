package ui

import "github.com/sitecrew/erpui/erpui/form"

const (
	// ConfirmModalID is the id of the confirmation dialog element.
	ConfirmModalID = "confirmActionModal"
	// ConfirmButtonID is the id of the dialog's confirm button.
	ConfirmButtonID = "confirmActionBtn"
	// ConfirmedField is added to a confirmed submission so that the server
	// does not ask a second time.
	ConfirmedField = "_confirmed"
)

// ConfirmDialog is the modal asking the user to confirm a form submission.
// A dialog is built per submission; rendering it replaces any previous one.
type ConfirmDialog struct {
	ID      string
	Title   string
	Message string
	// FormID is the form submitted when the user confirms.
	FormID string
	// Action is the path the confirmed submission posts to.
	Action string
	// Values are the submitted values carried into the confirmed
	// submission.
	Values map[string]string
}

// NewConfirmDialog builds the dialog for a form from its confirmation
// settings, falling back to the default title and message.
func NewConfirmDialog(f form.Form) ConfirmDialog {
	var c form.Confirmation
	if f.Confirm != nil {
		c = *f.Confirm
	}
	c.Title = PlainText(c.Title)
	c.Message = PlainText(c.Message)
	c = c.WithDefaults()
	return ConfirmDialog{
		ID:      ConfirmModalID,
		Title:   c.Title,
		Message: c.Message,
		FormID:  f.ID,
		Action:  f.Action,
		Values:  f.Values(),
	}
}

// LabelID returns the id of the dialog title element.
func (d ConfirmDialog) LabelID() string {
	return d.ID + "Label"
}
