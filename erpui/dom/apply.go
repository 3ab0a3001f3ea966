package dom

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/sitecrew/erpui/erpui/form"
	"github.com/sitecrew/erpui/erpui/hours"
	"github.com/sitecrew/erpui/erpui/ui"
	"github.com/sitecrew/erpui/erpui/validation"
	"github.com/sitecrew/erpui/erpui/visibility"
)

const (
	feedbackClass = "invalid-feedback"
	// ScrollTargetAttr marks the field the page scrolls to and focuses on
	// load.
	ScrollTargetAttr = "data-scroll-target"
)

// ApplyResult writes a validation result onto the first form matching
// selector: validity classes on every evaluated control and the failure
// message in the control's feedback element, which is created on first use.
// A failed result also gets the error banner at the top of the form and
// marks the first failed control as scroll target.  It returns false if no
// form matches.
func (d *Document) ApplyResult(selector string, res validation.Result) (bool, error) {
	return applyResult(d.doc.Find(selector).First(), res)
}

// ApplyResultByID is ApplyResult for the form with the given id.  Ids are
// compared as strings, so they may contain characters that are special in
// CSS selectors.
func (d *Document) ApplyResultByID(id string, res validation.Result) (bool, error) {
	fs := d.byID(id)
	if goquery.NodeName(fs) != "form" {
		return false, nil
	}
	return applyResult(fs, res)
}

func applyResult(fs *goquery.Selection, res validation.Result) (bool, error) {
	if fs.Length() == 0 {
		return false, nil
	}
	ctrls := formControls(fs)
	ctrls.Each(func(_ int, s *goquery.Selection) {
		state, ok := res.States[controlKey(s)]
		if !ok {
			return
		}
		setValidity(s, state, res.Message(controlKey(s)))
	})

	fs.Find("[" + ScrollTargetAttr + "]").RemoveAttr(ScrollTargetAttr)
	fs.ChildrenFiltered(".alert-danger").Remove()
	first, ok := res.First()
	if !ok {
		return true, nil
	}
	ctrls.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return controlKey(s) == first.Field
	}).First().SetAttr(ScrollTargetAttr, "")

	markup, err := fragment("alert", ui.ErrorAlert())
	if err != nil {
		return true, err
	}
	fs.PrependHtml(markup)
	return true, nil
}

func setValidity(s *goquery.Selection, state form.Validity, message string) {
	s.RemoveClass(form.Valid.Class(), form.Invalid.Class())
	if c := state.Class(); c != "" {
		s.AddClass(c)
	}
	feedback := s.NextFiltered("." + feedbackClass)
	if state != form.Invalid {
		feedback.SetText("")
		return
	}
	if feedback.Length() == 0 {
		s.AfterHtml(`<div class="` + feedbackClass + `"></div>`)
		feedback = s.NextFiltered("." + feedbackClass)
	}
	feedback.SetText(message)
}

// ApplyVisibility shows or hides the elements of the rule's group from the
// current value of its controller.  The controller is tagged so that the
// page script repeats this on change.  It returns false, changing nothing,
// when the controller or the group is missing.
func (d *Document) ApplyVisibility(rule visibility.Rule) bool {
	ctrl := d.byID(rule.ID())
	if ctrl.Length() == 0 {
		ctrl = d.doc.Find("[name]").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.AttrOr("name", "") == rule.Controller
		}).First()
	}
	if ctrl.Length() == 0 {
		return false
	}
	group := d.doc.Find("." + rule.Group)
	if group.Length() == 0 {
		return false
	}
	setDisplay(group, rule.Visible(controlValue(ctrl)))
	ctrl.SetAttr("data-toggle-group", rule.Group)
	ctrl.SetAttr("data-toggle-equals", rule.Equals)
	return true
}

// ApplyHours writes the worked hours into the hours display from the entry,
// exit and lunch fields.  It returns false when any of these elements is
// missing or there is nothing to display.
func (d *Document) ApplyHours() bool {
	display := d.byID(HoursDisplayID)
	entry := d.byID(EntryTimeID)
	exit := d.byID(ExitTimeID)
	lunch := d.byID(LunchDurationID)
	for _, s := range []*goquery.Selection{display, entry, exit, lunch} {
		if s.Length() == 0 {
			return false
		}
	}
	text, ok := hours.Display(controlValue(entry), controlValue(exit), controlValue(lunch))
	if !ok {
		return false
	}
	display.SetText(text)
	return true
}

// ActivateTab marks the tab whose trigger targets hash as active, along with
// its pane, and deactivates its siblings.  Unknown targets leave the document
// unchanged and return false.
func (d *Document) ActivateTab(hash string) bool {
	if hash == "" || hash == "#" {
		return false
	}
	if hash[0] != '#' {
		hash = "#" + hash
	}
	trigger := d.doc.Find("[data-bs-target]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("data-bs-target", "") == hash
	}).First()
	if trigger.Length() == 0 {
		return false
	}
	scope := trigger.Closest(".nav")
	if scope.Length() == 0 {
		scope = d.doc.Selection
	}
	scope.Find("[data-bs-target]").RemoveClass("active").SetAttr("aria-selected", "false")
	trigger.AddClass("active").SetAttr("aria-selected", "true")

	pane := d.byID(ui.Tab{Target: hash}.PaneID())
	if pane.Length() > 0 {
		pane.SiblingsFiltered(".tab-pane").RemoveClass("show", "active")
		pane.AddClass("show", "active")
	}
	return true
}
