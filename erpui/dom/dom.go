// Package dom applies computed form state to server-rendered HTML.  It reads
// forms back from markup and writes validity classes, feedback messages,
// banners, the confirmation dialog, tab state, and derived values into the
// document.  All decisions are made by the form, validation, visibility,
// hours and ui packages; this package only edits nodes.
package dom

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/sitecrew/erpui/erpui/form"
	"github.com/sitecrew/erpui/erpui/ui"
	"github.com/sitecrew/erpui/templates"
)

const (
	EntryTimeID     = "entry_time"
	ExitTimeID      = "exit_time"
	LunchDurationID = "lunch_duration"
	HoursDisplayID  = "hours_worked_display"
)

const controls = "input, select, textarea"

var fragments = template.Must(template.New("fragments").Parse(templates.Alert + templates.ConfirmModal))

// Document is a parsed HTML page.  A Document is not safe for concurrent use;
// each request owns its own.
type Document struct {
	doc *goquery.Document
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if len(d.doc.Nodes) == 0 {
		return nil
	}
	return html.Render(w, d.doc.Nodes[0])
}

// Find returns the elements matching a CSS selector.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// byID returns the element with the given id without building a selector
// from it.
func (d *Document) byID(id string) *goquery.Selection {
	return d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("id", "") == id
	}).First()
}

// ReadForm reads the first form matching selector into a form.Form.  groups
// lists the field group classes to recognise (for example "check-details").
// The kind comes from the data-kind attribute; markup without one is
// classified with form.DetectKind.
func (d *Document) ReadForm(selector string, groups ...string) (form.Form, bool) {
	fs := d.doc.Find(selector).First()
	if fs.Length() == 0 || goquery.NodeName(fs) != "form" {
		return form.Form{}, false
	}
	f := form.Form{
		ID:     fs.AttrOr("id", ""),
		Action: fs.AttrOr("action", ""),
	}

	var page form.Page
	var names []string
	formControls(fs).Each(func(_ int, s *goquery.Selection) {
		e := form.Element{
			ID:       s.AttrOr("id", ""),
			Name:     s.AttrOr("name", ""),
			Type:     controlType(s),
			Value:    controlValue(s),
			Required: hasAttr(s, "required"),
			ReadOnly: hasAttr(s, "readonly"),
			Disabled: hasAttr(s, "disabled"),
		}
		if e.ID != "" {
			e.Label = strings.TrimSpace(d.labelFor(fs, e.ID).Text())
		}
		for _, g := range groups {
			wrapper := s.Closest("." + g)
			if wrapper.Length() == 0 {
				continue
			}
			e.Group = g
			e.Hidden = displayNone(wrapper.AttrOr("style", ""))
			break
		}
		if e.Name != "" {
			names = append(names, e.Name)
		}
		page.Elements = append(page.Elements, e)
	})
	f.Pages = []form.Page{page}

	if kind, ok := fs.Attr("data-kind"); ok && kind != "" {
		f.Kind = form.Kind(kind)
	} else {
		f.Kind = form.DetectKind(f.ID, f.Action, names)
	}
	if _, ok := fs.Attr("data-confirm"); ok {
		f.Confirm = &form.Confirmation{
			Title:   fs.AttrOr("data-confirm-title", ""),
			Message: fs.AttrOr("data-confirm-message", ""),
		}
	}
	return f, true
}

func (d *Document) labelFor(fs *goquery.Selection, id string) *goquery.Selection {
	return fs.Find("label[for]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("for", "") == id
	}).First()
}

// PrependAlert inserts the banner as the first child of the first element
// matching selector.  It returns false if there is no such element.
func (d *Document) PrependAlert(selector string, alert ui.Alert) (bool, error) {
	target := d.doc.Find(selector).First()
	if target.Length() == 0 {
		return false, nil
	}
	markup, err := fragment("alert", alert)
	if err != nil {
		return false, err
	}
	target.PrependHtml(markup)
	return true, nil
}

// ShowConfirm adds the confirmation dialog to the end of the body, replacing
// any dialog left from an earlier submission.
func (d *Document) ShowConfirm(dialog ui.ConfirmDialog) error {
	d.byID(dialog.ID).Remove()
	markup, err := fragment("confirm", dialog)
	if err != nil {
		return err
	}
	body := d.doc.Find("body").First()
	if body.Length() == 0 {
		return fmt.Errorf("document has no body")
	}
	body.AppendHtml(markup)
	return nil
}

func fragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

func formControls(fs *goquery.Selection) *goquery.Selection {
	return fs.Find(controls).Not(`input[type="submit"], input[type="button"], input[type="reset"]`)
}

func controlKey(s *goquery.Selection) string {
	if name := s.AttrOr("name", ""); name != "" {
		return name
	}
	return s.AttrOr("id", "")
}

func controlType(s *goquery.Selection) form.ElementType {
	switch goquery.NodeName(s) {
	case "select":
		return form.Select
	case "textarea":
		return form.TextArea
	}
	t := strings.ToLower(strings.TrimSpace(s.AttrOr("type", "")))
	if t == "" {
		return form.TextInput
	}
	return form.ElementType(t)
}

func controlValue(s *goquery.Selection) string {
	switch goquery.NodeName(s) {
	case "select":
		opt := s.Find("option[selected]").First()
		if opt.Length() == 0 {
			opt = s.Find("option").First()
		}
		if v, ok := opt.Attr("value"); ok {
			return v
		}
		return strings.TrimSpace(opt.Text())
	case "textarea":
		return s.Text()
	default:
		return s.AttrOr("value", "")
	}
}

func hasAttr(s *goquery.Selection, name string) bool {
	_, ok := s.Attr(name)
	return ok
}

func displayNone(style string) bool {
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(prop), "display") &&
			strings.EqualFold(strings.TrimSpace(value), "none") {
			return true
		}
	}
	return false
}

// setDisplay sets the display property of an inline style, keeping the other
// declarations.
func setDisplay(s *goquery.Selection, show bool) {
	s.Each(func(_ int, el *goquery.Selection) {
		var decls []string
		for _, decl := range strings.Split(el.AttrOr("style", ""), ";") {
			decl = strings.TrimSpace(decl)
			if decl == "" {
				continue
			}
			prop, _, _ := strings.Cut(decl, ":")
			if strings.EqualFold(strings.TrimSpace(prop), "display") {
				continue
			}
			decls = append(decls, decl)
		}
		if show {
			decls = append(decls, "display: block")
		} else {
			decls = append(decls, "display: none")
		}
		el.SetAttr("style", strings.Join(decls, "; "))
	})
}
