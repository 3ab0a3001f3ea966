// Common routes and pages
package erpui

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/sitecrew/erpui/erpui/dom"
	"github.com/sitecrew/erpui/erpui/form"
	"github.com/sitecrew/erpui/erpui/hours"
	"github.com/sitecrew/erpui/erpui/ui"
	"github.com/sitecrew/erpui/erpui/validation"
	"github.com/sitecrew/erpui/erpui/visibility"
	"github.com/sitecrew/erpui/erpui/web"
	"github.com/sitecrew/erpui/templates"
)

// section groups forms of related kinds in one tab of the index page.
type section struct {
	tab   ui.Tab
	kinds []form.Kind
}

var sections = []section{
	{ui.Tab{Target: "#staff", Label: "Staff"}, []form.Kind{form.KindEmployee, form.KindWorklog}},
	{ui.Tab{Target: "#finance", Label: "Finance"}, []form.Kind{form.KindPayment, form.KindInvoice, form.KindExpense}},
	{ui.Tab{Target: "#projects", Label: "Projects"}, []form.Kind{form.KindProject}},
	{ui.Tab{Target: "#other", Label: "Other"}, []form.Kind{form.KindGeneric}},
}

const (
	// TabParam selects the active index tab when the page is requested
	// without script support for the URL hash.
	TabParam = "tab"
	// FieldParam names the field checked by the field validation endpoint.
	// The other query parameters carry the current values of the form.
	FieldParam = "_field"
)

// setupWebRoutes sets up the routes of the service.
//
// Index, Form (render, submit and single field check), hours calculation, and
// assets
func (srv *Service) setupWebRoutes() {
	router := srv.web.Router
	router.StrictSlash(true)

	router.HandleFunc("/", srv.renderIndex).Methods("GET")
	router.HandleFunc("/forms/{name}", srv.renderForm).Methods("GET")
	router.HandleFunc("/forms/{name}", srv.processForm).Methods("POST")
	router.HandleFunc("/forms/{name}/validate", srv.validateField).Methods("GET")
	router.HandleFunc("/hours", srv.calculateHours).Methods("GET")

	router.HandleFunc("/assets/erpui.js", serveScript).Methods("GET")
	router.PathPrefix("/assets/").HandlerFunc(srv.serveAssets)
}

func (srv *Service) serveAssets(w http.ResponseWriter, r *http.Request) {
	if srv.Config.AssetDir == "" {
		srv.web.ErrorResponse(w, http.StatusNotFound, "No such asset")
		return
	}
	http.StripPrefix("/assets/", http.FileServer(http.Dir(srv.Config.AssetDir))).ServeHTTP(w, r)
}

func serveScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Write([]byte(templates.Script))
}

func (srv *Service) nav(active string) []web.NavItem {
	items := []web.NavItem{{Path: "/", Label: "Forms", Active: active == ""}}
	for _, key := range srv.order {
		items = append(items, web.NavItem{
			Path:   formPath(key),
			Label:  srv.forms[key].Name,
			Active: key == active,
		})
	}
	return items
}

type indexLink struct {
	Path  string
	Label string
}

type indexTab struct {
	Tab ui.Tab
	// Href reloads the index with the tab active, for browsers without
	// the page script.
	Href  string
	Links []indexLink
}

func (srv *Service) renderIndex(w http.ResponseWriter, r *http.Request) {
	var tabs []ui.Tab
	links := make(map[string][]indexLink)
	for _, sec := range sections {
		for _, key := range srv.order {
			f := srv.forms[key]
			if !containsKind(sec.kinds, f.Kind) {
				continue
			}
			links[sec.tab.Target] = append(links[sec.tab.Target], indexLink{Path: formPath(key), Label: f.Name})
		}
		if len(links[sec.tab.Target]) > 0 {
			tabs = append(tabs, sec.tab)
		}
	}
	set := ui.NewTabSet(tabs...)
	active, _ := set.Restore(r.URL.Query().Get(TabParam)).Active()

	data := struct {
		web.Page
		Tabs []indexTab
	}{Page: web.Page{Title: "Back office", Nav: srv.nav("")}}
	for _, t := range set.Tabs {
		reload := &url.URL{Path: "/", RawQuery: url.Values{TabParam: {t.PaneID()}}.Encode()}
		data.Tabs = append(data.Tabs, indexTab{
			Tab:   t,
			Href:  ui.WithFragment(reload, t.Target).String(),
			Links: links[t.Target],
		})
	}
	srv.render(w, r, http.StatusOK, templates.Index, data, func(doc *dom.Document) error {
		doc.ActivateTab(active.Target)
		return nil
	})
}

func containsKind(kinds []form.Kind, k form.Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// lookupForm returns a copy of the form named in the route.
func (srv *Service) lookupForm(w http.ResponseWriter, r *http.Request) (string, form.Form, bool) {
	key := mux.Vars(r)["name"]
	f, ok := srv.forms[key]
	if !ok {
		srv.web.ErrorResponse(w, http.StatusNotFound, "No such form")
		return "", form.Form{}, false
	}
	return key, f.Clone(), true
}

type formPage struct {
	web.Page
	Form     form.Form
	Hours    bool
	Validate string
}

func (srv *Service) newFormPage(key string, f form.Form) formPage {
	return formPage{
		Page:     web.Page{Title: f.Name, Nav: srv.nav(key)},
		Form:     f,
		Hours:    f.Has(dom.EntryTimeID) && f.Has(dom.ExitTimeID),
		Validate: formPath(key) + "/validate",
	}
}

func (srv *Service) renderForm(w http.ResponseWriter, r *http.Request) {
	key, f, ok := srv.lookupForm(w, r)
	if !ok {
		return
	}
	visibility.ApplyAll(&f, srv.rules...)
	srv.render(w, r, http.StatusOK, templates.Form, srv.newFormPage(key, f), srv.formDecorator(nil))
}

func (srv *Service) processForm(w http.ResponseWriter, r *http.Request) {
	key, f, ok := srv.lookupForm(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		srv.web.ErrorResponse(w, http.StatusBadRequest, "Failed to read submitted form")
		return
	}
	f.Fill(r.PostForm)
	visibility.ApplyAll(&f, srv.rules...)

	res := srv.validator.Form(f)
	confirmed := r.PostForm.Get(ui.ConfirmedField) == "1"
	outcome := validation.Decide(f, res, confirmed)
	logger := srv.log.With().Str("form", key).Str("kind", string(f.Kind)).Str("outcome", outcome.String()).Logger()

	page := srv.newFormPage(key, f)
	switch outcome {
	case validation.Reject:
		logger.Info().AnErr("failures", res.Err()).Msg("submission rejected")
		srv.render(w, r, http.StatusUnprocessableEntity, templates.Form, page, srv.formDecorator(func(doc *dom.Document) error {
			_, err := doc.ApplyResultByID(f.ID, res)
			return err
		}))
	case validation.Confirm:
		logger.Debug().Msg("submission awaits confirmation")
		dialog := ui.NewConfirmDialog(srv.withConfirmDefaults(f))
		srv.render(w, r, http.StatusOK, templates.Form, page, srv.formDecorator(func(doc *dom.Document) error {
			return doc.ShowConfirm(dialog)
		}))
	default:
		msg, err := srv.action(r.Context(), f, f.Values())
		if err != nil {
			logger.Error().Err(err).Msg("submit action failed")
			srv.web.ErrorResponse(w, http.StatusInternalServerError, "The submission could not be processed")
			return
		}
		if strings.TrimSpace(msg) == "" {
			msg = f.Name + " saved"
		}
		logger.Info().Msg("submitted")
		next := ui.WithSuccess(&url.URL{Path: formPath(key)}, msg)
		http.Redirect(w, r, next.String(), http.StatusSeeOther)
	}
}

// fieldState is the answer of the field validation endpoint.
type fieldState struct {
	Field   string `json:"field"`
	State   string `json:"state"`
	Class   string `json:"class"`
	Message string `json:"message"`
}

// validateField runs the field rules on one field of a form, as the page
// script does on input and blur.  Group visibility is derived from the
// submitted values, so a check number is only required while the check
// details are shown.
func (srv *Service) validateField(w http.ResponseWriter, r *http.Request) {
	_, f, ok := srv.lookupForm(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	name := q.Get(FieldParam)
	f.Fill(q)
	visibility.ApplyAll(&f, srv.rules...)
	e, ok := f.Lookup(name)
	if !ok {
		srv.web.ErrorResponse(w, http.StatusNotFound, "No such field")
		return
	}
	state, msg := srv.validator.Field(*e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	resp := fieldState{Field: name, State: state.String(), Class: state.Class(), Message: msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		srv.log.Warn().Err(err).Msg("writing field state")
	}
}

// withConfirmDefaults fills empty confirmation texts from the configuration.
func (srv *Service) withConfirmDefaults(f form.Form) form.Form {
	if f.Confirm == nil {
		return f
	}
	c := *f.Confirm
	if strings.TrimSpace(c.Title) == "" {
		c.Title = srv.Config.ConfirmTitle
	}
	if strings.TrimSpace(c.Message) == "" {
		c.Message = srv.Config.ConfirmMessage
	}
	f.Confirm = &c
	return f
}

// formDecorator returns the document changes shared by every rendered form:
// group visibility and the hours display, followed by extra.
func (srv *Service) formDecorator(extra func(*dom.Document) error) func(*dom.Document) error {
	return func(doc *dom.Document) error {
		for _, rule := range srv.rules {
			doc.ApplyVisibility(rule)
		}
		doc.ApplyHours()
		if extra != nil {
			return extra(doc)
		}
		return nil
	}
}

// render executes the layout with the given content template, adds the
// success banner requested by the URL, applies decorate to the document and
// writes the result.
func (srv *Service) render(w http.ResponseWriter, r *http.Request, status int, content string, data any, decorate func(*dom.Document) error) {
	tmpl := template.New("layout")
	tmpl, err := tmpl.Parse(templates.Layout)
	checkError(err)
	tmpl, err = tmpl.Parse(content)
	checkError(err)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		srv.log.Error().Err(err).Msg("rendering page")
		srv.web.ErrorResponse(w, http.StatusInternalServerError, "Error rendering page")
		return
	}
	doc, err := dom.Parse(&buf)
	if err != nil {
		srv.log.Error().Err(err).Msg("reading rendered page")
		srv.web.ErrorResponse(w, http.StatusInternalServerError, "Error rendering page")
		return
	}
	if alert, _, ok := ui.SuccessFromURL(r.URL, srv.Config.AlertDelay); ok {
		if _, err := doc.PrependAlert(".container", alert); err != nil {
			srv.log.Warn().Err(err).Msg("adding success banner")
		}
	}
	if decorate != nil {
		if err := decorate(doc); err != nil {
			srv.log.Error().Err(err).Msg("decorating page")
			srv.web.ErrorResponse(w, http.StatusInternalServerError, "Error rendering page")
			return
		}
	}

	var out bytes.Buffer
	if err := doc.Render(&out); err != nil {
		srv.log.Error().Err(err).Msg("writing page")
		srv.web.ErrorResponse(w, http.StatusInternalServerError, "Error rendering page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(out.Bytes())
}

func (srv *Service) calculateHours(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	text, ok := hours.Display(q.Get(dom.EntryTimeID), q.Get(dom.ExitTimeID), q.Get(dom.LunchDurationID))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

// checkError panics on template parse errors.
func checkError(err error) {
	if err != nil {
		panic(err)
	}
}
