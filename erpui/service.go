package erpui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/sitecrew/erpui/erpui/form"
	"github.com/sitecrew/erpui/erpui/validation"
	"github.com/sitecrew/erpui/erpui/visibility"
	"github.com/sitecrew/erpui/erpui/web"
)

// SubmitAction handles a validated and, where required, confirmed form
// submission.  The returned message is shown to the user in the success
// banner.
type SubmitAction func(ctx context.Context, f form.Form, values map[string]string) (string, error)

// Service represents the back-office host: a web server rendering the
// registered forms and validating their submissions before they are handed
// to the submit action.
type Service struct {
	web       *web.Server
	log       zerolog.Logger
	forms     map[string]form.Form
	order     []string
	rules     []visibility.Rule
	validator *validation.Validator
	action    SubmitAction
	Config    Config
}

// NewService creates a new Service with the given forms and submit action.
func NewService(forms []form.Form, action SubmitAction, cfg Config) (*Service, error) {
	srv := new(Service)
	srv.Config = cfg
	srv.log = zerolog.Nop()
	srv.validator = validation.New()
	srv.rules = []visibility.Rule{visibility.CheckDetails}

	// Web server
	srv.web = web.New(cfg.Port, srv.log)
	srv.setupWebRoutes()

	if err := srv.SetForms(forms); err != nil {
		return nil, err
	}
	srv.SetSubmitAction(action)
	return srv, nil
}

// SetLogger replaces the service logger.
func (srv *Service) SetLogger(l zerolog.Logger) {
	srv.log = l
	srv.web.Log = l
}

// SetForms can be used to set or override the forms of the service.  Forms
// are registered under the slug of their name and post back to
// /forms/<slug> unless they set their own action.
func (srv *Service) SetForms(forms []form.Form) error {
	registered := make(map[string]form.Form, len(forms))
	order := make([]string, 0, len(forms))
	var errs criterio.FieldErrorsBuilder
	for idx, f := range forms {
		key := slug(f.Name)
		field := fmt.Sprintf("forms[%d].name", idx)
		if key == "" {
			errs = errs.Append(field, fmt.Errorf("form %q has no name", f.ID))
			continue
		}
		if _, dup := registered[key]; dup {
			errs = errs.Append(field, fmt.Errorf("duplicate form %q", f.Name))
			continue
		}
		f = f.Clone()
		if f.Action == "" {
			f.Action = formPath(key)
		}
		if f.ID == "" {
			f.ID = strings.ReplaceAll(key, "-", "_") + "_form"
		}
		registered[key] = f
		order = append(order, key)
	}
	if err := errs.ToError(); err != nil {
		return err
	}
	srv.forms = registered
	srv.order = order
	srv.web.Nav = srv.nav("")
	return nil
}

// SetSubmitAction can be used to set or override the submit action for the
// service.
func (srv *Service) SetSubmitAction(action SubmitAction) {
	srv.action = action
}

// SetRules replaces the visibility rules applied to every form.
func (srv *Service) SetRules(rules ...visibility.Rule) {
	srv.rules = append([]visibility.Rule(nil), rules...)
}

// SetValidator replaces the validator, for example to add form rules or fix
// the clock.
func (srv *Service) SetValidator(v *validation.Validator) {
	srv.validator = v
}

// Start the service's web server.
func (srv *Service) Start() error {
	if len(srv.forms) == 0 {
		return fmt.Errorf("no forms registered")
	}
	if srv.action == nil {
		return fmt.Errorf("nil submit action is invalid")
	}

	srv.log.Info().Str("addr", srv.web.Addr).Int("forms", len(srv.forms)).Msg("starting web service")
	srv.web.Start()
	return nil
}

// WaitForInterrupt blocks until the service receives an interrupt signal (SIGINT).
func (srv *Service) WaitForInterrupt() {
	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, os.Interrupt)
	<-sigchan
}

// Stop the service by gracefully shutting down the web server.
func (srv *Service) Stop() {
	srv.log.Info().Msg("stopping web service")
	if err := srv.web.Stop(); err != nil {
		srv.log.Error().Err(err).Msg("stopping web service")
	}
	srv.log.Info().Msg("service stopped")
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func formPath(key string) string {
	return "/forms/" + key
}
