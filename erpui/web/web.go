package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/sitecrew/erpui/templates"
)

// NavItem is a link in the navigation bar.
type NavItem struct {
	Path   string
	Label  string
	Active bool
}

// Page holds the data every page passes to the layout template.
type Page struct {
	Title string
	Nav   []NavItem
}

// ErrorResponse logs an error and renders an error page with the given message,
// returning the given status code to the user.
func (ws *Server) ErrorResponse(w http.ResponseWriter, status int, message string) {
	ws.Log.Warn().Int("status", status).Msg(message)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	tmpl := template.New("layout")
	tmpl, err := tmpl.Parse(templates.Layout)
	if err != nil {
		tmpl = template.New("content")
	}
	tmpl, err = tmpl.Parse(templates.Fail)
	if err != nil {
		w.Write([]byte(message))
		return
	}
	errinfo := struct {
		Page
		StatusCode int
		StatusText string
		Message    string
	}{
		Page{Title: http.StatusText(status), Nav: ws.Nav},
		status,
		http.StatusText(status),
		message,
	}
	if err := tmpl.Execute(w, &errinfo); err != nil {
		ws.Log.Error().Err(err).Msg("rendering fail page")
	}
}

// Server implements the web server of the back-office service.
type Server struct {
	*http.Server
	Router *mux.Router
	Log    zerolog.Logger
	// Nav is shown on every page rendered by the server.
	Nav []NavItem
}

// New returns a web Server listening on the given port with an initialised
// mux.Router and http.Server.
func New(port uint16, log zerolog.Logger) *Server {
	srv := new(Server)
	srv.Router = new(mux.Router)
	srv.Log = log
	httpsrv := new(http.Server)
	httpsrv.Handler = srv.Router

	httpsrv.Addr = fmt.Sprintf(":%d", port)
	// Good practice to set timeouts to avoid Slowloris attacks.
	httpsrv.WriteTimeout = time.Second * 15
	httpsrv.ReadTimeout = time.Second * 15
	httpsrv.IdleTimeout = time.Second * 60
	srv.Server = httpsrv
	return srv
}

// Start starts the embedded web server's ListenAndServe method in a goroutine
// and returns.  This method does not block. Use WaitForInterrupt() or
// implement your own blocking function to wait for any other stop condition.
func (ws *Server) Start() {
	go func() {
		if err := ws.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ws.Log.Error().Err(err).Str("addr", ws.Addr).Msg("web server stopped")
		}
	}()
}

// Stop gracefully stops the web service.
func (ws *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	// Gracefully shut down, waiting for the timeout deadline for connections to close.
	return ws.Shutdown(ctx)
}
