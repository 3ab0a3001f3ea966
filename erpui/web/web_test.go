package web

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

func TestWebPlain(t *testing.T) {
	srv := New(4242, zerolog.Nop())

	srv.Start()
	if err := srv.Stop(); err != nil {
		t.Fatalf("Failed to stop server: %v", err)
	}
}

func TestWebWithRoutes(t *testing.T) {
	srv := New(4243, zerolog.Nop())

	router := srv.Router
	router.StrictSlash(true)

	testget := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("(get) hello"))
	}

	testpost := func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseForm()
		if err != nil {
			t.Fatalf("Post request handler failed to read form data: %v", err.Error())
		}
		resp := r.PostForm.Get("response")
		w.Write([]byte(fmt.Sprintf("(post) hello: %s", resp)))
	}

	router.HandleFunc("/test", testget).Methods("GET")
	router.HandleFunc("/test", testpost).Methods("POST")

	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	if resp, err := http.Get(ts.URL + "/test"); err != nil {
		t.Fatalf("Error testing get request: %v", err.Error())
	} else if b, err := io.ReadAll(resp.Body); err != nil {
		t.Fatalf("Error reading get request body: %v", err.Error())
	} else if string(b) != "(get) hello" {
		t.Fatalf("Got unexpected response from get request: %s", string(b))
	}

	if resp, err := http.PostForm(ts.URL+"/test", url.Values{"response": {"formvalue"}}); err != nil {
		t.Fatalf("Error testing post request: %v", err.Error())
	} else if b, err := io.ReadAll(resp.Body); err != nil {
		t.Fatalf("Error reading post request body: %v", err.Error())
	} else if string(b) != "(post) hello: formvalue" {
		t.Fatalf("Got unexpected response from post request: %s", string(b))
	}
}

func TestErrorResponse(t *testing.T) {
	srv := New(4244, zerolog.Nop())
	srv.Nav = []NavItem{{Path: "/", Label: "Forms"}}

	router := srv.Router
	router.StrictSlash(true)

	expresp := "TESTING:NOT-FOUND"
	testget := func(w http.ResponseWriter, r *http.Request) {
		srv.ErrorResponse(w, http.StatusNotFound, expresp)
	}
	router.HandleFunc("/test", testget).Methods("GET")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	srv.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("Wrong status code: got %d expected %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, expresp) {
		t.Fatalf("Got unexpected response from get request: %s", body)
	}
	if !strings.Contains(body, `href="/"`) {
		t.Fatalf("Error page is missing the navigation: %s", body)
	}
	if _, err := html.Parse(strings.NewReader(body)); err != nil {
		t.Fatalf("Error page is not valid HTML: %v", err)
	}
}
