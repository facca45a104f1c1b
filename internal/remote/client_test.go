package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/assets" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"a1","name":"Drill","code":"AST-000001"},{"id":"a2","name":"Chair","code":"AST-000002"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/") // trailing slash is trimmed
	assets, err := c.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(assets) != 2 || assets[0].ID != "a1" || assets[1].Name != "Chair" {
		t.Errorf("decoded: %+v", assets)
	}
}

func TestClientCreateSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/assets" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		if got := r.FormValue("name"); got != "Drill" {
			t.Errorf("name field: %q", got)
		}
		if got := r.FormValue("brand"); got != "null" {
			t.Errorf("cleared field: %q", got)
		}
		if _, hdr, err := r.FormFile("images[0]"); err != nil || hdr.Filename != "front.jpg" {
			t.Errorf("images[0]: %v %v", hdr, err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"a9","name":"Drill","code":"AST-9"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	p := &Payload{
		Fields: []Field{
			{Name: "name", Value: StringValue("Drill")},
			{Name: "brand"},
		},
		Images: []FilePart{{Filename: "front.jpg", Data: []byte("x")}},
	}
	asset, err := c.Create(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if asset.ID != "a9" {
		t.Errorf("created asset: %+v", asset)
	}
}

func TestClientUpdateAndDeleteRoutes(t *testing.T) {
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"a1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	if _, err := c.Update(context.Background(), "a1", &Payload{}); err != nil {
		t.Fatal(err)
	}
	if method != http.MethodPut || path != "/assets/a1" {
		t.Errorf("update hit %s %s", method, path)
	}

	if err := c.Delete(context.Background(), "a1"); err != nil {
		t.Fatal(err)
	}
	if method != http.MethodDelete || path != "/assets/a1" {
		t.Errorf("delete hit %s %s", method, path)
	}
}

func TestClientSurfacesRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "asset not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Delete(context.Background(), "missing")
	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("want RemoteError, got %v", err)
	}
	if re.Status != http.StatusNotFound || re.Message != "asset not found" {
		t.Errorf("got %+v", re)
	}
}

func TestClientEmptyErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Delete(context.Background(), "a1")
	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("want RemoteError, got %v", err)
	}
	if re.Message != "request failed" {
		t.Errorf("fallback message: %q", re.Message)
	}
}

func TestClientHonorsContext(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	c := NewClient(srv.URL)
	if _, err := c.List(ctx); err == nil {
		t.Fatal("want error after cancellation")
	}
}
