package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gohttp "github.com/km-arc/go-dep/http"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newResponse(t *testing.T) (*gohttp.Response, *httptest.ResponseRecorder) {
	t.Helper()
	rr := httptest.NewRecorder()
	return gohttp.NewResponse(rr), rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&m); err != nil {
		t.Fatalf("decodeJSON: %v", err)
	}
	return m
}

type payload struct {
	Address string `json:"address"`
	Message string `json:"message"`
}

// ── Response ──────────────────────────────────────────────────────────────────

func TestResponse_JSON(t *testing.T) {
	res, rr := newResponse(t)
	res.JSON(http.StatusOK, map[string]any{"key": "val"})

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q want application/json", ct)
	}
	if m := decodeJSON(t, rr); m["key"] != "val" {
		t.Errorf("body key: got %v want val", m["key"])
	}
}

func TestResponse_Envelopes(t *testing.T) {
	tests := []struct {
		name   string
		send   func(*gohttp.Response)
		status int
		key    string
	}{
		{"success", func(r *gohttp.Response) { r.Success("x") }, http.StatusOK, "data"},
		{"created", func(r *gohttp.Response) { r.Created("x") }, http.StatusCreated, "data"},
		{"error", func(r *gohttp.Response) { r.Error(http.StatusBadRequest, "x") }, http.StatusBadRequest, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, rr := newResponse(t)
			tt.send(res)

			if rr.Code != tt.status {
				t.Errorf("status: got %d want %d", rr.Code, tt.status)
			}
			if m := decodeJSON(t, rr); m[tt.key] != "x" {
				t.Errorf("%s: got %v want x", tt.key, m[tt.key])
			}
		})
	}
}

func TestResponse_ServiceUnavailable_HidesCause(t *testing.T) {
	res, rr := newResponse(t)
	res.ServiceUnavailable(errors.New("container: missing dependency"))

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d want 503", rr.Code)
	}
	if m := decodeJSON(t, rr); m["message"] != "Service Unavailable" {
		t.Errorf("message: got %v", m["message"])
	}
}

// ── Request ───────────────────────────────────────────────────────────────────

func TestRequest_BindJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"address":"Author","message":"hi"}`))
	r.Header.Set("Content-Type", "application/json")

	var p payload
	if err := gohttp.NewRequest(r).Bind(&p); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if p.Address != "Author" || p.Message != "hi" {
		t.Errorf("got %+v", p)
	}
}

func TestRequest_BindJSON_Empty(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	r.Header.Set("Content-Type", "application/json")

	var p payload
	if err := gohttp.NewRequest(r).Bind(&p); !errors.Is(err, gohttp.ErrEmptyBody) {
		t.Errorf("Bind: got %v want ErrEmptyBody", err)
	}
}

func TestRequest_BindForm(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("address=Author&message=hi"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var p payload
	if err := gohttp.NewRequest(r).Bind(&p); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if p.Address != "Author" || p.Message != "hi" {
		t.Errorf("got %+v", p)
	}
}

func TestRequest_BindJSON_WithCharset(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"address":"Author"}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	var p payload
	if err := gohttp.NewRequest(r).Bind(&p); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if p.Address != "Author" {
		t.Errorf("Address: got %q want Author", p.Address)
	}
}

func TestRequest_Bind_UnsupportedContentType(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("address=Author"))
	r.Header.Set("Content-Type", "text/plain")

	var p payload
	if err := gohttp.NewRequest(r).Bind(&p); err == nil {
		t.Error("Bind: expected error for text/plain")
	}
}
