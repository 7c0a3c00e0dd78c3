package bind

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "libfj/internal/platform/errors"
	"libfj/internal/platform/testkit"
)

// shared payload for many tests
type payload struct {
	Name    string `json:"name" validate:"required,min=2"`
	Page    int    `json:"page" validate:"min=1"`
	Weapons string `json:"weapons" validate:"comma_ints"`
}

func TestParseJSON_Success(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Tank","page":3,"weapons":"1,2"}`))
	got, err := ParseJSON[payload](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Tank" || got.Page != 3 || got.Weapons != "1,2" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_EmptyBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", http.NoBody)
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error code, got %v (%v)", perr.CodeOf(err), err)
	}

	// safe methods tolerate it
	req = httptest.NewRequest("GET", "/", http.NoBody)
	if _, err := ParseJSON[payload](req); err != nil {
		t.Fatalf("GET with empty body: %v", err)
	}
}

func TestParseJSON_AllowEmptyBody(t *testing.T) {
	type emptyOK struct {
		Note string `json:"note"`
	}
	req := httptest.NewRequest("POST", "/", http.NoBody)
	got, err := ParseJSON[emptyOK](req, JSONOptions{AllowEmptyBody: true, MaxBytes: 8})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got != (emptyOK{}) {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestParseJSON_Failures(t *testing.T) {
	cases := []struct {
		name string
		body string
		opts []JSONOptions
		code perr.ErrorCode
		msg  string
	}{
		{"invalid json", `{"name":`, nil, perr.ErrorCodeJSON, "invalid JSON"},
		{"unknown field", `{"name":"Tank","page":1,"extra":1}`, nil, perr.ErrorCodeJSON, "unknown field"},
		{"trailing data", `{"name":"Tank","page":1} {}`, nil, perr.ErrorCodeJSON, "trailing"},
		{"too large", `{"name":"Tank","page":1}`, []JSONOptions{{MaxBytes: 6, DisallowUnknown: true}}, perr.ErrorCodeJSON, "invalid JSON"},
		{"validation min", `{"name":"Tank","page":0}`, nil, perr.ErrorCodeValidation, "page must be at least 1"},
		{"validation csv", `{"name":"Tank","page":1,"weapons":"a,b"}`, nil, perr.ErrorCodeValidation, "comma-separated"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))
			_, err := ParseJSON[payload](req, tc.opts...)
			if perr.CodeOf(err) != tc.code {
				t.Fatalf("code = %v, want %v (%v)", perr.CodeOf(err), tc.code, err)
			}
			testkit.MustContain(t, err.Error(), tc.msg)
		})
	}
}

func TestParseJSON_DisallowUnknownFalse(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Tank","page":1,"extra":true}`))
	if _, err := ParseJSON[payload](req, JSONOptions{MaxBytes: 1 << 10}); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestParseJSON_TrailingData_Seam(t *testing.T) {
	testkit.Swap(t, &jsonMore, func(*json.Decoder) bool { return true })

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Tank","page":1}`))
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error, got %v", err)
	}
}
