package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"taskflow/internal/service"
)

func newContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/api/test", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func TestRespondErrorStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &service.Error{Kind: service.ErrValidation, Message: "task text is required"}, http.StatusBadRequest, "task text is required"},
		{"conflict", &service.Error{Kind: service.ErrConflict, Message: "category already exists"}, http.StatusBadRequest, "category already exists"},
		{"not found", &service.Error{Kind: service.ErrNotFound, Message: "task not found"}, http.StatusNotFound, "task not found"},
		{"unauthorized", &service.Error{Kind: service.ErrUnauthorized, Message: "invalid credentials"}, http.StatusUnauthorized, "invalid credentials"},
		{"internal", errors.New("disk I/O error"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(http.MethodGet, "")
			respondError(c, tt.err)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			out := decode(t, w)
			if out["success"] != false || out["error"] != tt.message {
				t.Errorf("body = %v", out)
			}
		})
	}
}

func TestBindBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"object", `{"text":"x"}`, nil},
		{"empty object", `{}`, errNoData},
		{"empty body", ``, errInvalidBody},
		{"array", `[1,2]`, errInvalidBody},
		{"wrong type", `{"text":5}`, errInvalidBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(http.MethodPost, tt.body)
			var dst struct {
				Text string `json:"text"`
			}
			if err := bindBody(c, &dst); err != tt.want {
				t.Fatalf("bindBody = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpdateTaskRequestDistinguishesNull(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setCategory bool
		categoryID  *uint
		setReminder bool
		reminder    string
		valid       bool
	}{
		{"absent", `{"text":"x"}`, false, nil, false, "", true},
		{"null clears", `{"category_id":null,"reminder_datetime":null}`, true, nil, true, "", true},
		{"values", `{"category_id":3,"reminder_datetime":"2030-01-01"}`, true, uintPtr(3), true, "2030-01-01", true},
		{"bad category", `{"category_id":"three"}`, true, nil, false, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req updateTaskRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatal(err)
			}
			upd, valid := req.toUpdate()
			if valid != tt.valid {
				t.Fatalf("valid = %v, want %v", valid, tt.valid)
			}
			if !valid {
				return
			}
			if upd.SetCategory != tt.setCategory || upd.SetReminder != tt.setReminder || upd.Reminder != tt.reminder {
				t.Errorf("update = %+v", upd)
			}
			if (upd.CategoryID == nil) != (tt.categoryID == nil) || (upd.CategoryID != nil && *upd.CategoryID != *tt.categoryID) {
				t.Errorf("category id = %v, want %v", upd.CategoryID, tt.categoryID)
			}
		})
	}
}

func TestPathIDRejectsNonNumeric(t *testing.T) {
	c, w := newContext(http.MethodGet, "")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	if _, ok := pathID(c, "id"); ok {
		t.Fatal("expected failure")
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
}

func uintPtr(v uint) *uint { return &v }
