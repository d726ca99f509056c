package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteJSON(w, map[string]string{"message": "ok"}, http.StatusCreated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	if w.Body.String() != `{"message":"ok"}` {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	// channels are not serializable
	if _, err := WriteJSON(w, make(chan int), http.StatusOK); err == nil {
		t.Fatal("expected error, got nil")
	}

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}
