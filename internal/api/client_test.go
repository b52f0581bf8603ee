package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bijmantra/wsctl/internal/workspace"
)

func validInput() workspace.CreateInput {
	return workspace.CreateInput{
		Name:    "Field Day",
		Icon:    "leaf",
		Color:   "green",
		PageIDs: []string{"irrigation"},
	}
}

func TestCreate(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"ws-123"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-1")
	id, err := client.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != "ws-123" {
		t.Fatalf("expected ws-123, got %q", id)
	}
	if gotPath != "POST /v1/workspaces" {
		t.Fatalf("unexpected request: %s", gotPath)
	}
	if gotAuth != "Bearer token-1" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
}

func TestCreate_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Create(context.Background(), validInput())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCreate_LimitConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Create(context.Background(), validInput())
	if !errors.Is(err, ErrWorkspaceLimit) {
		t.Fatalf("expected ErrWorkspaceLimit, got %v", err)
	}
}

func TestCreate_ValidatesBeforeSending(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	input := validInput()
	input.PageIDs = nil

	if _, err := client.Create(context.Background(), input); err == nil {
		t.Fatalf("expected validation error")
	}
	if requests != 0 {
		t.Fatalf("expected no request, got %d", requests)
	}
}

func TestList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"workspaces":[{"id":"a","name":"one","pageIds":["irrigation"]}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	workspaces, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(workspaces) != 1 || workspaces[0].Name != "one" {
		t.Fatalf("unexpected workspaces: %v", workspaces)
	}
}

func TestDelete_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if err := client.Delete(context.Background(), "a"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
