package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientGetProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projetos/42" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 42, "titulo": "Horta comunitária", "proponente_id": 7, "status": "aberto"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	project, err := client.GetProject(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project.ID != 42 || project.Titulo != "Horta comunitária" || project.ProponenteID != 7 {
		t.Errorf("unexpected project: %+v", project)
	}
}

func TestClientGetProjectNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "projeto não encontrado"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.GetProject(context.Background(), 99)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "projeto não encontrado" {
		t.Errorf("unexpected detail: %q", apiErr.Detail)
	}
}

func TestClientTransportErrorIsUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 0)
	_, err := client.GetProject(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("expected ErrUnreachable, got %v", err)
	}
	if _, ok := AsAPIError(err); ok {
		t.Error("transport error must not be an APIError")
	}
}

func TestClientJoinProjectConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projetos/5/colaborar" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		var body JoinRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.UsuarioID != 7 {
			t.Errorf("expected usuario_id 7, got %d", body.UsuarioID)
		}
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail": "já é colaborador"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	err := client.JoinProject(context.Background(), 5, JoinRequest{UsuarioID: 7, Mensagem: "posso ajudar"})
	if StatusOf(err) != http.StatusConflict {
		t.Errorf("expected 409, got %v", err)
	}
}

func TestClientLeaveProjectPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projetos/5/colaborar/7" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method: %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	if err := client.LeaveProject(context.Background(), 5, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientSearchQueryAndPartition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "horta" {
			t.Errorf("expected q=horta, got %q", got)
		}
		if got := r.URL.Query()["campus"]; len(got) != 2 || got[0] != "DIA" || got[1] != "MUC" {
			t.Errorf("unexpected campus filter: %v", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"tipo": "usuario", "id": 1, "username": "ana"},
			{"tipo": "projeto", "id": 2, "titulo": "Horta"},
			{"id": 3, "email": "bruno@ufvjm.edu.br"},
			{"id": 4, "proposito": "coletar opiniões"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	results, err := client.Search(context.Background(), "horta", []string{"DIA", "MUC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results.Usuarios) != 2 {
		t.Errorf("expected 2 users, got %d: %+v", len(results.Usuarios), results.Usuarios)
	}
	if len(results.Projetos) != 2 {
		t.Errorf("expected 2 projects, got %d: %+v", len(results.Projetos), results.Projetos)
	}
}

func TestClientCheckUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/check-user" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected JSON content type, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user_id": 7, "username": "ana", "token": "tok-123"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	result, err := client.CheckUser(context.Background(), Credentials{Username: "ana", Password: "s3gredo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UserID != 7 || result.Username != "ana" || result.Token != "tok-123" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestCampusValidation(t *testing.T) {
	for _, campus := range AllCampuses() {
		if !campus.Valid() {
			t.Errorf("campus %s should be valid", campus)
		}
		if campus.Label() == string(campus) {
			t.Errorf("campus %s should have a display label", campus)
		}
	}
	if Campus("XYZ").Valid() {
		t.Error("unknown campus code should be invalid")
	}
}
