package validator

import (
	"strings"
	"testing"

	"github.com/edublog/blog-service/internal/models"
)

func strPtr(s string) *string { return &s }

func validRegister() UserCreateRequest {
	return UserCreateRequest{
		Nome:     "João",
		Email:    "joao@escola.com",
		Password: "senha123",
		UserType: models.UserTypeAluno,
	}
}

func TestValidate_UserCreateRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		mutate   func(*UserCreateRequest)
		wantPath string
		wantMsg  string
	}{
		{
			name:   "valid",
			mutate: func(r *UserCreateRequest) {},
		},
		{
			name:     "missing nome",
			mutate:   func(r *UserCreateRequest) { r.Nome = "" },
			wantPath: "nome",
			wantMsg:  "Campo obrigatório.",
		},
		{
			name:     "nome too long",
			mutate:   func(r *UserCreateRequest) { r.Nome = strings.Repeat("a", 31) },
			wantPath: "nome",
			wantMsg:  "Deve ter no máximo 30 caracteres.",
		},
		{
			name:     "bad email",
			mutate:   func(r *UserCreateRequest) { r.Email = "not-an-email" },
			wantPath: "email",
			wantMsg:  "Email inválido.",
		},
		{
			name:     "short password",
			mutate:   func(r *UserCreateRequest) { r.Password = "12345" },
			wantPath: "password",
			wantMsg:  "A senha deve ter pelo menos 6 caracteres.",
		},
		{
			name:     "invalid user type",
			mutate:   func(r *UserCreateRequest) { r.UserType = "DIRETOR" },
			wantPath: "user_type",
			wantMsg:  "Tipo de usuário inválido (esperado: PROFESSOR ou ALUNO).",
		},
		{
			name:     "serie too long",
			mutate:   func(r *UserCreateRequest) { r.Serie = strPtr(strings.Repeat("x", 31)) },
			wantPath: "serie",
			wantMsg:  "Deve ter no máximo 30 caracteres.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)

			errs := v.Validate(&req)
			if tt.wantPath == "" {
				if errs != nil {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}

			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
			}
			if errs[0].Path != tt.wantPath {
				t.Errorf("path = %q, want %q", errs[0].Path, tt.wantPath)
			}
			if errs[0].Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestValidate_PostCreateRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     PostCreateRequest
		wantErr []FieldError
	}{
		{
			name: "valid",
			req:  PostCreateRequest{Title: "Aula 1", Content: "Conteúdo"},
		},
		{
			name: "missing both",
			req:  PostCreateRequest{},
			wantErr: []FieldError{
				{Path: "title", Message: "O título é obrigatório."},
				{Path: "content", Message: "O conteúdo é obrigatório."},
			},
		},
		{
			name: "title too long",
			req:  PostCreateRequest{Title: strings.Repeat("t", 101), Content: "ok"},
			wantErr: []FieldError{
				{Path: "title", Message: "O título deve ter no máximo 100 caracteres."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(&tt.req)
			if len(errs) != len(tt.wantErr) {
				t.Fatalf("got %d errors %v, want %d", len(errs), errs, len(tt.wantErr))
			}
			for i, want := range tt.wantErr {
				if errs[i] != want {
					t.Errorf("error[%d] = %+v, want %+v", i, errs[i], want)
				}
			}
		})
	}
}

func TestHasUpdates(t *testing.T) {
	var userReq UserUpdateRequest
	if userReq.HasUpdates() {
		t.Error("empty UserUpdateRequest reports updates")
	}
	userReq.Nome = strPtr("Novo Nome")
	if !userReq.HasUpdates() {
		t.Error("UserUpdateRequest with nome reports no updates")
	}

	var postReq PostUpdateRequest
	if postReq.HasUpdates() {
		t.Error("empty PostUpdateRequest reports updates")
	}
	postReq.Content = strPtr("novo conteúdo")
	if !postReq.HasUpdates() {
		t.Error("PostUpdateRequest with content reports no updates")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	if got := (ValidationErrors{}).Error(); got != "validation failed" {
		t.Errorf("empty Error() = %q", got)
	}
	one := ValidationErrors{{Path: "title", Message: "O título é obrigatório."}}
	if !strings.Contains(one.Error(), "title") {
		t.Errorf("single Error() = %q, want to contain field path", one.Error())
	}
}
