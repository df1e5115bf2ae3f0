package service

import (
	"errors"
	"testing"
	"time"

	"notedeck/internal/auth"
	"notedeck/internal/contract"
	"notedeck/internal/domain/entity"
)

func newTestIssuer(t *testing.T) *auth.Issuer {
	t.Helper()
	issuer, err := auth.NewIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to build issuer: %v", err)
	}
	return issuer
}

func TestUserService_Register(t *testing.T) {
	issuer := newTestIssuer(t)

	t.Run("creates the user and returns a token for it", func(t *testing.T) {
		var saved *entity.User
		repo := &mockUserRepo{
			saveFunc: func(user *entity.User) error {
				user.ID = 11
				saved = user
				return nil
			},
		}
		svc := NewUserService(repo, issuer, newTestValidator())

		resp, apierr := svc.Register(&contract.RegisterRequest{
			Email:    "a@x.com",
			Password: "Sup3rSecret",
		})
		if apierr != nil {
			t.Fatalf("unexpected error: %+v", apierr)
		}
		if resp.Token == "" {
			t.Fatal("expected a token")
		}
		if saved == nil || saved.Email != "a@x.com" {
			t.Fatalf("user not persisted as expected: %+v", saved)
		}
		if saved.PasswordHash == "Sup3rSecret" {
			t.Fatal("password stored in plaintext")
		}
		if saved.Login {
			t.Fatal("login flag must start false")
		}

		// The token subject must decode to the created user id
		userId, err := issuer.Verify(resp.Token, time.Now())
		if err != nil {
			t.Fatalf("issued token does not verify: %v", err)
		}
		if userId != 11 {
			t.Errorf("expected subject 11, got %d", userId)
		}
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		repo := &mockUserRepo{
			existsByEmailFunc: func(email string) (bool, error) { return true, nil },
		}
		svc := NewUserService(repo, issuer, newTestValidator())

		_, apierr := svc.Register(&contract.RegisterRequest{
			Email:    "a@x.com",
			Password: "Sup3rSecret",
		})
		if apierr == nil || apierr.Code() != 409 {
			t.Fatalf("expected 409, got %+v", apierr)
		}
	})

	t.Run("weak password fails validation", func(t *testing.T) {
		svc := NewUserService(&mockUserRepo{}, issuer, newTestValidator())

		_, apierr := svc.Register(&contract.RegisterRequest{
			Email:    "a@x.com",
			Password: "pw",
		})
		if apierr == nil || apierr.Code() != 400 {
			t.Fatalf("expected 400, got %+v", apierr)
		}
	})
}

func TestUserService_Login(t *testing.T) {
	issuer := newTestIssuer(t)

	digest, err := auth.HashPassword("Sup3rSecret")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	stored := func() *entity.User {
		return &entity.User{ID: 11, Email: "a@x.com", PasswordHash: digest}
	}

	t.Run("register then login round trip", func(t *testing.T) {
		var saved *entity.User
		repo := &mockUserRepo{
			findByEmailFunc: func(email string) (*entity.User, error) { return stored(), nil },
			saveFunc: func(user *entity.User) error {
				saved = user
				return nil
			},
		}
		svc := NewUserService(repo, issuer, newTestValidator())

		resp, apierr := svc.Login(&contract.LoginRequest{Email: "a@x.com", Password: "Sup3rSecret"})
		if apierr != nil {
			t.Fatalf("unexpected error: %+v", apierr)
		}

		userId, err := issuer.Verify(resp.Token, time.Now())
		if err != nil {
			t.Fatalf("issued token does not verify: %v", err)
		}
		if userId != 11 {
			t.Errorf("expected subject 11, got %d", userId)
		}
		if saved == nil || !saved.Login {
			t.Error("expected the login flag to be set on success")
		}
	})

	t.Run("wrong password is a 401", func(t *testing.T) {
		repo := &mockUserRepo{
			findByEmailFunc: func(email string) (*entity.User, error) { return stored(), nil },
			saveFunc: func(user *entity.User) error {
				t.Fatal("login must be side-effect-free on failure")
				return nil
			},
		}
		svc := NewUserService(repo, issuer, newTestValidator())

		_, apierr := svc.Login(&contract.LoginRequest{Email: "a@x.com", Password: "wrongwrong"})
		if apierr == nil || apierr.Code() != 401 {
			t.Fatalf("expected 401, got %+v", apierr)
		}
	})

	t.Run("unknown email is the same 401", func(t *testing.T) {
		svc := NewUserService(&mockUserRepo{}, issuer, newTestValidator())

		_, apierr := svc.Login(&contract.LoginRequest{Email: "b@x.com", Password: "Sup3rSecret"})
		if apierr == nil || apierr.Code() != 401 {
			t.Fatalf("expected 401, got %+v", apierr)
		}
	})

	t.Run("repository failure is a 500", func(t *testing.T) {
		repo := &mockUserRepo{
			findByEmailFunc: func(email string) (*entity.User, error) { return nil, errors.New("db down") },
		}
		svc := NewUserService(repo, issuer, newTestValidator())

		_, apierr := svc.Login(&contract.LoginRequest{Email: "a@x.com", Password: "Sup3rSecret"})
		if apierr == nil || apierr.Code() != 500 {
			t.Fatalf("expected 500, got %+v", apierr)
		}
	})
}

func TestUserService_ValidateToken(t *testing.T) {
	issuer := newTestIssuer(t)

	t.Run("valid token resolves to its user", func(t *testing.T) {
		repo := &mockUserRepo{
			findByIDFunc: func(id int) (*entity.User, error) {
				return &entity.User{ID: id, Email: "a@x.com"}, nil
			},
		}
		svc := NewUserService(repo, issuer, newTestValidator())

		token, err := issuer.Issue(11, time.Now())
		if err != nil {
			t.Fatalf("failed to issue: %v", err)
		}

		resp, apierr := svc.ValidateToken("Bearer " + token)
		if apierr != nil {
			t.Fatalf("unexpected error: %+v", apierr)
		}
		if resp.UserID != 11 {
			t.Errorf("expected user 11, got %d", resp.UserID)
		}
	})

	t.Run("expired token is a 401", func(t *testing.T) {
		svc := NewUserService(&mockUserRepo{}, issuer, newTestValidator())

		token, err := issuer.Issue(11, time.Now().Add(-2*time.Hour))
		if err != nil {
			t.Fatalf("failed to issue: %v", err)
		}

		_, apierr := svc.ValidateToken(token)
		if apierr == nil || apierr.Code() != 401 {
			t.Fatalf("expected 401, got %+v", apierr)
		}
	})

	t.Run("token for a deleted user is a 401", func(t *testing.T) {
		svc := NewUserService(&mockUserRepo{}, issuer, newTestValidator())

		token, err := issuer.Issue(11, time.Now())
		if err != nil {
			t.Fatalf("failed to issue: %v", err)
		}

		_, apierr := svc.ValidateToken(token)
		if apierr == nil || apierr.Code() != 401 {
			t.Fatalf("expected 401, got %+v", apierr)
		}
	})
}
