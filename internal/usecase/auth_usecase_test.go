package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	config "github.com/stylesync/go-backend/internal/cfg"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/stylesync/go-backend/pkg/logger"
)

func newAuthUC(ttl time.Duration) *AuthUseCase {
	return NewAuthUC(&config.AuthCfg{
		JWTSecret:        "segredo-de-teste",
		TokenTTL:         ttl,
		OperatorUser:     "admin",
		OperatorPassword: "123",
	}, logger.NewNopLogger())
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	uc := newAuthUC(30 * time.Minute)

	res, err := uc.Login(context.Background(), NewLoginReq("admin", "123"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Token == "" {
		t.Fatal("empty token")
	}
	if res.Subject != "admin" {
		t.Errorf("Subject = %q, want %q", res.Subject, "admin")
	}
	if res.ExpiresIn != int64((30 * time.Minute).Seconds()) {
		t.Errorf("ExpiresIn = %d, want %d", res.ExpiresIn, 1800)
	}

	subject, err := uc.VerifyToken(res.Token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if subject != "admin" {
		t.Errorf("subject = %q, want %q", subject, "admin")
	}
}

func TestLogin_RejectsWrongCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "senha errada", username: "admin", password: "errada"},
		{name: "usuário errado", username: "root", password: "123"},
		{name: "ambos errados", username: "root", password: "errada"},
	}

	uc := newAuthUC(30 * time.Minute)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), NewLoginReq(tt.username, tt.password))
			if !errors.Is(err, e.ErrInvalidCredentials) {
				t.Fatalf("err = %v, want %v", err, e.ErrInvalidCredentials)
			}
		})
	}
}

func TestLogin_RejectsMissingFields(t *testing.T) {
	uc := newAuthUC(30 * time.Minute)

	_, err := uc.Login(context.Background(), NewLoginReq("", ""))
	var verr *e.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *e.ValidationError", err)
	}
	if len(verr.Issues) != 2 {
		t.Errorf("Issues = %+v, want 2 entries", verr.Issues)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	uc := newAuthUC(time.Minute)

	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return issued }

	res, err := uc.Login(context.Background(), NewLoginReq("admin", "123"))
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	uc.now = func() time.Time { return issued.Add(2 * time.Minute) }

	_, err = uc.VerifyToken(res.Token)
	if !errors.Is(err, e.ErrExpiredToken) {
		t.Fatalf("err = %v, want %v", err, e.ErrExpiredToken)
	}
}

func TestVerifyToken_Invalid(t *testing.T) {
	uc := newAuthUC(30 * time.Minute)

	other := newAuthUC(30 * time.Minute)
	other.cfg = &config.AuthCfg{
		JWTSecret:        "outro-segredo",
		TokenTTL:         30 * time.Minute,
		OperatorUser:     "admin",
		OperatorPassword: "123",
	}
	foreign, err := other.Login(context.Background(), NewLoginReq("admin", "123"))
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	tests := []struct {
		name string
		raw  string
	}{
		{name: "lixo", raw: "nao-e-um-jwt"},
		{name: "vazio", raw: ""},
		{name: "assinado com outro segredo", raw: foreign.Token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.VerifyToken(tt.raw)
			if !errors.Is(err, e.ErrInvalidToken) {
				t.Fatalf("err = %v, want %v", err, e.ErrInvalidToken)
			}
		})
	}
}
