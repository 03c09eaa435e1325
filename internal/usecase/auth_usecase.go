package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	config "github.com/stylesync/go-backend/internal/cfg"
	"github.com/stylesync/go-backend/internal/domain"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/stylesync/go-backend/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "stylesync"

// AuthUseCase emite e valida tokens de acesso do operador. A verificação de
// credenciais hoje é contra a configuração (operador único); o seam de
// validação permite trocar por uma consulta a banco depois.
type AuthUseCase struct {
	cfg    *config.AuthCfg
	logger logger.Logger
	now    func() time.Time
}

func NewAuthUC(cfg *config.AuthCfg, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Login confere as credenciais e devolve um JWT assinado com validade
// limitada.
func (a *AuthUseCase) Login(_ context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "AuthUseCase.Login"

	creds, err := validateCredentials(req)
	if err != nil {
		return nil, err
	}

	if !a.checkOperator(creds) {
		a.logger.Warnf("tentativa de login recusada para %q", creds.Username)
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	now := a.now()
	expiresAt := now.Add(a.cfg.TokenTTL)

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   creds.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.cfg.JWTSecret))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &LoginRes{
		Token:     token,
		Subject:   creds.Username,
		ExpiresIn: int64(a.cfg.TokenTTL.Seconds()),
	}, nil
}

// VerifyToken valida assinatura e expiração, devolvendo o sujeito
// autenticado.
func (a *AuthUseCase) VerifyToken(raw string) (string, error) {
	const op = "AuthUseCase.VerifyToken"

	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, e.ErrInvalidToken
		}
		return []byte(a.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(func() time.Time { return a.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", e.Wrap(op, e.ErrExpiredToken)
		}
		return "", e.Wrap(op, e.ErrInvalidToken)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", e.Wrap(op, e.ErrInvalidToken)
	}

	return claims.Subject, nil
}

func (a *AuthUseCase) checkOperator(creds *domain.Credentials) bool {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(a.cfg.OperatorUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(a.cfg.OperatorPassword)) == 1
	return userOK && passOK
}
