package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/stylesync/go-backend/internal/usecase"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/stylesync/go-backend/pkg/logger"
)

type ctxKey int

const ctxKeySubject ctxKey = iota

// SubjectFromContext devolve o operador autenticado pela camada de auth.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(ctxKeySubject).(string)
	return subject
}

// RequireAuth barra requisições mutantes sem um bearer token válido antes de
// o handler rodar.
func RequireAuth(authUC usecase.AuthUC, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := bearerToken(r)
			if err != nil {
				log.Warnf("%d %s %s: %v", http.StatusUnauthorized, r.Method, r.URL.Path, err)
				WriteError(w, err)
				return
			}

			subject, err := authUC.VerifyToken(raw)
			if err != nil {
				log.Warnf("%d %s %s: %v", http.StatusUnauthorized, r.Method, r.URL.Path, err)
				WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySubject, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", e.ErrMissingToken
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", e.ErrInvalidToken
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", e.ErrMissingToken
	}

	return token, nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestLogger registra método, caminho, status e latência de cada
// requisição.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Infof("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
