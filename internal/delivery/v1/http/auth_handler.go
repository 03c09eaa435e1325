package http

import (
	"fmt"
	"net/http"

	"github.com/stylesync/go-backend/internal/usecase"
	"github.com/stylesync/go-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.authUsecase.Login(r.Context(), usecase.NewLoginReq(payload.Username, payload.Password))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message":    fmt.Sprintf("Login bem sucedido para o usuário %s", res.Subject),
		"token":      res.Token,
		"expires_in": res.ExpiresIn,
	})
}
