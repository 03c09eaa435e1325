package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/stylesync/go-backend/pkg/e"
)

type ErrorResponse struct {
	Code  int `json:"code"`
	Error any `json:"error"`
}

func NewErrorResponse(code int, err any) *ErrorResponse {
	return &ErrorResponse{
		Code:  code,
		Error: err,
	}
}

// ToHTTPResponse traduz um erro de negócio para status HTTP e mensagem
// voltada ao cliente.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidID):
		return http.StatusBadRequest, "Identificador inválido"
	case errors.Is(err, e.ErrInvalidPayload):
		return http.StatusBadRequest, "Payload inválido"
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, "Esperado multipart/form-data"
	case errors.Is(err, e.ErrMissingFile):
		return http.StatusBadRequest, "Nenhum arquivo enviado"
	case errors.Is(err, e.ErrNotCSV):
		return http.StatusBadRequest, "Arquivo deve ter extensão .csv"
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, "Arquivo excede o tamanho máximo"
	case errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Credenciais inválidas"
	case errors.Is(err, e.ErrMissingToken), errors.Is(err, e.ErrInvalidToken):
		return http.StatusUnauthorized, "Token inválido"
	case errors.Is(err, e.ErrExpiredToken):
		return http.StatusUnauthorized, "Token expirado"
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, "Produto não encontrado"
	default:
		return http.StatusInternalServerError, "Erro interno do servidor"
	}
}

// WriteError escreve o envelope de erro. Erros de validação carregam a lista
// de problemas por campo; os demais viram uma única mensagem.
func WriteError(w http.ResponseWriter, err error) {
	var verr *e.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, NewErrorResponse(http.StatusBadRequest, verr.Issues))
		return
	}

	code, msg := ToHTTPResponse(err)
	writeJSON(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	writeJSON(w, status, data)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON decodifica o corpo da requisição, rejeitando campos
// desconhecidos.
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrInvalidPayload)
	}

	return nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.ErrExpectedMultipart
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return e.Wrap(err.Error(), e.ErrInvalidPayload)
	}

	return nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	return data, nil
}
