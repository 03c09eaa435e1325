package e

import (
	"fmt"
	"strings"
)

var (
	// Infraestrutura
	ErrInternalServerError = fmt.Errorf("internal server error")

	// 400 Bad Request
	ErrStatusBadRequest  = fmt.Errorf("bad request")
	ErrInvalidPayload    = fmt.Errorf("invalid request payload")
	ErrInvalidID         = fmt.Errorf("invalid identifier")
	ErrExpectedMultipart = fmt.Errorf("expected multipart/form-data")
	ErrMissingFile       = fmt.Errorf("no file provided")
	ErrNotCSV            = fmt.Errorf("file is not a .csv")
	ErrFileTooLarge      = fmt.Errorf("file too large")

	// 401 Unauthorized
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrMissingToken       = fmt.Errorf("missing bearer token")
	ErrInvalidToken       = fmt.Errorf("invalid token")
	ErrExpiredToken       = fmt.Errorf("expired token")

	// 404 Not Found
	ErrNotFound = fmt.Errorf("not found")
)

// Wrap envolve um erro com contexto adicional.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// FieldIssue descreve um problema de validação em um campo específico.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrega os problemas de validação de um payload inteiro,
// na ordem em que os campos foram verificados.
type ValidationError struct {
	Issues []FieldIssue
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Issues))
	for _, issue := range v.Issues {
		parts = append(parts, fmt.Sprintf("campo '%s': %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "; ")
}

// Add registra mais um problema de campo.
func (v *ValidationError) Add(field, message string) {
	v.Issues = append(v.Issues, FieldIssue{Field: field, Message: message})
}

// OrNil devolve o erro apenas se houver problemas acumulados.
func (v *ValidationError) OrNil() error {
	if len(v.Issues) == 0 {
		return nil
	}
	return v
}
