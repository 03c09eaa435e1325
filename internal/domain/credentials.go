package domain

// Credentials carrega as credenciais do operador durante o login.
// Nunca é persistido.
type Credentials struct {
	Username string
	Password string
}
