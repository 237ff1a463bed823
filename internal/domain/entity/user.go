package entity

// User representa un usuario del sistema (login tradicional username/password).
type User struct {
	ID           string
	Username     string  // único
	Email        *string // único si está presente
	PasswordHash string  // bcrypt hash, nunca texto plano
	IsActive     bool
}
