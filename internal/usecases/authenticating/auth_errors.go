package authenticating

import (
	"errors"
)

var (
	ErrInvalidToken     = errors.New("token inválido")
	ErrExpiredToken     = errors.New("token expirado")
	ErrMissingSubject   = errors.New("subject é obrigatório")
	ErrMissingSecretKey = errors.New("AUTH_SECRET não configurado")
)

// IsExpired indica se a validação falhou apenas pela expiração
func IsExpired(err error) bool {
	return errors.Is(err, ErrExpiredToken)
}
