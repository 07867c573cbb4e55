package domain

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// Claims são as informações do token de operador usado nas rotas administrativas
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}
