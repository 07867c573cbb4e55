package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Autenticação das rotas administrativas
	ErrMissingToken          = "AUTH_001" // Cabeçalho Authorization ausente
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Validação
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidCustomerID   = "VAL_003" // Id de cliente não numérico

	// Dados
	ErrDatasetUnavailable = "DATA_001" // Falha ao carregar previsão ou recomendações
	ErrNoData             = "DATA_002" // Nenhuma linha para o cliente

	ErrRateLimited = "RATE_001"

	// Roteamento
	ErrRouteNotFound    = "ROUTE_404"
	ErrMethodNotAllowed = "ROUTE_405"

	ErrInternalServer = "SRV_001"
	ErrSchedulerBusy  = "SRV_005" // Job de cache já em execução
)

var httpStatusMap = map[string]int{
	ErrMissingToken:          http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidCustomerID:     http.StatusBadRequest,
	ErrDatasetUnavailable:    http.StatusServiceUnavailable,
	ErrNoData:                http.StatusNotFound,
	ErrRateLimited:           http.StatusTooManyRequests,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrSchedulerBusy:         http.StatusConflict,
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor devolve o status HTTP do código; desconhecidos viram 500
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}
