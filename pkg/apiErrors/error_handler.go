package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest   = "VAL_001" // Requisição inválida
	ErrInvalidFormat    = "VAL_003" // Formato de dados inválido
	ErrInvalidRange     = "VAL_004" // Intervalo de datas inválido
	ErrRouteNotFound    = "VAL_005" // Rota inexistente
	ErrMethodNotAllowed = "VAL_006" // Método HTTP não suportado na rota

	// Erros do servidor (5000-5999)
	ErrInternalServer     = "SRV_001" // Erro interno do servidor
	ErrDatasetUnavailable = "SRV_005" // Arquivo de vendas indisponível
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrInvalidFormat:      http.StatusBadRequest,
	ErrInvalidRange:       http.StatusBadRequest,
	ErrRouteNotFound:      http.StatusNotFound,
	ErrMethodNotAllowed:   http.StatusMethodNotAllowed,
	ErrInternalServer:     http.StatusInternalServerError,
	ErrDatasetUnavailable: http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
