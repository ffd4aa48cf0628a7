package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro do contrato público
const (
	// Erros de previsão (FOR)
	ErrInvalidInput = "FOR_001" // Corpo ou campos inválidos na previsão pontual
	ErrNoData       = "FOR_002" // Tabela de vendas vazia

	// Erros de upload (UPL)
	ErrNoFileUploaded = "UPL_001" // Requisição sem arquivos (herdado também pelo POST /api/predict sem histórico)
	ErrNoValidData    = "UPL_002" // Todas as linhas enviadas foram descartadas

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidInput:      http.StatusBadRequest,
	ErrNoData:            http.StatusNotFound,
	ErrNoFileUploaded:    http.StatusBadRequest,
	ErrNoValidData:       http.StatusBadRequest,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
}

// Mensagens visíveis do contrato. Os textos são fixos e fazem parte da API.
var messageMap = map[string]string{
	ErrInvalidInput:      "Invalid input",
	ErrNoData:            "No data",
	ErrNoFileUploaded:    "No file uploaded",
	ErrNoValidData:       "No valid data",
	ErrInternalServer:    "Internal server error",
	ErrDatabaseOperation: "Database error",
}

// ErrNoValidData responde sob a chave "message"; os demais erros sob "error".
var messageKeyed = map[string]bool{
	ErrNoValidData: true,
}

// WriteError escreve o corpo de erro padronizado do contrato
func WriteError(w http.ResponseWriter, code string) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	message, exists := messageMap[code]
	if !exists {
		message = messageMap[ErrInternalServer]
	}

	key := "error"
	if messageKeyed[code] {
		key = "message"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{key: message})
}

// WriteMessage escreve uma resposta de sucesso com a chave "message"
func WriteMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
