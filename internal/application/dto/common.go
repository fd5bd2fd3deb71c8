package dto

// ErrorResponse corpo de erro HTTP: {success:false, error:mensagem}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse resposta de sucesso sem payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Erro monta o envelope de erro padrão.
func Erro(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}
