package response

// Envelope is the success body shape: {"success": true, "message": ..., "data": ...}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func Success(message string, data any) Envelope {
	return Envelope{
		Success: true,
		Message: message,
		Data:    data,
	}
}
