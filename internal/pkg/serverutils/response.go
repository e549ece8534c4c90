package serverutils

type Response[T any] struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Message: message,
		Status:  "success",
		Data:    data,
	}
}

func ErrorResponse(message, errorType string) Response[map[string]interface{}] {
	return Response[map[string]interface{}]{
		Message: message,
		Status:  "error",
		Data:    map[string]interface{}{"error_type": errorType},
	}
}
