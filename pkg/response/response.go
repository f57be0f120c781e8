package response

// Response represents the standard API envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PaginatedData wraps a page of results with its totals
type PaginatedData struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// Success returns a success envelope wrapping the data
func Success(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// SuccessWithPagination returns a success envelope for a paginated listing
func SuccessWithPagination(items interface{}, page, limit int, total int64) Response {
	return Response{
		Success: true,
		Data: PaginatedData{
			Items: items,
			Total: total,
			Page:  page,
			Limit: limit,
		},
	}
}

// Error returns an error envelope. detail carries the underlying error text, if any.
func Error(message string, detail string) Response {
	return Response{
		Success: false,
		Message: message,
		Error:   detail,
	}
}
