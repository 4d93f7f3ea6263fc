package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope of every JSON API reply.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta describes one page of a paginated listing, in the same terms as the
// catalog pager: "Showing From to To of Total results".
type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	LastPage    int   `json:"last_page"`
	From        int   `json:"from"`
	To          int   `json:"to"`
	Total       int64 `json:"total"`
}

// NewPageMeta builds the Meta for page (1-based) holding count items out of
// total. An empty listing still has one page; From and To are 0 when the page
// holds nothing.
func NewPageMeta(page, perPage int, total int64, count int) *Meta {
	meta := &Meta{CurrentPage: page, PerPage: perPage, LastPage: 1, Total: total}
	if perPage > 0 && total > 0 {
		meta.LastPage = int((total + int64(perPage) - 1) / int64(perPage))
	}
	if count > 0 {
		meta.From = (page-1)*perPage + 1
		meta.To = meta.From + count - 1
	}
	return meta
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(w http.ResponseWriter, statusCode int, message string, data interface{}, meta *Meta) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	JSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Error:   errors,
	})
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}
