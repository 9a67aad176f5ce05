package httpd

import "github.com/mamaar/gocalc/pkg/worksheet"

// CalculateRequest is the body of POST /v1/calculate. The operands bind
// through pointers so that a literal 0 still satisfies the required check.
type CalculateRequest struct {
	Op string   `json:"op" binding:"required"`
	A  *float64 `json:"a" binding:"required"`
	B  *float64 `json:"b" binding:"required"`
}

// CalculateResponse is the success body of POST /v1/calculate.
type CalculateResponse struct {
	Op     string  `json:"op"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	Result float64 `json:"result"`
}

// WorksheetRequest is the body of POST /v1/worksheet.
type WorksheetRequest struct {
	Entries []worksheet.Entry `json:"entries" binding:"required"`
}

// WorksheetResponse is the success body of POST /v1/worksheet.
type WorksheetResponse struct {
	Results   []worksheet.Outcome `json:"results"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}

// OperationInfo describes one supported operation.
type OperationInfo struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description"`
}

// OperationsResponse is the body of GET /v1/operations.
type OperationsResponse struct {
	Operations []OperationInfo `json:"operations"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
