package httpd

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamaar/gocalc/internal/config"
	"github.com/mamaar/gocalc/pkg/calc"
	"github.com/mamaar/gocalc/pkg/worksheet"
)

// ServiceVersion is the gocalc HTTP API version.
const ServiceVersion = "0.1.0"

var operationDescriptions = map[calc.Op]string{
	calc.OpAdd:      "Add two numbers",
	calc.OpSubtract: "Subtract the second number from the first",
	calc.OpMultiply: "Multiply two numbers",
	calc.OpDivide:   "Divide the first number by the second; fails on a zero divisor",
}

// Handlers contains the HTTP handlers for the gocalc API.
type Handlers struct {
	cfg     *config.Store
	logger  *zap.Logger
	metrics *Metrics
}

// NewHandlers creates handlers backed by the given config store.
func NewHandlers(cfg *config.Store, logger *zap.Logger, metrics *Metrics) *Handlers {
	return &Handlers{cfg: cfg, logger: logger, metrics: metrics}
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Version: ServiceVersion})
}

// HandleOperations handles GET /v1/operations.
func (h *Handlers) HandleOperations(c *gin.Context) {
	ops := make([]OperationInfo, 0, len(calc.Ops()))
	for _, op := range calc.Ops() {
		ops = append(ops, OperationInfo{
			Name:        string(op),
			Aliases:     calc.Aliases(op),
			Description: operationDescriptions[op],
		})
	}
	c.JSON(http.StatusOK, OperationsResponse{Operations: ops})
}

// HandleCalculate handles POST /v1/calculate.
//
// Responses:
//
//	200 OK: CalculateResponse
//	400 Bad Request: malformed body or unknown operation
//	422 Unprocessable Entity: division by zero
func (h *Handlers) HandleCalculate(c *gin.Context) {
	logger := h.logger.With(zap.String("request_id", getRequestID(c)))

	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request: " + err.Error(),
			Code:  "bad_request",
		})
		return
	}

	op, err := calc.ParseOp(req.Op)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: calc.CodeOf(err)})
		return
	}

	result, err := calc.Apply(op, *req.A, *req.B)
	h.metrics.RecordOperation(string(op), err)
	if err != nil {
		logger.Debug("calculation failed", zap.String("op", string(op)), zap.Error(err))
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error(), Code: calc.CodeOf(err)})
		return
	}

	c.JSON(http.StatusOK, CalculateResponse{
		Op:     string(op),
		A:      *req.A,
		B:      *req.B,
		Result: result,
	})
}

// HandleWorksheet handles POST /v1/worksheet.
//
// Responses:
//
//	200 OK: WorksheetResponse (entry failures are reported per entry)
//	400 Bad Request: malformed body, empty worksheet, or over the entry cap
func (h *Handlers) HandleWorksheet(c *gin.Context) {
	logger := h.logger.With(zap.String("request_id", getRequestID(c)))

	var req WorksheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request: " + err.Error(),
			Code:  "bad_request",
		})
		return
	}
	if len(req.Entries) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "worksheet has no entries",
			Code:  "bad_request",
		})
		return
	}
	maxEntries := h.cfg.Current().Limits.MaxWorksheetEntries
	if len(req.Entries) > maxEntries {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("worksheet has %d entries, limit is %d", len(req.Entries), maxEntries),
			Code:  "bad_request",
		})
		return
	}

	ws := &worksheet.Worksheet{Entries: req.Entries}
	outcomes := ws.Evaluate()
	succeeded, failed := worksheet.Summary(outcomes)

	h.metrics.WorksheetEntries.Observe(float64(len(req.Entries)))
	for _, o := range outcomes {
		// Free-form op names would blow up label cardinality.
		op := strings.ToLower(o.Op)
		if _, err := calc.ParseOp(op); err != nil {
			op = "unknown"
		}
		if o.Failed() {
			h.metrics.CalcOperationsTotal.WithLabelValues(op, "error").Inc()
		} else {
			h.metrics.CalcOperationsTotal.WithLabelValues(op, "ok").Inc()
		}
	}

	logger.Debug("worksheet evaluated",
		zap.Int("entries", len(req.Entries)),
		zap.Int("failed", failed),
	)
	c.JSON(http.StatusOK, WorksheetResponse{
		Results:   outcomes,
		Succeeded: succeeded,
		Failed:    failed,
	})
}

// statusFor maps calc errors to HTTP statuses: invalid arguments are
// semantically valid requests the math rejects (422), unknown operations are
// malformed requests (400).
func statusFor(err error) int {
	if errors.Is(err, calc.ErrDivisionByZero) {
		return http.StatusUnprocessableEntity
	}
	if kind, ok := calc.KindOf(err); ok && kind == calc.InvalidArgument {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}
