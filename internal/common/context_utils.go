package common

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const requestMemoKey contextKey = "request_memo"

// RequestMemo caches query results for the lifetime of a single request
// so repeated identical calls during one render do not hit storage
// twice. Each request gets a fresh instance from the middleware; it is
// never shared across requests.
type RequestMemo struct {
	mu      sync.Mutex
	entries map[string]any
}

func NewRequestMemo() *RequestMemo {
	return &RequestMemo{entries: make(map[string]any)}
}

// Get returns the memoized value for key, if any.
func (m *RequestMemo) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok
}

// Set stores a value under key for the rest of the request.
func (m *RequestMemo) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

// WithRequestMemo attaches a memo to the context.
func WithRequestMemo(ctx context.Context, memo *RequestMemo) context.Context {
	return context.WithValue(ctx, requestMemoKey, memo)
}

// RequestMemoFromContext returns the request's memo, or nil when the
// call is running outside a request scope (memoization is then skipped).
func RequestMemoFromContext(ctx context.Context) *RequestMemo {
	memo, _ := ctx.Value(requestMemoKey).(*RequestMemo)
	return memo
}

// RequestMemoMiddleware gives every request a fresh memo.
func RequestMemoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := WithRequestMemo(req.Context(), NewRequestMemo())
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

// ValidateUUID parses an id path/form parameter, rejecting blanks with
// a field-specific message.
func ValidateUUID(idStr string, fieldName string) (uuid.UUID, error) {
	idStr = strings.TrimSpace(idStr)
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", fieldName)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s is not a valid id: %v", fieldName, err)
	}
	return id, nil
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Details map[string][]string `json:"details,omitempty"`
	} `json:"error"`
}

// CreateErrorResponse creates a standardized error response
func CreateErrorResponse(code string, message string, details map[string][]string) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Details = details
	return &resp
}

// SendClientError sends a client error response
func SendClientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("CLIENT_ERROR", message, nil))
}

// SendServerError sends a server error response
func SendServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, CreateErrorResponse("SERVER_ERROR", message, nil))
}

// SendNotFoundError sends a not found error response
func SendNotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, CreateErrorResponse("NOT_FOUND", fmt.Sprintf("%s not found", resource), nil))
}

// SendUnauthorizedError sends an unauthorized error response
func SendUnauthorizedError(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, CreateErrorResponse("UNAUTHORIZED", message, nil))
}
