package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbook/internal/domain"
	"gstbook/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest, "INVALID_PERIOD", "period must be MMYYYY with a month between 01 and 12"
	case errors.Is(err, domain.ErrReturnNotFound):
		return http.StatusNotFound, "RETURN_NOT_FOUND", "no return found for this period"
	case errors.Is(err, domain.ErrDraftNotFound):
		return http.StatusNotFound, "DRAFT_NOT_FOUND", "no saved draft for this period"
	case errors.Is(err, domain.ErrReturnSubmitted):
		return http.StatusConflict, "RETURN_SUBMITTED", "return is already submitted and can no longer change"
	case errors.Is(err, domain.ErrUnknownSection):
		return http.StatusBadRequest, "UNKNOWN_SECTION", "unknown return section"
	case errors.Is(err, domain.ErrUnknownSlot):
		return http.StatusBadRequest, "UNKNOWN_SLOT", "unknown slot for this return section"
	case errors.Is(err, domain.ErrValidationFailed):
		return http.StatusUnprocessableEntity, "VALIDATION_FAILED", "return has outstanding validation errors"
	case errors.Is(err, domain.ErrConfirmationMismatch):
		return http.StatusConflict, "CONFIRMATION_MISMATCH", "confirmed liability does not match the computed liability"
	case errors.Is(err, domain.ErrFilingFailed):
		return http.StatusBadGateway, "FILING_FAILED", "filing submission failed; please retry"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}

// extractAuthContext extracts the authenticated GSTIN from the request
// context. Returns false if auth context is missing (error response
// already written).
func extractAuthContext(c *gin.Context) (gstin string, ok bool) {
	gstin, err := middleware.GetGSTIN(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing registration context")
		return "", false
	}
	return gstin, true
}
