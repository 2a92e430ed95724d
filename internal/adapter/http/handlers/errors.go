package handlers

import (
	"errors"
	"net/http"

	"servicescale/internal/usecase"
	"servicescale/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid query parameter", http.StatusBadRequest)
)

// mapError translates the use case error taxonomy into the HTTP error body.
func mapError(err error) *pkg.AppError {
	var (
		parseErr  *usecase.ImportParseError
		validErr  *usecase.ValidationError
		notFound  *usecase.NotFoundError
		remoteErr *usecase.RemoteError
	)
	switch {
	case errors.Is(err, usecase.ErrMissingOwner):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "No authenticated owner", http.StatusUnauthorized)
	case errors.As(err, &parseErr):
		return pkg.NewDomainErrorSimple("IMPORT_PARSE_ERROR", "The file could not be parsed", http.StatusBadRequest).
			WithDetails(parseErr.Error())
	case errors.As(err, &validErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest).
			WithDetails(validErr.Error())
	case errors.As(err, &notFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", notFound.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrEnrichmentNotConfigured):
		return pkg.NewDomainErrorSimple("ENRICHMENT_NOT_CONFIGURED", "Property data service is not configured", http.StatusServiceUnavailable)
	case errors.As(err, &remoteErr):
		return pkg.NewDomainError("UPSTREAM_ERROR", "A backing service call failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
