package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/query-classifier/api/internal/dto"
	"github.com/octobees/query-classifier/api/internal/llm"
	"github.com/octobees/query-classifier/api/internal/service"
)

// statusClientClosedRequest is reported when the caller went away before the model answered.
const statusClientClosedRequest = 499

// QueryProcessor is the subset of service.QueryService used by the handlers.
type QueryProcessor interface {
	Classify(ctx context.Context, query string) (service.Classification, error)
	Extract(ctx context.Context, c service.Category, query string) (string, error)
	Process(ctx context.Context, query string) (service.ProcessResult, error)
}

// QueryHandler exposes classification and extraction over HTTP.
type QueryHandler struct {
	service QueryProcessor
}

// NewQueryHandler wires the handler.
func NewQueryHandler(svc QueryProcessor) *QueryHandler {
	return &QueryHandler{service: svc}
}

// Classify handles GET /classify_query/.
func (h *QueryHandler) Classify(c echo.Context) error {
	query, ok := queryParam(c)
	if !ok {
		return Error(c, http.StatusBadRequest, "query is required")
	}

	result, err := h.service.Classify(c.Request().Context(), query)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ClassifyResponse{Query: query, Category: result.Raw})
}

// ProcessAddress handles GET /classify_query/process_address/.
func (h *QueryHandler) ProcessAddress(c echo.Context) error {
	return h.extract(c, service.CategoryAddress, func(query, out string) any {
		return dto.AddressResponse{Query: query, FormattedAddress: out}
	})
}

// ProcessCategory handles GET /classify_query/process_category/.
func (h *QueryHandler) ProcessCategory(c echo.Context) error {
	return h.extract(c, service.CategoryCategory, func(query, out string) any {
		return dto.CategoryResponse{Query: query, FormattedCategory: out}
	})
}

// ProcessQuantity handles GET /classify_query/process_quantity/.
func (h *QueryHandler) ProcessQuantity(c echo.Context) error {
	return h.extract(c, service.CategoryQuantity, func(query, out string) any {
		return dto.QuantityResponse{Query: query, FormattedQuantity: out}
	})
}

// ProcessBrand handles GET /classify_query/process_brand/.
func (h *QueryHandler) ProcessBrand(c echo.Context) error {
	return h.extract(c, service.CategoryBrand, func(query, out string) any {
		return dto.BrandResponse{Query: query, FormattedBrand: out}
	})
}

// ProcessDistance handles GET /classify_query/process_distance/.
func (h *QueryHandler) ProcessDistance(c echo.Context) error {
	return h.extract(c, service.CategoryDistance, func(query, out string) any {
		return dto.DistanceResponse{Query: query, FormattedDistance: out}
	})
}

// ProcessLocationWithReference handles GET /classify_query/process_location_with_reference/.
func (h *QueryHandler) ProcessLocationWithReference(c echo.Context) error {
	return h.extract(c, service.CategoryLocationWithReference, func(query, out string) any {
		return dto.ReferenceResponse{Query: query, FormattedReference: out}
	})
}

// Process handles GET /process_query/: classify, then run the matching extractor.
func (h *QueryHandler) Process(c echo.Context) error {
	query, ok := queryParam(c)
	if !ok {
		return Error(c, http.StatusBadRequest, "query is required")
	}

	result, err := h.service.Process(c.Request().Context(), query)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ProcessResponse{
		Query:           query,
		Category:        result.Classification.Raw,
		ProcessedOutput: result.Output,
	})
}

func (h *QueryHandler) extract(c echo.Context, category service.Category, build func(query, out string) any) error {
	query, ok := queryParam(c)
	if !ok {
		return Error(c, http.StatusBadRequest, "query is required")
	}

	out, err := h.service.Extract(c.Request().Context(), category, query)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, build(query, out))
}

// queryParam returns the raw query parameter; only a missing or empty value is rejected.
func queryParam(c echo.Context) (string, bool) {
	query := c.QueryParam("query")
	if query == "" {
		return "", false
	}
	return query, true
}

func serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyQuery):
		return Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled):
		return Error(c, statusClientClosedRequest, "request cancelled")
	case errors.Is(err, context.DeadlineExceeded):
		return Error(c, http.StatusGatewayTimeout, "upstream model timed out")
	case errors.Is(err, llm.ErrUpstreamUnavailable):
		return Error(c, http.StatusBadGateway, llm.ErrUpstreamUnavailable.Error())
	default:
		return Error(c, http.StatusInternalServerError, "internal server error")
	}
}
