package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/octobees/query-classifier/api/internal/llm"
	"github.com/octobees/query-classifier/api/internal/service"
)

func newQueryContext(query string, present bool) (echo.Context, *httptest.ResponseRecorder) {
	target := "/"
	if present {
		target = "/?query=" + url.QueryEscape(query)
	}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

type endpoint struct {
	name     string
	field    string
	category service.Category
	call     func(h *QueryHandler, c echo.Context) error
}

var extractEndpoints = []endpoint{
	{"address", "formatted_address", service.CategoryAddress, (*QueryHandler).ProcessAddress},
	{"category", "formatted_category", service.CategoryCategory, (*QueryHandler).ProcessCategory},
	{"quantity", "formatted_quantity", service.CategoryQuantity, (*QueryHandler).ProcessQuantity},
	{"brand", "formatted_brand", service.CategoryBrand, (*QueryHandler).ProcessBrand},
	{"distance", "formatted_distance", service.CategoryDistance, (*QueryHandler).ProcessDistance},
	{"location_with_reference", "formatted_reference", service.CategoryLocationWithReference, (*QueryHandler).ProcessLocationWithReference},
}

func TestQueryHandler_Classify(t *testing.T) {
	stub := &processorStub{classification: service.Classification{Category: service.CategoryBrand, Raw: "[Brand]"}}
	h := NewQueryHandler(stub)
	c, rec := newQueryContext("Starbucks near me", true)

	if err := h.Classify(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["query"] != "Starbucks near me" || body["category"] != "[Brand]" {
		t.Fatalf("unexpected body: %v", body)
	}
	if len(body) != 2 {
		t.Fatalf("expected exactly query and category, got %v", body)
	}
}

func TestQueryHandler_ExtractEndpoints(t *testing.T) {
	for _, ep := range extractEndpoints {
		t.Run(ep.name, func(t *testing.T) {
			stub := &processorStub{output: "[(Park), (3)]"}
			h := NewQueryHandler(stub)
			c, rec := newQueryContext(" 3 parks ", true)

			if err := ep.call(h, c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			body := decodeBody(t, rec)
			if body["query"] != " 3 parks " {
				t.Fatalf("query must be echoed unchanged, got %q", body["query"])
			}
			if body[ep.field] != "[(Park), (3)]" {
				t.Fatalf("expected %s in body, got %v", ep.field, body)
			}
			if len(stub.extractedAs) != 1 || stub.extractedAs[0] != ep.category {
				t.Fatalf("expected extraction as %s, got %v", ep.category, stub.extractedAs)
			}
		})
	}
}

func TestQueryHandler_Process(t *testing.T) {
	stub := &processorStub{
		classification: service.Classification{Category: service.CategoryDistance, Raw: "[Distance]"},
		output:         "[(Restaurant), (10 km)]",
	}
	h := NewQueryHandler(stub)
	c, rec := newQueryContext("restaurants within 10 km", true)

	if err := h.Process(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := decodeBody(t, rec)
	if body["query"] != "restaurants within 10 km" || body["category"] != "[Distance]" || body["processed_output"] != "[(Restaurant), (10 km)]" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestQueryHandler_ProcessUnrecognized(t *testing.T) {
	stub := &processorStub{
		classification: service.Classification{Category: service.CategoryUnrecognized, Raw: "[Landmark]"},
		output:         service.FallbackOutput,
	}
	h := NewQueryHandler(stub)
	c, rec := newQueryContext("Eiffel tower", true)

	if err := h.Process(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unrecognized category is not an error, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["category"] != "[Landmark]" || body["processed_output"] != service.FallbackOutput {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestQueryHandler_MissingQuery(t *testing.T) {
	handlers := map[string]func(h *QueryHandler, c echo.Context) error{
		"classify": (*QueryHandler).Classify,
		"process":  (*QueryHandler).Process,
	}
	for _, ep := range extractEndpoints {
		handlers[ep.name] = ep.call
	}

	for name, call := range handlers {
		for _, tc := range []struct {
			label   string
			value   string
			present bool
		}{
			{"absent", "", false},
			{"empty", "", true},
		} {
			t.Run(fmt.Sprintf("%s/%s", name, tc.label), func(t *testing.T) {
				stub := &processorStub{}
				h := NewQueryHandler(stub)
				c, rec := newQueryContext(tc.value, tc.present)

				if err := call(h, c); err != nil {
					t.Fatalf("expected handler to write response, got %v", err)
				}
				if rec.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", rec.Code)
				}
				if stub.calls != 0 {
					t.Fatalf("service must not be called for a missing query")
				}
			})
		}
	}
}

func TestQueryHandler_WhitespaceQueryPassesThrough(t *testing.T) {
	stub := &processorStub{
		classification: service.Classification{Category: service.CategoryCategory, Raw: "[Category]"},
		output:         "[Park]",
	}
	h := NewQueryHandler(stub)

	for name, call := range map[string]func(h *QueryHandler, c echo.Context) error{
		"classify": (*QueryHandler).Classify,
		"process":  (*QueryHandler).Process,
		"category": (*QueryHandler).ProcessCategory,
	} {
		t.Run(name, func(t *testing.T) {
			c, rec := newQueryContext("   ", true)
			if err := call(h, c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200 for a whitespace query, got %d", rec.Code)
			}
			if body := decodeBody(t, rec); body["query"] != "   " {
				t.Fatalf("expected whitespace query echoed, got %q", body["query"])
			}
		})
	}
	if stub.calls != 3 {
		t.Fatalf("expected the service to be called for every endpoint, got %d", stub.calls)
	}
}

func TestQueryHandler_ContextErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"cancelled", fmt.Errorf("%w: request failed: %w", llm.ErrUpstreamUnavailable, context.Canceled), statusClientClosedRequest},
		{"deadline", fmt.Errorf("%w: request failed: %w", llm.ErrUpstreamUnavailable, context.DeadlineExceeded), http.StatusGatewayTimeout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewQueryHandler(&processorStub{err: tc.err})
			c, rec := newQueryContext("Starbucks near me", true)
			if err := h.Process(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestQueryHandler_UpstreamFailure(t *testing.T) {
	stub := &processorStub{err: fmt.Errorf("%w: status 503", llm.ErrUpstreamUnavailable)}
	h := NewQueryHandler(stub)

	for name, call := range map[string]func(h *QueryHandler, c echo.Context) error{
		"classify": (*QueryHandler).Classify,
		"process":  (*QueryHandler).Process,
		"brand":    (*QueryHandler).ProcessBrand,
	} {
		t.Run(name, func(t *testing.T) {
			c, rec := newQueryContext("Starbucks near me", true)
			if err := call(h, c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != http.StatusBadGateway {
				t.Fatalf("expected 502, got %d", rec.Code)
			}
			var payload APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if payload.Status != "error" || payload.Message != "upstream model unavailable" {
				t.Fatalf("unexpected response: %+v", payload)
			}
		})
	}
}

func TestQueryHandler_UnexpectedError(t *testing.T) {
	h := NewQueryHandler(&processorStub{err: errors.New("boom")})
	c, rec := newQueryContext("Starbucks near me", true)

	if err := h.Classify(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
