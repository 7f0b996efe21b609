package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/octobees/query-classifier/api/internal/llm"
	"github.com/octobees/query-classifier/api/internal/metrics"
)

// FallbackOutput is returned by Process when the classifier reply matches no known category.
const FallbackOutput = "Query does not belong to the recognized categories."

var (
	// ErrEmptyQuery is returned when the query is empty.
	ErrEmptyQuery = errors.New("query is required")
	// ErrUnknownCategory is returned by Extract for a category without an extraction prompt.
	ErrUnknownCategory = errors.New("unknown category")
)

// Classification is the classifier's verdict for a query.
type Classification struct {
	Category Category
	// Raw is the trimmed model reply, kept verbatim even when unrecognized.
	Raw string
}

// ProcessResult is the outcome of classifying a query and running the matching extractor.
type ProcessResult struct {
	Classification Classification
	Output         string
}

// QueryService classifies location queries and extracts their fields through the model.
type QueryService struct {
	model   llm.ChatCompleter
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewQueryService wires the service. logger and m may be nil.
func NewQueryService(model llm.ChatCompleter, logger *zap.Logger, m *metrics.Metrics) *QueryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryService{model: model, logger: logger, metrics: m}
}

// Classify asks the model which category query belongs to.
func (s *QueryService) Classify(ctx context.Context, query string) (Classification, error) {
	if query == "" {
		return Classification{}, ErrEmptyQuery
	}

	raw, err := s.complete(ctx, "classify", ClassificationPrompt(query))
	if err != nil {
		return Classification{}, err
	}

	category := ParseCategory(raw)
	s.metrics.ObserveClassification(category.String())
	if !category.Known() {
		s.logger.Warn("classifier returned unrecognized category", zap.String("raw", raw))
	}
	return Classification{Category: category, Raw: raw}, nil
}

// Extract runs the extraction prompt of category c against query and returns the trimmed reply.
func (s *QueryService) Extract(ctx context.Context, c Category, query string) (string, error) {
	if query == "" {
		return "", ErrEmptyQuery
	}
	prompt, ok := ExtractionPrompt(c, query)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	return s.complete(ctx, "extract_"+c.Slug(), prompt)
}

// Process classifies query and dispatches to the matching extractor. An
// unrecognized category yields FallbackOutput without a second model call.
func (s *QueryService) Process(ctx context.Context, query string) (ProcessResult, error) {
	classification, err := s.Classify(ctx, query)
	if err != nil {
		return ProcessResult{}, err
	}

	result := ProcessResult{Classification: classification}
	if !classification.Category.Known() {
		result.Output = FallbackOutput
		return result, nil
	}

	output, err := s.Extract(ctx, classification.Category, query)
	if err != nil {
		return ProcessResult{}, err
	}
	result.Output = output
	return result, nil
}

func (s *QueryService) complete(ctx context.Context, operation, prompt string) (string, error) {
	start := time.Now()
	raw, err := s.model.Complete(ctx, prompt)
	elapsed := time.Since(start)
	s.metrics.ObserveModelCall(operation, elapsed, err)

	if err != nil {
		fields := []zap.Field{
			zap.String("operation", operation),
			zap.Duration("response_time", elapsed),
			zap.Error(err),
		}
		if errors.Is(err, context.Canceled) {
			s.logger.Warn("model call cancelled by caller", fields...)
		} else {
			s.logger.Error("model call failed", fields...)
		}
		return "", err
	}

	s.logger.Info("model call completed",
		zap.String("operation", operation),
		zap.Duration("response_time", elapsed),
	)
	return strings.TrimSpace(raw), nil
}
