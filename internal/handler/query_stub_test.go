package handler

import (
	"context"

	"github.com/octobees/query-classifier/api/internal/service"
)

type processorStub struct {
	classification service.Classification
	output         string
	err            error

	calls       int
	extractedAs []service.Category
}

func (s *processorStub) Classify(ctx context.Context, query string) (service.Classification, error) {
	s.calls++
	if s.err != nil {
		return service.Classification{}, s.err
	}
	return s.classification, nil
}

func (s *processorStub) Extract(ctx context.Context, c service.Category, query string) (string, error) {
	s.calls++
	s.extractedAs = append(s.extractedAs, c)
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}

func (s *processorStub) Process(ctx context.Context, query string) (service.ProcessResult, error) {
	s.calls++
	if s.err != nil {
		return service.ProcessResult{}, s.err
	}
	return service.ProcessResult{Classification: s.classification, Output: s.output}, nil
}
