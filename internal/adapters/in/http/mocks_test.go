package http_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockQuery stands in for any use case that returns a value.
type MockQuery[Q, R any] struct{ mock.Mock }

func (m *MockQuery[Q, R]) Handle(ctx context.Context, q Q) (R, error) {
	args := m.Called(ctx, q)
	var res R
	if v := args.Get(0); v != nil {
		res = v.(R)
	}
	return res, args.Error(1)
}

// MockCommand stands in for a use case that only reports an error.
type MockCommand[C any] struct{ mock.Mock }

func (m *MockCommand[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockEvidenceReader struct{ mock.Mock }

func (m *MockEvidenceReader) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
