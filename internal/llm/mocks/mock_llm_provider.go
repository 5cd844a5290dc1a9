// Package mocks holds hand-maintained testify mocks in the mockery layout.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"model-catalog/internal/llm"
)

// MockLLMProvider is a mock type for the LLMProvider type
type MockLLMProvider struct {
	mock.Mock
}

func (_m *MockLLMProvider) ShowModelInfo(ctx context.Context, req *llm.ShowModelRequest) (*llm.ModelInfo, error) {
	ret := _m.Called(ctx, req)

	var r0 *llm.ModelInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*llm.ModelInfo)
	}
	return r0, ret.Error(1)
}

// NewMockLLMProvider creates a new instance of MockLLMProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockLLMProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLLMProvider {
	m := &MockLLMProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
