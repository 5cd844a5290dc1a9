// Package mocks holds hand-maintained testify mocks in the mockery layout.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"model-catalog/internal/model"
	"model-catalog/internal/service"
)

// MockCatalogService is a mock type for the CatalogService type
type MockCatalogService struct {
	mock.Mock
}

func (_m *MockCatalogService) Query(ctx context.Context, q model.IncomingModelQuery) (*model.ModelResponse, error) {
	ret := _m.Called(ctx, q)

	var r0 *model.ModelResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ModelResponse)
	}
	return r0, ret.Error(1)
}

func (_m *MockCatalogService) QueryWithParameters(ctx context.Context, q model.IncomingModelQuery) (*model.ModelResponseWithOptionalParameters, error) {
	ret := _m.Called(ctx, q)

	var r0 *model.ModelResponseWithOptionalParameters
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ModelResponseWithOptionalParameters)
	}
	return r0, ret.Error(1)
}

func (_m *MockCatalogService) Register(ctx context.Context, req *service.RegisterModelRequest) (*model.ModelInfo, error) {
	ret := _m.Called(ctx, req)

	var r0 *model.ModelInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ModelInfo)
	}
	return r0, ret.Error(1)
}

func (_m *MockCatalogService) Get(ctx context.Context, id string) (*model.ModelInfo, error) {
	ret := _m.Called(ctx, id)

	var r0 *model.ModelInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ModelInfo)
	}
	return r0, ret.Error(1)
}

func (_m *MockCatalogService) GetWithParameters(ctx context.Context, id string) (*model.ModelCombinedWithOptionalParameters, error) {
	ret := _m.Called(ctx, id)

	var r0 *model.ModelCombinedWithOptionalParameters
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ModelCombinedWithOptionalParameters)
	}
	return r0, ret.Error(1)
}

func (_m *MockCatalogService) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *MockCatalogService) SetParameters(ctx context.Context, id string, params model.ModelOptionalParameters) error {
	ret := _m.Called(ctx, id, params)
	return ret.Error(0)
}

// NewMockCatalogService creates a new instance of MockCatalogService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCatalogService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogService {
	m := &MockCatalogService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
