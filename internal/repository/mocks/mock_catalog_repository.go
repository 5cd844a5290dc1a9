// Package mocks holds hand-maintained testify mocks in the mockery layout.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"model-catalog/internal/model"
	"model-catalog/internal/repository"
)

// MockCatalogRepository is a mock type for the CatalogRepository type
type MockCatalogRepository struct {
	mock.Mock
}

func (_m *MockCatalogRepository) CreateModel(ctx context.Context, rec *repository.ModelRecord, params *model.ModelOptionalParameters) error {
	ret := _m.Called(ctx, rec, params)
	return ret.Error(0)
}

func (_m *MockCatalogRepository) GetModel(ctx context.Context, id string) (*repository.ModelRecord, error) {
	ret := _m.Called(ctx, id)

	var r0 *repository.ModelRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*repository.ModelRecord)
	}
	return r0, ret.Error(1)
}

func (_m *MockCatalogRepository) DeleteModel(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *MockCatalogRepository) QueryModels(ctx context.Context, q model.IncomingModelQuery) ([]model.ModelInfo, error) {
	ret := _m.Called(ctx, q)

	var r0 []model.ModelInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.ModelInfo)
	}
	return r0, ret.Error(1)
}

func (_m *MockCatalogRepository) GetParameters(ctx context.Context, modelID string) (*model.ModelOptionalParameters, error) {
	ret := _m.Called(ctx, modelID)

	var r0 *model.ModelOptionalParameters
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ModelOptionalParameters)
	}
	return r0, ret.Error(1)
}

func (_m *MockCatalogRepository) GetParametersForModels(ctx context.Context, modelIDs []string) (map[string]model.ModelOptionalParameters, error) {
	ret := _m.Called(ctx, modelIDs)

	var r0 map[string]model.ModelOptionalParameters
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]model.ModelOptionalParameters)
	}
	return r0, ret.Error(1)
}

func (_m *MockCatalogRepository) SetParameters(ctx context.Context, modelID string, params model.ModelOptionalParameters) error {
	ret := _m.Called(ctx, modelID, params)
	return ret.Error(0)
}

// NewMockCatalogRepository creates a new instance of MockCatalogRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogRepository {
	m := &MockCatalogRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
