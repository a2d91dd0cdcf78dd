package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateDescription(ctx context.Context, productName string, keywords string) (string, error) {
	args := m.Called(ctx, productName, keywords)
	return args.String(0), args.Error(1)
}
