package validator

import (
	"context"

	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/stretchr/testify/mock"
)

var _ Interface = (*MockValidator)(nil)

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) Health(ctx context.Context, checkLiveness bool) (int, string, error) {
	args := m.Called(ctx, checkLiveness)
	return args.Int(0), args.String(1), args.Error(2)
}

func (m *MockValidator) SignWithdrawal(ctx context.Context, requestID string, fxg *model.WithdrawFXG) (model.Bundle, error) {
	args := m.Called(ctx, requestID, fxg)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(model.Bundle), args.Error(1)
}

func (m *MockValidator) Info(ctx context.Context) (*Info, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*Info), args.Error(1)
}
