package hub

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

var _ ClientI = (*MockClient)(nil)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Delivered(ctx context.Context, mailboxID string, messageID common.Hash) (bool, error) {
	args := m.Called(ctx, mailboxID, messageID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClient) WithdrawalStatus(ctx context.Context, ids []common.Hash, height *uint64) (*WithdrawalStatusResponse, error) {
	args := m.Called(ctx, ids, height)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*WithdrawalStatusResponse), args.Error(1)
}
