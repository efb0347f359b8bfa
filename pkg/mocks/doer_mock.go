package mocks

import (
	"context"

	"github.com/flareops/flarenode/pkg/flare"
	"github.com/stretchr/testify/mock"
)

// MockDoer is a mock implementation of the flarenetwork.Doer interface.
type MockDoer struct {
	mock.Mock
}

func (m *MockDoer) Do(ctx context.Context, creds flare.Credentials, req flare.Request) (any, error) {
	args := m.Called(ctx, creds, req)

	return args.Get(0), args.Error(1)
}

// MockCredentialProvider is a mock implementation of protocol.CredentialProvider.
type MockCredentialProvider struct {
	mock.Mock
}

func (m *MockCredentialProvider) Credentials(ctx context.Context) (flare.Credentials, error) {
	args := m.Called(ctx)

	return args.Get(0).(flare.Credentials), args.Error(1)
}
