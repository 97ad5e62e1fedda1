package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/wadirect-backend/internal/domain"
)

var _ authMethodRepo = &authMethodRepoMock{}

type authMethodRepoMock struct {
	GetByProviderFunc func(ctx context.Context, provider, providerID string) (*domain.AuthMethod, error)
	CreateFunc        func(ctx context.Context, m *domain.AuthMethod) error

	calls struct {
		GetByProvider []struct {
			Ctx        context.Context
			Provider   string
			ProviderID string
		}
		Create []struct {
			Ctx context.Context
			M   *domain.AuthMethod
		}
	}
	lockGetByProvider sync.RWMutex
	lockCreate        sync.RWMutex
}

func (mock *authMethodRepoMock) GetByProvider(ctx context.Context, provider, providerID string) (*domain.AuthMethod, error) {
	if mock.GetByProviderFunc == nil {
		panic("authMethodRepoMock.GetByProviderFunc: method is nil but authMethodRepo.GetByProvider was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Provider   string
		ProviderID string
	}{Ctx: ctx, Provider: provider, ProviderID: providerID}
	mock.lockGetByProvider.Lock()
	mock.calls.GetByProvider = append(mock.calls.GetByProvider, callInfo)
	mock.lockGetByProvider.Unlock()
	return mock.GetByProviderFunc(ctx, provider, providerID)
}

func (mock *authMethodRepoMock) GetByProviderCalls() []struct {
	Ctx        context.Context
	Provider   string
	ProviderID string
} {
	mock.lockGetByProvider.RLock()
	calls := mock.calls.GetByProvider
	mock.lockGetByProvider.RUnlock()
	return calls
}

func (mock *authMethodRepoMock) Create(ctx context.Context, m *domain.AuthMethod) error {
	if mock.CreateFunc == nil {
		panic("authMethodRepoMock.CreateFunc: method is nil but authMethodRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.AuthMethod
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *authMethodRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.AuthMethod
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
