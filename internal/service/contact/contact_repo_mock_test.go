package contact

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wadirect-backend/internal/domain"
)

var _ contactRepo = &contactRepoMock{}

type contactRepoMock struct {
	CreateFunc      func(ctx context.Context, userID uuid.UUID, c *domain.Contact) (*domain.Contact, error)
	GetByIDFunc     func(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error)
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error)
	UpdateFunc      func(ctx context.Context, userID, contactID uuid.UUID, upd domain.ContactUpdate) (*domain.Contact, error)
	DeleteFunc      func(ctx context.Context, userID, contactID uuid.UUID) error
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			C      *domain.Contact
		}
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ContactID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ContactID uuid.UUID
			Upd       domain.ContactUpdate
		}
		Delete []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ContactID uuid.UUID
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListByUser  sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockCountByUser sync.RWMutex
}

func (mock *contactRepoMock) Create(ctx context.Context, userID uuid.UUID, c *domain.Contact) (*domain.Contact, error) {
	if mock.CreateFunc == nil {
		panic("contactRepoMock.CreateFunc: method is nil but contactRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		C      *domain.Contact
	}{Ctx: ctx, UserID: userID, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, c)
}

func (mock *contactRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	C      *domain.Contact
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contactRepoMock) GetByID(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error) {
	if mock.GetByIDFunc == nil {
		panic("contactRepoMock.GetByIDFunc: method is nil but contactRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ContactID uuid.UUID
	}{Ctx: ctx, UserID: userID, ContactID: contactID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, contactID)
}

func (mock *contactRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ContactID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *contactRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error) {
	if mock.ListByUserFunc == nil {
		panic("contactRepoMock.ListByUserFunc: method is nil but contactRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *contactRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *contactRepoMock) Update(ctx context.Context, userID, contactID uuid.UUID, upd domain.ContactUpdate) (*domain.Contact, error) {
	if mock.UpdateFunc == nil {
		panic("contactRepoMock.UpdateFunc: method is nil but contactRepo.Update was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ContactID uuid.UUID
		Upd       domain.ContactUpdate
	}{Ctx: ctx, UserID: userID, ContactID: contactID, Upd: upd}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, contactID, upd)
}

func (mock *contactRepoMock) UpdateCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ContactID uuid.UUID
	Upd       domain.ContactUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *contactRepoMock) Delete(ctx context.Context, userID, contactID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("contactRepoMock.DeleteFunc: method is nil but contactRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ContactID uuid.UUID
	}{Ctx: ctx, UserID: userID, ContactID: contactID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, contactID)
}

func (mock *contactRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ContactID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *contactRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("contactRepoMock.CountByUserFunc: method is nil but contactRepo.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *contactRepoMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountByUser.RLock()
	calls := mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}
