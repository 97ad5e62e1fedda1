package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/wadirect-backend/internal/domain"
	"github.com/heartmarshall/wadirect-backend/internal/service/contact"
)

var _ contactService = &contactServiceMock{}

type contactServiceMock struct {
	SaveFunc         func(ctx context.Context, input contact.SaveInput) (*domain.Contact, error)
	ListHistoryFunc  func(ctx context.Context, input contact.HistoryInput) ([]*domain.Contact, error)
	UpdateFunc       func(ctx context.Context, input contact.UpdateInput) (*domain.Contact, error)
	DeleteFunc       func(ctx context.Context, input contact.DeleteInput) error
	FormatNumberFunc func(ctx context.Context, input contact.FormatInput) (*contact.FormatResult, error)

	calls struct {
		Save []struct {
			Ctx   context.Context
			Input contact.SaveInput
		}
		ListHistory []struct {
			Ctx   context.Context
			Input contact.HistoryInput
		}
		Update []struct {
			Ctx   context.Context
			Input contact.UpdateInput
		}
		Delete []struct {
			Ctx   context.Context
			Input contact.DeleteInput
		}
		FormatNumber []struct {
			Ctx   context.Context
			Input contact.FormatInput
		}
	}
	lockSave         sync.RWMutex
	lockListHistory  sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockFormatNumber sync.RWMutex
}

func (mock *contactServiceMock) Save(ctx context.Context, input contact.SaveInput) (*domain.Contact, error) {
	if mock.SaveFunc == nil {
		panic("contactServiceMock.SaveFunc: method is nil but contactService.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contact.SaveInput
	}{Ctx: ctx, Input: input}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, input)
}

func (mock *contactServiceMock) SaveCalls() []struct {
	Ctx   context.Context
	Input contact.SaveInput
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *contactServiceMock) ListHistory(ctx context.Context, input contact.HistoryInput) ([]*domain.Contact, error) {
	if mock.ListHistoryFunc == nil {
		panic("contactServiceMock.ListHistoryFunc: method is nil but contactService.ListHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contact.HistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockListHistory.Lock()
	mock.calls.ListHistory = append(mock.calls.ListHistory, callInfo)
	mock.lockListHistory.Unlock()
	return mock.ListHistoryFunc(ctx, input)
}

func (mock *contactServiceMock) ListHistoryCalls() []struct {
	Ctx   context.Context
	Input contact.HistoryInput
} {
	mock.lockListHistory.RLock()
	calls := mock.calls.ListHistory
	mock.lockListHistory.RUnlock()
	return calls
}

func (mock *contactServiceMock) Update(ctx context.Context, input contact.UpdateInput) (*domain.Contact, error) {
	if mock.UpdateFunc == nil {
		panic("contactServiceMock.UpdateFunc: method is nil but contactService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contact.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *contactServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input contact.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *contactServiceMock) Delete(ctx context.Context, input contact.DeleteInput) error {
	if mock.DeleteFunc == nil {
		panic("contactServiceMock.DeleteFunc: method is nil but contactService.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contact.DeleteInput
	}{Ctx: ctx, Input: input}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, input)
}

func (mock *contactServiceMock) DeleteCalls() []struct {
	Ctx   context.Context
	Input contact.DeleteInput
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *contactServiceMock) FormatNumber(ctx context.Context, input contact.FormatInput) (*contact.FormatResult, error) {
	if mock.FormatNumberFunc == nil {
		panic("contactServiceMock.FormatNumberFunc: method is nil but contactService.FormatNumber was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contact.FormatInput
	}{Ctx: ctx, Input: input}
	mock.lockFormatNumber.Lock()
	mock.calls.FormatNumber = append(mock.calls.FormatNumber, callInfo)
	mock.lockFormatNumber.Unlock()
	return mock.FormatNumberFunc(ctx, input)
}

func (mock *contactServiceMock) FormatNumberCalls() []struct {
	Ctx   context.Context
	Input contact.FormatInput
} {
	mock.lockFormatNumber.RLock()
	calls := mock.calls.FormatNumber
	mock.lockFormatNumber.RUnlock()
	return calls
}
