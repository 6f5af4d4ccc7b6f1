package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
	"github.com/heartmarshall/manuver-backend/internal/service/riwayat"
)

var _ riwayatService = &riwayatServiceMock{}

type riwayatServiceMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Record, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.RecordWithItems, error)
	CreateFunc func(ctx context.Context, input riwayat.SaveRecordInput) (*domain.RecordWithItems, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, input riwayat.SaveRecordInput) (*domain.RecordWithItems, error)
	ReportFunc func(ctx context.Context, id uuid.UUID) (string, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx   context.Context
			Input riwayat.SaveRecordInput
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input riwayat.SaveRecordInput
		}
		Report []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockReport sync.RWMutex
}

func (mock *riwayatServiceMock) List(ctx context.Context) ([]domain.Record, error) {
	if mock.ListFunc == nil {
		panic("riwayatServiceMock.ListFunc: method is nil but riwayatService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *riwayatServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *riwayatServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.RecordWithItems, error) {
	if mock.GetFunc == nil {
		panic("riwayatServiceMock.GetFunc: method is nil but riwayatService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *riwayatServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *riwayatServiceMock) Create(ctx context.Context, input riwayat.SaveRecordInput) (*domain.RecordWithItems, error) {
	if mock.CreateFunc == nil {
		panic("riwayatServiceMock.CreateFunc: method is nil but riwayatService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input riwayat.SaveRecordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *riwayatServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input riwayat.SaveRecordInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *riwayatServiceMock) Update(ctx context.Context, id uuid.UUID, input riwayat.SaveRecordInput) (*domain.RecordWithItems, error) {
	if mock.UpdateFunc == nil {
		panic("riwayatServiceMock.UpdateFunc: method is nil but riwayatService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input riwayat.SaveRecordInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *riwayatServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input riwayat.SaveRecordInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *riwayatServiceMock) Report(ctx context.Context, id uuid.UUID) (string, error) {
	if mock.ReportFunc == nil {
		panic("riwayatServiceMock.ReportFunc: method is nil but riwayatService.Report was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockReport.Lock()
	mock.calls.Report = append(mock.calls.Report, callInfo)
	mock.lockReport.Unlock()
	return mock.ReportFunc(ctx, id)
}

func (mock *riwayatServiceMock) ReportCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockReport.RLock()
	calls := mock.calls.Report
	mock.lockReport.RUnlock()
	return calls
}
