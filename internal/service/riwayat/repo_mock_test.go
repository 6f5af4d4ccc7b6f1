package riwayat

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	ListFunc             func(ctx context.Context, scope domain.Scope) ([]domain.Record, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	CreateFunc           func(ctx context.Context, rec domain.Record) (*domain.Record, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, h domain.RecordHeader) (*domain.Record, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	DeleteManyFunc       func(ctx context.Context, ids []uuid.UUID) (int64, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Scope domain.Scope
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			Rec domain.Record
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			H   domain.RecordHeader
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteMany []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
	}
	lockList             sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockDeleteMany       sync.RWMutex
}

func (mock *recordRepoMock) List(ctx context.Context, scope domain.Scope) ([]domain.Record, error) {
	if mock.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but recordRepo.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.Scope
	}{
		Ctx:   ctx,
		Scope: scope,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, scope)
}

func (mock *recordRepoMock) ListCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *recordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	if mock.GetByIDFunc == nil {
		panic("recordRepoMock.GetByIDFunc: method is nil but recordRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *recordRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *recordRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("recordRepoMock.GetByIDForUpdateFunc: method is nil but recordRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *recordRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *recordRepoMock) Create(ctx context.Context, rec domain.Record) (*domain.Record, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.Record
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec domain.Record
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recordRepoMock) Update(ctx context.Context, id uuid.UUID, h domain.RecordHeader) (*domain.Record, error) {
	if mock.UpdateFunc == nil {
		panic("recordRepoMock.UpdateFunc: method is nil but recordRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		H   domain.RecordHeader
	}{
		Ctx: ctx,
		ID:  id,
		H:   h,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, h)
}

func (mock *recordRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	H   domain.RecordHeader
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *recordRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("recordRepoMock.DeleteFunc: method is nil but recordRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *recordRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *recordRepoMock) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if mock.DeleteManyFunc == nil {
		panic("recordRepoMock.DeleteManyFunc: method is nil but recordRepo.DeleteMany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockDeleteMany.Lock()
	mock.calls.DeleteMany = append(mock.calls.DeleteMany, callInfo)
	mock.lockDeleteMany.Unlock()
	return mock.DeleteManyFunc(ctx, ids)
}

func (mock *recordRepoMock) DeleteManyCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockDeleteMany.RLock()
	calls := mock.calls.DeleteMany
	mock.lockDeleteMany.RUnlock()
	return calls
}

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	ListByRecordIDFunc   func(ctx context.Context, recordID uuid.UUID) ([]domain.ActionItem, error)
	ListByRecordIDsFunc  func(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID][]domain.ActionItem, error)
	InsertBatchFunc      func(ctx context.Context, recordID uuid.UUID, items []domain.ActionItem) (int, error)
	DeleteByRecordIDFunc func(ctx context.Context, recordID uuid.UUID) (int64, error)

	calls struct {
		ListByRecordID []struct {
			Ctx      context.Context
			RecordID uuid.UUID
		}
		ListByRecordIDs []struct {
			Ctx       context.Context
			RecordIDs []uuid.UUID
		}
		InsertBatch []struct {
			Ctx      context.Context
			RecordID uuid.UUID
			Items    []domain.ActionItem
		}
		DeleteByRecordID []struct {
			Ctx      context.Context
			RecordID uuid.UUID
		}
	}
	lockListByRecordID   sync.RWMutex
	lockListByRecordIDs  sync.RWMutex
	lockInsertBatch      sync.RWMutex
	lockDeleteByRecordID sync.RWMutex
}

func (mock *itemRepoMock) ListByRecordID(ctx context.Context, recordID uuid.UUID) ([]domain.ActionItem, error) {
	if mock.ListByRecordIDFunc == nil {
		panic("itemRepoMock.ListByRecordIDFunc: method is nil but itemRepo.ListByRecordID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID uuid.UUID
	}{
		Ctx:      ctx,
		RecordID: recordID,
	}
	mock.lockListByRecordID.Lock()
	mock.calls.ListByRecordID = append(mock.calls.ListByRecordID, callInfo)
	mock.lockListByRecordID.Unlock()
	return mock.ListByRecordIDFunc(ctx, recordID)
}

func (mock *itemRepoMock) ListByRecordIDCalls() []struct {
	Ctx      context.Context
	RecordID uuid.UUID
} {
	mock.lockListByRecordID.RLock()
	calls := mock.calls.ListByRecordID
	mock.lockListByRecordID.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListByRecordIDs(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID][]domain.ActionItem, error) {
	if mock.ListByRecordIDsFunc == nil {
		panic("itemRepoMock.ListByRecordIDsFunc: method is nil but itemRepo.ListByRecordIDs was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RecordIDs []uuid.UUID
	}{
		Ctx:       ctx,
		RecordIDs: recordIDs,
	}
	mock.lockListByRecordIDs.Lock()
	mock.calls.ListByRecordIDs = append(mock.calls.ListByRecordIDs, callInfo)
	mock.lockListByRecordIDs.Unlock()
	return mock.ListByRecordIDsFunc(ctx, recordIDs)
}

func (mock *itemRepoMock) ListByRecordIDsCalls() []struct {
	Ctx       context.Context
	RecordIDs []uuid.UUID
} {
	mock.lockListByRecordIDs.RLock()
	calls := mock.calls.ListByRecordIDs
	mock.lockListByRecordIDs.RUnlock()
	return calls
}

func (mock *itemRepoMock) InsertBatch(ctx context.Context, recordID uuid.UUID, items []domain.ActionItem) (int, error) {
	if mock.InsertBatchFunc == nil {
		panic("itemRepoMock.InsertBatchFunc: method is nil but itemRepo.InsertBatch was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID uuid.UUID
		Items    []domain.ActionItem
	}{
		Ctx:      ctx,
		RecordID: recordID,
		Items:    items,
	}
	mock.lockInsertBatch.Lock()
	mock.calls.InsertBatch = append(mock.calls.InsertBatch, callInfo)
	mock.lockInsertBatch.Unlock()
	return mock.InsertBatchFunc(ctx, recordID, items)
}

func (mock *itemRepoMock) InsertBatchCalls() []struct {
	Ctx      context.Context
	RecordID uuid.UUID
	Items    []domain.ActionItem
} {
	mock.lockInsertBatch.RLock()
	calls := mock.calls.InsertBatch
	mock.lockInsertBatch.RUnlock()
	return calls
}

func (mock *itemRepoMock) DeleteByRecordID(ctx context.Context, recordID uuid.UUID) (int64, error) {
	if mock.DeleteByRecordIDFunc == nil {
		panic("itemRepoMock.DeleteByRecordIDFunc: method is nil but itemRepo.DeleteByRecordID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID uuid.UUID
	}{
		Ctx:      ctx,
		RecordID: recordID,
	}
	mock.lockDeleteByRecordID.Lock()
	mock.calls.DeleteByRecordID = append(mock.calls.DeleteByRecordID, callInfo)
	mock.lockDeleteByRecordID.Unlock()
	return mock.DeleteByRecordIDFunc(ctx, recordID)
}

func (mock *itemRepoMock) DeleteByRecordIDCalls() []struct {
	Ctx      context.Context
	RecordID uuid.UUID
} {
	mock.lockDeleteByRecordID.RLock()
	calls := mock.calls.DeleteByRecordID
	mock.lockDeleteByRecordID.RUnlock()
	return calls
}
