package riwayat

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	ListFunc             func(ctx context.Context) ([]domain.Record, error)
	ItemsByRecordIDsFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.ActionItem, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) (*domain.RecordWithItems, error)
	RestoreFunc          func(ctx context.Context, snapshot domain.RecordWithItems) (*domain.Record, error)
	ClearAllFunc         func(ctx context.Context, input ClearInput) ([]uuid.UUID, error)
	ResetCacheFunc       func()

	calls struct {
		List []struct {
			Ctx context.Context
		}
		ItemsByRecordIDs []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Restore []struct {
			Ctx      context.Context
			Snapshot domain.RecordWithItems
		}
		ClearAll []struct {
			Ctx   context.Context
			Input ClearInput
		}
		ResetCache []struct{}
	}
	lockList             sync.RWMutex
	lockItemsByRecordIDs sync.RWMutex
	lockDelete           sync.RWMutex
	lockRestore          sync.RWMutex
	lockClearAll         sync.RWMutex
	lockResetCache       sync.RWMutex
}

func (mock *sessionStoreMock) List(ctx context.Context) ([]domain.Record, error) {
	if mock.ListFunc == nil {
		panic("sessionStoreMock.ListFunc: method is nil but sessionStore.List was just called")
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

func (mock *sessionStoreMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *sessionStoreMock) ItemsByRecordIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.ActionItem, error) {
	if mock.ItemsByRecordIDsFunc == nil {
		panic("sessionStoreMock.ItemsByRecordIDsFunc: method is nil but sessionStore.ItemsByRecordIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockItemsByRecordIDs.Lock()
	mock.calls.ItemsByRecordIDs = append(mock.calls.ItemsByRecordIDs, callInfo)
	mock.lockItemsByRecordIDs.Unlock()
	return mock.ItemsByRecordIDsFunc(ctx, ids)
}

func (mock *sessionStoreMock) ItemsByRecordIDsCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockItemsByRecordIDs.RLock()
	calls := mock.calls.ItemsByRecordIDs
	mock.lockItemsByRecordIDs.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Delete(ctx context.Context, id uuid.UUID) (*domain.RecordWithItems, error) {
	if mock.DeleteFunc == nil {
		panic("sessionStoreMock.DeleteFunc: method is nil but sessionStore.Delete was just called")
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

func (mock *sessionStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Restore(ctx context.Context, snapshot domain.RecordWithItems) (*domain.Record, error) {
	if mock.RestoreFunc == nil {
		panic("sessionStoreMock.RestoreFunc: method is nil but sessionStore.Restore was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Snapshot domain.RecordWithItems
	}{
		Ctx:      ctx,
		Snapshot: snapshot,
	}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, snapshot)
}

func (mock *sessionStoreMock) RestoreCalls() []struct {
	Ctx      context.Context
	Snapshot domain.RecordWithItems
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *sessionStoreMock) ClearAll(ctx context.Context, input ClearInput) ([]uuid.UUID, error) {
	if mock.ClearAllFunc == nil {
		panic("sessionStoreMock.ClearAllFunc: method is nil but sessionStore.ClearAll was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ClearInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockClearAll.Lock()
	mock.calls.ClearAll = append(mock.calls.ClearAll, callInfo)
	mock.lockClearAll.Unlock()
	return mock.ClearAllFunc(ctx, input)
}

func (mock *sessionStoreMock) ClearAllCalls() []struct {
	Ctx   context.Context
	Input ClearInput
} {
	mock.lockClearAll.RLock()
	calls := mock.calls.ClearAll
	mock.lockClearAll.RUnlock()
	return calls
}

func (mock *sessionStoreMock) ResetCache() {
	if mock.ResetCacheFunc == nil {
		panic("sessionStoreMock.ResetCacheFunc: method is nil but sessionStore.ResetCache was just called")
	}
	callInfo := struct{}{}
	mock.lockResetCache.Lock()
	mock.calls.ResetCache = append(mock.calls.ResetCache, callInfo)
	mock.lockResetCache.Unlock()
	mock.ResetCacheFunc()
}

func (mock *sessionStoreMock) ResetCacheCalls() []struct{} {
	mock.lockResetCache.RLock()
	calls := mock.calls.ResetCache
	mock.lockResetCache.RUnlock()
	return calls
}
