package search

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

var _ itemSource = &itemSourceMock{}

type itemSourceMock struct {
	ItemsByRecordIDsFunc func(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID][]domain.ActionItem, error)

	calls struct {
		ItemsByRecordIDs []struct {
			Ctx       context.Context
			RecordIDs []uuid.UUID
		}
	}
	lockItemsByRecordIDs sync.RWMutex
}

func (mock *itemSourceMock) ItemsByRecordIDs(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID][]domain.ActionItem, error) {
	if mock.ItemsByRecordIDsFunc == nil {
		panic("itemSourceMock.ItemsByRecordIDsFunc: method is nil but itemSource.ItemsByRecordIDs was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RecordIDs []uuid.UUID
	}{Ctx: ctx, RecordIDs: recordIDs}
	mock.lockItemsByRecordIDs.Lock()
	mock.calls.ItemsByRecordIDs = append(mock.calls.ItemsByRecordIDs, callInfo)
	mock.lockItemsByRecordIDs.Unlock()
	return mock.ItemsByRecordIDsFunc(ctx, recordIDs)
}

func (mock *itemSourceMock) ItemsByRecordIDsCalls() []struct {
	Ctx       context.Context
	RecordIDs []uuid.UUID
} {
	mock.lockItemsByRecordIDs.RLock()
	calls := mock.calls.ItemsByRecordIDs
	mock.lockItemsByRecordIDs.RUnlock()
	return calls
}
