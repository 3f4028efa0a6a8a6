package mocks

import (
	m "github.com/mouse-blink/bitrot/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockHistoryStore is a mock of adapter.HistoryStore.
type MockHistoryStore struct {
	mock.Mock
}

// NewMockHistoryStore creates a mock and asserts its expectations on cleanup.
func NewMockHistoryStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHistoryStore {
	mck := &MockHistoryStore{}
	mck.Mock.Test(t)

	t.Cleanup(func() { mck.AssertExpectations(t) })

	return mck
}

func (_m *MockHistoryStore) Record(rec m.Record) (m.Record, error) {
	ret := _m.Called(rec)
	return ret.Get(0).(m.Record), ret.Error(1)
}

func (_m *MockHistoryStore) List(limit int) ([]m.Record, error) {
	ret := _m.Called(limit)

	var records []m.Record
	if v := ret.Get(0); v != nil {
		records = v.([]m.Record)
	}

	return records, ret.Error(1)
}

func (_m *MockHistoryStore) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}
