package mocks

import (
	m "github.com/mouse-blink/bitrot/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockSessionStore is a mock of adapter.SessionStore.
type MockSessionStore struct {
	mock.Mock
}

// NewMockSessionStore creates a mock and asserts its expectations on cleanup.
func NewMockSessionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionStore {
	mck := &MockSessionStore{}
	mck.Mock.Test(t)

	t.Cleanup(func() { mck.AssertExpectations(t) })

	return mck
}

func (_m *MockSessionStore) Save(path m.Path, session *m.Session) error {
	ret := _m.Called(path, session)
	return ret.Error(0)
}

func (_m *MockSessionStore) Load(path m.Path) (*m.Session, error) {
	ret := _m.Called(path)

	var session *m.Session
	if v := ret.Get(0); v != nil {
		session = v.(*m.Session)
	}

	return session, ret.Error(1)
}
