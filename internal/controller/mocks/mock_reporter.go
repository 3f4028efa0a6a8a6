package mocks

import (
	m "github.com/mouse-blink/bitrot/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockReporter is a mock of controller.Reporter.
type MockReporter struct {
	mock.Mock
}

// NewMockReporter creates a mock and asserts its expectations on cleanup.
func NewMockReporter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReporter {
	mck := &MockReporter{}
	mck.Mock.Test(t)

	t.Cleanup(func() { mck.AssertExpectations(t) })

	return mck
}

func (_m *MockReporter) DisplaySession(path m.Path, session *m.Session, progress m.Progress) error {
	ret := _m.Called(path, session, progress)
	return ret.Error(0)
}

func (_m *MockReporter) DisplayHistory(records []m.Record) error {
	ret := _m.Called(records)
	return ret.Error(0)
}

func (_m *MockReporter) DisplayText(text []byte) error {
	ret := _m.Called(text)
	return ret.Error(0)
}
