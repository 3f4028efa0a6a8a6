// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"os"

	m "github.com/mouse-blink/bitrot/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockSourceFSAdapter is a mock of adapter.SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

// NewMockSourceFSAdapter creates a mock and asserts its expectations on cleanup.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	mck := &MockSourceFSAdapter{}
	mck.Mock.Test(t)

	t.Cleanup(func() { mck.AssertExpectations(t) })

	return mck
}

func (_m *MockSourceFSAdapter) ReadText(path m.Path) ([]byte, error) {
	ret := _m.Called(path)

	var data []byte
	if v := ret.Get(0); v != nil {
		data = v.([]byte)
	}

	return data, ret.Error(1)
}

func (_m *MockSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	ret := _m.Called(path)

	var info os.FileInfo
	if v := ret.Get(0); v != nil {
		info = v.(os.FileInfo)
	}

	return info, ret.Error(1)
}

func (_m *MockSourceFSAdapter) ExpandPath(path m.Path) (m.Path, error) {
	ret := _m.Called(path)
	return ret.Get(0).(m.Path), ret.Error(1)
}
