// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"github.com/mouse-blink/bitrot/internal/domain"
	m "github.com/mouse-blink/bitrot/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockGame is a mock of domain.Game.
type MockGame struct {
	mock.Mock
}

// NewMockGame creates a mock and asserts its expectations on cleanup.
func NewMockGame(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGame {
	mck := &MockGame{}
	mck.Mock.Test(t)

	t.Cleanup(func() { mck.AssertExpectations(t) })

	return mck
}

func (_m *MockGame) Run(args domain.RunArgs) error {
	ret := _m.Called(args)
	return ret.Error(0)
}

func (_m *MockGame) Inspect(path m.Path) error {
	ret := _m.Called(path)
	return ret.Error(0)
}

func (_m *MockGame) History(limit int) error {
	ret := _m.Called(limit)
	return ret.Error(0)
}

func (_m *MockGame) Corrupt(args domain.CorruptArgs) error {
	ret := _m.Called(args)
	return ret.Error(0)
}
