// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"github.com/mouse-blink/bitrot/internal/controller"
	m "github.com/mouse-blink/bitrot/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockUI is a mock of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a mock and asserts its expectations on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mck := &MockUI{}
	mck.Mock.Test(t)

	t.Cleanup(func() { mck.AssertExpectations(t) })

	return mck
}

func (_m *MockUI) Start() error {
	ret := _m.Called()
	return ret.Error(0)
}

func (_m *MockUI) Close() {
	_m.Called()
}

func (_m *MockUI) DisplayMenu(entries []controller.MenuEntry) {
	_m.Called(entries)
}

func (_m *MockUI) DisplayBoard(board m.Board) {
	_m.Called(board)
}

func (_m *MockUI) DisplayNotice(msg string) {
	_m.Called(msg)
}

func (_m *MockUI) DisplayVictory(mistakes int) {
	_m.Called(mistakes)
}

func (_m *MockUI) Prompt(label string) (string, error) {
	ret := _m.Called(label)
	return ret.String(0), ret.Error(1)
}
