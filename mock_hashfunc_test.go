//go:build unit

package memhashmap

import (
	"go.uber.org/mock/gomock"
	"reflect"
)

// MockHashAlgorithm is a mock of the hashfunc.HashAlgorithm interface.
type MockHashAlgorithm struct {
	ctrl     *gomock.Controller
	recorder *MockHashAlgorithmMockRecorder
}

// MockHashAlgorithmMockRecorder is the mock recorder for MockHashAlgorithm.
type MockHashAlgorithmMockRecorder struct {
	mock *MockHashAlgorithm
}

// NewMockHashAlgorithm creates a new mock instance.
func NewMockHashAlgorithm(ctrl *gomock.Controller) *MockHashAlgorithm {
	mock := &MockHashAlgorithm{ctrl: ctrl}
	mock.recorder = &MockHashAlgorithmMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHashAlgorithm) EXPECT() *MockHashAlgorithmMockRecorder {
	return m.recorder
}

// GetTableSize mocks base method.
func (m *MockHashAlgorithm) GetTableSize() int64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTableSize")
	ret0, _ := ret[0].(int64)
	return ret0
}

// GetTableSize indicates an expected call of GetTableSize.
func (mr *MockHashAlgorithmMockRecorder) GetTableSize() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTableSize", reflect.TypeOf((*MockHashAlgorithm)(nil).GetTableSize))
}

// HashFunc1 mocks base method.
func (m *MockHashAlgorithm) HashFunc1(key []byte) int64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HashFunc1", key)
	ret0, _ := ret[0].(int64)
	return ret0
}

// HashFunc1 indicates an expected call of HashFunc1.
func (mr *MockHashAlgorithmMockRecorder) HashFunc1(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HashFunc1", reflect.TypeOf((*MockHashAlgorithm)(nil).HashFunc1), key)
}

// SetTableSize mocks base method.
func (m *MockHashAlgorithm) SetTableSize(tableSize int64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetTableSize", tableSize)
}

// SetTableSize indicates an expected call of SetTableSize.
func (mr *MockHashAlgorithmMockRecorder) SetTableSize(tableSize any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetTableSize", reflect.TypeOf((*MockHashAlgorithm)(nil).SetTableSize), tableSize)
}
