package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStoreRecord tests creation and update of Atoms
// TestStoreRecord 测试 Atom 的创建与更新
func TestStoreRecord(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())

	s.Record("app/testing", 20, 100)
	a, ok := s.Get("app/testing")
	require.True(t, ok)
	assert.Equal(t, int64(1), a.Samples)
	assert.Equal(t, int64(100), a.LastStart)

	s.Record("app/testing", 30, 200)
	assert.Equal(t, int64(2), a.Samples)
	assert.Equal(t, int64(50), a.Total)
	assert.Equal(t, int64(200), a.LastStart)
	assert.Equal(t, 25.0, a.FilteredAverage())
	assert.Equal(t, 1, s.Len())
}

// TestStoreRecordNoDedup tests that identical samples keep accumulating
// TestStoreRecordNoDedup 测试相同样本会持续累加
func TestStoreRecordNoDedup(t *testing.T) {
	s := NewStore()
	for i := 0; i < 3; i++ {
		s.Record("a/b", 10, 1)
	}
	a, _ := s.Get("a/b")
	assert.Equal(t, int64(3), a.Samples)
	assert.Equal(t, int64(30), a.Total)
}

// TestStoreTouch tests updating the most recent start time
// TestStoreTouch 测试更新最近开始时间
func TestStoreTouch(t *testing.T) {
	s := NewStore()
	s.Record("app/testing", 10, 0)

	s.Touch("app/testing", 1234567890)
	s.Touch("app/retesting", 1234567890)

	a, _ := s.Get("app/testing")
	assert.Equal(t, int64(1234567890), a.LastStart)
	_, ok := s.Get("app/retesting")
	assert.False(t, ok)
}

// TestStoreAtomsSorted tests deterministic ordering
// TestStoreAtomsSorted 测试确定性排序
func TestStoreAtomsSorted(t *testing.T) {
	s := NewStore()
	s.Record("sys-devel/gcc", 10, 0)
	s.Record("app-misc/foo", 10, 0)
	s.Record("dev-lang/rust", 10, 0)

	atoms := s.Atoms()
	require.Len(t, atoms, 3)
	assert.Equal(t, "app-misc/foo", atoms[0].CPN)
	assert.Equal(t, "dev-lang/rust", atoms[1].CPN)
	assert.Equal(t, "sys-devel/gcc", atoms[2].CPN)
}
