package trackergen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectMaskType(t *testing.T) {
	cases := []struct {
		count int
		name  string
	}{
		{0, "uint8"},
		{1, "uint8"},
		{8, "uint8"},
		{9, "uint16"},
		{16, "uint16"},
		{17, "uint32"},
		{32, "uint32"},
		{33, "uint64"},
		{64, "uint64"},
	}

	for _, c := range cases {
		mask, err := selectMaskType(c.count)
		require.NoError(t, err)
		assert.Equal(t, c.name, mask.name, "count=%d", c.count)
		assert.False(t, mask.u128, "count=%d", c.count)
		assert.Equal(t, c.name, mask.typeName())
	}
}

func TestSelectMaskType_U128(t *testing.T) {
	for _, count := range []int{65, 100, 128} {
		mask, err := selectMaskType(count)
		require.NoError(t, err)
		assert.True(t, mask.u128, "count=%d", count)
		assert.Equal(t, "track.U128", mask.typeName())
		assert.Equal(t, 128, mask.bits)
	}
}

func TestSelectMaskType_Overflow(t *testing.T) {
	_, err := selectMaskType(129)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "128")
}

func TestMaskType_Exprs(t *testing.T) {
	native, err := selectMaskType(3)
	require.NoError(t, err)
	assert.Equal(t, "u.tracker |= UserMaskName", native.markStmt("u", "UserMaskName"))
	assert.Equal(t, "u.tracker&UserMaskName != 0", native.changedExpr("u", "UserMaskName"))
	assert.Equal(t, "u.tracker != 0", native.anyChangedExpr("u"))
	assert.Equal(t, "u.tracker = 0", native.resetStmt("u"))

	wide, err := selectMaskType(100)
	require.NoError(t, err)
	assert.Equal(t, "u.tracker = u.tracker.Or(UserMaskName)", wide.markStmt("u", "UserMaskName"))
	assert.Equal(t, "!u.tracker.And(UserMaskName).IsZero()", wide.changedExpr("u", "UserMaskName"))
	assert.Equal(t, "!u.tracker.IsZero()", wide.anyChangedExpr("u"))
	assert.Equal(t, "u.tracker = track.U128{}", wide.resetStmt("u"))
}
