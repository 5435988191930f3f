package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscrowAmountErrData(t *testing.T) {
	err := NewEscrowAmountMismatchError(1000, 950)

	t.Run("code", func(t *testing.T) {
		assert.True(t, Is(err, ErrEscrowAmountMismatch))
		assert.True(t, IsPolicyError(err))
	})

	t.Run("as data", func(t *testing.T) {
		var data *EscrowAmountErrData
		require.True(t, AsData(err, &data))
		assert.Equal(t, uint64(1000), data.Input)
		assert.Equal(t, uint64(950), data.Output)
	})

	t.Run("get data", func(t *testing.T) {
		var tErr *Error
		require.True(t, As(err, &tErr))
		assert.Equal(t, uint64(1000), tErr.GetData("input_amount"))
		assert.Equal(t, uint64(950), tErr.GetData("output_amount"))
		assert.Nil(t, tErr.GetData("nope"))
	})

	t.Run("set data", func(t *testing.T) {
		var data EscrowAmountErrData

		data.SetData("input_amount", uint64(7))
		data.SetData("output_amount", "ignored")
		assert.Equal(t, uint64(7), data.Input)
		assert.Equal(t, uint64(0), data.Output)
	})

	t.Run("encode", func(t *testing.T) {
		data := &EscrowAmountErrData{Input: 1, Output: 2}
		assert.JSONEq(t, `{"input_amount":1,"output_amount":2}`, string(data.EncodeErrorData()))
	})
}

func TestErrData(t *testing.T) {
	e := New(ERR_MISSING_OUTPUTS, "missing")
	e.SetData("missing", 2)
	e.SetData("a", "b")

	assert.Equal(t, " a=b missing=2", e.Data().Error())
	assert.JSONEq(t, `{"a":"b","missing":2}`, string(e.Data().EncodeErrorData()))
	assert.Contains(t, e.Error(), "MISSING_OUTPUTS")
}
