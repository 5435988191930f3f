package errors

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

type EscrowAmountErrData struct {
	Input  uint64 `json:"input_amount"`
	Output uint64 `json:"output_amount"`
}

func (e *EscrowAmountErrData) Error() string {
	return fmt.Sprintf("escrow input amount %d does not equal escrow output amount %d", e.Input, e.Output)
}

func (e *EscrowAmountErrData) EncodeErrorData() []byte {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(e)
	if err != nil {
		return []byte{}
	}

	return data
}

func (e *EscrowAmountErrData) GetData(key string) interface{} {
	switch key {
	case "input_amount":
		return e.Input
	case "output_amount":
		return e.Output
	}

	return nil
}

func (e *EscrowAmountErrData) SetData(key string, value interface{}) {
	v, ok := value.(uint64)
	if !ok {
		return
	}

	switch key {
	case "input_amount":
		e.Input = v
	case "output_amount":
		e.Output = v
	}
}

func NewEscrowAmountMismatchError(input, output uint64) error {
	data := &EscrowAmountErrData{
		Input:  input,
		Output: output,
	}

	e := New(ERR_ESCROW_AMOUNT_MISMATCH, "escrow amount mismatch, input: %d, output: %d", input, output)
	e.data = data

	return e
}
