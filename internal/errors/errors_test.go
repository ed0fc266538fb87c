package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestE_Error(t *testing.T) {
	assert.Equal(t, "invalid_argument: bad size", New(InvalidArgument, "bad size").Error())
	assert.Equal(t, "output: write file: boom",
		Wrap(Output, "write file", stderrors.New("boom")).Error())
	assert.Equal(t, "input: sheet \"x\" is empty", Newf(Input, "sheet %q is empty", "x").Error())
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("generate: %w", New(InvalidArgument, "no columns"))
	assert.Equal(t, InvalidArgument, KindOf(err))
	assert.True(t, Is(err, InvalidArgument))
	assert.False(t, Is(err, Output))
	assert.False(t, Is(nil, InvalidArgument))
	assert.Equal(t, Kind(""), KindOf(stderrors.New("plain")))
}

func TestWrap_Unwrap(t *testing.T) {
	err := Wrap(Input, "open spreadsheet", fs.ErrNotExist)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
