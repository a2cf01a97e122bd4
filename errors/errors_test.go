package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := New(CodeFileNotFound, "/books/missing.pdf")
	assert.Equal(t, "[FILE_NOT_FOUND] /books/missing.pdf", err.Error())

	wrapped := Wrap(CodeDatabase, "insert book", stderrors.New("disk I/O error"))
	assert.Equal(t, "[DATABASE] insert book: disk I/O error", wrapped.Error())
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := stderrors.New("disk I/O error")
	err := Wrap(CodeDatabase, "insert book", cause)

	assert.ErrorIs(t, err, cause)
}

func TestIs(t *testing.T) {
	err := New(CodeUnsupportedFormat, ".mobi")

	assert.True(t, Is(err, CodeUnsupportedFormat))
	assert.False(t, Is(err, CodeDatabase))
	assert.False(t, Is(stderrors.New("plain"), CodeDatabase))
}

func TestIs_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("add book: %w", New(CodeParse, "bad container"))

	assert.True(t, Is(err, CodeParse))
}

func TestCodeOf(t *testing.T) {
	code, ok := CodeOf(New(CodeIO, "short read"))
	assert.True(t, ok)
	assert.Equal(t, CodeIO, code)

	_, ok = CodeOf(stderrors.New("plain"))
	assert.False(t, ok)
}
