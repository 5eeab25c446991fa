package internalerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameterErrorWrapsMessage(t *testing.T) {
	err := ParameterError("bad length")
	assert.ErrorContains(t, err, "bad length")
	assert.ErrorContains(t, err, errParams)
}

func TestStateErrorWrapsMessage(t *testing.T) {
	err := StateError("scalar reused")
	assert.ErrorContains(t, err, "scalar reused")
	assert.ErrorContains(t, err, errState)
}

func TestNewErrorIsUnwrappable(t *testing.T) {
	inner := errors.New("inner")
	err := NewError("prefix", inner.Error())
	assert.ErrorContains(t, err, "prefix")
	assert.ErrorContains(t, err, "inner")
	assert.EqualError(t, errors.Unwrap(err), "inner")
}
