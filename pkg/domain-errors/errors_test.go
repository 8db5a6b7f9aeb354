package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	base := New(CodeConflict, "already pending")
	wrapped := Wrap(base, CodeInternal, "submit failed")

	assert.True(t, HasCode(wrapped, CodeInternal))
	assert.True(t, HasCode(wrapped, CodeConflict))
	assert.False(t, HasCode(wrapped, CodeNotFound))
	assert.False(t, HasCode(errors.New("plain"), CodeInternal))
}

func TestIsChecksOutermostCode(t *testing.T) {
	inner := New(CodeNotFound, "request not found")
	outer := Wrap(inner, CodeInconsistentState, "placeholder missing")

	assert.True(t, Is(outer, CodeInconsistentState))
	assert.False(t, Is(outer, CodeNotFound))
	assert.True(t, Is(fmt.Errorf("ctx: %w", inner), CodeNotFound))
}

func TestCodeOfAndMessageOf(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	assert.Equal(t, "internal error", MessageOf(errors.New("boom")))

	err := New(CodeValidation, "Head is tilted in the image.")
	assert.Equal(t, CodeValidation, CodeOf(err))
	assert.Equal(t, "Head is tilted in the image.", MessageOf(err))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, CodeInternal, "noop"))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeValidation:        http.StatusBadRequest,
		CodeConflict:          http.StatusConflict,
		CodeNotFound:          http.StatusNotFound,
		CodeForbidden:         http.StatusForbidden,
		CodeInconsistentState: http.StatusInternalServerError,
		Code("unknown"):       http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), string(code))
	}
}
