package pagekit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/pagekit"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pagekit.Errorf(pagekit.ENOTFOUND, "page %q not found", "test")

	assert.Equal(t, pagekit.ENOTFOUND, pagekit.ErrorCode(err))
	assert.Equal(t, "page \"test\" not found", pagekit.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagekit.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagekit.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("saving page: %w", pagekit.Errorf(pagekit.EINVALID, "bad section"))

	assert.Equal(t, pagekit.EINVALID, pagekit.ErrorCode(err))
	assert.Equal(t, "bad section", pagekit.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, pagekit.EINTERNAL, pagekit.ErrorCode(err))
	assert.Equal(t, "Internal error.", pagekit.ErrorMessage(err))
}
