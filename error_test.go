package provinv_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/provinv"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := provinv.Errorf(provinv.EFETCH, "HTTP %d for %s", 404, "https://example.com/p")

	assert.Equal(t, provinv.EFETCH, provinv.ErrorCode(err))
	assert.Equal(t, "HTTP 404 for https://example.com/p", provinv.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, provinv.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, provinv.EINTERNAL, provinv.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, provinv.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", provinv.ErrorMessage(errors.New("boom")))
}
