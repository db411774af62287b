package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	assert.Equal(t, "task not found: 42", NotFoundErrorf("task not found: %s", "42").Error())
	assert.Equal(t, "action is required", ValidationErrorf("action is required").Error())
	assert.Equal(t, "failed to list tasks: boom", StoreErrorf("failed to list tasks: %v", errors.New("boom")).Error())
}

func TestErrorsAs(t *testing.T) {
	var err error = StoreErrorf("down")

	var storeErr *StoreError
	assert.True(t, errors.As(err, &storeErr))

	var notFound *NotFoundError
	assert.False(t, errors.As(err, &notFound))
}
