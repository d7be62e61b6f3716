package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidation(t *testing.T) {
	err := fmt.Errorf("create offer: %w", Validationf("title is required"))
	assert.True(t, IsValidation(err))
	assert.Equal(t, "create offer: title is required", err.Error())

	assert.False(t, IsValidation(ErrNotFound))
	assert.False(t, IsValidation(errors.New("boom")))
}
