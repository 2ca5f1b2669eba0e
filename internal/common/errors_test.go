package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("get seashell 7: %w", ErrorNotFound)
	assert.True(t, errors.Is(wrapped, ErrorNotFound))
	assert.False(t, errors.Is(wrapped, ErrorValidation))

	v := fmt.Errorf("%w: name is required", ErrorValidation)
	assert.True(t, errors.Is(v, ErrorValidation))
	assert.Equal(t, "validation error: name is required", v.Error())
}

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{ErrorNotFound, ErrorInternal, ErrorValidation, ErrMissingDSN}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
			}
		}
	}
}
