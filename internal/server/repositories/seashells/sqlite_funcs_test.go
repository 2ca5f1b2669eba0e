package seashells

import (
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasefold(t *testing.T) {
	tests := []struct {
		in   driver.Value
		want driver.Value
	}{
		{in: "ÉTOILE", want: "étoile"},
		{in: []byte("NACRÉ"), want: "nacré"},
		{in: nil, want: nil},
	}
	for _, tt := range tests {
		got, err := casefold(nil, []driver.Value{tt.in})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := casefold(nil, []driver.Value{int64(1)})
	assert.Error(t, err)
}
