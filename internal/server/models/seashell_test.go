package models

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/seashells/internal/common"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSeashellCreate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      SeashellCreate
		wantErr bool
	}{
		{name: "ok", in: SeashellCreate{Name: "Conch Shell", Species: "Strombus gigas"}},
		{name: "ok with description", in: SeashellCreate{Name: "Murex", Species: "Murex pecten", Description: strPtr("spiny")}},
		{name: "missing name", in: SeashellCreate{Species: "Unknown species"}, wantErr: true},
		{name: "blank name", in: SeashellCreate{Name: "   ", Species: "x"}, wantErr: true},
		{name: "missing species", in: SeashellCreate{Name: "Shell"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, common.ErrorValidation), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewSeashell(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	s := NewSeashell(SeashellCreate{Name: "Nautilus", Species: "Nautilus pompilius"}, now)

	assert.Zero(t, s.ID)
	assert.Equal(t, "Nautilus", s.Name)
	assert.Equal(t, "Nautilus pompilius", s.Species)
	assert.Nil(t, s.Description)
	assert.False(t, s.Deleted)
	assert.Equal(t, now, s.CreatedAt)
	assert.Equal(t, StateActive, s.State())
}

func TestSeashell_State(t *testing.T) {
	s := &Seashell{Deleted: true}
	assert.Equal(t, StateDeleted, s.State())
	assert.Equal(t, "deleted", s.State().String())
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "State(9)", State(9).String())
}
