package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/seashells/internal/common"
)

// OptionalString is a JSON string field that remembers whether the key was
// present at all and whether it was explicitly null.
type OptionalString struct {
	Set   bool
	Null  bool
	Value string
}

// Some returns a set, non-null value.
func Some(v string) OptionalString {
	return OptionalString{Set: true, Value: v}
}

// Null returns a set, null value.
func Null() OptionalString {
	return OptionalString{Set: true, Null: true}
}

// UnmarshalJSON is only invoked by encoding/json when the key is present.
func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Null = true
		o.Value = ""
		return nil
	}
	o.Null = false
	return json.Unmarshal(b, &o.Value)
}

// Ptr returns nil for a null value and a pointer to the value otherwise.
func (o OptionalString) Ptr() *string {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// SeashellUpdate is a partial update. Only fields whose Set flag is true are
// written; the rest keep their stored values.
type SeashellUpdate struct {
	Name        OptionalString `json:"name"`
	Species     OptionalString `json:"species"`
	Description OptionalString `json:"description"`
}

// Validate rejects clearing a required field.
func (u SeashellUpdate) Validate() error {
	if u.Name.Set && (u.Name.Null || strings.TrimSpace(u.Name.Value) == "") {
		return fmt.Errorf("%w: name must not be empty", common.ErrorValidation)
	}
	if u.Species.Set && (u.Species.Null || strings.TrimSpace(u.Species.Value) == "") {
		return fmt.Errorf("%w: species must not be empty", common.ErrorValidation)
	}
	return nil
}

// Empty reports whether the update carries no fields.
func (u SeashellUpdate) Empty() bool {
	return !u.Name.Set && !u.Species.Set && !u.Description.Set
}

// Apply overwrites the supplied fields of s. ID, Deleted and CreatedAt are
// never touched.
func (u SeashellUpdate) Apply(s *Seashell) {
	if u.Name.Set {
		s.Name = u.Name.Value
	}
	if u.Species.Set {
		s.Species = u.Species.Value
	}
	if u.Description.Set {
		s.Description = u.Description.Ptr()
	}
}
