// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/wedplan/internal/platform/apperr"
	"github.com/taibuivan/wedplan/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Michael", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				err := v.Err()
				require.Error(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Numbers checks the integer rules used for ages, counts and ids.
*/
func TestValidator_Numbers(t *testing.T) {
	tests := []struct {
		name    string
		apply   func(v *validate.Validator)
		isValid bool
	}{
		{"non_negative_zero", func(v *validate.Validator) { v.NonNegative("age", 0) }, true},
		{"non_negative_negative", func(v *validate.Validator) { v.NonNegative("age", -1) }, false},
		{"id_positive", func(v *validate.Validator) { v.ID("groom_id", 1) }, true},
		{"id_zero", func(v *validate.Validator) { v.ID("groom_id", 0) }, false},
		{"min_equal", func(v *validate.Validator) { v.Min("count", 1, 1) }, true},
		{"min_below", func(v *validate.Validator) { v.Min("count", 0, 1) }, false},
		{"custom_passed", func(v *validate.Validator) { v.Custom("max_payment", false, "Too low") }, true},
		{"custom_failed", func(v *validate.Validator) { v.Custom("max_payment", true, "Too low") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			tt.apply(v)
			assert.Equal(t, !tt.isValid, v.Err() != nil)
		})
	}
}

/*
TestValidator_DateOrder checks that an inverted date range is rejected and an
equal one accepted.
*/
func TestValidator_DateOrder(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, (&validate.Validator{}).DateOrder("wedding_date", day, day).Err())
	assert.NoError(t, (&validate.Validator{}).DateOrder("wedding_date", day, day.AddDate(0, 0, 1)).Err())
	assert.Error(t, (&validate.Validator{}).DateOrder("wedding_date", day.AddDate(0, 0, 1), day).Err())
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "John").
		MaxLen("name", "John", 100).
		NonNegative("age", 30).
		Err()

	assert.NoError(t, err)
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain and the
console summary.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").           // Fails
		NonNegative("age", -3).         // Fails
		ID("organizer_id", 0).          // Fails
		MaxLen("location", "Paris", 3). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	assert.Len(t, ae.Details, 4)
	assert.Contains(t, ae.Message, "age: Must not be negative")
	assert.Contains(t, ae.Message, "name: This field is required")
}
