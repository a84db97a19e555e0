package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type booking struct {
	Date  string `validate:"omitempty,date"`
	Phone string `validate:"omitempty,phone"`
	Slot  string `validate:"omitempty,slot"`
	Role  string `validate:"omitempty,role"`
}

func failedTags(t *testing.T, v *Validator, b booking) map[string]string {
	t.Helper()
	err := v.Struct(b)
	if err == nil {
		return nil
	}
	out := map[string]string{}
	for _, fe := range v.ValidationErrors(err) {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func TestCustomTagsAccept(t *testing.T) {
	v := New()
	assert.Empty(t, failedTags(t, v, booking{
		Date:  "2026-03-12",
		Phone: "+91 98765-43210",
		Slot:  "10:00 - 11:00 AM",
		Role:  "lawyer",
	}))
}

func TestCustomTagsReject(t *testing.T) {
	v := New()
	got := failedTags(t, v, booking{
		Date:  "12/03/2026",
		Phone: "call me",
		Slot:  "10am",
		Role:  "admin",
	})
	assert.Equal(t, map[string]string{
		"Date":  "date",
		"Phone": "phone",
		"Slot":  "slot",
		"Role":  "role",
	}, got)
}

func TestValidationErrorsIgnoresOtherErrors(t *testing.T) {
	v := New()
	assert.Nil(t, v.ValidationErrors(nil))
	assert.Nil(t, v.ValidationErrors(errors.New("boom")))

	err := v.Struct(booking{Role: "root"})
	require.Error(t, err)
	assert.Len(t, v.ValidationErrors(err), 1)
}
