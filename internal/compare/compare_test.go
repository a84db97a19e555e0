package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	ids, err := Toggle(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids)

	ids, err = Toggle(ids, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, ids)

	ids, err = Toggle(ids, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, ids)
}

func TestToggleLimit(t *testing.T) {
	full := []int{1, 2, 3}
	ids, err := Toggle(full, 4)
	assert.ErrorIs(t, err, ErrCompareLimit)
	assert.Equal(t, full, ids)

	// Removing is still allowed when full.
	ids, err = Toggle(full, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)
}

func TestToggleUnknownLawyer(t *testing.T) {
	_, err := Toggle([]int{1}, 404)
	assert.ErrorIs(t, err, ErrUnknownLawyer)
}

func TestToggleDoesNotAliasInput(t *testing.T) {
	in := make([]int, 1, 4)
	in[0] = 1
	out, err := Toggle(in, 2)
	require.NoError(t, err)
	out[0] = 99
	assert.Equal(t, 1, in[0])
}

func TestColumns(t *testing.T) {
	cols := Columns([]int{7, 999, 7, 2})
	require.Len(t, cols, 2)

	assert.Equal(t, "Karan Malhotra", cols[0].Name)
	assert.Equal(t, "KM", cols[0].Initials)
	assert.Equal(t, "Excellent", cols[0].RatingLabel)
	assert.Equal(t, []string{"Corporate Law", "Intellectual Property"}, cols[0].Specializations)
	assert.Equal(t, "/lawyer/7", cols[0].ProfilePath)
	assert.Equal(t, "/book/7", cols[0].BookPath)
	assert.Equal(t, 2, cols[1].ID)
}

func TestColumnsCapsAtMax(t *testing.T) {
	assert.Len(t, Columns([]int{1, 2, 3, 4, 5}), MaxLawyers)
}
