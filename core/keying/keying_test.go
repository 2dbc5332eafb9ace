package keying

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unit struct {
	Title string  `json:"name"`
	Code  *string `json:"code"`
}

func strPtr(s string) *string { return &s }

func TestAssign_Configuration(t *testing.T) {
	keyFunc := func(u unit) (string, bool) { return u.Title, true }

	tests := []struct {
		name string
		opts Options[unit]
	}{
		{"Neither", Options[unit]{}},
		{"Both", Options[unit]{Field: "name", KeyFunc: keyFunc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assign([]unit{{Title: "a"}}, tt.opts)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestAssign_ByField(t *testing.T) {
	units := []unit{{Title: "math"}, {Title: "physics"}, {Title: "history"}}

	idx, err := Assign(units, Options[unit]{Field: "name"})
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())

	pk, ok := idx.Get("physics")
	require.True(t, ok)
	assert.Equal(t, 1, pk.ID)
	assert.Equal(t, "physics", pk.Entity.Title)

	// Go field name works as well as the json tag
	idx, err = Assign(units, Options[unit]{Field: "Title"})
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())
}

func TestAssign_ValuesKeepOrder(t *testing.T) {
	units := []unit{{Title: "c"}, {Title: "a"}, {Title: "b"}}

	idx, err := Assign(units, Options[unit]{Field: "name"})
	require.NoError(t, err)

	values := idx.Values()
	require.Len(t, values, 3)
	for i, pk := range values {
		assert.Equal(t, i, pk.ID)
		assert.Equal(t, units[i].Title, pk.Key)
	}
}

func TestAssign_MissingKey(t *testing.T) {
	units := []unit{{Title: "a", Code: strPtr("A")}, {Title: "b"}}

	_, err := Assign(units, Options[unit]{Field: "code"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingKey)

	var missing *MissingKeyError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 1, missing.Position)
	assert.Equal(t, "code", missing.Field)

	t.Run("UnknownField", func(t *testing.T) {
		_, err := Assign(units, Options[unit]{Field: "nope"})
		assert.ErrorIs(t, err, ErrMissingKey)
	})

	t.Run("KeyFunc", func(t *testing.T) {
		_, err := Assign(units, Options[unit]{KeyFunc: func(u unit) (string, bool) { return "", false }})
		assert.ErrorIs(t, err, ErrMissingKey)
	})
}

func TestAssign_SkipMissing(t *testing.T) {
	units := []unit{{Title: "a"}, {Title: "b", Code: strPtr("B")}, {Title: "c"}, {Title: "d", Code: strPtr("D")}}

	idx, err := Assign(units, Options[unit]{Field: "code", SkipMissing: true})
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())

	values := idx.Values()
	require.Len(t, values, 2)
	assert.Equal(t, "B", values[0].Key)
	assert.Equal(t, 0, values[0].ID, "skipped entities take no id")
	assert.Equal(t, "D", values[1].Key)
	assert.Equal(t, 1, values[1].ID)
}

func TestAssign_DuplicateKey(t *testing.T) {
	units := []unit{{Title: "a"}, {Title: "b"}, {Title: "a"}}

	_, err := Assign(units, Options[unit]{Field: "name"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "a", dup.Key)
	assert.Equal(t, 0, dup.ExistingID)
	assert.Equal(t, 2, dup.Position)
}

func TestAssign_Maps(t *testing.T) {
	rows := []map[string]any{
		{"name": "x"},
		{"name": 42},
		{"other": "y"},
	}

	_, err := Assign(rows, Options[map[string]any]{Field: "name"})
	assert.ErrorIs(t, err, ErrMissingKey)

	idx, err := Assign(rows, Options[map[string]any]{Field: "name", SkipMissing: true})
	require.NoError(t, err)
	pk, ok := idx.Get("42")
	require.True(t, ok)
	assert.Equal(t, 1, pk.ID)
}

func TestIndex_Replace(t *testing.T) {
	idx, err := Assign([]unit{{Title: "a"}}, Options[unit]{Field: "name"})
	require.NoError(t, err)

	assert.True(t, idx.Replace("a", unit{Title: "a", Code: strPtr("A")}))
	assert.False(t, idx.Replace("missing", unit{}))

	pk, _ := idx.Get("a")
	assert.Equal(t, 0, pk.ID)
	require.NotNil(t, pk.Entity.Code)
	assert.Equal(t, "A", *pk.Entity.Code)
}
