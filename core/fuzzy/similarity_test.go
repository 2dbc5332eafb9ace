package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"BothEmpty", "", "", 1},
		{"Identical", "алгебра", "алгебра", 1},
		{"OneEmpty", "абв", "", 0},
		{"Suffix", "кошк", "кошка", 1 - 1.0/9},
		{"Swapped", "ab", "ba", 0.5},
		{"Prefix", "физика", "биофизика", 0.8},
		{"Ending", "физика", "физиком", 1 - 3.0/13},
		{"NoCommonRunes", "абв", "где", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 0.0001)
		})
	}
}

// Expected values are token_set_ratio / 100 as computed by rapidfuzz.
func TestTokenSet(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"Identical", "Алгебра", "Алгебра", 1},
		{"Subset", "Алгебра", "Алгебра и геометрия", 1},
		{"WordOrder", "математический анализ", "анализ математический", 1},
		{"DuplicateTokens", "fuzzy was a bear", "fuzzy fuzzy was a bear", 1},
		{"CaseSensitive", "АЛГЕБРА", "алгебра", 0},
		{"EmptyLeft", "", "Алгебра", 0},
		{"EmptyRight", "Алгебра", "", 0},
		{"BlankOnly", "   ", "Алгебра", 0},
		{"Swapped", "ab", "ba", 0.5},
		{"Prefix", "физика", "биофизика", 0.8},
		{"Ending", "физика", "физиком", 0.769231},
		{"SharedToken", "Линейная алгебра", "Линейная геометрия", 1 - 10.0/34},
		{"SharedTokenShortRest", "теория чисел", "теория вероятностей и чисел", 1},
		{"SharedTokenLongRest", "теория игр", "теория вероятностей", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TokenSet(tt.a, tt.b), 0.0001)
		})
	}
}

func TestTokenSet_Ordering(t *testing.T) {
	// A subject contained in a longer discipline name beats one sharing only a stem.
	assert.Greater(t, TokenSet("физика", "биофизика"), TokenSet("физика", "физиком"))

	unrelated := TokenSet("Алгебра", "История России")
	assert.Greater(t, unrelated, 0.0)
	assert.Less(t, unrelated, TokenSet("Линейная алгебра", "Линейная геометрия"))
}

func TestBest(t *testing.T) {
	assert.Equal(t, 0.0, Best("Алгебра", nil))
	assert.Equal(t, 1.0, Best("Алгебра", []string{"История", "Алгебра"}))
	assert.InDelta(t, 0.8, Best("физика", []string{"физиком", "биофизика"}), 0.0001)
}
