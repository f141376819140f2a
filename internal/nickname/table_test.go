package nickname

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTableLowercasesKeys(t *testing.T) {
	table, err := NewTable(map[rune][]string{'Q': {"Quasar"}})
	require.NoError(t, err)

	got, ok := table.Lookup('q')
	require.True(t, ok)
	require.Equal(t, []string{"Quasar"}, got)

	_, ok = table.Lookup('Q')
	require.False(t, ok)
	require.Equal(t, 1, table.Len())
}

func TestNewTableRejectsEmptyCandidates(t *testing.T) {
	_, err := NewTable(map[rune][]string{'a': {}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no candidates")
}

func TestNewTableRejectsDuplicateAfterLowercase(t *testing.T) {
	_, err := NewTable(map[rune][]string{'a': {"x"}, 'A': {"y"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate entry")
}

func TestTableIsImmutable(t *testing.T) {
	source := []string{"One", "Two"}
	table := MustTable(map[rune][]string{'o': source})
	source[0] = "Changed"

	got, _ := table.Lookup('o')
	require.Equal(t, "One", got[0])

	got[1] = "Mutated"
	again, _ := table.Lookup('o')
	require.Equal(t, "Two", again[1])
}

func TestMustTablePanics(t *testing.T) {
	require.Panics(t, func() {
		MustTable(map[rune][]string{'a': nil})
	})
}
