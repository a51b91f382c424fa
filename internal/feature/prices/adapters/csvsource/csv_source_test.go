package csvsource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy_backend/internal/feature/prices/domain"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSource_ReadRows(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "Date,Price\n01/06/2020,10.5\n2020-06-02,11\n")

	rows, err := NewSource().ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "01/06/2020", rows[0].Date)
	assert.Equal(t, "10.5", rows[0].Price)
	assert.Equal(t, "2020-06-02", rows[1].Date)
}

func TestSource_ReadRows_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "wrong header", content: "Day,Close\n01/06/2020,10\n"},
		{name: "swapped columns", content: "Price,Date\n10,01/06/2020\n"},
		{name: "empty file", content: ""},
		{name: "short row", content: "Date,Price\n01/06/2020\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSource().ReadRows(writeFile(t, tt.content))
			assert.ErrorIs(t, err, domain.ErrDataFormat)
		})
	}
}

func TestSource_ReadRows_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewSource().ReadRows(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDataFormat)
}
