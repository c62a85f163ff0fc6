package util

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	records, err := ReadCSV(strings.NewReader("a,b,c\n1,\"two, quoted\"\n3,4,5,6\n"))
	require.NoError(t, err)

	assert.Len(t, records, 3)
	assert.Equal(t, []string{"1", "two, quoted"}, records[1])
	assert.Len(t, records[2], 4)
}

func TestReadCSVBareQuotes(t *testing.T) {
	records, err := ReadCSV(strings.NewReader("name,notes\nDara,prefers \"Dara\" as name\n"))
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, []string{"Dara", `prefers "Dara" as name`}, records[1])
}

func TestReadCSVReaderError(t *testing.T) {
	_, err := ReadCSV(iotest.ErrReader(errors.New("disk gone")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestParseCSVToMap(t *testing.T) {
	tests := []struct {
		name    string
		records [][]string
		want    []map[string]string
	}{
		{
			name:    "empty",
			records: nil,
			want:    []map[string]string{},
		},
		{
			name:    "header only",
			records: [][]string{{"FirstName"}},
			want:    []map[string]string{},
		},
		{
			name:    "case insensitive header and missing cells",
			records: [][]string{{" FirstName ", "EMAIL", "status"}, {"Ann", " ann@example.com "}},
			want:    []map[string]string{{"firstname": "Ann", "email": "ann@example.com", "status": ""}},
		},
		{
			name:    "duplicate headers",
			records: [][]string{{"note", "Note", "NOTE"}, {"a", "b", "c"}},
			want:    []map[string]string{{"note": "a", "note_2": "b", "note_3": "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCSVToMap(tt.records))
		})
	}
}
