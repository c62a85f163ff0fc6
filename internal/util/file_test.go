package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddUniquePrefixToFileName(t *testing.T) {
	filename := "testfile.txt"
	result := AddUniquePrefixToFileName(filename)

	if !strings.HasSuffix(result, "_testfile.txt") {
		t.Errorf("Expected filename to have unique prefix, got %s", result)
	}

	prefix := strings.Split(result, "_")[0]
	if len(prefix) == 0 {
		t.Errorf("Expected a non-empty unique prefix, got %s", prefix)
	}
}

func TestReportFileName(t *testing.T) {
	at := time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "financial-report-20240131.xlsx", ReportFileName("Financial  Report", "xlsx", at))
	assert.Equal(t, "summary-20240131.csv", ReportFileName("Summary", "csv", at))
}
