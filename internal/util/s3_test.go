package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareFileName(t *testing.T) {
	assert.Equal(t, "report.xlsx", prepareFileName("report.xlsx", nil))
	assert.Equal(t, "reports/financial/report.xlsx", prepareFileName("report.xlsx", &FileUploadOptions{
		DirectoryPath: GetReportDirectoryPath("financial"),
	}))

	unique := prepareFileName("report.xlsx", &FileUploadOptions{DirectoryPath: "reports/financial", UniquePrefix: true})
	assert.True(t, strings.HasPrefix(unique, "reports/financial/"))
	assert.True(t, strings.HasSuffix(unique, "_report.xlsx"))
}

func TestToReportDirectoryPath(t *testing.T) {
	assert.Equal(t, "reports/financial/a.xlsx", ToReportDirectoryPath("financial", "../../a.xlsx"))
}
