package util

import (
	"fmt"
	"strings"
	"time"
)

// Example output for "ex.txt": "21313123123_ex.txt"
func AddUniquePrefixToFileName(fileName string) string {
	uniquePrefix := fmt.Sprintf("%d", time.Now().UnixNano())
	return fmt.Sprintf("%s_%s", uniquePrefix, fileName)
}

// Example output for ("Financial Report", "xlsx"): "financial-report-20240131.xlsx"
func ReportFileName(title string, ext string, at time.Time) string {
	slug := strings.ToLower(strings.Join(strings.Fields(title), "-"))
	return fmt.Sprintf("%s-%s.%s", slug, at.Format("20060102"), ext)
}
