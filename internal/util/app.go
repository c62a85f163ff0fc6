package util

import (
	"runtime"
)

func GetAppName() string {
	return "PropDesk"
}

// Worker count for jobCount jobs, bounded by twice the usable CPUs
func DetermineWorkers(jobCount int) int {
	if jobCount <= 0 {
		return max(runtime.GOMAXPROCS(0), 1)
	}

	return min(max(runtime.GOMAXPROCS(0)*2, 1), jobCount)
}
