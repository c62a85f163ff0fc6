package util

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineWorkers(t *testing.T) {
	procs := runtime.GOMAXPROCS(0)

	assert.Equal(t, 1, DetermineWorkers(1))
	assert.Equal(t, procs, DetermineWorkers(0))
	assert.Equal(t, procs*2, DetermineWorkers(procs*2+10))
}
