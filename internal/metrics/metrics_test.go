package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestObserveMutation(t *testing.T) {
	counter := mutationsTotal.WithLabelValues("TENANT", "CREATE", ResultSuccess)
	before := counterValue(t, counter)

	ObserveMutation("TENANT", "CREATE", ResultSuccess)
	ObserveMutation("TENANT", "CREATE", ResultSuccess)

	assert.Equal(t, before+2, counterValue(t, counter))
}

func TestObserveNotifications(t *testing.T) {
	counter := notificationsTotal.WithLabelValues("TENANT")
	before := counterValue(t, counter)

	ObserveNotifications("TENANT", 3)

	assert.Equal(t, before+3, counterValue(t, counter))
}
