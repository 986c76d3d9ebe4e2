package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

func TestUpdateDBConnectionStats(t *testing.T) {
	DBConnectionsActive.Set(0)
	DBConnectionsIdle.Set(0)

	UpdateDBConnectionStats(7, 3)

	metric := &io_prometheus_client.Metric{}
	if err := DBConnectionsActive.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if got := metric.GetGauge().GetValue(); got != 7 {
		t.Errorf("DBConnectionsActive = %v, want 7", got)
	}

	metric = &io_prometheus_client.Metric{}
	if err := DBConnectionsIdle.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if got := metric.GetGauge().GetValue(); got != 3 {
		t.Errorf("DBConnectionsIdle = %v, want 3", got)
	}
}

func TestRecordHTTPRequest_Histogram(t *testing.T) {
	RecordHTTPRequest("GET", "/summaries/:id", "200", 30*time.Millisecond, 128, 512)

	hist, err := HTTPRequestDuration.GetMetricWithLabelValues("GET", "/summaries/:id", "200")
	if err != nil {
		t.Fatalf("failed to get histogram: %v", err)
	}

	metric := &io_prometheus_client.Metric{}
	if err := hist.(prometheus.Metric).Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if got := metric.GetHistogram().GetSampleCount(); got == 0 {
		t.Error("expected at least one duration sample")
	}
}
