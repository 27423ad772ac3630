package internal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsObserve(t *testing.T) {
	m := NewMetrics()
	m.Observe(KindIcon, time.Now(), nil)
	m.Observe(KindScreenshot, time.Now(), nil)
	m.Observe(KindScreenshot, time.Now(), errors.New("decode failed"))

	if got := testutil.ToFloat64(m.generated.WithLabelValues(KindScreenshot)); got != 1 {
		t.Fatalf("expected 1 generated screenshot, got %v", got)
	}
	if got := testutil.ToFloat64(m.failures.WithLabelValues(KindScreenshot)); got != 1 {
		t.Fatalf("expected 1 failed screenshot, got %v", got)
	}
	if got := testutil.ToFloat64(m.failures.WithLabelValues(KindIcon)); got != 0 {
		t.Fatalf("expected no failed icons, got %v", got)
	}
}

func TestMetricsWriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.Observe(KindFeature, time.Now(), nil)

	path := filepath.Join(t.TempDir(), "play_assets.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read metrics file: %v", err)
	}
	if !strings.Contains(string(data), `play_assets_generated_total{kind="feature_graphic"} 1`) {
		t.Fatalf("expected feature graphic counter in textfile, got:\n%s", data)
	}
}
