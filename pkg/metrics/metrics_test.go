package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/sumatoshi-tech/j2py/pkg/metrics"
)

func TestMetrics_RecordParseOK(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.RecordParseOK()
	m.RecordParseOK()
	m.RecordParseError()

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}

	for _, fam := range families {
		if fam.GetName() != "j2py_parse_total" {
			continue
		}

		for _, metric := range fam.GetMetric() {
			counts[labelValue(metric, "result")] = metric.GetCounter().GetValue()
		}
	}

	require.InDelta(t, 2, counts["ok"], 0)
	require.InDelta(t, 1, counts["error"], 0)
}

func TestMetrics_RecordTranslate(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.RecordTranslate(0.02, 15)
	m.RecordTranslate(0.05, 30)

	families, err := reg.Gather()
	require.NoError(t, err)

	var sampleCount uint64

	var nodesTotal float64

	for _, fam := range families {
		switch fam.GetName() {
		case "j2py_translate_duration_seconds":
			sampleCount = fam.GetMetric()[0].GetHistogram().GetSampleCount()
		case "j2py_translate_nodes_total":
			nodesTotal = fam.GetMetric()[0].GetCounter().GetValue()
		}
	}

	const wantSamples = 2

	const wantNodes = 45.0

	require.EqualValues(t, wantSamples, sampleCount)
	require.InDelta(t, wantNodes, nodesTotal, 0)
}

func labelValue(m *dto.Metric, name string) string {
	for _, pair := range m.GetLabel() {
		if pair.GetName() == name {
			return pair.GetValue()
		}
	}

	return ""
}
