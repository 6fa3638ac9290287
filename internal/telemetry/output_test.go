package telemetry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"percolator/internal/core"
	"percolator/internal/percolation"
)

func statsAt(t *testing.T, level core.Level) percolation.Stats {
	t.Helper()
	g, err := percolation.GenerateSeeded(12, 8, 3)
	require.NoError(t, err)
	return percolation.ComputeStats(g, percolation.Extract(g, level))
}

func TestWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write([]Row{NewRow(3, 12, 8, statsAt(t, 40))}))
	require.NoError(t, w.Write([]Row{NewRow(3, 12, 8, statsAt(t, 70))}))
	require.NoError(t, w.Write(nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "seed,width,height,p,components"))
	assert.Equal(t, 1, strings.Count(buf.String(), "seed,"))

	var back []Row
	require.NoError(t, gocsv.UnmarshalString(buf.String(), &back))
	require.Len(t, back, 2)
	assert.Equal(t, "0.40", back[0].P)
	assert.Equal(t, "0.70", back[1].P)
	assert.GreaterOrEqual(t, back[1].OpenCells, back[0].OpenCells)
}

func TestWriteCurve(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCurve(&buf, []SpanPoint{{P: "0.59", Samples: 4, SpanRate: 0.5, MeanLargest: 0.3}}))
	assert.Contains(t, buf.String(), "p,samples,span_rate,mean_largest_fraction")
	assert.Contains(t, buf.String(), "0.59,4,0.5,0.3")
}
