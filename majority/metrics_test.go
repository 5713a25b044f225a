package majority_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/katalvlaran/mincost/majority"
	"github.com/katalvlaran/mincost/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMetrics_Outcomes counts searches per outcome on a private registry.
func TestMetrics_Outcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := majority.NewMetrics(reg)

	rs := []region.Region{region.New("a", 3, 10), region.New("b", 2, 4), region.New("c", 4, 20)}
	_, err := majority.FindMinimumCostMajority(rs, majority.WithMetrics(m))
	require.NoError(t, err)
	_, err = majority.FindMinimumCostMajority([]region.Region{}, majority.WithMetrics(m))
	require.NoError(t, err)
	_, err = majority.FindMinimumCostMajority(rs, majority.WithMetrics(m), majority.WithMaxSteps(1))
	require.ErrorIs(t, err, majority.ErrBudgetExceeded)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues("budget_exceeded")))
	assert.Positive(t, testutil.ToFloat64(m.Steps))
	assert.Equal(t, 3, testutil.CollectAndCount(m.Searches))
}

// TestLogger_StartAndFinish emits one record at each end of a search,
// both tagged with the search ID.
func TestLogger_StartAndFinish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rs := []region.Region{region.New("a", 3, 10), region.New("b", 2, 4), region.New("c", 4, 20)}
	res, err := majority.FindMinimumCostMajority(rs, majority.WithLogger(logger))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var start, finish map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &start))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &finish))

	assert.Equal(t, "majority search started", start["msg"])
	assert.Equal(t, "majority search finished", finish["msg"])
	assert.Equal(t, res.SearchID.String(), start["search_id"])
	assert.Equal(t, res.SearchID.String(), finish["search_id"])
	assert.EqualValues(t, 5, start["threshold"])
	assert.EqualValues(t, 9, finish["cost"])
	assert.Equal(t, true, finish["found"])
}
