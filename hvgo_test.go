package hvgo

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/hupe1980/hvgo/model"
	"github.com/hupe1980/hvgo/resource"
	"github.com/hupe1980/hvgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHypervolumeScenarios(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]float64
		expected float64
	}{
		{"Staircase", [][]float64{{1, 5}, {3, 3}, {5, 1}}, 13},
		{"SingleCube", [][]float64{{2, 2, 2}}, 8},
		{"Duplicates", [][]float64{{1, 1}, {1, 1}}, 1},
		{"Dominated", [][]float64{{3, 3}, {1, 1}}, 9},
		{"Empty", nil, 0},
		{"OneObjective", [][]float64{{2}, {7}, {3}}, 7},
		{"LongStaircaseWithDominated", [][]float64{{1, 6}, {2, 5}, {1, 1}, {3, 4}, {4, 3}, {2, 2}, {5, 2}, {6, 1}}, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hv, err := Hypervolume(tt.rows, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hv)
		})
	}
}

func TestHypervolumeZeroObjectives(t *testing.T) {
	f := model.Front{Points: 3, Objectives: 0, Data: []float64{}}

	vols, err := New().Hypervolume([]model.Front{f}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, vols)
}

func TestHypervolumeReference(t *testing.T) {
	eng := New()

	// Minimisation front measured against a nadir reference.
	f := model.FromRows([][]float64{{9, 5}, {7, 7}, {5, 9}})
	vols, err := eng.Hypervolume([]model.Front{f}, model.Reference{10, 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{13}, vols)
}

func TestHypervolumeBatch(t *testing.T) {
	rng := testutil.NewRNG(1)

	var (
		fronts []model.Front
		want   []float64
	)
	for _, d := range []int{2, 3, 4, 3, 2} {
		pts := rng.UniformPoints(10+3*d, d)
		fronts = append(fronts, model.FromRows(pts))
		want = append(want, testutil.BruteForceHV(pts))
	}

	vols, err := New().Hypervolume(fronts, nil)
	require.NoError(t, err)
	require.Len(t, vols, len(want))
	for i := range want {
		assert.InEpsilon(t, want[i], vols[i], 1e-9, "front %d", i)
	}
}

func TestHypervolumeColMajor(t *testing.T) {
	f := model.Front{
		Points:     3,
		Objectives: 2,
		Data:       []float64{1, 3, 5, 5, 3, 1},
		Layout:     model.ColMajor,
	}
	vols, err := New().Hypervolume([]model.Front{f}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{13}, vols)
}

func TestHypervolumeErrors(t *testing.T) {
	t.Run("ReferenceMismatch", func(t *testing.T) {
		_, err := Hypervolume([][]float64{{1, 2}}, []float64{0, 0, 0})

		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 3, dm.Actual)
	})

	t.Run("NaN", func(t *testing.T) {
		_, err := Hypervolume([][]float64{{1, math.NaN()}}, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Ragged", func(t *testing.T) {
		_, err := Hypervolume([][]float64{{1, 2}, {1}}, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("AbortsBatch", func(t *testing.T) {
		fronts := []model.Front{
			model.FromRows([][]float64{{1, 1}}),
			model.FromRows([][]float64{{1, math.NaN()}}),
		}
		vols, err := New().Hypervolume(fronts, nil)
		require.Error(t, err)
		assert.Nil(t, vols)
		assert.Contains(t, err.Error(), "front 1")
	})
}

func TestDecompose(t *testing.T) {
	rng := testutil.NewRNG(2)

	var fronts []model.Front
	for _, d := range []int{1, 2, 3, 4, 5} {
		fronts = append(fronts, model.FromRows(rng.UniformPoints(25, d)))
	}

	eng := New(WithInitialRectangles(1))
	vols, err := eng.Hypervolume(fronts, nil)
	require.NoError(t, err)
	lists, err := eng.Decompose(fronts, nil)
	require.NoError(t, err)
	require.Len(t, lists, len(fronts))

	for i, l := range lists {
		assert.Equal(t, fronts[i].Objectives, l.Dim())
		assert.InEpsilon(t, vols[i], l.SignedVolume(), 1e-9, "front %d", i)
		for k := 0; k < l.Len(); k++ {
			for _, lo := range l.Lower(k) {
				assert.GreaterOrEqual(t, lo, 0.0)
			}
		}
	}
}

func TestDecomposeScenarios(t *testing.T) {
	eng := New()

	t.Run("Staircase", func(t *testing.T) {
		lists, err := eng.Decompose([]model.Front{model.FromRows([][]float64{{1, 5}, {3, 3}, {5, 1}})}, nil)
		require.NoError(t, err)
		assert.Equal(t, 13.0, lists[0].SignedVolume())
	})

	t.Run("EmptyKeepsColumns", func(t *testing.T) {
		f := model.Front{Points: 0, Objectives: 3, Data: []float64{}}
		lists, err := eng.Decompose([]model.Front{f}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, lists[0].Len())
		assert.Equal(t, 3, lists[0].Dim())
	})

	t.Run("EmptyZeroObjectives", func(t *testing.T) {
		lists, err := eng.Decompose([]model.Front{{}}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, lists[0].Len())
		assert.Equal(t, 0, lists[0].Dim())
	})

	t.Run("ZeroObjectivesWithPoints", func(t *testing.T) {
		f := model.Front{Points: 2, Objectives: 0, Data: []float64{}}
		_, err := eng.Decompose([]model.Front{f}, nil)
		assert.ErrorIs(t, err, ErrUndefinedZeroObjectives)
	})

	t.Run("OneObjective", func(t *testing.T) {
		lists, err := eng.Decompose([]model.Front{model.FromRows([][]float64{{2}, {4}})}, model.Reference{1})
		require.NoError(t, err)
		rs := lists[0].Rects()
		require.Len(t, rs, 1)
		assert.Equal(t, int8(1), rs[0].Sign)
		assert.Equal(t, []float64{0}, rs[0].Lower)
		assert.Equal(t, []float64{3}, rs[0].Upper)
	})
}

func TestDecomposeMaxRectangles(t *testing.T) {
	rng := testutil.NewRNG(3)
	f := model.FromRows(rng.SpherePoints(40, 4))

	_, err := New(WithMaxRectangles(8)).Decompose([]model.Front{f}, nil)
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestResourceController(t *testing.T) {
	f := model.FromRows([][]float64{{1, 2, 3}, {3, 2, 1}, {2, 3, 1}, {1, 3, 2}, {2, 2, 2}})

	t.Run("Refused", func(t *testing.T) {
		rc := resource.NewController(resource.Config{MemoryLimitBytes: 16})
		_, err := New(WithResourceController(rc)).Hypervolume([]model.Front{f}, nil)
		assert.ErrorIs(t, err, ErrAllocation)
		assert.Equal(t, int64(0), rc.MemoryUsage())
	})

	t.Run("Released", func(t *testing.T) {
		rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
		_, err := New(WithResourceController(rc)).Hypervolume([]model.Front{f}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rc.MemoryUsage())
	})
}

func TestMetricsAndLogging(t *testing.T) {
	mc := &BasicMetricsCollector{}
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	eng := New(WithMetricsCollector(mc), WithLogger(logger.WithRunID("test")))
	fronts := []model.Front{
		model.FromRows([][]float64{{1, 5}, {3, 3}}),
		model.FromRows([][]float64{{2, 2, 2}}),
	}
	_, err := eng.Hypervolume(fronts, nil)
	require.NoError(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.FrontCount)
	assert.Equal(t, int64(3), stats.FrontPoints)
	assert.Equal(t, int64(0), stats.FrontErrors)
	assert.Equal(t, int64(1), stats.BatchCount)
	assert.Equal(t, int64(2), stats.BatchFronts)

	_, err = eng.Hypervolume([]model.Front{model.FromRows([][]float64{{math.NaN()}})}, nil)
	require.Error(t, err)
	assert.Equal(t, int64(1), mc.GetStats().BatchErrors)

	assert.Contains(t, buf.String(), `"msg":"front completed"`)
	assert.Contains(t, buf.String(), `"msg":"batch failed"`)
	assert.Contains(t, buf.String(), `"run_id":"test"`)
}

func TestNilOptions(t *testing.T) {
	eng := New(WithLogger(nil), WithMetricsCollector(nil), nil)
	hv, err := eng.Hypervolume([]model.Front{model.FromRows([][]float64{{2, 3}})}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{6}, hv)
}

func TestEmptyBatch(t *testing.T) {
	vols, err := New().Hypervolume(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, vols)

	lists, err := New().Decompose(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, lists)
}
