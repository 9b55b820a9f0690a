package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/hvgo/frontio"
	"github.com/hupe1980/hvgo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	staircase = "#\n1 5\n3 3\n5 1\n#\n"
	mixed     = "#\n1 1\n3 3\n2 2\n1 4\n#\n2 2 2\n#\n"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"HVWFG_STORE", "HVWFG_STORE_ROOT", "HVWFG_LOG_LEVEL", "HVWFG_LOG_FORMAT", "HVWFG_MAX_LOADERS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "staircase.txt", staircase)

	out, err := execute(t, "hv", "--root", dir, "staircase.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "hv(1) = 13.0000000000\n")
	assert.Contains(t, out, "Total time = ")
}

func TestHVJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", staircase)
	writeFile(t, dir, "b.txt", mixed)

	_, err := execute(t, "hv", "--root", dir, "--json", "--ref", "0,0,0", "a.txt", "b.txt")
	require.Error(t, err, "mixed arities against a 3-d reference")

	out, err := execute(t, "hv", "--root", dir, "--json", "a.txt", "b.txt")
	require.NoError(t, err)

	var got []hvResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []hvResult{
		{File: "a.txt", Front: 1, Hypervolume: 13},
		{File: "b.txt", Front: 1, Hypervolume: 10},
		{File: "b.txt", Front: 2, Hypervolume: 8},
	}, got)
}

func TestHVConfigReference(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "front.txt", "#\n9 5\n7 7\n5 9\n#\n")
	writeFile(t, dir, "hvwfg.yaml", "reference: [10, 10]\n")

	out, err := execute(t, "hv", "--root", dir, "--config", filepath.Join(dir, "hvwfg.yaml"), "front.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "hv(1) = 13.0000000000\n")
}

func TestHVOutAndMetrics(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "front.txt", staircase)
	metrics := filepath.Join(dir, "metrics.prom")

	out, err := execute(t, "hv", "--root", dir, "--json", "--out", "results/hv.json", "--metrics-file", metrics, "front.txt")
	require.NoError(t, err)

	stored, err := os.ReadFile(filepath.Join(dir, "results", "hv.json"))
	require.NoError(t, err)
	assert.Equal(t, out, string(stored))

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `hvgo_fronts_total{status="success"} 1`)
}

func TestDecompose(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "front.txt", "#\n1 2\n2 1\n#\n")

	out, err := execute(t, "decompose", "--root", dir, "--json", "front.txt")
	require.NoError(t, err)

	var got []decomposition
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 3.0, got[0].Hypervolume)
	require.Len(t, got[0].Rectangles, 3)
	assert.Equal(t, int8(-1), got[0].Rectangles[2].Sign)
}

func TestPareto(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "front.txt", mixed)

	out, err := execute(t, "pareto", "--root", dir, "--json", "front.txt")
	require.NoError(t, err)

	var got []paretoResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, []int{1}, got[0].NonDominated)
	assert.Equal(t, []int{0, 1, 1, 1}, got[0].DominatedBy)
	assert.Equal(t, []int{1}, got[1].NonDominated)
}

func TestParetoMaximizeOut(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "front.txt", mixed)

	out, err := execute(t, "pareto", "--root", dir, "--maximize", "--out", "filtered.txt.zst", "--compress", "zstd", "front.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "front.txt#1: 2 of 4 non-dominated")

	f, err := os.Open(filepath.Join(dir, "filtered.txt.zst"))
	require.NoError(t, err)
	defer f.Close()

	rc, comp, err := frontio.NewReader(f)
	require.NoError(t, err)
	assert.Equal(t, frontio.CompressionZstd, comp)
	require.NoError(t, rc.Close())

	fronts, err := frontio.ReadFile(filepath.Join(dir, "filtered.txt.zst"))
	require.NoError(t, err)
	assert.Equal(t, []model.Front{
		{Points: 2, Objectives: 2, Data: []float64{3, 3, 1, 4}},
		{Points: 1, Objectives: 3, Data: []float64{2, 2, 2}},
	}, fronts)
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("MissingFile", func(t *testing.T) {
		_, err := execute(t, "hv", "--root", dir, "missing.txt")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("NoArgs", func(t *testing.T) {
		_, err := execute(t, "hv")
		assert.Error(t, err)
	})

	t.Run("UnknownStore", func(t *testing.T) {
		_, err := execute(t, "hv", "--store", "ftp", "x.txt")
		assert.ErrorContains(t, err, "unknown store kind")
	})

	t.Run("BadCompression", func(t *testing.T) {
		writeFile(t, dir, "front.txt", staircase)
		_, err := execute(t, "pareto", "--root", dir, "--compress", "brotli", "front.txt")
		assert.Error(t, err)
	})
}
