package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/lavadrop"
	"github.com/katalvlaran/lvsearch/production"
)

func sampleBlueprints(t *testing.T) []*production.Blueprint {
	t.Helper()
	f, err := os.Open(filepath.Join("..", "..", "production", "testdata", "sample.txt"))
	require.NoError(t, err)
	defer f.Close()
	bps, err := production.ParseBlueprints(f)
	require.NoError(t, err)

	return bps
}

func TestSolveAllAndReport(t *testing.T) {
	minerals = mineralsFlags{horizon: 24, jobs: 2}
	results, err := solveAll(context.Background(), sampleBlueprints(t), 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	var buf bytes.Buffer
	require.NoError(t, report(&buf, results, false))
	assert.Equal(t, "#1: 9\n#2: 12\nQuality Level: 33\nProduct of all max possible geodes: 108\n", buf.String())
}

func TestSolveAll_Budget(t *testing.T) {
	minerals = mineralsFlags{horizon: 24, jobs: 1, budget: 5}
	_, err := solveAll(context.Background(), sampleBlueprints(t), 0)
	assert.ErrorIs(t, err, bestfirst.ErrBudgetExceeded)
}

func TestCommonFlags_Setup(t *testing.T) {
	c := commonFlags{pprof: "gpu"}
	_, err := c.setup()
	assert.Error(t, err)

	c = commonFlags{}
	stop, err := c.setup()
	require.NoError(t, err)
	stop()

	_, err = c.openInput()
	assert.ErrorContains(t, err, "missing -file")
}

func TestRootCmd(t *testing.T) {
	root := rootCmd()
	names := make([]string, 0, len(root.Subcommands))
	for _, sub := range root.Subcommands {
		names = append(names, sub.Name())
	}
	assert.Equal(t, []string{"minerals", "hill", "lava"}, names)
}

func TestReportYAML(t *testing.T) {
	bp := production.NewBlueprint(7, map[production.Kind]production.Amounts{
		production.Ore:   {1, 0, 0, 0},
		production.Geode: {2, 0, 0, 0},
	})
	res, err := production.Solve(bp, 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, reportYAML(&buf, []*production.Result{res}))

	var got mineralsReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Blueprints, 1)
	assert.Equal(t, 7, got.Blueprints[0].ID)
	assert.Equal(t, 2, got.Blueprints[0].Geodes)
	assert.Equal(t, 14, got.QualityLevel)
	assert.Equal(t, 2, got.Product)
	assert.Len(t, got.Blueprints[0].Plan, 5)
}

func TestOpenInput_Gzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "droplet.txt.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("1,1,1\n2,1,1\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	c := commonFlags{file: path}
	rc, err := c.openInput()
	require.NoError(t, err)
	defer rc.Close()
	d, err := lavadrop.Parse(rc)
	require.NoError(t, err)
	assert.Equal(t, 10, d.SurfaceArea())
}
