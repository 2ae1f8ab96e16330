// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `lng,lat,radius
1,1,2
50,50,
-10,5,1
`

type result struct {
	out  string
	logs string
	err  error
}

func (r result) lines() []string {
	l := strings.Split(strings.TrimSpace(r.out), "\n")
	sort.Strings(l)
	return l
}

func (r result) fields() map[string]string {
	m := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(r.out), "\n") {
		k, v, _ := strings.Cut(line, ":")
		m[k] = strings.TrimSpace(v)
	}
	return m
}

func execute(args ...string) result {
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return result{out: out.String(), logs: logs.String(), err: err}
}

func writeTemp(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func pack(t *testing.T, args ...string) string {
	in := writeTemp(t, "in.csv", testCSV)
	out := filepath.Join(t.TempDir(), "out.mqd")
	r := execute(append([]string{"pack", in, "-o", out, "--name", "test"}, args...)...)
	require.NoError(t, r.err)
	return out
}

func TestPackQueryStats(t *testing.T) {
	path := pack(t)

	t.Run("Query", func(t *testing.T) {
		r := execute("query", path, "--bbox", "0,0,2,2")

		require.NoError(t, r.err)
		assert.Equal(t, "1,1,2\n", r.out)
		assert.Contains(t, r.logs, "Searched dataset")
	})

	t.Run("QueryPad", func(t *testing.T) {
		r := execute("query", path, "--bbox", "0,0,45,45", "--pad", "5")

		require.NoError(t, r.err)
		assert.Equal(t, []string{"1,1,2", "50,50,5"}, r.lines())
	})

	t.Run("QueryAll", func(t *testing.T) {
		r := execute("query", path)

		require.NoError(t, r.err)
		assert.Equal(t, []string{"-10,5,1", "1,1,2", "50,50,5"}, r.lines())
	})

	t.Run("QueryNone", func(t *testing.T) {
		r := execute("query", path, "--bbox", "100,0,110,10")

		require.NoError(t, r.err)
		assert.Empty(t, r.out)
	})

	t.Run("Stats", func(t *testing.T) {
		r := execute("stats", path)

		require.NoError(t, r.err)
		f := r.fields()
		assert.Equal(t, "test", f["name"])
		assert.Equal(t, "1.0", f["version"])
		assert.Equal(t, "3", f["circles"])
		assert.Equal(t, "-10,1,50,50", f["bound"])
		assert.Equal(t, "5", f["radius"])
		assert.Equal(t, "5", f["max radius"])
		assert.Equal(t, "1", f["nodes"])
		assert.Equal(t, "3", f["items"])
		assert.Equal(t, "0", f["strays"])
	})

	t.Run("StatsFlatIndex", func(t *testing.T) {
		r := execute("stats", path, "--max-children", "1", "--max-depth", "0")

		require.NoError(t, r.err)
		f := r.fields()
		assert.Equal(t, "0", f["depth"])
		assert.Equal(t, "1", f["nodes"])
		assert.Equal(t, "3", f["items"])
	})

	t.Run("StatsFlags", func(t *testing.T) {
		r := execute("stats", path, "--max-children", "1", "--max-depth", "2")

		require.NoError(t, r.err)
		f := r.fields()
		assert.Equal(t, "2", f["depth"])
		assert.NotEqual(t, "1", f["nodes"])
	})
}

func TestConfig(t *testing.T) {
	cfg := writeTemp(t, "maskquad.toml", "[data]\nradius = 7\n\n[index]\nsplit = \"floor\"\n")

	t.Run("File", func(t *testing.T) {
		path := pack(t, "-c", cfg)

		r := execute("query", path, "--bbox", "50,50,50,50")

		require.NoError(t, r.err)
		assert.Equal(t, "50,50,7\n", r.out)
	})

	t.Run("FlagOverridesFile", func(t *testing.T) {
		path := pack(t, "-c", cfg, "--radius", "9")

		r := execute("query", path, "--bbox", "50,50,50,50")

		require.NoError(t, r.err)
		assert.Equal(t, "50,50,9\n", r.out)
	})

	t.Run("Missing", func(t *testing.T) {
		r := execute("stats", "-c", filepath.Join(t.TempDir(), "nope.toml"), "x.mqd")

		assert.ErrorContains(t, r.err, "read config: ")
	})

	t.Run("BadSplit", func(t *testing.T) {
		r := execute("stats", "--split", "diagonal", "x.mqd")

		assert.EqualError(t, r.err, `quadtree: unknown split mode "diagonal"`)
	})
}

func TestVerbose(t *testing.T) {
	in := writeTemp(t, "in.csv", testCSV)
	out := filepath.Join(t.TempDir(), "out.mqd")

	quiet := execute("pack", in, "-o", out)
	loud := execute("pack", in, "-o", out, "-v")

	require.NoError(t, quiet.err)
	require.NoError(t, loud.err)
	assert.Contains(t, quiet.logs, "Packed dataset")
	assert.NotContains(t, quiet.logs, "Read circles")
	assert.Contains(t, loud.logs, "Read circles")
	assert.Contains(t, loud.logs, "Built index")
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeTemp(t, "bad.csv", "1,1\n2,north\n")
	notDataset := writeTemp(t, "not.mqd", "hello, world")

	testCases := []struct {
		name string
		args []string
		err  string
	}{
		{"PackNoOutput", []string{"pack", bad}, `required flag(s) "output" not set`},
		{"PackNoArgs", []string{"pack", "-o", "x"}, "accepts 1 arg(s), received 0"},
		{"PackBadCSV", []string{"pack", bad, "-o", filepath.Join(dir, "x.mqd")}, bad + `: row 2: invalid latitude "north"`},
		{"QueryNotDataset", []string{"query", notDataset}, notDataset + ": maskquad: failed to read magic number: maskquad: invalid magic number"},
		{"QueryBadBBox", []string{"query", pack(t), "--bbox", "1,2,3"}, `invalid bbox "1,2,3": expected 4 comma-separated numbers`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			r := execute(testCase.args...)

			assert.EqualError(t, r.err, testCase.err)
			assert.Empty(t, r.out)
		})
	}
}
