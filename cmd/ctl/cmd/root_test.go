package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpfielding/mct.go/pkg/compress/mct"
	"github.com/jpfielding/mct.go/pkg/planar"
	"github.com/jpfielding/mct.go/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRoot(context.Background(), "testsha")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "ctl.log")))
	err := root.Execute()
	return out.String(), err
}

func writePlanes[T planar.Sample](t *testing.T, path string, planes [][]T) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, planar.Write(f, planes))
	require.NoError(t, f.Close())
}

func readPlanes[T planar.Sample](t *testing.T, path string, comps int) [][]T {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	planes, err := planar.Read[T](f, comps)
	require.NoError(t, err)
	return planes
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "testsha\n", out)
}

func TestRootPrintsTree(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	for _, name := range []string{"encode", "decode", "norms", "verify"} {
		assert.Contains(t, out, name+":")
	}
}

func TestEncodeDecode_Reversible(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "rgb.raw")
	enc := filepath.Join(dir, "yuv.raw")
	dec := filepath.Join(dir, "rgb2.raw")
	planes := [][]int32{{100, 0, 255, 7}, {150, 0, 255, 9}, {200, 0, 255, 11}}
	writePlanes(t, src, planes)

	_, err := run(t, "encode", "-k", "rct", "-i", src, "-o", enc)
	require.NoError(t, err)
	yuv := readPlanes[int32](t, enc, 3)
	assert.Equal(t, int32(150), yuv[0][0])

	_, err = run(t, "decode", "-k", "rct", "-i", enc, "-o", dec)
	require.NoError(t, err)
	assert.Equal(t, planes, readPlanes[int32](t, dec, 3))
}

func TestEncodeDecode_Irreversible(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "rgb.raw")
	enc := filepath.Join(dir, "ycc.raw")
	dec := filepath.Join(dir, "rgb.f32")
	writePlanes(t, src, [][]int32{{100}, {150}, {200}})

	_, err := run(t, "encode", "--kind", "ict", "--in", src, "--out", enc)
	require.NoError(t, err)
	assert.Equal(t, [][]int32{{141}, {33}, {-29}}, readPlanes[int32](t, enc, 3))

	_, err = run(t, "decode", "--kind", "ict", "--int-input", "--in", enc, "--out", dec)
	require.NoError(t, err)
	rgb := readPlanes[float32](t, dec, 3)
	assert.InDelta(t, 100, rgb[0][0], 5)
	assert.InDelta(t, 150, rgb[1][0], 5)
	assert.InDelta(t, 200, rgb[2][0], 5)
}

func TestEncode_Custom(t *testing.T) {
	dir := t.TempDir()
	matrix := filepath.Join(dir, "swap.f32")
	src := filepath.Join(dir, "in.raw")
	dst := filepath.Join(dir, "out.raw")
	writePlanes(t, matrix, [][]float32{{0, 1, 1, 0}})
	writePlanes(t, src, [][]int32{{1, 2}, {3, 4}})

	_, err := run(t, "encode", "-k", "custom", "-c", "2", "-m", matrix, "--signed", "-i", src, "-o", dst)
	require.NoError(t, err)
	assert.Equal(t, [][]int32{{3, 4}, {1, 2}}, readPlanes[int32](t, dst, 2))

	_, err = run(t, "encode", "-k", "custom", "-c", "3", "-m", matrix, "-i", src, "-o", dst)
	assert.ErrorIs(t, err, mct.ErrMatrixSize)

	_, err = run(t, "encode", "-k", "custom", "-c", "2", "-i", src, "-o", dst)
	assert.Error(t, err)
}

func TestDecode_CustomFloat(t *testing.T) {
	dir := t.TempDir()
	matrix := filepath.Join(dir, "m.f32")
	src := filepath.Join(dir, "in.f32")
	dst := filepath.Join(dir, "out.f32")
	writePlanes(t, matrix, [][]float32{{0.5, 0.25, 1, -1}})
	writePlanes(t, src, [][]float32{{10, -3}, {7, 5}})

	_, err := run(t, "decode", "-k", "custom", "-c", "2", "-m", matrix, "-i", src, "-o", dst)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{6.75, -0.25}, {3, -8}}, readPlanes[float32](t, dst, 2))
}

func TestNorms(t *testing.T) {
	out, err := run(t, "norms", "-k", "rct")
	require.NoError(t, err)
	assert.Equal(t, "[1.732,0.8292,0.8292]", strings.TrimSpace(out))

	matrix := filepath.Join(t.TempDir(), "m.f32")
	writePlanes(t, matrix, [][]float32{{3, 4, 0, 0}})
	out, err = run(t, "norms", "-k", "custom", "-c", "2", "-m", matrix)
	require.NoError(t, err)
	assert.Equal(t, "[3,4]", strings.TrimSpace(out))

	_, err = run(t, "norms", "-k", "bogus")
	assert.ErrorIs(t, err, mct.ErrUnknownKind)

	_, err = run(t, "norms", "-k", "none", "-c", "-1")
	assert.ErrorIs(t, err, mct.ErrComponentCount)
}

func TestEncode_LogsParamsFingerprint(t *testing.T) {
	dir := t.TempDir()
	matrix := filepath.Join(dir, "swap.f32")
	src := filepath.Join(dir, "in.raw")
	logPath := filepath.Join(dir, "debug.log")
	writePlanes(t, matrix, [][]float32{{0, 1, 1, 0}})
	writePlanes(t, src, [][]int32{{1, 2}, {3, 4}})

	root := NewRoot(context.Background(), "testsha")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"encode", "-k", "custom", "-c", "2", "-m", matrix, "-i", src,
		"-o", filepath.Join(dir, "out.raw"), "--log-level", "debug", "--log-file", logPath})
	require.NoError(t, root.Execute())

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	blob, err := os.ReadFile(matrix)
	require.NoError(t, err)
	logged := string(raw)
	assert.Contains(t, logged, "transform params")
	assert.Contains(t, logged, "params="+util.HashUUID(mct.Params{Kind: mct.KindCustom, Matrix: blob}))
	assert.Contains(t, logged, "md5="+util.Md5Hex(blob))
}

func TestVerify(t *testing.T) {
	out, err := run(t, "verify", "--samples", "1001", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "ok dispatch=")
	assert.Contains(t, out, "samples=1001")

	_, err = run(t, "verify", "--samples", "-1")
	assert.Error(t, err)
}
