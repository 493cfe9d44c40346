// Copyright 2019-2024 Xu Ruibo (hustxurb@163.com) and Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zuoyebang/geohashint/butils/json"
	"github.com/zuoyebang/geohashint/geohash"
)

func runCmd(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestEncode(t *testing.T) {
	code, out, _ := runCmd(t, "", "--steps", "10", "encode", "12.34", "56.78")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "{\"value\":825366}\n", out)

	want, err := geohash.Encode(12.34, 56.78, 26)
	require.NoError(t, err)
	code, out, _ = runCmd(t, "", "encode", "12.34", "56.78")
	assert.Equal(t, exitOK, code)
	var res valueResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, want, res.Value)
}

func TestEncodeNegativeCoordinates(t *testing.T) {
	want, err := geohash.Encode(-12.5, -170, 10)
	require.NoError(t, err)
	code, out, errOut := runCmd(t, "", "--steps=10", "encode", "-12.5", "-170")
	require.Equal(t, exitOK, code, errOut)
	var res valueResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, want, res.Value)
}

func TestDecode(t *testing.T) {
	code, out, _ := runCmd(t, "", "--steps", "10", "decode", "825366")
	require.Equal(t, exitOK, code)
	var box geohash.BoundingBox
	require.NoError(t, json.Unmarshal([]byte(out), &box))
	assert.Equal(t, geohash.Decode(825366, 10), box)
	assert.Equal(t, 12.392578125, box.Latitude)
}

func TestNeighbor(t *testing.T) {
	code, out, _ := runCmd(t, "", "--steps", "10", "neighbor", "825366", "north")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "{\"value\":825367}\n", out)

	code, out, _ = runCmd(t, "", "--steps", "10", "neighbors", "825366")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, `{"north":825367,"east":825372,"west":825364,"south":825363,`+
		`"south_west":825361,"south_east":825369,"north_west":825365,"north_east":825373}`+"\n", out)
}

func TestVersion(t *testing.T) {
	code, out, _ := runCmd(t, "", "version")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "{\"version\":\""+geohash.Version+"\"}\n", out)
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		args   []string
		code   int
		errOut string
	}{
		{[]string{}, exitUsage, "usage:"},
		{[]string{"zoom"}, exitUsage, "unknown command 'zoom'"},
		{[]string{"encode", "1"}, exitUsage, "wrong number of arguments for 'encode'"},
		{[]string{"encode", "abc", "1"}, exitUsage, "not a valid float"},
		{[]string{"decode", "-1"}, exitUsage, "not an unsigned integer"},
		{[]string{"--steps", "33", "decode", "1"}, exitUsage, "steps 33"},
		{[]string{"--steps", "0", "decode", "1"}, exitUsage, "steps 0"},
		{[]string{"--nope", "version"}, exitUsage, "geohashint: unknown flag: --nope"},
		{[]string{"--steps", "300", "decode", "1"}, exitUsage, "invalid argument \"300\" for \"--steps\" flag"},
		{[]string{"--steps", "abc", "decode", "1"}, exitUsage, "invalid argument \"abc\""},
		{[]string{"--workers", "x", "batch"}, exitUsage, "usage:"},
		{[]string{"encode", "91", "0"}, exitError, "latitude out of bounds"},
		{[]string{"encode", "0", "-180.5"}, exitError, "longitude out of bounds"},
		{[]string{"neighbor", "1", "up"}, exitError, "invalid direction"},
		{[]string{"--conf.file", "/nonexistent/geohashint.toml", "version"}, exitError, "load config"},
		{[]string{"--help"}, exitOK, "usage:"},
	}
	for _, tt := range tests {
		code, out, errOut := runCmd(t, "", tt.args...)
		assert.Equal(t, tt.code, code, "%v", tt.args)
		assert.Contains(t, errOut, tt.errOut, "%v", tt.args)
		if tt.code != exitOK {
			assert.Empty(t, out, "%v", tt.args)
		}
	}
}

func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "geohashint.toml")
	require.NoError(t, os.WriteFile(file, []byte("[codec]\nsteps = 10\n"), 0666))

	code, out, _ := runCmd(t, "", "--conf.file", file, "encode", "12.34", "56.78")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "{\"value\":825366}\n", out)
}

func TestBatchStdin(t *testing.T) {
	in := `{"op":"encode","lat":12.34,"lng":56.78}` + "\n" + `{"op":"decode"}` + "\n"
	code, out, _ := runCmd(t, in, "--steps", "10", "batch")
	assert.Equal(t, exitOK, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `{"seq":1,"value":825366}`, lines[0])
	assert.Contains(t, lines[1], `"seq":2`)
	assert.Contains(t, lines[1], "decode needs value")
}

func TestBatchFiles(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.jsonl")
	output := filepath.Join(dir, "out.jsonl")
	metricsFile := filepath.Join(dir, "metrics.txt")
	require.NoError(t, os.WriteFile(input, []byte(`{"op":"neighbor","value":825366,"direction":"s","steps":10}`+"\n"), 0666))

	code, out, errOut := runCmd(t, "", "--input", input, "--output", output,
		"--metrics.file", metricsFile, "--workers", "2", "batch")
	require.Equal(t, exitOK, code, errOut)
	assert.Empty(t, out)

	b, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "{\"seq\":1,\"value\":825363}\n", string(b))

	m, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(m), `geohashint_batch_requests_total{op="neighbor"} 1`)

	code, _, errOut = runCmd(t, "", "--input", filepath.Join(dir, "missing.jsonl"), "batch")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "open batch input")
}
