package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/dpgraph/config"
	"github.com/viant/dpgraph/logger"
	"github.com/viant/dpgraph/profile"
	"github.com/viant/dpgraph/store"
)

// resetFlags restores flag defaults, cobra keeps parsed values between executions
func resetFlags() {
	profileFlag, debugFlag = "", false
	initDescription, initForce = "", false
	addID, deleteForce = "", false
	setAdd, setToggle = false, false
	exportFormat, exportOutput = "", ""
}

// run executes the root command with args
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func clearEnv(t *testing.T) {
	for _, key := range []string{config.EnvDebug, config.EnvProfile, config.EnvFormat} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestCommands(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	URL := filepath.Join(dir, "game.yaml")
	var steps = []struct {
		args   []string
		output string
	}{
		{args: []string{"init", "game", "--description", "session analytics"}, output: "created game"},
		{args: []string{"add", "number", "--id", "Hits"}, output: "0 Hits"},
		{args: []string{"add", "Number", "--id", "Misses"}, output: "1 Misses"},
		{args: []string{"add", "Number"}, output: "2 DataPoint2"},
		{args: []string{"rename", "2", "Total"}, output: "Total"},
		{args: []string{"set", "Hits", "7"}},
		{args: []string{"set", "Misses", "3"}},
		{args: []string{"set", "Misses", "1", "--add"}},
		{args: []string{"calc", "Total", "Sum"}},
		{args: []string{"source", "set", "Total", "1", "Misses"}},
		{args: []string{"mark", "Total", "true"}},
		{args: []string{"add", "flag", "--id", "Done"}, output: "3 Done"},
		{args: []string{"set", "Done", "--toggle"}},
		{args: []string{"mark", "Done", "false"}},
	}
	for _, step := range steps {
		output, err := run(t, append(step.args, "--profile", URL)...)
		require.NoError(t, err, strings.Join(step.args, " "))
		assert.Contains(t, output, step.output, strings.Join(step.args, " "))
	}

	p, err := store.New().Load(testContext(t), URL)
	require.NoError(t, err)
	assert.Equal(t, "session analytics", p.Description)
	total, err := p.ResolveNumber(2)
	require.NoError(t, err)
	assert.Equal(t, 11.0, total)
	done, err := p.ResolveFlag(3)
	require.NoError(t, err)
	assert.True(t, done)

	output, err := run(t, "export", "--format", "json", "--profile", URL)
	require.NoError(t, err)
	payload := &store.Payload{}
	require.NoError(t, json.Unmarshal([]byte(output), payload))
	assert.Equal(t, "game", payload.Name)
	assert.Equal(t, []profile.Entry{
		{ID: "Total", Kind: profile.Number, Value: 11.0},
	}, payload.Entries)

	output, err = run(t, "show", "--profile", URL)
	require.NoError(t, err)
	assert.Contains(t, output, "game: session analytics")
	assert.Contains(t, output, "Total")
	assert.Contains(t, output, "0,1")
}

func TestCommands_Errors(t *testing.T) {
	clearEnv(t)
	URL := filepath.Join(t.TempDir(), "game.json")
	for _, args := range [][]string{
		{"init", "game"},
		{"add", "Number", "--id", "A"},
		{"add", "Number", "--id", "B"},
		{"calc", "B", "Sum"},
	} {
		_, err := run(t, append(args, "--profile", URL)...)
		require.NoError(t, err, strings.Join(args, " "))
	}

	var testCases = []struct {
		description string
		args        []string
		expect      func(t *testing.T, err error)
	}{
		{
			description: "init over existing",
			args:        []string{"init", "game"},
		},
		{
			description: "unknown kind",
			args:        []string{"add", "Date"},
		},
		{
			description: "unknown point",
			args:        []string{"rename", "C", "D"},
		},
		{
			description: "index out of range",
			args:        []string{"swap", "0", "5"},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, profile.ErrIndexOutOfRange)
			},
		},
		{
			description: "delete source",
			args:        []string{"delete", "A"},
			expect: func(t *testing.T, err error) {
				var target *profile.DependencyError
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			description: "cycle",
			args:        []string{"source", "set", "B", "0", "B"},
			expect: func(t *testing.T, err error) {
				var target *profile.CycleError
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			description: "not a finite number",
			args:        []string{"set", "A", "NaN"},
			expect: func(t *testing.T, err error) {
				var target *profile.NumberError
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			description: "toggle number",
			args:        []string{"set", "A", "--toggle"},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			_, err := run(t, append(testCase.args, "--profile", URL)...)
			require.Error(t, err)
			if testCase.expect != nil {
				testCase.expect(t, err)
			}
		})
	}

	_, err := run(t, "delete", "A", "--force", "--profile", URL)
	require.NoError(t, err)
	p, err := store.New().Load(testContext(t), URL)
	require.NoError(t, err)
	require.Equal(t, 1, p.Len())
	point, err := p.Point(0)
	require.NoError(t, err)
	assert.Equal(t, "B", point.ID)
	assert.False(t, point.IsCalculated())
}

func TestExecute_InvalidSettings(t *testing.T) {
	defer logger.Reset()
	URL := filepath.Join(t.TempDir(), "game.yaml")
	var testCases = []struct {
		description string
		env         map[string]string
		expect      string
	}{
		{description: "unsupported format", env: map[string]string{config.EnvFormat: "xml"}, expect: "invalid configuration"},
		{description: "empty profile", env: map[string]string{config.EnvProfile: ""}, expect: "invalid configuration"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			clearEnv(t)
			for key, value := range testCase.env {
				t.Setenv(key, value)
			}
			resetFlags()
			logger.Reset()
			stderr := &bytes.Buffer{}
			code := execute(context.Background(), []string{"show"}, stderr)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), testCase.expect)
			assert.Contains(t, stderr.String(), "Command execution failed")
		})
	}

	clearEnv(t)
	resetFlags()
	stderr := &bytes.Buffer{}
	assert.Equal(t, 0, execute(context.Background(), []string{"init", "game", "--profile", URL}, stderr))
}

func TestWriter(t *testing.T) {
	out := &bytes.Buffer{}
	w := &writer{out: out, format: profile.YAML}
	require.NoError(t, w.Export("game", []profile.Entry{{ID: "Done", Kind: profile.Flag, Value: true}}))
	assert.Equal(t, "name: game\nentries:\n    - id: Done\n      kind: Flag\n      value: true\n", out.String())
}

// testContext mirrors testing.T.Context (Go 1.24+) for older toolchains.
func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
