package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

const dataDir = "../../data"

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI()
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage:")

	code, _, stderr = runCLI("-data", dataDir, "explode")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Unknown command: explode")

	code, stdout, _ := runCLI("help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Commands:")
}

func TestRun_Check(t *testing.T) {
	code, stdout, stderr := runCLI("-data", dataDir, "check")

	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "formulas:   6")
	assert.Contains(t, stdout, "categories: 4")
	assert.Contains(t, stdout, "tile groups: block, slope_down, slope_up, water")
	assert.Contains(t, stdout, `warning: tile group "water" has no collision formulas`)
}

func TestRun_Transitions(t *testing.T) {
	code, stdout, stderr := runCLI("-data", dataDir, "transitions", "demo")

	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "down water->block: 1:0\n")
	assert.Contains(t, stdout, "down_left water->block: 1:0\n")
	assert.Contains(t, stdout, "down_right water->block: 1:0\n")
}

func TestRun_TransitionsYAML(t *testing.T) {
	code, stdout, stderr := runCLI("-data", dataDir, "transitions", "-format", "yaml")

	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "transitions:")
	assert.Contains(t, stdout, "type: down")
	assert.Contains(t, stdout, "in: water")
}

func TestRun_TransitionsErrors(t *testing.T) {
	code, _, stderr := runCLI("-data", dataDir, "transitions", "nowhere")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "nowhere")

	code, _, stderr = runCLI("-data", dataDir, "transitions", "-format", "xml", "demo")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown format")
}

func TestRun_Collide(t *testing.T) {
	code, stdout, stderr := runCLI("-data", dataDir, "collide",
		"-stage", "demo", "-category", "feet", "-from", "40,60", "-to", "40,140")

	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Result [x=null, y=136, [ground]]")
	assert.Contains(t, stdout, "tile 2,9 0:1 group block")
}

func TestRun_CollideMiss(t *testing.T) {
	code, stdout, stderr := runCLI("-data", dataDir, "collide",
		"-stage", "demo", "-category", "feet", "-from", "40,20", "-to", "40,40")

	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Result [x=null, y=null, []]")
}

func TestRun_CollideErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing stage", args: []string{"-category", "feet", "-from", "0,0", "-to", "1,1"}, want: "-stage"},
		{name: "bad point", args: []string{"-stage", "demo", "-category", "feet", "-from", "0", "-to", "1,1"}, want: "-from"},
		{name: "unknown category", args: []string{"-stage", "demo", "-category", "wings", "-from", "0,0", "-to", "1,1"}, want: "wings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-data", dataDir, "collide"}, tt.args...)
			code, _, stderr := runCLI(args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 12.5, -3 ")
	assert.NoError(t, err)
	assert.Equal(t, 12.5, p.X)
	assert.Equal(t, -3.0, p.Y)

	_, err = parsePoint("1;2")
	assert.Error(t, err)
	_, err = parsePoint("a,2")
	assert.Error(t, err)
}
