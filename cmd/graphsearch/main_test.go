package main

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestRun_Default(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-no-color"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())

	goldie.New(t).Assert(t, "default", stdout.Bytes())
}

func TestRun_SingleAlgorithm(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-no-color", "-graph", "2", "-alg", "dijkstra", "-goal", "6"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t,
		"=== Graf 2: A -> G ===\n"+
			"Shortest Path (Dijkstra): A C E G\n"+
			"Shortest Path Cost (Dijkstra): 10\n",
		stdout.String())
}

func TestRun_ExplainsMissedGoal(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-no-color", "-graph", "1", "-alg", "hill", "-goal", "1"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "=== Graf 1: S -> A ===\nHill Climbing: S B C E Z (no path found)\n", stdout.String())
	assert.Contains(t, stderr.String(), "Graf 1: S -> A: Hill Climbing: search stopped at a dead end")
}

func TestRun_Random(t *testing.T) {
	var first, second, stderr bytes.Buffer
	args := []string{"-no-color", "-random", "12", "-p", "0.3", "-seed", "5"}
	assert.Equal(t, 0, run(args, &first, &stderr), stderr.String())
	assert.Equal(t, 0, run(args, &second, &stderr), stderr.String())
	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, first.String(), "=== Random n=12 p=0.3 seed=5: A -> L ===")
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"unknown algorithm", []string{"-alg", "a-star"}, 1},
		{"unknown graph", []string{"-graph", "3"}, 1},
		{"goal out of range", []string{"-goal", "8"}, 1},
		{"bad probability", []string{"-random", "5", "-p", "2"}, 1},
		{"negative step bound", []string{"-max-steps", "-4"}, 1},
		{"bad flag", []string{"-nope"}, 2},
		{"help", []string{"-h"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tc.code, run(tc.args, &stdout, &stderr))
		})
	}
}
