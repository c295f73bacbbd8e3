package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const words = "apple\tA red fruit\napplication\tA software program\napply\tTo make a request\nbanana\tA yellow fruit\n"

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(words), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--dict", path, "--log-level", "error"}, args...))
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	return out.String(), err
}

func TestComplete(t *testing.T) {
	out, err := run(t, "", "complete", "app")
	require.NoError(t, err)
	assert.Equal(t, "apple\tA red fruit\napplication\tA software program\napply\tTo make a request\n", out)

	out, err = run(t, "", "complete", "--limit", "1", "app")
	require.NoError(t, err)
	assert.Equal(t, "apple\tA red fruit\n", out)

	out, err = run(t, "", "complete", "cherry")
	require.NoError(t, err)
	assert.Equal(t, "no entries start with \"cherry\"\n", out)
}

func TestRepl(t *testing.T) {
	out, err := run(t, "ban\ntwo words\nappli\n:q\nignored\n", "repl")
	require.NoError(t, err)

	assert.Contains(t, out, "banana\tA yellow fruit\n")
	assert.Contains(t, out, "Enter exactly one word.")
	assert.Contains(t, out, "application\tA software program\n")
	assert.NotContains(t, out, "apple\t")
	assert.Equal(t, 4, strings.Count(out, "prefix (:q to quit): "))
}

func TestReplEndOfInput(t *testing.T) {
	out, err := run(t, "ban\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "banana\tA yellow fruit\n")
}

func TestRemove(t *testing.T) {
	out, err := run(t, "", "remove", "apple", "app", "banana")
	require.NoError(t, err)
	assert.Equal(t, "apple\tremoved\napp\tnot found\nbanana\tremoved\n2 entries left\n", out)
}

func TestMissingDictionary(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"complete", "a"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestCommandsWithoutDictionary(t *testing.T) {
	dataSet := []struct {
		args     []string
		expected string
	}{
		{[]string{"help"}, "Available Commands:"},
		{[]string{"help", "complete"}, "complete <prefix>"},
		{[]string{"completion", "bash"}, "bash completion"},
		{[]string{"keysets"}, "1mvl5_10"},
	}

	for _, d := range dataSet {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetArgs(d.args)
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})

		require.NoError(t, cmd.Execute(), d.args)
		assert.Contains(t, out.String(), d.expected, d.args)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "", "--log-level", "loud", "complete", "a")
	assert.Error(t, err)
}
