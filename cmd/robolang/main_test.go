package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(viper.New())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

const challengeConfig = `
challenges:
  - id: lava
    title: Hot floor
    actions: FJ
    sensors: [lava]
    require:
      conditionalLoop: 1
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "robolang.yaml")
	require.NoError(t, os.WriteFile(path, []byte(challengeConfig), 0o644))
	return path
}

func TestRunNestedLoops(t *testing.T) {
	stdout, _, err := execute(t, "run", "-c", "2{ 3{R R} LLRL}")
	require.NoError(t, err)
	once := "R\nR\nR\nR\nR\nR\nL\nL\nR\nL\n"
	require.Equal(t, once+once, stdout)
}

func TestRunWithSensors(t *testing.T) {
	stdout, _, err := execute(t, "run", "-c", "A B sensor?{ C D E } F G", "--sensors", "sensor=true")
	require.NoError(t, err)
	require.Equal(t, "A\nB\nC\nD\nE\nF\nG\n", stdout)

	stdout, _, err = execute(t, "run", "-c", "A B sensor?{ C D E } F G", "--sensors", "sensor")
	require.NoError(t, err)
	require.Equal(t, "A\nB\nF\nG\n", stdout)
}

func TestRunJSON(t *testing.T) {
	stdout, _, err := execute(t, "run", "-c", "A B", "-o", "json")
	require.NoError(t, err)
	require.Equal(t, "[\n  \"A\",\n  \"B\"\n]\n", stdout)

	stdout, _, err = execute(t, "run", "-c", "", "-o", "json")
	require.NoError(t, err)
	require.Equal(t, "[]\n", stdout)
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.rl")
	require.NoError(t, os.WriteFile(path, []byte("# go\nF F\n"), 0o644))
	stdout, _, err := execute(t, "run", path, "--actions", "F,L")
	require.NoError(t, err)
	require.Equal(t, "F\nF\n", stdout)
}

func TestRunCompileError(t *testing.T) {
	_, stderr, err := execute(t, "run", "-c", "F\nQ", "--actions", "FL")
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stderr, "invalid action[E1002]")
	require.Contains(t, stderr, `invalid action "Q"`)
	require.Contains(t, stderr, "<code>:2:1")
}

func TestRunMaxActions(t *testing.T) {
	stdout, _, err := execute(t, "run", "-c", "while s { A }", "--sensors", "s=true", "--max-actions", "3")
	require.Error(t, err)
	require.Contains(t, err.Error(), "action limit")
	require.Equal(t, "A\nA\nA\n", stdout)
}

func TestRunTrace(t *testing.T) {
	_, stderr, err := execute(t, "run", "-c", "A", "--trace")
	require.NoError(t, err)
	require.Contains(t, stderr, "transition")
	require.Contains(t, stderr, "action")
}

func TestRunInputErrors(t *testing.T) {
	_, _, err := execute(t, "run")
	require.ErrorContains(t, err, "no code given")

	_, _, err = execute(t, "run", "file.rl", "-c", "A")
	require.ErrorContains(t, err, "multiple input sources")

	_, _, err = execute(t, "run", "-c", "A", "-o", "yaml")
	require.ErrorContains(t, err, "unknown output format")
}

func TestTokens(t *testing.T) {
	stdout, _, err := execute(t, "tokens", "-c", "2{F}")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "INT")
	require.Contains(t, lines[2], "ACTION")
	require.Contains(t, lines[4], "EOF")

	stdout, _, err = execute(t, "tokens", "-c", "12", "-o", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, `"value": 12`)
}

func TestTokensLexicalError(t *testing.T) {
	_, stderr, err := execute(t, "tokens", "-c", "F @@")
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stderr, "E1001")
	require.Contains(t, stderr, "F @@")
}

func TestAst(t *testing.T) {
	stdout, _, err := execute(t, "ast", "-c", "2 { if wall { L } else { R } }")
	require.NoError(t, err)
	for _, want := range []string{"Program", "Loop 2", "Conditional wall", "then: Block", "else: Block", "Action L"} {
		require.Contains(t, stdout, want)
	}

	stdout, _, err = execute(t, "ast", "-c", "while gem { J }", "-o", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, `"type": "ConditionalLoop"`)
	require.Contains(t, stdout, `"value": "gem"`)
}

func TestCheck(t *testing.T) {
	stdout, _, err := execute(t, "check", "-c", "2 { F } if wall { L }", "--sensors", "wall")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "ok\n"))
	require.Contains(t, stdout, "Loop")
	require.Contains(t, stdout, "max trip count   2")
}

func TestCheckLSP(t *testing.T) {
	stdout, _, err := execute(t, "check", "-c", "F\n  X", "--actions", "F", "-o", "lsp")
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stdout, `"uri": "<code>"`)
	require.Contains(t, stdout, `"code": "E1002"`)
	require.Contains(t, stdout, `"line": 1`)
	require.Contains(t, stdout, `"character": 2`)

	stdout, _, err = execute(t, "check", "-c", "F", "-o", "lsp")
	require.NoError(t, err)
	require.Contains(t, stdout, `"diagnostics": []`)
}

func TestCheckChallenge(t *testing.T) {
	config := writeConfig(t)

	stdout, _, err := execute(t, "--config", config, "--challenge", "lava", "check", "-c", "F J")
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stdout, "use at least 1 ConditionalLoop (found 0)")

	stdout, _, err = execute(t, "--config", config, "--challenge", "lava", "check", "-c", "while lava { J } F")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "ok\n"))

	_, stderr, err := execute(t, "--config", config, "--challenge", "lava", "check", "-c", "L")
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stderr, "invalid action")

	_, _, err = execute(t, "--config", config, "--challenge", "ice", "check", "-c", "F")
	require.ErrorContains(t, err, `unknown challenge "ice"`)
}

func TestChallenges(t *testing.T) {
	stdout, _, err := execute(t, "--config", writeConfig(t), "challenges")
	require.NoError(t, err)
	require.Contains(t, stdout, "lava\tHot floor")
	require.Contains(t, stdout, "actions: F J")
	require.Contains(t, stdout, "requires: at least 1 ConditionalLoop")

	stdout, _, err = execute(t, "--config", writeConfig(t), "challenges", "-o", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, `"id": "lava"`)
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "challenges")
	require.ErrorContains(t, err, "reading config")
}
