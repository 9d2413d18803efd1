package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/feynman/internal/checkpoints"
	"github.com/abhisek/feynman/internal/feedback"
	"github.com/abhisek/feynman/internal/lessons"
	"github.com/abhisek/feynman/internal/mastery"
)

const sampleNotes = "Photosynthesis converts sunlight into chemical energy inside chloroplasts."

// execute runs the root command with an empty config file and a temp DB.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FEYNMAN_DB", "")
	t.Setenv("FEYNMAN_LOG_LEVEL", "")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o644))

	resetFlags(rootCmd)
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--config", cfgPath, "--db", filepath.Join(dir, "feynman.db")))
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default, since rootCmd is reused
// across tests.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestConceptsCommand(t *testing.T) {
	out, err := execute(t, sampleNotes, "concepts", "--json=false")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Photosynthesis", lines[0])
}

func TestConceptsCommand_FileArg(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleNotes), 0o644))

	out, err := execute(t, "", "concepts", path, "--json=true")
	require.NoError(t, err)

	var got []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got)
	assert.Equal(t, "Photosynthesis", got[0]["term"])
}

func TestCheckpointsCommand_SeededIsStable(t *testing.T) {
	first, err := execute(t, sampleNotes, "checkpoints", "--seeded", "--json=false")
	require.NoError(t, err)
	second, err := execute(t, sampleNotes, "checkpoints", "--seeded", "--json=false")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "1. Understanding Photosynthesis"))
}

func TestCheckpointsCommand_JSON(t *testing.T) {
	out, err := execute(t, "", "checkpoints", "--json=true", "--seeded=false")
	require.NoError(t, err)

	var cps []checkpoints.Checkpoint
	require.NoError(t, json.Unmarshal([]byte(out), &cps))
	assert.Len(t, cps, checkpoints.MinCheckpoints)
	assert.Equal(t, "Grasp the Main Concept", cps[0].Title)
}

func TestExplainCommand(t *testing.T) {
	out, err := execute(t, sampleNotes, "explain", "--term", "Photosynthesis", "--json=false")
	require.NoError(t, err)

	for _, want := range []string{"Understanding Photosynthesis", "Simplified Explanation", "Analogies & Examples"} {
		assert.Contains(t, out, want)
	}
}

func TestExplainCommand_TitleUsedAsGiven(t *testing.T) {
	out, err := execute(t, "Gravity pulls things down", "explain", "--title", "Grasp the Main Concept", "--json=true")
	require.NoError(t, err)

	var content lessons.ExplanationContent
	require.NoError(t, json.Unmarshal([]byte(out), &content))
	require.NotEmpty(t, content.KeyConcepts)
	assert.Equal(t, "Gravity", content.KeyConcepts[0].Term)
	assert.Contains(t, content.KeyConcepts[0].Definition, "In the context of Grasp the Main Concept,")
	assert.NotContains(t, out, "Understanding Grasp")
}

func TestExplainCommand_TermAddsPrefix(t *testing.T) {
	out, err := execute(t, "Gravity pulls things down", "explain", "--term", "Gravity", "--json=true")
	require.NoError(t, err)

	var content lessons.ExplanationContent
	require.NoError(t, json.Unmarshal([]byte(out), &content))
	require.NotEmpty(t, content.KeyConcepts)
	assert.Contains(t, content.KeyConcepts[0].Definition, "In the context of Understanding Gravity,")
}

func TestExplainCommand_TitleAndTermConflict(t *testing.T) {
	_, err := execute(t, sampleNotes, "explain", "--title", "A", "--term", "B")
	assert.Error(t, err)
}

func TestExplainCommand_RequiresTitle(t *testing.T) {
	_, err := execute(t, sampleNotes, "explain", "--title", " ")
	assert.Error(t, err)
}

func TestScoreCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	model := "checkpoints:\n" +
		"  - description: Recursion\n" +
		"    criteria: [Explain simply]\n" +
		"    verification: Teach back\n" +
		"    answer: Explain simply means teaching it plainly\n"
	require.NoError(t, os.WriteFile(path, []byte(model), 0o644))

	out, err := execute(t, "", "score", path, "--format", "", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Overall: Emerging 46%")

	out, err = execute(t, "", "score", path, "--format", "yaml", "--json=true")
	require.NoError(t, err)
	var r mastery.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 46, r.OverallScore)
}

func TestScoreCommand_InvalidModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"checkpoints":[{"description":"x"}]}`), 0o644))

	_, err := execute(t, "", "score", path, "--format", "", "--json=false")
	var invalid *feedback.ErrInvalidModel
	assert.ErrorAs(t, err, &invalid)
}

func TestScoreCommand_BadFormat(t *testing.T) {
	_, err := execute(t, "", "score", "model.json", "--format", "toml")
	assert.Error(t, err)
}

func TestThemeCommand(t *testing.T) {
	out, err := execute(t, "", "theme", "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}

func TestThemeCommand_RejectsUnknown(t *testing.T) {
	_, err := execute(t, "", "theme", "blue")
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "max_chars: 1000")
	assert.Contains(t, out, "feynman.db")
}

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"(devel)", "(devel)"},
		{"1.2", "v1.2.0"},
		{"v1.2.3", "v1.2.3"},
		{"v2.0.0-rc.1", "v2.0.0-rc.1"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, displayVersion(tt.in), tt.in)
	}
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héé", truncateRunes("hééllo", 3))
	assert.Equal(t, "short", truncateRunes("short", 10))
	assert.Equal(t, "unbounded", truncateRunes("unbounded", 0))
}

func TestSaveModelFile_RoundTrip(t *testing.T) {
	for _, name := range []string{"model.json", "model.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		m := feedback.DefaultModel().SetAnswer(0, "It is simple.")

		require.NoError(t, saveModelFile(path, m))
		got, err := loadModelFile(path, feedback.FormatFromPath(path))
		require.NoError(t, err, name)
		assert.Equal(t, m, got, name)
	}
}
