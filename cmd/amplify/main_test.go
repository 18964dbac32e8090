package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Amplify/internal/config"
	"github.com/MikeSquared-Agency/Amplify/internal/scoring"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestBelowThresholdError(t *testing.T) {
	err := &BelowThresholdError{Score: 42.5, Threshold: 60}
	assert.Equal(t, "score 42.5 is below the minimum 60.0", err.Error())

	var below *BelowThresholdError
	assert.True(t, errors.As(errors.Join(err, errors.New("context")), &below))
}

func TestScoreCommandText(t *testing.T) {
	out, err := runCommand(t, "", "score", "--variant", "checklist", "--media", "image", "この設計、どう思いますか?")
	require.NoError(t, err)

	assert.Contains(t, out, "Score: ")
	assert.Contains(t, out, "(checklist)")
	assert.Contains(t, out, "[x] 質問形式")
	assert.Contains(t, out, "[x] 画像付き")
	assert.Contains(t, out, "Advice:")
}

func TestScoreCommandJSONFromStdin(t *testing.T) {
	text := "新しいCLIを公開しました！ #golang"
	out, err := runCommand(t, text+"\n", "score", "--json", "--media", "video", "--audience", "engineer", "--posts", "9")
	require.NoError(t, err)

	var got scoring.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	want := scoring.Evaluate(scoring.PostInput{
		Content:          text,
		MediaType:        scoring.MediaVideo,
		TargetAudience:   scoring.AudienceEngineer,
		ConsecutivePosts: 9,
	})
	assert.InDelta(t, want.TotalScore, got.TotalScore, 1e-9)
	assert.Equal(t, want.Warnings, got.Warnings)
	assert.Equal(t, scoring.RiskHigh, got.DiversityRisk)
}

func TestScoreCommandMinScore(t *testing.T) {
	_, err := runCommand(t, "", "score", "--min-score", "99", "short")
	var below *BelowThresholdError
	require.True(t, errors.As(err, &below), "got %v", err)
	assert.Equal(t, 99.0, below.Threshold)

	_, err = runCommand(t, "", "score", "--min-score", "0", "short")
	assert.NoError(t, err)
}

func TestScoreCommandBadFlags(t *testing.T) {
	_, err := runCommand(t, "", "score", "--media", "gif", "x")
	assert.ErrorContains(t, err, "unknown media type")

	_, err = runCommand(t, "", "score", "--variant", "weighted", "x")
	assert.ErrorContains(t, err, "unknown variant")
}

func TestWeightsCommand(t *testing.T) {
	out, err := runCommand(t, "", "weights")
	require.NoError(t, err)

	var got scoring.AlgorithmWeights
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, scoring.DefaultWeights(), got)
}

func TestWeightsCommandFromConfig(t *testing.T) {
	cfgPath := writeFile(t, "amplify.yaml", "scoring:\n  weights:\n    video_view: 4\n")
	out, err := runCommand(t, "", "weights", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "video_view: 4")

	bad := writeFile(t, "bad.yaml", "scoring:\n  weights:\n    report: 1\n")
	_, err = runCommand(t, "", "weights", "--config", bad)
	assert.ErrorContains(t, err, "invalid config")
}

func TestLexiconCommand(t *testing.T) {
	lexPath := writeFile(t, "lexicon.yaml", "call_to_action:\n  - subscribe\n")
	cfgPath := writeFile(t, "amplify.yaml", "scoring:\n  lexicon_path: "+lexPath+"\n")

	out, err := runCommand(t, "", "lexicon", "--config", cfgPath)
	require.NoError(t, err)

	var got map[string][]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"subscribe"}, got["call_to_action"])
	assert.NotEmpty(t, got["offensive"])

	out, err = runCommand(t, "", "score", "--config", cfgPath, "--json", "Subscribe for more")
	require.NoError(t, err)
	assert.NotContains(t, out, "CTA")
}

func TestRunServerStopsOnCancel(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Server.Port = 0
	cfg.Server.MetricsPort = 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, runServer(ctx, cfg, prometheus.NewRegistry(), discardLogger()))
}

func TestRunServerBadLexicon(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Scoring.LexiconPath = filepath.Join(t.TempDir(), "missing.yaml")

	err = runServer(context.Background(), cfg, prometheus.NewRegistry(), discardLogger())
	assert.ErrorContains(t, err, "read lexicon")
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "質問  ", padRight("質問", 6))
	assert.Equal(t, "長すぎる", padRight("長すぎる", 4))
}
