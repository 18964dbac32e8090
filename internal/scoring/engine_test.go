package scoring

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleInputs() []PostInput {
	return []PostInput{
		{},
		{Content: "   "},
		{Content: "https://example.com"},
		{Content: "新しいCLIを公開しました！感想を教えてください？ #golang 🚀", MediaType: MediaVideo, TargetAudience: AudienceEngineer, PostTime: PostTimePeak},
		{Content: "【速報】衝撃の真実を暴露 クソ #a #b #c #d #e #f #g", ConsecutivePosts: 15, HasHashtags: true},
		{Content: strings.Repeat("Long English text about distributed systems. ", 30), IsThread: true, HasEnglish: true},
		{Content: "Poll time: tabs or spaces? @gopher @rustacean", MediaType: MediaPoll, HasMentions: true, PostTime: PostTimeOffPeak},
		{Content: "😀😀😀😀😀😀😀 #x #y #z #w", MediaType: MediaImage, TargetAudience: AudienceCreator, HasHashtags: true, ConsecutivePosts: -3},
		{Content: "Read this https://example.com/article", MediaType: MediaLink, TargetAudience: AudienceBusiness},
	}
}

func TestNewEngineDefaults(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)
	assert.Equal(t, VariantContinuous, e.Variant())
	assert.Equal(t, DefaultWeights(), e.Weights())
	assert.Equal(t, DefaultLexicon(), e.Lexicon())
}

func TestNewEngineRejectsBadOptions(t *testing.T) {
	bad := DefaultWeights()
	bad.Report = 5
	_, err := NewEngine(WithWeights(bad))
	assert.ErrorContains(t, err, "report")

	_, err = NewEngine(WithLexicon(Lexicon{CategoryOffensive: {`(unclosed`}}))
	assert.ErrorContains(t, err, "invalid lexicon")

	_, err = NewEngine(WithVariant(Variant(9)))
	assert.Error(t, err)
}

func TestEvaluateRanges(t *testing.T) {
	e, err := NewEngine(WithLogger(discardLogger()))
	require.NoError(t, err)

	for _, v := range []Variant{VariantContinuous, VariantChecklist} {
		for _, in := range sampleInputs() {
			r := e.EvaluateVariant(in, v)
			assert.Equal(t, v, r.Variant)
			assert.GreaterOrEqual(t, r.TotalScore, 0.0)
			assert.LessOrEqual(t, r.TotalScore, 100.0)
			assert.NotNil(t, r.Advice)
			assert.NotNil(t, r.Warnings)
			assert.GreaterOrEqual(t, r.ReachScore, 30)
			assert.LessOrEqual(t, r.ReachScore, 100)
			assert.GreaterOrEqual(t, r.Breakdown.NegativeImpact, 0.0)
			for _, b := range r.Breakdown.Buckets {
				assert.GreaterOrEqual(t, b.Value, 0.0, b.Name)
			}

			if v == VariantContinuous {
				require.NotNil(t, r.Continuous)
				p, n := r.Continuous.Engagement, r.Continuous.Negative
				for _, x := range []float64{
					p.Favorite, p.Reply, p.Repost, p.Click, p.VideoView, p.PhotoExpand, p.Dwell, p.Share, p.FollowAuthor,
					n.NotInterested, n.BlockAuthor, n.MuteAuthor, n.Report,
				} {
					assert.GreaterOrEqual(t, x, 0.0)
					assert.LessOrEqual(t, x, 1.0)
				}
			} else {
				require.NotNil(t, r.Checklist)
				c := r.Checklist
				assert.Equal(t, clamp(float64(50+c.BonusPoints-c.PenaltyPoints), 0, 100), r.TotalScore)
			}
		}
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	e, err := NewEngine(WithVariant(VariantChecklist))
	require.NoError(t, err)

	for _, in := range sampleInputs() {
		for _, v := range []Variant{VariantContinuous, VariantChecklist} {
			a, err := json.Marshal(e.EvaluateVariant(in, v))
			require.NoError(t, err)
			b, err := json.Marshal(e.EvaluateVariant(in, v))
			require.NoError(t, err)
			assert.Equal(t, string(a), string(b))
		}
	}
}

func TestEvaluateMonotonic(t *testing.T) {
	text := "週末に作ったツールを紹介します"

	none := Evaluate(PostInput{Content: text})
	video := Evaluate(PostInput{Content: text, MediaType: MediaVideo})
	assert.GreaterOrEqual(t, video.Continuous.Engagement.VideoView, none.Continuous.Engagement.VideoView)
	assert.GreaterOrEqual(t, video.Continuous.Engagement.Dwell, none.Continuous.Engagement.Dwell)
	assert.GreaterOrEqual(t, video.Continuous.Engagement.Favorite, none.Continuous.Engagement.Favorite)

	few := Evaluate(PostInput{Content: text, ConsecutivePosts: 3})
	many := Evaluate(PostInput{Content: text, ConsecutivePosts: 12})
	assert.GreaterOrEqual(t, many.Continuous.Negative.NotInterested, few.Continuous.Negative.NotInterested)
	assert.Equal(t, RiskLow, few.DiversityRisk)
	assert.Equal(t, RiskHigh, many.DiversityRisk)
}

func TestEvaluateScenarios(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	t.Run("six hashtags", func(t *testing.T) {
		in := PostInput{Content: "#a #b #c #d #e #f"}
		base := PostInput{Content: "#a #b #c #d #e"}

		cl := e.EvaluateVariant(in, VariantChecklist)
		assert.True(t, detail(t, cl.Checklist.Penalties, "ハッシュタグ過多(5個以上)").Applied)

		got := e.Evaluate(in).Continuous.Negative
		ref := e.Evaluate(base).Continuous.Negative
		assert.InDelta(t, 0.06, got.NotInterested-ref.NotInterested, eps)
		assert.InDelta(t, 0.03, got.MuteAuthor-ref.MuteAuthor, eps)
	})

	t.Run("negative posts", func(t *testing.T) {
		r := e.Evaluate(PostInput{Content: "hi", ConsecutivePosts: -10})
		assert.Equal(t, RiskLow, r.DiversityRisk)
		assert.Empty(t, r.Warnings)
	})

	t.Run("unknown variant falls back", func(t *testing.T) {
		r := e.EvaluateVariant(PostInput{Content: "hi"}, Variant(42))
		assert.Equal(t, VariantContinuous, r.Variant)
	})
}

func TestEvaluateConcurrent(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	inputs := sampleInputs()
	want := make([]ScoreResult, len(inputs))
	for i, in := range inputs {
		want[i] = e.Evaluate(in)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				assert.Equal(t, want[i], e.Evaluate(in))
			}
		}()
	}
	wg.Wait()
}

func TestVariantText(t *testing.T) {
	var v Variant
	require.NoError(t, json.Unmarshal([]byte(`"checklist"`), &v))
	assert.Equal(t, VariantChecklist, v)
	assert.Error(t, json.Unmarshal([]byte(`"weighted"`), &v))

	var in PostInput
	err := json.Unmarshal([]byte(`{"content":"x","media_type":"video","target_audience":"news","post_time":"peak"}`), &in)
	require.NoError(t, err)
	assert.Equal(t, MediaVideo, in.MediaType)
	assert.Equal(t, AudienceNews, in.TargetAudience)
	assert.Equal(t, PostTimePeak, in.PostTime)

	assert.Error(t, json.Unmarshal([]byte(`{"media_type":"gif"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"target_audience":"kids"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"post_time":"noon"}`), &in))

	out, err := json.Marshal(PostInput{MediaType: MediaPoll})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"media_type":"poll"`)
	assert.Contains(t, string(out), `"target_audience":"general"`)
	assert.Contains(t, string(out), `"post_time":"unknown"`)
}
