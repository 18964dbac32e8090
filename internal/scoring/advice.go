package scoring

import "fmt"

// Advice and warning thresholds for the continuous variant.
const (
	shortPostWords         = 15
	threadWorthyWords      = 100
	maxEmojiBeforeSpam     = 5
	maxHashtagsRecommended = 3
	notInterestedAlarm     = 0.10
)

// MsgEnterContent is the only checklist message for empty content.
const MsgEnterContent = "投稿内容を入力してください"

// ContinuousAdvice lists improvement opportunities in a fixed check order.
func ContinuousAdvice(in PostInput, f Features) []string {
	advice := []string{}

	if f.WordCount < shortPostWords {
		advice = append(advice, "もう少し具体的な内容を追加すると滞在時間(Dwell)が向上します")
	}

	switch in.MediaType {
	case MediaNone:
		advice = append(advice, "動画を追加するとアルゴリズムスコアが大幅に向上します（Video View重み: +2.0）")
	case MediaImage:
		advice = append(advice, "画像は良いですが、動画の方がより高いエンゲージメントが期待できます")
	case MediaVideo, MediaLink, MediaPoll:
	}

	if !f.IsQuestion {
		advice = append(advice, "質問形式にするとリプライ確率が上がります")
	}

	if !f.HasCallToAction {
		advice = append(advice, "「いいね・RT歓迎」などのCTAを追加するとエンゲージメントが向上します")
	}

	if !f.HasEnglish {
		advice = append(advice, "英語併記でPhoenix Retrievalによるグローバルリーチが向上します")
	}

	if !in.IsThread && f.WordCount > threadWorthyWords {
		advice = append(advice, "長文はスレッド形式にすると滞在時間とフォロー率が向上します")
	}

	switch {
	case f.EmojiCount == 0:
		advice = append(advice, "1-3個の絵文字を追加すると視認性が向上します")
	case f.EmojiCount > maxEmojiBeforeSpam:
		advice = append(advice, "絵文字が多すぎるとスパム判定のリスクがあります")
	}

	switch {
	case f.HashtagCount == 0:
		advice = append(advice, "1-2個の関連ハッシュタグを追加すると発見性が向上します")
	case f.HashtagCount > maxHashtagsRecommended:
		advice = append(advice, "ハッシュタグは2個以下に抑えると、スパム判定を回避できます")
	}

	if in.PostTime == PostTimeOffPeak {
		advice = append(advice, "投稿時間をピークタイム（7-9時、12-13時、19-22時）に変更すると効果的です")
	}

	return advice
}

// ContinuousWarnings lists negative-signal risks.
func ContinuousWarnings(in PostInput, f Features, n NegativeSignals) []string {
	warnings := []string{}

	if posts := in.postsLast24h(); posts > frequentPostingThreshold {
		warnings = append(warnings, fmt.Sprintf(
			"Author Diversity警告: 24時間以内に%d回投稿しています。連投はフィード表示優先度が下がります", posts))
	}

	if f.HasControversial {
		warnings = append(warnings, "攻撃的な表現が検出されました。ネガティブシグナルのリスクがあります")
	}

	if f.HasSensational {
		warnings = append(warnings, "センセーショナルな表現が検出されました。短期的なリーチは増えますが、長期的な評価に影響する可能性があります")
	}

	if n.NotInterested > notInterestedAlarm {
		warnings = append(warnings, "「興味なし」判定のリスクが高いです。コンテンツの見直しを推奨します")
	}

	if f.HashtagCount > excessiveHashtags {
		warnings = append(warnings, "ハッシュタグが多すぎます。スパムフィルターに引っかかる可能性があります")
	}

	return warnings
}

// ChecklistAdvice returns the summary line, then the reasons of unmet
// bonuses, then the reasons of applied penalties.
func ChecklistAdvice(in PostInput, bonuses, penalties []ScoreDetail, total float64) []string {
	if in.Content == "" {
		return []string{MsgEnterContent}
	}

	advice := []string{checklistSummary(total)}
	for _, d := range bonuses {
		if !d.Applied {
			advice = append(advice, d.Reason)
		}
	}
	for _, d := range penalties {
		if d.Applied {
			advice = append(advice, d.Reason)
		}
	}
	return advice
}

// ChecklistWarnings returns the reasons of applied penalties alone.
func ChecklistWarnings(in PostInput, penalties []ScoreDetail) []string {
	warnings := []string{}
	if in.Content == "" {
		return warnings
	}
	for _, d := range penalties {
		if d.Applied {
			warnings = append(warnings, d.Reason)
		}
	}
	return warnings
}

func checklistSummary(total float64) string {
	switch {
	case total >= 80:
		return "素晴らしい投稿です！このまま投稿しましょう"
	case total >= 60:
		return "良い投稿です。少し工夫するとさらに伸びます"
	case total >= 40:
		return "もう一工夫が必要です。以下のポイントを見直しましょう"
	default:
		return "このままの投稿は再検討をおすすめします"
	}
}
