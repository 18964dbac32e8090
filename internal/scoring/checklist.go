package scoring

type checkItem struct {
	label  string
	points int
	reason string
	holds  func(in PostInput, f Features) bool
}

var checklistBonuses = []checkItem{
	{
		label:  "質問形式",
		points: 15,
		reason: "質問形式にするとリプライが増えやすくなります",
		holds:  func(_ PostInput, f Features) bool { return f.IsQuestion },
	},
	{
		label:  "画像付き",
		points: 20,
		reason: "画像を添付するとタイムラインで目に留まりやすくなります",
		holds:  func(in PostInput, _ Features) bool { return in.MediaType == MediaImage },
	},
	{
		label:  "動画付き",
		points: 25,
		reason: "動画を添付すると滞在時間が大きく伸びます",
		holds:  func(in PostInput, _ Features) bool { return in.MediaType == MediaVideo },
	},
	{
		label:  "適切な長さ(100〜200文字)",
		points: 10,
		reason: "100〜200文字程度にまとめると最後まで読まれやすくなります",
		holds:  func(_ PostInput, f Features) bool { return f.CharCount >= 100 && f.CharCount <= 200 },
	},
	{
		label:  "ハッシュタグ1〜3個",
		points: 6,
		reason: "関連するハッシュタグを1〜3個付けると発見されやすくなります",
		holds:  func(_ PostInput, f Features) bool { return f.HashtagCount >= 1 && f.HashtagCount <= 3 },
	},
	{
		label:  "絵文字1〜3個",
		points: 5,
		reason: "絵文字を1〜3個加えると視認性が上がります",
		holds:  func(_ PostInput, f Features) bool { return f.EmojiCount >= 1 && f.EmojiCount <= 3 },
	},
	{
		label:  "読みやすい改行",
		points: 5,
		reason: "文章量に合わせて適度に改行すると読みやすくなります",
		holds:  func(_ PostInput, f Features) bool { return properLineBreaks(f.CharCount, f.LineBreakCount) },
	},
}

// Penalty points are stored negative.
var checklistPenalties = []checkItem{
	{
		label:  "短すぎる(30文字未満)",
		points: -10,
		reason: "30文字未満の投稿は情報量が少なく評価されにくいです",
		// Empty content is reported by the advice engine instead.
		holds: func(_ PostInput, f Features) bool { return f.CharCount > 0 && f.CharCount < 30 },
	},
	{
		label:  "長すぎる(250文字超)",
		points: -15,
		reason: "250文字を超えると途中で読み飛ばされやすくなります",
		holds:  func(_ PostInput, f Features) bool { return f.CharCount > 250 },
	},
	{
		label:  "ハッシュタグ過多(5個以上)",
		points: -20,
		reason: "ハッシュタグが5個以上あるとスパム判定のリスクがあります",
		holds:  func(_ PostInput, f Features) bool { return f.HashtagCount >= 5 },
	},
	{
		label:  "URLのみ",
		points: -30,
		reason: "URLだけの投稿は外部誘導とみなされ表示が抑制されます",
		holds:  func(_ PostInput, f Features) bool { return f.URLOnly },
	},
	{
		label:  "攻撃的な表現",
		points: -25,
		reason: "攻撃的な表現はブロックや通報のリスクを高めます",
		holds:  func(_ PostInput, f Features) bool { return f.HasOffensive },
	},
}

// properLineBreaks: 2–4 breaks for 100+ runes, 1–2 for 50–99, never below 50.
func properLineBreaks(chars, breaks int) bool {
	switch {
	case chars >= 100:
		return breaks >= 2 && breaks <= 4
	case chars >= 50:
		return breaks >= 1 && breaks <= 2
	default:
		return false
	}
}
