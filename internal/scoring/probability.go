package scoring

// Posting-frequency thresholds (posts in the last 24h).
const (
	heavyPostingThreshold    = 10
	frequentPostingThreshold = 5
)

// excessiveHashtags is the raw hashtag count above which the spam signals fire.
const excessiveHashtags = 5

// EngagementProbs estimates the probability of each positive action.
// Hashtags and mentions only count when the input declares them.
func EngagementProbs(in PostInput, f Features) EngagementProbabilities {
	p := EngagementProbabilities{
		Favorite:     0.15,
		Reply:        0.05,
		Repost:       0.03,
		Click:        0.10,
		Dwell:        0.20,
		Share:        0.02,
		FollowAuthor: 0.01,
	}

	switch {
	case f.WordCount > 50:
		p.Dwell += 0.15
	case f.WordCount > 20:
		p.Dwell += 0.08
	case f.WordCount < 10:
		p.Dwell -= 0.05
	}

	switch in.MediaType {
	case MediaVideo:
		p.VideoView = 0.4
		p.Dwell += 0.25
		p.Favorite += 0.10
		p.Repost += 0.05
		p.Share += 0.03
	case MediaImage:
		p.PhotoExpand = 0.35
		p.Dwell += 0.10
		p.Favorite += 0.08
	case MediaLink:
		p.Click += 0.15
		p.Dwell += 0.05
	case MediaPoll:
		p.Reply += 0.10
		p.Dwell += 0.12
		p.Favorite += 0.05
	case MediaNone:
	}

	switch {
	case f.EmojiCount >= 1 && f.EmojiCount <= 3:
		p.Favorite += 0.05
		p.Dwell += 0.03
	case f.EmojiCount > 5:
		p.Favorite -= 0.03
		p.Dwell -= 0.02
	}

	hashtags := 0
	if in.HasHashtags {
		hashtags = f.HashtagCount
	}
	switch {
	case hashtags >= 1 && hashtags <= 2:
		p.Click += 0.03
		p.Repost += 0.02
	case hashtags > 3:
		p.Favorite -= 0.05
		p.Click -= 0.02
	}

	mentions := 0
	if in.HasMentions {
		mentions = f.MentionCount
	}
	switch {
	case mentions >= 1 && mentions <= 2:
		p.Reply += 0.08
		p.Click += 0.05
	case mentions > 3:
		p.Favorite -= 0.03
	}

	if f.IsQuestion {
		p.Reply += 0.12
		p.Dwell += 0.05
	}

	if f.HasCallToAction {
		p.Repost += 0.04
		p.FollowAuthor += 0.02
		p.Reply += 0.03
	}

	switch in.TargetAudience {
	case AudienceEngineer:
		p.Reply += 0.05
		p.Repost += 0.02
	case AudienceCreator:
		p.Favorite += 0.08
		p.Share += 0.02
	case AudienceBusiness:
		p.Click += 0.05
		p.FollowAuthor += 0.02
	case AudienceNews:
		p.Repost += 0.08
		p.Click += 0.05
	case AudienceGeneral:
	}

	if f.HasEnglish {
		p.Repost += 0.03
		p.Click += 0.02
		p.FollowAuthor += 0.01
	}

	if in.IsThread {
		p.Dwell += 0.15
		p.FollowAuthor += 0.02
		p.Click += 0.05
	}

	switch in.PostTime {
	case PostTimePeak:
		p.Favorite += 0.05
		p.Reply += 0.03
		p.Repost += 0.03
	case PostTimeOffPeak:
		p.Favorite -= 0.02
		p.Reply -= 0.01
	case PostTimeUnknown:
	}

	return EngagementProbabilities{
		Favorite:     clamp(p.Favorite, 0, 1),
		Reply:        clamp(p.Reply, 0, 1),
		Repost:       clamp(p.Repost, 0, 1),
		Click:        clamp(p.Click, 0, 1),
		VideoView:    clamp(p.VideoView, 0, 1),
		PhotoExpand:  clamp(p.PhotoExpand, 0, 1),
		Dwell:        clamp(p.Dwell, 0, 1),
		Share:        clamp(p.Share, 0, 1),
		FollowAuthor: clamp(p.FollowAuthor, 0, 1),
	}
}

// NegativeProbs estimates the probability of each negative action.
func NegativeProbs(in PostInput, f Features) NegativeSignals {
	n := NegativeSignals{
		NotInterested: 0.02,
		BlockAuthor:   0.001,
		MuteAuthor:    0.005,
		Report:        0.0001,
	}

	if f.HasControversial {
		n.NotInterested += 0.08
		n.BlockAuthor += 0.02
		n.MuteAuthor += 0.05
		n.Report += 0.01
	}

	if f.HasSensational {
		n.NotInterested += 0.05
		n.MuteAuthor += 0.02
	}

	switch posts := in.postsLast24h(); {
	case posts > heavyPostingThreshold:
		n.NotInterested += 0.10
		n.MuteAuthor += 0.08
	case posts > frequentPostingThreshold:
		n.NotInterested += 0.05
		n.MuteAuthor += 0.03
	}

	if f.HashtagCount > excessiveHashtags {
		n.NotInterested += 0.06
		n.MuteAuthor += 0.03
	}

	return NegativeSignals{
		NotInterested: clamp(n.NotInterested, 0, 1),
		BlockAuthor:   clamp(n.BlockAuthor, 0, 1),
		MuteAuthor:    clamp(n.MuteAuthor, 0, 1),
		Report:        clamp(n.Report, 0, 1),
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
