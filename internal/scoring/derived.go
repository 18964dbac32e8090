package scoring

// ReachScore estimates cross-language discoverability on a 0–100 scale.
func ReachScore(in PostInput, f Features) int {
	score := 30
	if f.HasEnglish {
		score += 35
	}

	switch in.MediaType {
	case MediaVideo:
		score += 20
	case MediaImage:
		score += 10
	case MediaNone, MediaLink, MediaPoll:
	}

	if in.TargetAudience == AudienceEngineer || in.TargetAudience == AudienceNews {
		score += 10
	}

	if f.HashtagCount >= 1 && f.HashtagCount <= 2 {
		score += 5
	}

	if score > 100 {
		return 100
	}
	return score
}

// AuthorDiversityRisk classifies how many posts the author made in the last 24h.
func AuthorDiversityRisk(consecutivePosts int) DiversityRisk {
	switch {
	case consecutivePosts <= 3:
		return RiskLow
	case consecutivePosts <= 7:
		return RiskMedium
	default:
		return RiskHigh
	}
}
