package scoring

import "math"

// Breakdown bucket names.
const (
	BucketDwell      = "dwell"
	BucketVideoView  = "video_view"
	BucketEngagement = "engagement"
	BucketBase       = "base"
	BucketBonus      = "bonus"
)

// Aggregator turns features into a scored result. Implementations fill every
// field except the derived metrics, which the Engine adds.
type Aggregator interface {
	Variant() Variant
	Aggregate(in PostInput, f Features) ScoreResult
}

// ContinuousAggregator combines per-action probabilities with AlgorithmWeights.
type ContinuousAggregator struct {
	weights AlgorithmWeights
}

// NewContinuousAggregator creates a ContinuousAggregator with the given weights.
func NewContinuousAggregator(weights AlgorithmWeights) *ContinuousAggregator {
	return &ContinuousAggregator{weights: weights}
}

func (a *ContinuousAggregator) Variant() Variant { return VariantContinuous }

func (a *ContinuousAggregator) Aggregate(in PostInput, f Features) ScoreResult {
	probs := EngagementProbs(in, f)
	negs := NegativeProbs(in, f)
	breakdown := ContinuousBreakdown(probs, negs, a.weights)

	raw := -breakdown.NegativeImpact
	for _, b := range breakdown.Buckets {
		raw += b.Value
	}

	return ScoreResult{
		Variant:    VariantContinuous,
		TotalScore: clamp(raw, 0, 100),
		Breakdown:  breakdown,
		Advice:     ContinuousAdvice(in, f),
		Warnings:   ContinuousWarnings(in, f, negs),
		Continuous: &ContinuousDetail{
			Engagement: probs,
			Negative:   negs,
			Weights:    a.weights,
		},
	}
}

// ContinuousBreakdown splits the weighted probabilities into dwell, video
// and engagement buckets plus the negative impact.
func ContinuousBreakdown(p EngagementProbabilities, n NegativeSignals, w AlgorithmWeights) Breakdown {
	dwell := p.Dwell * w.Dwell * 10
	video := p.VideoView * w.VideoView * 10
	engagement := (p.Favorite*w.Favorite +
		p.Reply*w.Reply +
		p.Repost*w.Repost +
		p.Click*w.Click +
		p.PhotoExpand*w.PhotoExpand +
		p.Share*w.Share +
		p.FollowAuthor*w.FollowAuthor) * 10

	negative := (n.NotInterested*math.Abs(w.NotInterested) +
		n.BlockAuthor*math.Abs(w.BlockAuthor) +
		n.MuteAuthor*math.Abs(w.MuteAuthor) +
		n.Report*math.Abs(w.Report)) * 0.5

	return Breakdown{
		Buckets: []Contribution{
			{Name: BucketDwell, Value: dwell},
			{Name: BucketVideoView, Value: video},
			{Name: BucketEngagement, Value: engagement},
		},
		NegativeImpact: negative,
	}
}

// ChecklistBaseScore is the score of a post that triggers no checklist item.
const ChecklistBaseScore = 50

// ChecklistAggregator applies fixed bonus and penalty items around a baseline.
type ChecklistAggregator struct{}

// NewChecklistAggregator creates a ChecklistAggregator.
func NewChecklistAggregator() *ChecklistAggregator {
	return &ChecklistAggregator{}
}

func (a *ChecklistAggregator) Variant() Variant { return VariantChecklist }

func (a *ChecklistAggregator) Aggregate(in PostInput, f Features) ScoreResult {
	bonuses := evaluateItems(checklistBonuses, in, f, false)
	penalties := evaluateItems(checklistPenalties, in, f, true)

	bonus, penalty := 0, 0
	for _, d := range bonuses {
		if d.Applied {
			bonus += d.Points
		}
	}
	for _, d := range penalties {
		if d.Applied {
			penalty += -d.Points
		}
	}

	total := clamp(float64(ChecklistBaseScore+bonus-penalty), 0, 100)

	return ScoreResult{
		Variant:    VariantChecklist,
		TotalScore: total,
		Breakdown: Breakdown{
			Buckets: []Contribution{
				{Name: BucketBase, Value: ChecklistBaseScore},
				{Name: BucketBonus, Value: float64(bonus)},
			},
			NegativeImpact: float64(penalty),
		},
		Advice:   ChecklistAdvice(in, bonuses, penalties, total),
		Warnings: ChecklistWarnings(in, penalties),
		Checklist: &ChecklistDetail{
			BasePoints:    ChecklistBaseScore,
			BonusPoints:   bonus,
			PenaltyPoints: penalty,
			Bonuses:       bonuses,
			Penalties:     penalties,
			Stats:         f.Stats(),
		},
	}
}

// evaluateItems checks every item. The reason is attached when the item
// produces a message: an unmet bonus or an applied penalty.
func evaluateItems(items []checkItem, in PostInput, f Features, penalty bool) []ScoreDetail {
	out := make([]ScoreDetail, 0, len(items))
	for _, it := range items {
		d := ScoreDetail{Label: it.label, Points: it.points, Applied: it.holds(in, f)}
		if d.Applied == penalty {
			d.Reason = it.reason
		}
		out = append(out, d)
	}
	return out
}
