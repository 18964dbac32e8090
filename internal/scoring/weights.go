package scoring

import (
	"fmt"
	"math"
)

// AlgorithmWeights defines how much each predicted action moves the score.
// Positive actions carry non-negative weights; negative actions carry
// non-positive weights.
type AlgorithmWeights struct {
	Favorite     float64 `json:"favorite" yaml:"favorite"`
	Reply        float64 `json:"reply" yaml:"reply"`
	Repost       float64 `json:"repost" yaml:"repost"`
	Click        float64 `json:"click" yaml:"click"`
	VideoView    float64 `json:"video_view" yaml:"video_view"`
	PhotoExpand  float64 `json:"photo_expand" yaml:"photo_expand"`
	Dwell        float64 `json:"dwell" yaml:"dwell"`
	Share        float64 `json:"share" yaml:"share"`
	FollowAuthor float64 `json:"follow_author" yaml:"follow_author"`

	NotInterested float64 `json:"not_interested" yaml:"not_interested"`
	BlockAuthor   float64 `json:"block_author" yaml:"block_author"`
	MuteAuthor    float64 `json:"mute_author" yaml:"mute_author"`
	Report        float64 `json:"report" yaml:"report"`
}

// DefaultWeights returns the published ranking weights.
func DefaultWeights() AlgorithmWeights {
	return AlgorithmWeights{
		Favorite:     0.5,
		Reply:        1.0,
		Repost:       1.5,
		Click:        0.3,
		VideoView:    2.0,
		PhotoExpand:  0.4,
		Dwell:        2.5,
		Share:        1.8,
		FollowAuthor: 3.0,

		NotInterested: -10.0,
		BlockAuthor:   -50.0,
		MuteAuthor:    -30.0,
		Report:        -100.0,
	}
}

// Validate checks that every weight is finite and has the right sign.
func (w AlgorithmWeights) Validate() error {
	for _, nw := range append(w.positives(), w.negatives()...) {
		if math.IsNaN(nw.value) || math.IsInf(nw.value, 0) {
			return fmt.Errorf("weight %s must be finite: %f", nw.name, nw.value)
		}
	}
	for _, nw := range w.positives() {
		if nw.value < 0 {
			return fmt.Errorf("weight %s must not be negative: %f", nw.name, nw.value)
		}
	}
	for _, nw := range w.negatives() {
		if nw.value > 0 {
			return fmt.Errorf("weight %s must not be positive: %f", nw.name, nw.value)
		}
	}
	return nil
}

// IsZero reports whether no weight has been set.
func (w AlgorithmWeights) IsZero() bool {
	return w == AlgorithmWeights{}
}

type namedWeight struct {
	name  string
	value float64
}

func (w AlgorithmWeights) positives() []namedWeight {
	return []namedWeight{
		{"favorite", w.Favorite},
		{"reply", w.Reply},
		{"repost", w.Repost},
		{"click", w.Click},
		{"video_view", w.VideoView},
		{"photo_expand", w.PhotoExpand},
		{"dwell", w.Dwell},
		{"share", w.Share},
		{"follow_author", w.FollowAuthor},
	}
}

func (w AlgorithmWeights) negatives() []namedWeight {
	return []namedWeight{
		{"not_interested", w.NotInterested},
		{"block_author", w.BlockAuthor},
		{"mute_author", w.MuteAuthor},
		{"report", w.Report},
	}
}
