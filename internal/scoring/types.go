package scoring

import "fmt"

// MediaType is the attachment kind of a post.
type MediaType uint8

const (
	MediaNone MediaType = iota
	MediaImage
	MediaVideo
	MediaLink
	MediaPoll
)

var mediaTypeNames = [...]string{"none", "image", "video", "link", "poll"}

func (m MediaType) String() string {
	if int(m) < len(mediaTypeNames) {
		return mediaTypeNames[m]
	}
	return fmt.Sprintf("MediaType(%d)", m)
}

func (m MediaType) MarshalText() ([]byte, error) {
	if int(m) >= len(mediaTypeNames) {
		return nil, fmt.Errorf("invalid media type %d", m)
	}
	return []byte(m.String()), nil
}

func (m *MediaType) UnmarshalText(b []byte) error {
	v, err := ParseMediaType(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMediaType maps a wire name to a MediaType. Empty means none.
func ParseMediaType(s string) (MediaType, error) {
	if s == "" {
		return MediaNone, nil
	}
	for i, name := range mediaTypeNames {
		if name == s {
			return MediaType(i), nil
		}
	}
	return MediaNone, fmt.Errorf("unknown media type %q", s)
}

// Audience is the readership a post is written for.
type Audience uint8

const (
	AudienceGeneral Audience = iota
	AudienceEngineer
	AudienceCreator
	AudienceBusiness
	AudienceNews
)

var audienceNames = [...]string{"general", "engineer", "creator", "business", "news"}

func (a Audience) String() string {
	if int(a) < len(audienceNames) {
		return audienceNames[a]
	}
	return fmt.Sprintf("Audience(%d)", a)
}

func (a Audience) MarshalText() ([]byte, error) {
	if int(a) >= len(audienceNames) {
		return nil, fmt.Errorf("invalid audience %d", a)
	}
	return []byte(a.String()), nil
}

func (a *Audience) UnmarshalText(b []byte) error {
	v, err := ParseAudience(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAudience maps a wire name to an Audience. Empty means general.
func ParseAudience(s string) (Audience, error) {
	if s == "" {
		return AudienceGeneral, nil
	}
	for i, name := range audienceNames {
		if name == s {
			return Audience(i), nil
		}
	}
	return AudienceGeneral, fmt.Errorf("unknown audience %q", s)
}

// PostTime buckets the planned publishing time.
type PostTime uint8

const (
	PostTimeUnknown PostTime = iota
	PostTimePeak
	PostTimeOffPeak
)

var postTimeNames = [...]string{"unknown", "peak", "offpeak"}

func (p PostTime) String() string {
	if int(p) < len(postTimeNames) {
		return postTimeNames[p]
	}
	return fmt.Sprintf("PostTime(%d)", p)
}

func (p PostTime) MarshalText() ([]byte, error) {
	if int(p) >= len(postTimeNames) {
		return nil, fmt.Errorf("invalid post time %d", p)
	}
	return []byte(p.String()), nil
}

func (p *PostTime) UnmarshalText(b []byte) error {
	v, err := ParsePostTime(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePostTime maps a wire name to a PostTime. Empty means unknown.
func ParsePostTime(s string) (PostTime, error) {
	if s == "" {
		return PostTimeUnknown, nil
	}
	for i, name := range postTimeNames {
		if name == s {
			return PostTime(i), nil
		}
	}
	return PostTimeUnknown, fmt.Errorf("unknown post time %q", s)
}

// Variant selects the aggregation style.
type Variant uint8

const (
	VariantContinuous Variant = iota
	VariantChecklist
)

var variantNames = [...]string{"continuous", "checklist"}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", v)
}

func (v Variant) MarshalText() ([]byte, error) {
	if int(v) >= len(variantNames) {
		return nil, fmt.Errorf("invalid variant %d", v)
	}
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(b []byte) error {
	p, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseVariant maps a wire name to a Variant. Empty means continuous.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return VariantContinuous, nil
	}
	for i, name := range variantNames {
		if name == s {
			return Variant(i), nil
		}
	}
	return VariantContinuous, fmt.Errorf("unknown variant %q", s)
}

// DiversityRisk classifies posting frequency.
type DiversityRisk string

const (
	RiskLow    DiversityRisk = "low"
	RiskMedium DiversityRisk = "medium"
	RiskHigh   DiversityRisk = "high"
)

// PostInput is everything the engine needs to score one draft.
type PostInput struct {
	Content          string    `json:"content"`
	MediaType        MediaType `json:"media_type"`
	TargetAudience   Audience  `json:"target_audience"`
	HasEnglish       bool      `json:"has_english"`
	IsThread         bool      `json:"is_thread"`
	HasHashtags      bool      `json:"has_hashtags"`
	HasMentions      bool      `json:"has_mentions"`
	PostTime         PostTime  `json:"post_time"`
	ConsecutivePosts int       `json:"consecutive_posts"`
}

// postsLast24h returns ConsecutivePosts with negatives treated as zero.
func (in PostInput) postsLast24h() int {
	if in.ConsecutivePosts < 0 {
		return 0
	}
	return in.ConsecutivePosts
}

// ScoreDetail is one checklist item and whether it held for the input.
type ScoreDetail struct {
	Label   string `json:"label"`
	Points  int    `json:"points"`
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
}

// EngagementProbabilities are per-action probabilities in [0,1].
type EngagementProbabilities struct {
	Favorite     float64 `json:"favorite"`
	Reply        float64 `json:"reply"`
	Repost       float64 `json:"repost"`
	Click        float64 `json:"click"`
	VideoView    float64 `json:"video_view"`
	PhotoExpand  float64 `json:"photo_expand"`
	Dwell        float64 `json:"dwell"`
	Share        float64 `json:"share"`
	FollowAuthor float64 `json:"follow_author"`
}

// NegativeSignals are per-action risk probabilities in [0,1].
type NegativeSignals struct {
	NotInterested float64 `json:"not_interested"`
	BlockAuthor   float64 `json:"block_author"`
	MuteAuthor    float64 `json:"mute_author"`
	Report        float64 `json:"report"`
}

// Contribution is one named, non-negative score bucket.
type Contribution struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Breakdown explains where the total score came from.
type Breakdown struct {
	Buckets        []Contribution `json:"buckets"`
	NegativeImpact float64        `json:"negative_impact"`
}

// Bucket returns the value of the named bucket, or 0 if absent.
func (b Breakdown) Bucket(name string) float64 {
	for _, c := range b.Buckets {
		if c.Name == name {
			return c.Value
		}
	}
	return 0
}

// ContinuousDetail carries the probability model output.
type ContinuousDetail struct {
	Engagement EngagementProbabilities `json:"engagement"`
	Negative   NegativeSignals         `json:"negative"`
	Weights    AlgorithmWeights        `json:"weights"`
}

// TextStats are the raw counts surfaced by the checklist variant.
type TextStats struct {
	CharCount      int `json:"char_count"`
	WordCount      int `json:"word_count"`
	HashtagCount   int `json:"hashtag_count"`
	MentionCount   int `json:"mention_count"`
	EmojiCount     int `json:"emoji_count"`
	LineBreakCount int `json:"line_break_count"`
}

// ChecklistDetail carries the checklist model output.
type ChecklistDetail struct {
	BasePoints    int           `json:"base_points"`
	BonusPoints   int           `json:"bonus_points"`
	PenaltyPoints int           `json:"penalty_points"`
	Bonuses       []ScoreDetail `json:"bonuses"`
	Penalties     []ScoreDetail `json:"penalties"`
	Stats         TextStats     `json:"stats"`
}

// ScoreResult is the complete output of one evaluation.
type ScoreResult struct {
	Variant       Variant           `json:"variant"`
	TotalScore    float64           `json:"total_score"`
	Breakdown     Breakdown         `json:"breakdown"`
	Advice        []string          `json:"advice"`
	Warnings      []string          `json:"warnings"`
	ReachScore    int               `json:"reach_score"`
	DiversityRisk DiversityRisk     `json:"diversity_risk"`
	Continuous    *ContinuousDetail `json:"continuous,omitempty"`
	Checklist     *ChecklistDetail  `json:"checklist,omitempty"`
}
