package scoring

import (
	"fmt"
	"io"
	"log/slog"
)

// Engine evaluates post drafts. It is immutable after construction and safe
// for concurrent use.
type Engine struct {
	variant     Variant
	weights     AlgorithmWeights
	matcher     *Matcher
	aggregators map[Variant]Aggregator
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	variant Variant
	weights AlgorithmWeights
	lexicon Lexicon
	logger  *slog.Logger
}

// WithVariant sets the aggregation style used by Evaluate.
func WithVariant(v Variant) Option {
	return func(o *engineOptions) { o.variant = v }
}

// WithWeights overrides DefaultWeights.
func WithWeights(w AlgorithmWeights) Option {
	return func(o *engineOptions) { o.weights = w }
}

// WithLexicon overrides DefaultLexicon.
func WithLexicon(l Lexicon) Option {
	return func(o *engineOptions) { o.lexicon = l }
}

// WithLogger sets the logger. Evaluations are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) { o.logger = l }
}

// NewEngine validates the options and compiles the lexicon.
func NewEngine(opts ...Option) (*Engine, error) {
	o := engineOptions{
		variant: VariantContinuous,
		weights: DefaultWeights(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := o.variant.MarshalText(); err != nil {
		return nil, err
	}
	if err := o.weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}

	matcher := defaultMatcher
	if o.lexicon != nil {
		m, err := o.lexicon.Compile()
		if err != nil {
			return nil, fmt.Errorf("invalid lexicon: %w", err)
		}
		matcher = m
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Engine{
		variant: o.variant,
		weights: o.weights,
		matcher: matcher,
		aggregators: map[Variant]Aggregator{
			VariantContinuous: NewContinuousAggregator(o.weights),
			VariantChecklist:  NewChecklistAggregator(),
		},
		logger: logger,
	}, nil
}

// Variant returns the default aggregation style.
func (e *Engine) Variant() Variant { return e.variant }

// Weights returns the weights used by the continuous variant.
func (e *Engine) Weights() AlgorithmWeights { return e.weights }

// Lexicon returns the keyword lists in use.
func (e *Engine) Lexicon() Lexicon { return e.matcher.Lexicon() }

// Evaluate scores a draft with the engine's default variant.
func (e *Engine) Evaluate(in PostInput) ScoreResult {
	return e.EvaluateVariant(in, e.variant)
}

// EvaluateVariant scores a draft with the given variant. Unknown variants
// fall back to the engine's default.
func (e *Engine) EvaluateVariant(in PostInput, v Variant) ScoreResult {
	agg, ok := e.aggregators[v]
	if !ok {
		agg = e.aggregators[e.variant]
	}

	f := ExtractFeatures(in.Content, e.matcher)
	result := agg.Aggregate(in, f)
	result.ReachScore = ReachScore(in, f)
	result.DiversityRisk = AuthorDiversityRisk(in.postsLast24h())

	e.logger.Debug("post evaluated",
		"variant", result.Variant.String(),
		"total_score", result.TotalScore,
		"chars", f.CharCount,
		"advice", len(result.Advice),
		"warnings", len(result.Warnings),
	)
	return result
}

var defaultEngine = mustEngine()

func mustEngine() *Engine {
	e, err := NewEngine()
	if err != nil {
		panic(err)
	}
	return e
}

// Evaluate scores a draft with the default weights, lexicon and the
// continuous variant.
func Evaluate(in PostInput) ScoreResult {
	return defaultEngine.Evaluate(in)
}
