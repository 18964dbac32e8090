package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Amplify/internal/scoring"
)

type scoreOptions struct {
	variant   string
	jsonOut   bool
	minScore  float64
	media     string
	audience  string
	postTime  string
	english   bool
	thread    bool
	hashtags  bool
	mentions  bool
	postCount int
}

func newScoreCommand() *cobra.Command {
	var opts scoreOptions

	cmd := &cobra.Command{
		Use:   "score [text...]",
		Short: "Score a draft post",
		Long: `Score a draft post and print the breakdown, advice and warnings.

The draft is taken from the arguments, joined by spaces, or from stdin when no
arguments are given. With --min-score the command exits with status 1 when the
total score falls below the threshold.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.postInput()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				in.Content = strings.Join(args, " ")
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				in.Content = strings.TrimRight(string(data), "\r\n")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, discardLogger())
			if err != nil {
				return err
			}

			variant := engine.Variant()
			if opts.variant != "" {
				if variant, err = scoring.ParseVariant(opts.variant); err != nil {
					return err
				}
			}

			result := engine.EvaluateVariant(in, variant)
			out := cmd.OutOrStdout()
			if opts.jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				printResult(out, result)
			}

			if cmd.Flags().Changed("min-score") && result.TotalScore < opts.minScore {
				return &BelowThresholdError{Score: result.TotalScore, Threshold: opts.minScore}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.variant, "variant", "", "scoring variant: continuous or checklist (default from config)")
	f.BoolVar(&opts.jsonOut, "json", false, "print the result as JSON")
	f.Float64Var(&opts.minScore, "min-score", 0, "exit with status 1 when the total score is below this value")
	f.StringVar(&opts.media, "media", "none", "attached media: none, image, video, link or poll")
	f.StringVar(&opts.audience, "audience", "general", "target audience: general, engineer, creator, business or news")
	f.StringVar(&opts.postTime, "post-time", "unknown", "posting slot: unknown, peak or offpeak")
	f.BoolVar(&opts.english, "english", false, "the post includes English text")
	f.BoolVar(&opts.thread, "thread", false, "the post is part of a thread")
	f.BoolVar(&opts.hashtags, "hashtags", false, "count hashtags in the engagement model")
	f.BoolVar(&opts.mentions, "mentions", false, "count mentions in the engagement model")
	f.IntVar(&opts.postCount, "posts", 0, "posts by the author in the last 24 hours")

	return cmd
}

func (o scoreOptions) postInput() (scoring.PostInput, error) {
	media, err1 := scoring.ParseMediaType(o.media)
	audience, err2 := scoring.ParseAudience(o.audience)
	postTime, err3 := scoring.ParsePostTime(o.postTime)
	if err := errors.Join(err1, err2, err3); err != nil {
		return scoring.PostInput{}, err
	}
	return scoring.PostInput{
		MediaType:        media,
		TargetAudience:   audience,
		HasEnglish:       o.english,
		IsThread:         o.thread,
		HasHashtags:      o.hashtags,
		HasMentions:      o.mentions,
		PostTime:         postTime,
		ConsecutivePosts: o.postCount,
	}, nil
}
