package scoring

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category names a keyword list the feature extractor matches against.
type Category string

const (
	CategoryCallToAction  Category = "call_to_action"
	CategoryControversial Category = "controversial"
	CategoryOffensive     Category = "offensive"
	CategorySensational   Category = "sensational"
)

// Categories lists every category in a stable order.
func Categories() []Category {
	return []Category{CategoryCallToAction, CategoryControversial, CategoryOffensive, CategorySensational}
}

func knownCategory(c Category) bool {
	for _, k := range Categories() {
		if k == c {
			return true
		}
	}
	return false
}

// Lexicon maps each category to RE2 pattern fragments. Matching is
// case-insensitive and runs on width-folded text, so full-width Latin
// letters match their ASCII patterns.
type Lexicon map[Category][]string

// DefaultLexicon returns the built-in Japanese and English lists.
func DefaultLexicon() Lexicon {
	return Lexicon{
		CategoryCallToAction: {
			`\bRT\b`, `リツイート`, `拡散`, `シェア`, `フォロー`, `チェック`, `見て`, `教えて`,
			`コメント`, `返信`, `いいね`, `確認`,
			`\bretweet\b`, `\bfollow\b`, `\bshare\b`, `\bcomment\b`, `\breply\b`,
			`check it out`, `let me know`,
		},
		CategoryControversial: {
			`炎上`, `批判`, `問題`, `最悪`, `クソ`, `死ね`, `バカ`, `アホ`, `嫌い`, `うざい`,
			`\bidiots?\b`, `\bstupid\b`, `\bworst\b`, `\bhate\b`, `\bsucks?\b`, `\bscandal\b`,
		},
		CategoryOffensive: {
			`クソ`, `死ね`, `バカ`, `アホ`, `うざい`, `消えろ`, `ゴミ`,
			`\bidiots?\b`, `\bstupid\b`, `\bmorons?\b`, `\bshut up\b`, `\bkill yourself\b`, `\btrash\b`,
		},
		CategorySensational: {
			`衝撃`, `暴露`, `緊急`, `速報`, `必見`, `ヤバい`, `激震`, `炎上`, `闇`, `真実`,
			`\bshocking\b`, `\bbreaking\b`, `\bexposed\b`, `\bmust[- ]see\b`, `you won'?t believe`, `\burgent\b`,
		},
	}
}

// LoadLexicon reads a YAML category map and lays it over the defaults.
// A category present in the file replaces the default list for that category.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	lex := DefaultLexicon()
	for name, patterns := range raw {
		c := Category(name)
		if !knownCategory(c) {
			return nil, fmt.Errorf("unknown lexicon category %q", name)
		}
		lex[c] = patterns
	}
	return lex, nil
}

// Matcher is a compiled Lexicon. It is read-only after Compile.
type Matcher struct {
	lexicon  Lexicon
	patterns map[Category]*regexp.Regexp
}

// Compile builds one case-insensitive alternation per category.
func (l Lexicon) Compile() (*Matcher, error) {
	m := &Matcher{lexicon: Lexicon{}, patterns: make(map[Category]*regexp.Regexp)}
	for c, list := range l {
		if !knownCategory(c) {
			return nil, fmt.Errorf("unknown lexicon category %q", c)
		}
		var parts []string
		for _, p := range list {
			if strings.TrimSpace(p) == "" {
				continue
			}
			parts = append(parts, "(?:"+p+")")
		}
		m.lexicon[c] = append([]string(nil), list...)
		if len(parts) == 0 {
			continue
		}
		re, err := regexp.Compile("(?i)" + strings.Join(parts, "|"))
		if err != nil {
			return nil, fmt.Errorf("compile %s patterns: %w", c, err)
		}
		m.patterns[c] = re
	}
	return m, nil
}

// Match reports whether text hits any pattern of the category.
func (m *Matcher) Match(c Category, text string) bool {
	re := m.patterns[c]
	if re == nil {
		return false
	}
	return re.MatchString(text)
}

// Lexicon returns a copy of the source lists.
func (m *Matcher) Lexicon() Lexicon {
	out := make(Lexicon, len(m.lexicon))
	for c, list := range m.lexicon {
		out[c] = append([]string(nil), list...)
	}
	return out
}

var defaultMatcher = mustCompile(DefaultLexicon())

func mustCompile(l Lexicon) *Matcher {
	m, err := l.Compile()
	if err != nil {
		panic(err)
	}
	return m
}
