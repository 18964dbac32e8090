package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

var (
	urlPattern     = regexp.MustCompile(`https?://\S+`)
	hashtagPattern = regexp.MustCompile(`#[^\s#]+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	latinRun       = regexp.MustCompile(`[a-zA-Z]{3,}`)
)

// urlOnlyMaxRunes is the remaining-text length below which a post counts as a bare link.
const urlOnlyMaxRunes = 10

// Features are the countable and boolean properties derived from post text.
type Features struct {
	CharCount        int
	WordCount        int
	HashtagCount     int
	MentionCount     int
	EmojiCount       int
	LineBreakCount   int
	IsQuestion       bool
	HasCallToAction  bool
	HasEnglish       bool
	HasURL           bool
	URLOnly          bool
	HasControversial bool
	HasOffensive     bool
	HasSensational   bool
}

// Stats returns the raw counts.
func (f Features) Stats() TextStats {
	return TextStats{
		CharCount:      f.CharCount,
		WordCount:      f.WordCount,
		HashtagCount:   f.HashtagCount,
		MentionCount:   f.MentionCount,
		EmojiCount:     f.EmojiCount,
		LineBreakCount: f.LineBreakCount,
	}
}

// ExtractFeatures derives Features from text. A nil matcher uses the default lexicon.
func ExtractFeatures(text string, m *Matcher) Features {
	if m == nil {
		m = defaultMatcher
	}

	stripped := urlPattern.ReplaceAllString(text, "")
	folded := width.Fold.String(text)

	f := Features{
		CharCount:      utf8.RuneCountInString(stripped),
		WordCount:      len(strings.Fields(text)),
		HashtagCount:   len(hashtagPattern.FindAllStringIndex(text, -1)),
		MentionCount:   len(mentionPattern.FindAllStringIndex(text, -1)),
		EmojiCount:     countEmoji(text),
		LineBreakCount: strings.Count(text, "\n"),
		IsQuestion:     strings.Contains(folded, "?"),
		HasEnglish:     len(latinRun.FindAllStringIndex(text, 2)) >= 2,
		HasURL:         urlPattern.MatchString(text),
	}
	f.URLOnly = f.HasURL && utf8.RuneCountInString(strings.TrimSpace(stripped)) < urlOnlyMaxRunes

	f.HasCallToAction = m.Match(CategoryCallToAction, folded)
	f.HasControversial = m.Match(CategoryControversial, folded)
	f.HasOffensive = m.Match(CategoryOffensive, folded)
	f.HasSensational = m.Match(CategorySensational, folded)
	return f
}

func countEmoji(text string) int {
	n := 0
	for _, r := range text {
		if isEmoji(r) {
			n++
		}
	}
	return n
}

// isEmoji covers misc symbols/pictographs, emoticons, transport and
// supplemental symbols (U+1F300..U+1F9FF) plus misc symbols (U+2600..U+26FF).
func isEmoji(r rune) bool {
	return (r >= 0x1F300 && r <= 0x1F9FF) || (r >= 0x2600 && r <= 0x26FF)
}
