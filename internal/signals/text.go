package signals

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	wordPattern = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{M}\p{N}]*(?:['’]\p{L}[\p{L}\p{M}]*)?`)

	// apostrophes folds typographic apostrophes to ASCII.
	apostrophes = strings.NewReplacer("\u2019", "'", "\u2018", "'", "\u02bc", "'")
)

// Tokenize lower-cases text and returns its words. Contractions such as
// "i'm" stay one token whichever apostrophe they are typed with.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(apostrophes.Replace(strings.ToLower(text)), -1)
}

// WordCount returns the number of words in text, counted as Tokenize does.
func WordCount(text string) int {
	return len(Tokenize(text))
}

// CharCount returns the number of characters (runes) in text.
func CharCount(text string) int {
	return utf8.RuneCountInString(text)
}

func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// SentenceCount counts non-empty pieces between '.', '!' and '?'.
func SentenceCount(text string) int {
	return len(splitSentences(text))
}

// SentenceLengths returns the word count of every sentence that has words.
func SentenceLengths(text string) []int {
	var out []int
	for _, s := range splitSentences(text) {
		if n := WordCount(s); n > 0 {
			out = append(out, n)
		}
	}
	return out
}

// FillerCount counts filler occurrences in words. Multi-word fillers ("you
// know") match as token sequences and take precedence over single words.
func FillerCount(words []string, fillers []string) int {
	if len(words) == 0 || len(fillers) == 0 {
		return 0
	}

	var phrases [][]string
	single := make(map[string]struct{})
	for _, f := range fillers {
		parts := strings.Fields(strings.ToLower(f))
		switch len(parts) {
		case 0:
		case 1:
			single[parts[0]] = struct{}{}
		default:
			phrases = append(phrases, parts)
		}
	}

	count := 0
	for i := 0; i < len(words); {
		if n := matchPhrase(words[i:], phrases); n > 0 {
			count++
			i += n
			continue
		}
		if _, ok := single[words[i]]; ok {
			count++
		}
		i++
	}
	return count
}

func matchPhrase(words []string, phrases [][]string) int {
	for _, p := range phrases {
		if len(p) > len(words) {
			continue
		}
		matched := true
		for j := range p {
			if words[j] != p[j] {
				matched = false
				break
			}
		}
		if matched {
			return len(p)
		}
	}
	return 0
}

// Ratio divides part by total, returning 0 when total is 0.
func Ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}

// TypeTokenRatio is distinct words over total words.
func TypeTokenRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	distinct := make(map[string]struct{}, len(words))
	for _, w := range words {
		distinct[w] = struct{}{}
	}
	return float64(len(distinct)) / float64(len(words))
}

// HeuristicGrammarErrors is the local stand-in for a grammar checker. It
// counts immediately repeated words, a lower-case pronoun "i", sentences
// starting in lower case (only when the text uses capitals at all) and commas
// beyond five.
func HeuristicGrammarErrors(text string) int {
	errs := 0

	locs := wordPattern.FindAllStringIndex(text, -1)
	for i := 1; i < len(locs); i++ {
		prev := text[locs[i-1][0]:locs[i-1][1]]
		cur := text[locs[i][0]:locs[i][1]]
		between := text[locs[i-1][1]:locs[i][0]]
		if strings.EqualFold(prev, cur) && strings.TrimSpace(between) == "" {
			errs++
		}
	}

	for _, loc := range locs {
		if text[loc[0]:loc[1]] == "i" {
			errs++
		}
	}

	if strings.IndexFunc(text, unicode.IsUpper) >= 0 {
		for _, s := range splitSentences(text) {
			s = strings.TrimLeftFunc(s, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
			if r, _ := utf8.DecodeRuneInString(s); unicode.IsLower(r) {
				errs++
			}
		}
	}

	if extra := strings.Count(text, ",") - 5; extra > 0 {
		errs += extra
	}
	return errs
}

var (
	positiveWords = map[string]struct{}{
		"good": {}, "great": {}, "excited": {}, "happy": {}, "enjoy": {}, "love": {},
		"confident": {}, "interesting": {}, "fun": {}, "passionate": {}, "proud": {},
		"glad": {}, "delighted": {}, "grateful": {}, "thankful": {}, "wonderful": {},
		"amazing": {}, "excellent": {}, "favourite": {}, "favorite": {}, "enjoys": {},
		"loves": {}, "eager": {}, "curious": {}, "inspired": {}, "pleasure": {},
	}
	negativeWords = map[string]struct{}{
		"bad": {}, "sad": {}, "hate": {}, "boring": {}, "nervous": {}, "afraid": {},
		"angry": {}, "tired": {}, "difficult": {}, "worried": {}, "terrible": {},
		"awful": {}, "dislike": {}, "upset": {}, "scared": {}, "unhappy": {},
	}
	negators = map[string]struct{}{"not": {}, "never": {}, "no": {}, "don't": {}, "didn't": {}, "isn't": {}}
)

// sentimentAlpha normalises the raw lexicon sum into [-1,1].
const sentimentAlpha = 15.0

// LexiconSentiment is the local stand-in for a sentiment collaborator: a
// small polarity lexicon with single-word negation, normalised to [-1,1].
func LexiconSentiment(words []string) float64 {
	var sum float64
	for i, w := range words {
		var v float64
		if _, ok := positiveWords[w]; ok {
			v = 1
		} else if _, ok := negativeWords[w]; ok {
			v = -1
		}
		if v != 0 && i > 0 {
			if _, ok := negators[words[i-1]]; ok {
				v = -v
			}
		}
		sum += v
	}
	if sum == 0 {
		return 0
	}
	return sum / math.Sqrt(sum*sum+sentimentAlpha)
}
