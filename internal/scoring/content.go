package scoring

import (
	"fmt"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/godilite/intro-scorer/internal/signals"
)

const (
	contentMaxPoints  = 40.0
	keywordCap        = 5
	mustHavePoints    = 4.0
	goodToHavePoints  = 2.0
	flowPoints        = 5.0
	salutationWindow  = 10
	fuzzyMinKeyLength = 5
)

type salutation struct {
	level  string
	points float64
}

var (
	salutationNone = salutation{"none", 0}

	// Checked in order; the first level with a match wins.
	salutationLevels = []struct {
		salutation
		phrases  []string
		anywhere bool
	}{
		{salutation{"excellent", 5}, []string{"i am excited", "i'm excited", "feeling great", "i am delighted", "i'm delighted"}, true},
		{salutation{"good", 4}, []string{"good morning", "good afternoon", "good evening", "good day", "hello everyone", "hi everyone"}, true},
		{salutation{"normal", 2}, []string{"hi", "hello", "hey"}, false},
	}

	introPhrases = []string{"my name is", "myself", "i am", "i'm", "this is"}
)

// ContentStructure rewards a greeting, the expected self-introduction
// topics and an early introduction of the speaker. Points: salutation up to
// 5, must-have topics 4 each (at most 5), good-to-have topics 2 each (at
// most 5), flow 5; the 40 point total is scaled to 100.
func ContentStructure(b signals.Bundle, p rubric.Params) Result {
	if b.Empty() {
		return Result{}
	}
	words := signals.Tokenize(b.Text)

	sal := detectSalutation(words)
	must := matchKeywords(words, p.MustHaveKeywords, p.FuzzyThreshold)
	good := matchKeywords(words, p.GoodToHaveKeywords, p.FuzzyThreshold)
	flow := hasFlow(words)

	points := sal.points +
		float64(min(len(must), keywordCap))*mustHavePoints +
		float64(min(len(good), keywordCap))*goodToHavePoints
	if flow {
		points += flowPoints
	}

	notes := []string{fmt.Sprintf("salutation: %s", sal.level)}
	if len(must) > 0 {
		notes = append(notes, "must-have topics: "+strings.Join(must, ", "))
	}
	if len(good) > 0 {
		notes = append(notes, "good-to-have topics: "+strings.Join(good, ", "))
	}
	if !flow {
		notes = append(notes, "speaker never introduces themselves")
	}

	return Result{
		Score: clamp100(points / contentMaxPoints * 100),
		Notes: notes,
	}
}

func detectSalutation(words []string) salutation {
	head := words[:min(len(words), salutationWindow)]
	for _, lvl := range salutationLevels {
		scope := head
		if lvl.anywhere {
			scope = words
		}
		for _, phrase := range lvl.phrases {
			if containsPhrase(scope, strings.Fields(phrase)) {
				return lvl.salutation
			}
		}
	}
	return salutationNone
}

func hasFlow(words []string) bool {
	for _, phrase := range introPhrases {
		if containsPhrase(words, strings.Fields(phrase)) {
			return true
		}
	}
	return false
}

// matchKeywords returns the keywords found in words, in keyword order.
// Multi-word keywords match as token sequences. Single keywords match
// exactly, or by Jaro-Winkler similarity when both sides are long enough
// for inflections and transcription slips to be told apart from other words.
func matchKeywords(words, keywords []string, threshold float64) []string {
	var found []string
	for _, k := range keywords {
		parts := strings.Fields(strings.ToLower(k))
		if len(parts) == 0 {
			continue
		}
		if len(parts) > 1 {
			if containsPhrase(words, parts) {
				found = append(found, k)
			}
			continue
		}
		if containsWord(words, parts[0], threshold) {
			found = append(found, k)
		}
	}
	return found
}

func containsWord(words []string, key string, threshold float64) bool {
	fuzzy := len([]rune(key)) >= fuzzyMinKeyLength && threshold > 0 && threshold < 1
	for _, w := range words {
		if w == key {
			return true
		}
		if fuzzy && len([]rune(w)) >= fuzzyMinKeyLength && matchr.JaroWinkler(w, key, false) >= threshold {
			return true
		}
	}
	return false
}

func containsPhrase(words, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(words) {
		return false
	}
outer:
	for i := 0; i+len(phrase) <= len(words); i++ {
		for j, p := range phrase {
			if words[i+j] != p {
				continue outer
			}
		}
		return true
	}
	return false
}
