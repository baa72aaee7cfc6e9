package service

import (
	"math"
	"strings"

	"github.com/godilite/intro-scorer/internal/signals"
)

// ScoreRequest is one transcript to score.
type ScoreRequest struct {
	Transcript string
	// DurationSec is the speaking time; nil means unknown.
	DurationSec *float64
	// Reference is an optional model answer for the similarity signal.
	Reference string
}

func (r ScoreRequest) transcript() signals.Transcript {
	t := signals.Transcript{Text: r.Transcript, Reference: r.Reference}
	if r.DurationSec != nil {
		t.DurationSec = signals.Some(*r.DurationSec)
	}
	return t
}

func (r ScoreRequest) validate() error {
	if len(r.Transcript) > MaxTranscriptBytes {
		return invalidf("transcript exceeds %d bytes", MaxTranscriptBytes)
	}
	if len(r.Reference) > MaxTranscriptBytes {
		return invalidf("reference exceeds %d bytes", MaxTranscriptBytes)
	}
	if d := r.DurationSec; d != nil && (math.IsNaN(*d) || math.IsInf(*d, 0) || *d < 0) {
		return invalidf("duration must be a non-negative number of seconds")
	}
	return nil
}

// TextStats are the quick counts shown while a transcript is being edited.
type TextStats struct {
	WordCount     int `json:"word_count"`
	CharCount     int `json:"char_count"`
	SentenceCount int `json:"sentence_count"`
}

// combine joins the non-empty transcripts of reqs into one request. Known
// durations are summed; the first non-empty reference is kept.
func combine(reqs []ScoreRequest) ScoreRequest {
	var (
		parts     []string
		total     float64
		anyDur    bool
		reference string
	)
	for _, r := range reqs {
		if strings.TrimSpace(r.Transcript) != "" {
			parts = append(parts, strings.TrimSpace(r.Transcript))
		}
		if r.DurationSec != nil {
			total += *r.DurationSec
			anyDur = true
		}
		if reference == "" && strings.TrimSpace(r.Reference) != "" {
			reference = r.Reference
		}
	}
	out := ScoreRequest{Transcript: strings.Join(parts, combineSeparator), Reference: reference}
	if anyDur {
		out.DurationSec = &total
	}
	return out
}
