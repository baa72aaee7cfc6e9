package service

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/godilite/intro-scorer/internal/report"
)

type CacheKeyType string

const CacheKeyScore CacheKeyType = "score"

// ReportCacheKey identifies a score report by everything that determines
// it: rubric version, transcript, duration and reference.
func ReportCacheKey(rubricVersion string, req ScoreRequest) string {
	h := sha256.New()
	writeField := func(b []byte) {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(b)))
		h.Write(n[:])
		h.Write(b)
	}
	writeField([]byte(rubricVersion))
	writeField([]byte(req.Transcript))
	if req.DurationSec != nil {
		var d [8]byte
		binary.BigEndian.PutUint64(d[:], math.Float64bits(*req.DurationSec))
		writeField(d[:])
	} else {
		writeField(nil)
	}
	writeField([]byte(req.Reference))
	return string(CacheKeyScore) + ":" + hex.EncodeToString(h.Sum(nil))
}

// ReportIsStale marks reports scored with a fallback signal; they are
// re-scored in the background once served from cache.
func ReportIsStale(r report.ScoreReport) bool {
	for _, c := range r.Criteria {
		if c.Degraded {
			return true
		}
	}
	return false
}
