package excel

import (
	"orderbridge/internal/models"
)

// MatchThreshold is the minimum header overlap, in percent, for a file to
// be attributed to a platform.
const MatchThreshold = 90.0

// DetectionResult reports how a file's header row compares against the
// schema of the detected platform.
type DetectionResult struct {
	IsValid          bool                `json:"isValid"`
	DetectedPlatform models.PlatformKind `json:"detectedPlatform,omitempty"`
	MatchPercentage  float64             `json:"matchPercentage"`
	MatchedHeaders   []string            `json:"matchedHeaders"`
	MissingHeaders   []string            `json:"missingHeaders"`
	ExtraHeaders     []string            `json:"extraHeaders"`
}

// DetectPlatform attributes a header row to a platform. Schemas are tried
// in declaration order and the first one whose overlap reaches the
// threshold wins, even if a later schema would score higher.
func DetectPlatform(headers []string) DetectionResult {
	have := make(map[string]bool, len(headers))
	for _, h := range headers {
		have[h] = true
	}

	for _, schema := range Schemas {
		expected := schema.ExpectedHeaders()

		// Overlap counts distinct expected headers present in the file,
		// so a repeated column cannot stand in for a missing one.
		var matched, missing []string
		for _, h := range expected {
			if have[h] {
				matched = append(matched, h)
			} else {
				missing = append(missing, h)
			}
		}

		percentage := float64(len(matched)) / float64(len(expected)) * 100
		if percentage < MatchThreshold {
			continue
		}

		want := make(map[string]bool, len(expected))
		for _, h := range expected {
			want[h] = true
		}
		var extra []string
		for _, h := range headers {
			if !want[h] {
				extra = append(extra, h)
			}
		}

		return DetectionResult{
			IsValid:          true,
			DetectedPlatform: schema.Platform,
			MatchPercentage:  percentage,
			MatchedHeaders:   matched,
			MissingHeaders:   missing,
			ExtraHeaders:     extra,
		}
	}

	return DetectionResult{
		MatchedHeaders: []string{},
		MissingHeaders: []string{},
		ExtraHeaders:   []string{},
	}
}
