package core

import (
	"strings"

	"medbridge/pkg"
)

// Keyword sets mirror the curated dictionary: symptom terms appear in
// patient messages, medication terms in doctor messages.
var (
	symptomKeywords    = []string{"headache", "fever", "pain", "cough", "தலைவலி", "காய்ச்சல்", "வலி"}
	medicationKeywords = []string{"paracetamol", "medicine", "tablet", "பாராசிட்டமால்", "மருந்து"}
)

const (
	// NoDataTimestamp is the summary timestamp sentinel for an empty transcript.
	NoDataTimestamp = "N/A"

	maxMentions     = 3
	mentionRunes    = 50
	minuteTimestamp = 16 // "2006-01-02T15:04"
)

// Search filters records whose content or translation contains term,
// case-insensitively, preserving order. An empty term returns the input
// unchanged.
func Search(term string, records []pkg.MessageRecord) []pkg.MessageRecord {
	if term == "" {
		return records
	}
	term = strings.ToLower(term)
	out := make([]pkg.MessageRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Content), term) ||
			strings.Contains(strings.ToLower(rec.TranslatedContent), term) {
			out = append(out, rec)
		}
	}
	return out
}

// Summarize derives the clinical report from a transcript ordered oldest
// first. An empty transcript yields a zero-count report with the "N/A"
// timestamp, never an error.
func Summarize(records []pkg.MessageRecord) pkg.Summary {
	s := pkg.Summary{
		Symptoms:    []string{},
		Medications: []string{},
		LastUpdated: NoDataTimestamp,
	}
	for _, rec := range records {
		s.TotalMessages++
		switch rec.Role {
		case pkg.RoleDoctor:
			s.DoctorCount++
		case pkg.RolePatient:
			s.PatientCount++
		}
		if len(rec.Audio) > 0 {
			s.AudioCount++
		}

		content := strings.ToLower(rec.Content)
		if rec.Role == pkg.RolePatient && len(s.Symptoms) < maxMentions && containsAny(content, symptomKeywords) {
			s.Symptoms = append(s.Symptoms, truncateRunes(rec.Content, mentionRunes))
		}
		if rec.Role == pkg.RoleDoctor && len(s.Medications) < maxMentions && containsAny(content, medicationKeywords) {
			s.Medications = append(s.Medications, truncateRunes(rec.Content, mentionRunes))
		}
	}
	if len(records) > 0 {
		s.LastUpdated = truncateMinute(records[len(records)-1].Timestamp)
	}
	return s
}

func containsAny(folded string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// truncateMinute cuts an RFC 3339 timestamp to minute precision. RFC 3339
// is ASCII, so a byte slice is safe here.
func truncateMinute(ts string) string {
	if len(ts) <= minuteTimestamp {
		return ts
	}
	return ts[:minuteTimestamp]
}
