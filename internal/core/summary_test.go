package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"medbridge/pkg"
)

func sampleRecords() []pkg.MessageRecord {
	return []pkg.MessageRecord{
		{ID: 1, Role: pkg.RolePatient, Content: "I have fever", TranslatedContent: "எனக்கு காய்ச்சல் உள்ளது", SourceLang: "English", TargetLang: "Tamil", Timestamp: "2026-09-01T10:00:05Z"},
		{ID: 2, Role: pkg.RoleDoctor, Content: "Take paracetamol", TranslatedContent: "பாராசிட்டமால் சாப்பிடவும்", SourceLang: "English", TargetLang: "Tamil", Timestamp: "2026-09-01T10:01:10Z"},
		{ID: 3, Role: pkg.RolePatient, Content: "thank you", SourceLang: "Tamil", TargetLang: "English", Timestamp: "2026-09-01T10:02:30Z", Audio: []byte{0x52, 0x49}},
	}
}

func TestSearchMatchesContentAndTranslation(t *testing.T) {
	records := sampleRecords()

	got := Search("FEVER", records)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	// Matches inside the translated text as well.
	got = Search("பாராசிட்டமால்", records)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestSearchEmptyTermReturnsAll(t *testing.T) {
	records := sampleRecords()
	got := Search("", records)
	assert.Equal(t, records, got)
}

func TestSearchPreservesOrder(t *testing.T) {
	records := []pkg.MessageRecord{
		{ID: 1, Content: "fever in the morning"},
		{ID: 2, Content: "no symptoms"},
		{ID: 3, Content: "Fever again"},
	}
	got := Search("fever", records)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestSearchNoMatches(t *testing.T) {
	got := Search("xyzzy", sampleRecords())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummarizeEmptyTranscript(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.TotalMessages)
	assert.Equal(t, 0, s.DoctorCount)
	assert.Equal(t, 0, s.PatientCount)
	assert.Equal(t, 0, s.AudioCount)
	assert.Empty(t, s.Symptoms)
	assert.Empty(t, s.Medications)
	assert.Equal(t, NoDataTimestamp, s.LastUpdated)
}

func TestSummarizeCountsAndMentions(t *testing.T) {
	s := Summarize(sampleRecords())

	assert.Equal(t, 3, s.TotalMessages)
	assert.Equal(t, 1, s.DoctorCount)
	assert.Equal(t, 2, s.PatientCount)
	assert.Equal(t, 1, s.AudioCount)
	assert.Equal(t, []string{"I have fever"}, s.Symptoms)
	assert.Equal(t, []string{"Take paracetamol"}, s.Medications)
	assert.Equal(t, "2026-09-01T10:02", s.LastUpdated)
}

func TestSummarizeRoleScoping(t *testing.T) {
	// Symptom keywords in doctor messages and medication keywords in
	// patient messages do not count.
	records := []pkg.MessageRecord{
		{ID: 1, Role: pkg.RoleDoctor, Content: "Do you still have fever?", Timestamp: "2026-09-01T09:00:00Z"},
		{ID: 2, Role: pkg.RolePatient, Content: "I took the medicine already", Timestamp: "2026-09-01T09:01:00Z"},
	}
	s := Summarize(records)

	assert.Empty(t, s.Symptoms)
	assert.Empty(t, s.Medications)
}

func TestSummarizeMentionLimitAndTruncation(t *testing.T) {
	long := "pain " + strings.Repeat("a", 100)
	var records []pkg.MessageRecord
	for i := 0; i < 5; i++ {
		records = append(records, pkg.MessageRecord{
			ID:        int64(i + 1),
			Role:      pkg.RolePatient,
			Content:   long,
			Timestamp: "2026-09-01T09:00:00Z",
		})
	}

	s := Summarize(records)

	assert.Len(t, s.Symptoms, 3)
	for _, mention := range s.Symptoms {
		assert.Equal(t, 50, len([]rune(mention)))
	}
}

func TestSummarizeTamilKeywords(t *testing.T) {
	records := []pkg.MessageRecord{
		{ID: 1, Role: pkg.RolePatient, Content: "எனக்கு தலைவலி", Timestamp: "2026-09-01T09:00:00Z"},
	}
	s := Summarize(records)
	assert.Equal(t, []string{"எனக்கு தலைவலி"}, s.Symptoms)
}
