package pkg

import "fmt"

// Role identifies the author of a message. A conversation involves exactly
// two parties: the doctor and the patient.
type Role string

const (
	RoleDoctor  Role = "Doctor"
	RolePatient Role = "Patient"
)

// ParseRole validates a role supplied by the client.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleDoctor, RolePatient:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// MessageRecord is one persisted conversation entry. Records are written once
// on send and never updated; SourceLang and TargetLang capture the routing
// decision in force when the message was sent, not the viewer's current
// settings. Timestamp is an RFC 3339 string assigned by the store.
type MessageRecord struct {
	ID                int64  `json:"id"`
	Role              Role   `json:"role"`
	Content           string `json:"content"`
	TranslatedContent string `json:"translated_content,omitempty"`
	SourceLang        string `json:"source_lang"`
	TargetLang        string `json:"target_lang"`
	Timestamp         string `json:"timestamp"`
	Audio             []byte `json:"-"`
}

// MessageView is the API/UI representation of a record. Translated is filled
// from the stored translation or recomputed on demand when absent; audio is
// surfaced as a self-describing data URI, never raw bytes.
type MessageView struct {
	ID           int64  `json:"id"`
	Role         Role   `json:"role"`
	Content      string `json:"content"`
	Translated   string `json:"translated"`
	SourceLang   string `json:"source_lang"`
	TargetLang   string `json:"target_lang"`
	Timestamp    string `json:"timestamp"`
	AudioDataURL string `json:"audio_data_url,omitempty"`
}

// Summary is the doctor-facing clinical report derived from a transcript.
// LastUpdated holds the newest record's timestamp cut to minute precision,
// or "N/A" when the transcript is empty.
type Summary struct {
	TotalMessages int      `json:"total_messages"`
	DoctorCount   int      `json:"doctor_count"`
	PatientCount  int      `json:"patient_count"`
	AudioCount    int      `json:"audio_count"`
	Symptoms      []string `json:"symptoms"`
	Medications   []string `json:"medications"`
	LastUpdated   string   `json:"last_updated"`
}

// SendResponse is returned after a message is accepted and stored.
type SendResponse struct {
	ID         int64  `json:"id"`
	Translated string `json:"translated"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// StatusResponse reports which translation strategy is live and the
// configured language set.
type StatusResponse struct {
	Translator  string   `json:"translator"`
	Languages   []string `json:"languages"`
	DoctorLang  string   `json:"doctor_lang"`
	PatientLang string   `json:"patient_lang"`
}
