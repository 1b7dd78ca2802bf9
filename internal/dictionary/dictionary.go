// Package dictionary holds the curated medical phrase tables used when no
// external translation service is available. Tables are built once at
// process start and never mutated.
package dictionary

import "strings"

// Entry pairs a case-folded source phrase with its translation. Phrases may
// span multiple words ("take paracetamol").
type Entry struct {
	Phrase      string
	Translation string
}

type pairKey struct {
	source string
	target string
}

// Each table is an ordered slice: longer phrases come first so that
// "i have headache" wins over "headache" during a scan.
var tables = map[pairKey][]Entry{
	{"english", "tamil"}: {
		{"i have headache", "எனக்கு தலைவலி உள்ளது"},
		{"i have fever", "எனக்கு காய்ச்சல் உள்ளது"},
		{"take paracetamol", "பாராசிட்டமால் சாப்பிடவும்"},
		{"blood pressure", "இரத்த அழுத்தம்"},
		{"stomach pain", "வயிற்று வலி"},
		{"take medicine", "மருந்து சாப்பிடவும்"},
		{"i have pain", "எனக்கு வலி உள்ளது"},
		{"how are you", "நீங்கள் எப்படி இருக்கிறீர்கள்?"},
		{"take rest", "ஓய்வெடுத்துக்கொள்ளுங்கள்"},
		{"headache", "தலைவலி"},
		{"diabetes", "நீரிழிவு நோய்"},
		{"fever", "காய்ச்சல்"},
		{"cough", "தொண்டை சளி"},
		{"hello", "வணக்கம்"},
		{"pain", "வலி"},
		{"rest", "ஓய்வு"},
		{"hi", "வணக்கம்"},
	},
	{"tamil", "english"}: {
		{"எப்படி இருக்கிறீர்கள்", "How are you"},
		{"எனக்கு தலைவலி", "I have headache"},
		{"எனக்கு காய்ச்சல்", "I have fever"},
		{"வயிற்று வலி", "stomach pain"},
		{"எனக்கு வலி", "I have pain"},
		{"தலைவலி", "headache"},
		{"காய்ச்சல்", "fever"},
		{"வணக்கம்", "Hello"},
		{"வலி", "pain"},
	},
	{"english", "hindi"}: {
		{"i have headache", "मुझे सिरदर्द है"},
		{"take paracetamol", "पैरासिटामोल लें"},
		{"headache", "सिरदर्द"},
		{"fever", "बुखार"},
		{"rest", "आराम करें"},
	},
	{"hindi", "english"}: {
		{"सिरदर्द", "headache"},
		{"बुखार", "fever"},
	},
}

// Lookup returns the ordered phrase table for a language pair. Language
// names are matched case-insensitively. The returned slice must be treated
// as read-only.
func Lookup(sourceLang, targetLang string) ([]Entry, bool) {
	entries, ok := tables[pairKey{strings.ToLower(sourceLang), strings.ToLower(targetLang)}]
	return entries, ok
}
