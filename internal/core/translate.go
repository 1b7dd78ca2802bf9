package core

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"medbridge/internal/dictionary"
	"medbridge/internal/llm"
)

// Resolver mode names surfaced to the UI status endpoint.
const (
	ModeAI         = "ai"
	ModeDictionary = "dictionary"
)

// External results shorter than this (after trimming) are treated as misses.
const minExternalResultRunes = 4

// Resolver produces translations through a prioritized strategy chain:
// the external service when configured, then the curated dictionary, then
// identity for same-language pairs, then a bracketed fallback marker. A
// failing external call degrades silently to the next strategy; it never
// aborts the pipeline.
type Resolver struct {
	external llm.Translator
	logger   *zap.SugaredLogger
}

// NewResolver constructs a resolver. external may be nil, which puts the
// resolver in dictionary-only mode.
func NewResolver(external llm.Translator, logger *zap.SugaredLogger) *Resolver {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Resolver{external: external, logger: logger}
}

// Mode reports which strategy is live: "ai" when an external capability is
// configured, "dictionary" otherwise.
func (r *Resolver) Mode() string {
	if r.external != nil {
		return ModeAI
	}
	return ModeDictionary
}

// Translate resolves text for the given language pair. Empty or
// whitespace-only input short-circuits to an empty result. Translate never
// fails: when no strategy produces a real translation the input comes back
// wrapped in a visible [TargetLang] marker.
func (r *Resolver) Translate(ctx context.Context, text, sourceLang, targetLang string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	if r.external != nil {
		out, err := r.external.Translate(ctx, text, sourceLang, targetLang)
		if err != nil {
			r.logger.Debugw("external translation failed, falling back",
				"source", sourceLang, "target", targetLang, "error", err)
		} else if trimmed := strings.TrimSpace(out); utf8.RuneCountInString(trimmed) >= minExternalResultRunes {
			return trimmed
		}
	}

	if entries, ok := dictionary.Lookup(sourceLang, targetLang); ok {
		folded := strings.ToLower(text)
		for _, e := range entries {
			if !strings.Contains(folded, e.Phrase) {
				continue
			}
			if out, ok := replaceTokenRun(text, e.Phrase, e.Translation); ok {
				return out
			}
		}
	}

	if strings.EqualFold(sourceLang, targetLang) {
		return text
	}
	return "[" + targetLang + "] " + text
}

// replaceTokenRun substitutes the first run of whitespace-delimited tokens
// whose case-folded join equals phrase, rejoining with single spaces. The
// original casing of every token outside the run is preserved. A substring
// hit that does not align to a whole token run reports no match, so the
// caller keeps scanning.
func replaceTokenRun(text, phrase, translation string) (string, bool) {
	words := strings.Fields(text)
	parts := strings.Fields(phrase)
	if len(parts) == 0 || len(words) < len(parts) {
		return "", false
	}
	for i := 0; i+len(parts) <= len(words); i++ {
		matched := true
		for j, p := range parts {
			if strings.ToLower(words[i+j]) != p {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		out := make([]string, 0, len(words)-len(parts)+1)
		out = append(out, words[:i]...)
		out = append(out, translation)
		out = append(out, words[i+len(parts):]...)
		return strings.Join(out, " "), true
	}
	return "", false
}
