package translation

import (
	"context"
	"strings"
)

type Method string

const (
	MethodAlreadyEnglish Method = "already_english"
	MethodAPI            Method = "api"
	MethodFallback       Method = "fallback_dictionary"
	MethodFailed         Method = "failed"
	MethodSkipped        Method = "skipped"
)

// Result of one translation. Text is always usable: on failure it is the input text.
type Result struct {
	Text   string
	Method Method
	Lang   string
}

// Translated reports whether Text differs in language from the input.
func (r Result) Translated() bool {
	return r.Method == MethodAPI || r.Method == MethodFallback
}

// Translator translates short tender texts to English. Implementations never fail: errors
// degrade to a passthrough and are counted in Stats.
type Translator interface {
	Translate(ctx context.Context, text, sourceLangHint string) Result
	Stats() Stats
}

// Factory returns a fresh Translator with its own cache and stats, one per run.
type Factory func() Translator

var supportedLangs = map[string]string{
	"ar": "Arabic",
	"zh": "Chinese",
	"nl": "Dutch",
	"en": "English",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"es": "Spanish",
}

func IsSupported(lang string) bool {
	_, ok := supportedLangs[strings.ToLower(lang)]
	return ok
}

// Noop is used when translation is disabled.
type Noop struct{}

func NoopFactory() Translator {
	return Noop{}
}

func (Noop) Translate(_ context.Context, text, lang string) Result {
	return Result{Text: text, Method: MethodSkipped, Lang: lang}
}

func (Noop) Stats() Stats {
	return Stats{Languages: map[string]int{}}
}
