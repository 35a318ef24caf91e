package extract

import "regexp"

// durationRE captures effort mentions like "2h", "30min", "45 minutes".
var durationRE = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(h|hr|hour|hours|m|min|minute|minutes)\b`)

// Keyword lists for inferring the importance tier from free text.
// First matching tier wins, scanned high to low.
var (
	highWords   = []string{"urgent", "asap", "immediately", "high", "important", "priority"}
	mediumWords = []string{"medium", "normal", "typical"}
	lowWords    = []string{"low", "later", "someday"}
)

// Title cleanup: bracketed fragments and trailing duration mentions
// are stripped from extracted titles.
var (
	bracketRE       = regexp.MustCompile(`\(.*?\)|\[.*?\]`)
	trailingDurRE   = regexp.MustCompile(`(?i),\s*~?\d+\s*(h|hr|hour|m|min).*`)
	maxTitleRunes   = 80
	titleRuneCutoff = 77
)
