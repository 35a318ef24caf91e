package extract

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// title builds a short human-readable label for the task. Preference
// order: first noun phrase, then first verb phrase, then the trimmed
// raw text. POS tagging failures degrade to the raw text.
func (e *Extractor) title(text string) string {
	candidate := strings.TrimSpace(text)

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err == nil {
		if np := firstNounPhrase(doc.Tokens()); np != "" {
			candidate = np
		} else if vp := firstVerbPhrase(doc.Tokens()); vp != "" {
			candidate = vp
		}
	}

	return cleanTitle(candidate)
}

// firstNounPhrase returns the first maximal run of determiner /
// adjective / noun tokens that contains at least one noun and is
// longer than two characters.
func firstNounPhrase(tokens []prose.Token) string {
	var run []string
	hasNoun := false

	flush := func() string {
		phrase := strings.Join(run, " ")
		if hasNoun && len(phrase) > 2 {
			return phrase
		}
		return ""
	}

	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok.Tag, "NN"):
			run = append(run, tok.Text)
			hasNoun = true
		case tok.Tag == "DT" || strings.HasPrefix(tok.Tag, "JJ") || tok.Tag == "PRP$":
			run = append(run, tok.Text)
		default:
			if phrase := flush(); phrase != "" {
				return phrase
			}
			run = run[:0]
			hasNoun = false
		}
	}
	return flush()
}

// firstVerbPhrase returns the first verb together with the tokens that
// follow it up to a comma or sentence break.
func firstVerbPhrase(tokens []prose.Token) string {
	start := -1
	for i, tok := range tokens {
		if strings.HasPrefix(tok.Tag, "VB") {
			start = i
			break
		}
	}
	if start == -1 {
		return ""
	}

	var parts []string
	for _, tok := range tokens[start:] {
		if tok.Tag == "," || tok.Tag == "." || tok.Tag == ":" {
			break
		}
		parts = append(parts, tok.Text)
	}
	return strings.Join(parts, " ")
}

// cleanTitle strips bracketed content and trailing duration fragments,
// then truncates overlong titles.
func cleanTitle(title string) string {
	title = bracketRE.ReplaceAllString(title, "")
	title = trailingDurRE.ReplaceAllString(title, "")
	title = strings.TrimSpace(strings.Trim(strings.TrimSpace(title), ","))

	runes := []rune(title)
	if len(runes) > maxTitleRunes {
		title = strings.TrimRight(string(runes[:titleRuneCutoff]), " ") + "..."
	}
	return title
}
