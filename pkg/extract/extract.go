// Package extract turns free-form task text into structured task
// records: a short title, an optional due timestamp, an optional
// effort estimate in minutes, and an importance tier.
//
// The scoring core treats this package as a black-box collaborator;
// it only depends on the record shape, never on how the fields were
// derived from language.
package extract

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"smart-task-assistant/internal/model"
)

const defaultCacheSize = 512

// Extractor parses natural-language task descriptions. It is safe for
// concurrent use; extraction is deterministic for a given (text, ref)
// pair and results are memoized in a bounded LRU.
type Extractor struct {
	location *time.Location
	dates    *when.Parser
	cache    *lru.Cache[string, *model.Task]
}

// New creates an Extractor for the given IANA timezone, e.g.
// "Europe/Berlin". The timezone anchors relative date expressions.
func New(timezone string) (*Extractor, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	cache, err := lru.New[string, *model.Task](defaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("init extraction cache: %w", err)
	}

	return &Extractor{location: loc, dates: w, cache: cache}, nil
}

// Extract parses one task description anchored at the reference
// instant. Blank input yields no record (nil) rather than a hollow
// task; every other field degrades independently to "unknown" when it
// cannot be derived.
func (e *Extractor) Extract(text string, ref time.Time) *model.Task {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	key := text + "\x00" + ref.Format(time.RFC3339Nano)
	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	task := &model.Task{
		Raw:        text,
		Title:      e.title(text),
		Due:        e.due(text, ref),
		EstMinutes: estimatedMinutes(text),
		Importance: inferImportance(text),
	}

	e.cache.Add(key, task)
	return task
}

// due resolves a natural-language date mention ("tomorrow", "next
// tuesday", "in 3 days") against ref. No mention means no deadline.
func (e *Extractor) due(text string, ref time.Time) *time.Time {
	r, err := e.dates.Parse(text, ref.In(e.location))
	if err != nil || r == nil {
		return nil
	}
	due := r.Time
	return &due
}

// estimatedMinutes pulls the first duration mention out of the text.
// Hours convert to minutes; anything unparsable reads as unknown.
func estimatedMinutes(text string) *float64 {
	m := durationRE.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	val, err := strconv.ParseFloat(m[1], 64)
	if err != nil || val < 0 {
		return nil
	}
	if strings.HasPrefix(strings.ToLower(m[2]), "h") {
		val *= 60
	}
	return &val
}

// inferImportance scans the keyword lists, highest tier first.
func inferImportance(text string) model.Importance {
	lowered := strings.ToLower(text)
	for _, w := range highWords {
		if strings.Contains(lowered, w) {
			return model.ImportanceHigh
		}
	}
	for _, w := range mediumWords {
		if strings.Contains(lowered, w) {
			return model.ImportanceMedium
		}
	}
	for _, w := range lowWords {
		if strings.Contains(lowered, w) {
			return model.ImportanceLow
		}
	}
	return model.ImportanceUnspecified
}
