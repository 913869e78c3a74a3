package usecase

import (
	"strings"
	"unicode"
)

// Structuring is a best-effort scan over the model's free text: an explicit
// state machine over lines whose state flips on keyword triggers and whose
// captures are gated on a list-item shape. It never fails; unmatched text
// simply yields empty lists while the raw text is returned untouched.

const (
	maxPosts                  = 5
	maxRecommendations        = 10
	maxCompanyRecommendations = 10
	maxTasks                  = 20
	maxNextSteps              = 20
)

// Bullet and numbering prefixes stripped before an item is stored. The
// company-card variant additionally accepts asterisk bullets.
const (
	listMarkerCutset        = "- •0123456789. "
	companyListMarkerCutset = "- •*0123456789. "
)

var (
	recommendationKeywords = []string{"рекомендац", "совет"}
	warningKeywords        = []string{"риск", "предупрежден", "важно"}
	taskKeywords           = []string{"задач", "todo"}
	stepKeywords           = []string{"шаг", "действ", "next"}
)

type section int

const (
	sectionNone section = iota
	sectionFirst
	sectionSecond
)

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// isListItem reports whether a trimmed line looks like a bullet or numbered
// entry.
func isListItem(trimmed string, extraMarkers ...rune) bool {
	if trimmed == "" {
		return false
	}
	r := []rune(trimmed)[0]
	if r == '-' || r == '•' || unicode.IsDigit(r) {
		return true
	}
	for _, marker := range extraMarkers {
		if r == marker {
			return true
		}
	}
	return false
}

func stripListMarker(trimmed string) string {
	return strings.TrimLeft(trimmed, listMarkerCutset)
}

// extractTwoSections walks the text keeping one active section at a time.
// The keyword checks run in a fixed first-match order: firstKeywords win over
// secondKeywords when a line matches both. A trigger line is itself still
// eligible for capture when it carries a list shape.
func extractTwoSections(text string, firstKeywords, secondKeywords []string, requireClean bool) (first, second []string) {
	state := sectionNone
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if containsAny(lower, firstKeywords) {
			state = sectionFirst
		} else if containsAny(lower, secondKeywords) {
			state = sectionSecond
		}
		trimmed := strings.TrimSpace(line)
		if !isListItem(trimmed) {
			continue
		}
		item := stripListMarker(trimmed)
		if requireClean && item == "" {
			continue
		}
		switch state {
		case sectionFirst:
			first = append(first, item)
		case sectionSecond:
			second = append(second, item)
		}
	}
	return first, second
}

func capList(items []string, max int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > max {
		return items[:max]
	}
	return items
}

// ExtractFinanceSections pulls recommendation and warning bullets out of a
// finance analysis. Recommendations are capped; warnings are returned as
// found (the caller substitutes the fixed fallback when empty).
func ExtractFinanceSections(text string) (recommendations, warnings []string) {
	recommendations, warnings = extractTwoSections(text, recommendationKeywords, warningKeywords, false)
	return capList(recommendations, maxRecommendations), warnings
}

// ExtractSummarySections pulls task and next-step bullets out of a summary.
func ExtractSummarySections(text string) (tasks, nextSteps []string) {
	tasks, nextSteps = extractTwoSections(text, taskKeywords, stepKeywords, true)
	return capList(tasks, maxTasks), capList(nextSteps, maxNextSteps)
}

// ExtractCompanyRecommendations pulls recommendation bullets out of a company
// card. Unlike the two-section extractors the trigger line itself is never
// captured, and the section once entered stays active.
func ExtractCompanyRecommendations(text string) []string {
	recommendations := []string{}
	active := false
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if containsAny(lower, recommendationKeywords) {
			active = true
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || !active {
			continue
		}
		if isListItem(trimmed, '*') {
			recommendations = append(recommendations, strings.TrimLeft(trimmed, companyListMarkerCutset))
		}
	}
	return capList(recommendations, maxCompanyRecommendations)
}

// SplitMarketingPosts segments the model text into post variants: blocks are
// delimited by blank lines and by lines opening with an ordinal marker, a
// "Вариант" label, or a separator rule. Separator dashes are dropped, other
// delimiter lines open the next block. With no boundaries at all the whole
// text is a single post.
func SplitMarketingPosts(text string) []string {
	var posts []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			posts = append(posts, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if startsNewPost(trimmed) {
			flush()
			if !strings.HasPrefix(trimmed, "---") {
				current = append(current, trimmed)
			}
			continue
		}
		current = append(current, trimmed)
	}
	flush()
	if len(posts) == 0 {
		posts = []string{text}
	}
	return capList(posts, maxPosts)
}

var postDelimiters = []string{"1.", "2.", "3.", "4.", "5.", "Вариант", "---", "==="}

func startsNewPost(trimmed string) bool {
	for _, prefix := range postDelimiters {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
