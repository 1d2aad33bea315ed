package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type ModerationAction string

const (
	ActionApprove ModerationAction = "approve"
	ActionReview  ModerationAction = "review"
	ActionReject  ModerationAction = "reject"
)

// Flag categories
const (
	FlagInappropriateLanguage = "inappropriate_language"
	FlagSpam                  = "spam"
	FlagTooShort              = "too_short"
	FlagTooLong               = "too_long"
)

type ModerationResult struct {
	IsAppropriate bool             `json:"isAppropriate"`
	Confidence    float64          `json:"confidence"`
	Flags         []string         `json:"flags"`
	Action        ModerationAction `json:"action"`
}

// Keyword heuristic, not a classifier. Case-insensitive substring match;
// each hit costs 0.2 confidence, cumulatively.
var inappropriateKeywords = []string{
	// Profanity
	"damn", "hell", "crap", "stupid", "idiot",
	// Spam phrases
	"buy now", "click here", "free money", "get rich quick",
	// Hate speech indicators
	"hate", "discrimination", "racist", "sexist",
	// Misinformation indicators
	"climate hoax", "global warming fake", "science lie",
}

var spamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(.)\1{4,}`),    // repeated character runs
	regexp.MustCompile(`[A-Z]{5,}`),    // shouting
	regexp.MustCompile(`\b\d{10,}\b`),  // long digit runs (phone numbers)
	regexp.MustCompile(`https?://\S+`), // embedded URLs
}

const (
	minContentLength = 10
	maxContentLength = 2000
)

// Moderate scores free text against the keyword and spam heuristics.
// Both the action decision and IsAppropriate are derived from the
// unclamped confidence; only the reported Confidence value is clamped to
// zero.
func Moderate(content string) ModerationResult {
	var flags []string
	confidence := 1.0

	lower := strings.ToLower(content)
	matched := 0
	for _, kw := range inappropriateKeywords {
		if strings.Contains(lower, kw) {
			matched++
		}
	}
	if matched > 0 {
		flags = append(flags, FlagInappropriateLanguage)
		confidence -= float64(matched) * 0.2
	}

	for _, p := range spamPatterns {
		if p.MatchString(content) {
			flags = append(flags, FlagSpam)
			confidence -= 0.3
			break
		}
	}

	// Length limits count characters, not bytes, so multibyte text is
	// measured the same way the client measures it.
	if n := utf8.RuneCountInString(content); n < minContentLength {
		flags = append(flags, FlagTooShort)
		confidence -= 0.1
	} else if n > maxContentLength {
		flags = append(flags, FlagTooLong)
		confidence -= 0.1
	}

	action := ActionApprove
	switch {
	case confidence < 0.3 || containsFlag(flags, FlagInappropriateLanguage):
		action = ActionReject
	case confidence < 0.7 || len(flags) > 0:
		action = ActionReview
	}

	reported := confidence
	if reported < 0 {
		reported = 0
	}

	return ModerationResult{
		IsAppropriate: confidence > 0.7 && len(flags) == 0,
		Confidence:    reported,
		Flags:         flags,
		Action:        action,
	}
}

func containsFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}

var (
	scriptTagRegex     = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	iframeTagRegex     = regexp.MustCompile(`(?is)<iframe\b[^>]*>.*?</iframe>`)
	javascriptURIRegex = regexp.MustCompile(`(?i)javascript:`)
	onEventRegex       = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// Sanitize strips script/iframe blocks, javascript: URIs and inline
// event-handler attributes. It runs on every piece of user-submitted
// free text before storage, independent of the moderation verdict.
func Sanitize(content string) string {
	content = scriptTagRegex.ReplaceAllString(content, "")
	content = iframeTagRegex.ReplaceAllString(content, "")
	content = javascriptURIRegex.ReplaceAllString(content, "")
	content = onEventRegex.ReplaceAllString(content, "")
	return strings.TrimSpace(content)
}
