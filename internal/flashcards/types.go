package flashcards

import "errors"

// ErrInternal is returned when line processing fails unexpectedly.
// Callers never receive partial results alongside it.
var ErrInternal = errors.New("internal extraction error")

// DefaultSection labels cards when no title is provided.
const DefaultSection = "General"

// Flashcard is a single question/answer pair tagged with the section it was found in.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	// Section is nil when no section is active (see Options.LegacyHeadingReset).
	Section *string `json:"section"`
}

// SectionName returns the section label, or an empty string when there is none.
func (f Flashcard) SectionName() string {
	if f.Section == nil {
		return ""
	}
	return *f.Section
}

// Options controls extractor behavior.
type Options struct {
	// DefaultSection is used as the starting section when the note has no title.
	DefaultSection string

	// LegacyHeadingReset reproduces the behavior of earlier releases, where a
	// heading line clears the current section instead of replacing it. Cards that
	// follow a heading then carry a nil section until a subsection sets one.
	// A bullet card with no section is asked as "List key points"; earlier
	// releases printed "List key points of null" there.
	LegacyHeadingReset bool
}

// DefaultOptions returns the options used by the API when nothing is configured.
func DefaultOptions() Options {
	return Options{
		DefaultSection: DefaultSection,
	}
}

// Rule names, in precedence order. Classify reports one of these.
const (
	RuleHeading    = "heading"
	RuleSubsection = "subsection"
	RuleDefinition = "definition"
	RuleCopula     = "copula"
	RuleComparison = "comparison"
	RuleCausal     = "causal"
	RuleProsCons   = "pros_cons"
	RuleBullet     = "bullet"
	RuleSummary    = "summary"
)
