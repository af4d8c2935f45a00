package flashcards

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// copulaMaxTokens bounds the copula rule to short sentences.
	copulaMaxTokens = 20
	// summaryMinRunes is the shortest line the summary rule accepts.
	summaryMinRunes = 7
	// summaryWords is how many words of the line are quoted in a summary question.
	summaryWords = 5

	comparisonAnswer = "Compare their definitions or features."
	prosConsAnswer   = "Summarize the pros and cons mentioned in the section."
)

var (
	markdownHeadingRe = regexp.MustCompile(`^#{1,6}\s*`)
	// Every word starts with an uppercase letter; "&" may stand alone as a word.
	titleCaseRe    = regexp.MustCompile(`^[A-Z][A-Za-z&]*(?:\s+(?:[A-Z][A-Za-z&]*|&))*$`)
	copulaSplitRe  = regexp.MustCompile(`(?i) is `)
	comparisonRe   = regexp.MustCompile(`(?i)\b(?:vs|versus)\b`)
	causalSplitRe  = regexp.MustCompile(`(?i) because `)
	prosConsRe     = regexp.MustCompile(`(?i)advantages?|disadvantages?|pros|cons`)
	bulletMarkerRe = regexp.MustCompile(`^[-•*+]\s*`)
)

// line is a non-blank input line after indentation has been measured.
type line struct {
	text   string
	indent int
}

// rule is one classification step. Rules are evaluated in slice order and the
// first match consumes the line.
type rule struct {
	name  string
	match func(text string) bool
	apply func(s *parseState, l line)
}

// rules is the fixed precedence order of the classifier.
var rules = []rule{
	{name: RuleHeading, match: isHeading, apply: applyHeading},
	{name: RuleSubsection, match: isSubsection, apply: applySubsection},
	{name: RuleDefinition, match: isDefinition, apply: applyDefinition},
	{name: RuleCopula, match: isCopula, apply: applyCopula},
	{name: RuleComparison, match: comparisonRe.MatchString, apply: applyComparison},
	{name: RuleCausal, match: isCausal, apply: applyCausal},
	{name: RuleProsCons, match: prosConsRe.MatchString, apply: applyProsCons},
	{name: RuleBullet, match: bulletMarkerRe.MatchString, apply: applyBullet},
	{name: RuleSummary, match: isSummarizable, apply: applySummary},
}

// Classify reports which rule would consume a line, or an empty string if the
// line would be ignored. It does not look at parser state.
func Classify(text string) string {
	text = strings.TrimFunc(text, isSpace)
	if text == "" {
		return ""
	}
	for _, r := range rules {
		if r.match(text) {
			return r.name
		}
	}
	return ""
}

func isHeading(text string) bool {
	// A lone capital such as "I" is not a heading.
	return markdownHeadingRe.MatchString(text) ||
		(len(text) > 1 && titleCaseRe.MatchString(text))
}

func applyHeading(s *parseState, l line) {
	s.flush()
	title := strings.TrimSpace(markdownHeadingRe.ReplaceAllString(l.text, ""))
	if s.opts.LegacyHeadingReset {
		s.section = nil
	} else {
		if title != "" {
			s.section = &title
		}
		s.subsection = nil
	}
	s.push(title, l.indent)
}

func isSubsection(text string) bool {
	return strings.HasSuffix(text, ":")
}

func applySubsection(s *parseState, l line) {
	s.flush()
	name := strings.TrimSpace(strings.TrimSuffix(l.text, ":"))
	s.subsection = &name
	s.push(name, l.indent)
}

func isDefinition(text string) bool {
	return strings.Contains(text, " - ") && !strings.HasPrefix(text, "-")
}

func applyDefinition(s *parseState, l line) {
	parts := strings.Split(l.text, " - ")
	s.emit(fmt.Sprintf("What is %s?", strings.TrimSpace(parts[0])), strings.TrimSpace(parts[1]))
}

func isCopula(text string) bool {
	return strings.Contains(strings.ToLower(text), " is ") &&
		len(strings.Split(text, " ")) < copulaMaxTokens
}

func applyCopula(s *parseState, l line) {
	parts := copulaSplitRe.Split(l.text, -1)
	var def string
	if len(parts) > 1 {
		def = strings.TrimSpace(parts[1])
	}
	s.emit(fmt.Sprintf("What is %s?", strings.TrimSpace(parts[0])), def)
}

func applyComparison(s *parseState, l line) {
	parts := comparisonRe.Split(l.text, -1)
	var a, b string
	a = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		b = strings.TrimSpace(parts[1])
	}
	s.emit(fmt.Sprintf("What is the difference between %s and %s?", a, b), comparisonAnswer)
}

func isCausal(text string) bool {
	return strings.Contains(strings.ToLower(text), " because ")
}

func applyCausal(s *parseState, l line) {
	parts := causalSplitRe.Split(l.text, -1)
	var cause string
	if len(parts) > 1 {
		cause = strings.TrimSpace(parts[1])
	}
	s.emit(fmt.Sprintf("Why %s?", strings.TrimSpace(parts[0])), "Because "+cause)
}

func applyProsCons(s *parseState, l line) {
	s.emit("List the "+l.text, prosConsAnswer)
}

func applyBullet(s *parseState, l line) {
	item := strings.TrimSpace(bulletMarkerRe.ReplaceAllString(l.text, ""))
	s.bullets = append(s.bullets, item)
}

func isSummarizable(text string) bool {
	return utf8.RuneCountInString(text) >= summaryMinRunes
}

func applySummary(s *parseState, l line) {
	words := strings.Split(l.text, " ")
	if len(words) > summaryWords {
		words = words[:summaryWords]
	}
	s.emit("Summarize: "+strings.Join(words, " ")+"...", l.text)
}
