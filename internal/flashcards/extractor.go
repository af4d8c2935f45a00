// Package flashcards turns freeform note text into question/answer flashcards.
//
// Extraction is a single forward pass over the note's lines. Each non-blank line
// is offered to an ordered list of rules (headings, subsections, definitions,
// copula sentences, comparisons, causal sentences, pros/cons markers, bullets and
// a summary fallback) and the first rule that matches consumes it. The output is
// deterministic for a given input and Options.
package flashcards

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	fallbackQuestion   = "Summarize this note:"
	fallbackAnswerLen  = 200
	bulletQuestionBase = "List key points"
)

// frame is one entry of the heading indent stack.
type frame struct {
	title  string
	indent int
}

// parseState is the accumulator threaded through one extraction.
type parseState struct {
	opts       Options
	section    *string
	subsection *string
	indents    []frame
	bullets    []string
	cards      []Flashcard
}

func newParseState(title string, opts Options) *parseState {
	section := title
	if section == "" {
		section = opts.DefaultSection
	}
	if section == "" {
		section = DefaultSection
	}
	return &parseState{
		opts:    opts,
		section: &section,
	}
}

// label is the section attached to emitted cards: the subsection if set, else the section.
func (s *parseState) label() *string {
	if s.subsection != nil {
		return copyString(s.subsection)
	}
	return copyString(s.section)
}

func (s *parseState) emit(question, answer string) {
	s.cards = append(s.cards, Flashcard{
		Question: question,
		Answer:   answer,
		Section:  s.label(),
	})
}

// flush turns the pending bullet items into one card and clears the buffer.
func (s *parseState) flush() {
	if len(s.bullets) == 0 {
		return
	}
	question := bulletQuestionBase
	if l := s.label(); l != nil {
		question = fmt.Sprintf("%s of %s", bulletQuestionBase, *l)
	}
	s.emit(question, strings.Join(s.bullets, ", "))
	s.bullets = nil
}

// unwind pops heading frames that are indented at least as deep as the current line.
func (s *parseState) unwind(indent int) {
	for len(s.indents) > 0 && s.indents[len(s.indents)-1].indent >= indent {
		s.indents = s.indents[:len(s.indents)-1]
	}
}

func (s *parseState) push(title string, indent int) {
	s.indents = append(s.indents, frame{title: title, indent: indent})
}

// Extractor generates flashcards with a fixed set of options.
// It holds no per-call state and is safe for concurrent use.
type Extractor struct {
	opts Options
}

// NewExtractor creates an Extractor.
func NewExtractor(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// Options returns the options the extractor was created with.
func (e *Extractor) Options() Options {
	return e.opts
}

// Generate extracts flashcards from content. title is only used as the initial
// section label. The result always holds at least one card on success.
func (e *Extractor) Generate(content, title string) ([]Flashcard, error) {
	return Generate(content, title, e.opts)
}

// Generate extracts flashcards from content using opts.
// A failure while processing returns ErrInternal and no cards.
func Generate(content, title string, opts Options) (cards []Flashcard, err error) {
	defer func() {
		if r := recover(); r != nil {
			cards = nil
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	s := newParseState(title, opts)

	for _, raw := range strings.Split(content, "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		text := strings.TrimFunc(raw, isSpace)
		if text == "" {
			continue
		}

		l := line{text: text, indent: leadingWhitespace(raw)}
		s.unwind(l.indent)

		for _, r := range rules {
			if r.match(l.text) {
				r.apply(s, l)
				break
			}
		}
	}

	s.flush()

	if len(s.cards) == 0 {
		s.cards = append(s.cards, Flashcard{
			Question: fallbackQuestion,
			Answer:   truncateRunes(content, fallbackAnswerLen),
			Section:  copyString(s.section),
		})
	}

	return s.cards, nil
}

// isSpace reports whether r is trimmed from line ends, including a byte order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// leadingWhitespace counts the whitespace runes before the first non-space rune.
func leadingWhitespace(s string) int {
	trimmed := strings.TrimLeftFunc(s, isSpace)
	return utf8.RuneCountInString(s[:len(s)-len(trimmed)])
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
