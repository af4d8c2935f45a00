package notes

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Meta holds parsed frontmatter fields.
type Meta struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

// Note is a parsed note ready for flashcard generation.
type Note struct {
	Title string
	Tags  []string
	// Body is the note content without its frontmatter block.
	Body string
}

var markdown = goldmark.New()

// Parse splits a note into frontmatter and body and picks its title:
//  1. frontmatter title
//  2. first # heading, or the first ## heading when there is no # heading
//  3. filename without extension, with each word capitalized
func Parse(content []byte, filename string) Note {
	var meta Meta
	body, err := frontmatter.Parse(strings.NewReader(string(content)), &meta)
	if err != nil {
		// If frontmatter parsing fails, treat entire content as body
		meta = Meta{}
		body = content
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = extractTitle(body, filename)
	}

	return Note{
		Title: title,
		Tags:  meta.Tags,
		Body:  string(body),
	}
}

// extractTitle finds the first level 1 heading, falling back to the first level 2
// heading and then to the filename.
func extractTitle(content []byte, filename string) string {
	if len(content) == 0 {
		return titleFromFilename(filename)
	}

	doc := markdown.Parser().Parse(text.NewReader(content))

	var firstH1, firstH2 string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		headingText := textOf(heading, content)
		switch {
		case heading.Level == 1 && headingText != "":
			firstH1 = headingText
			return ast.WalkStop, nil
		case heading.Level == 2 && firstH2 == "":
			firstH2 = headingText
		}
		return ast.WalkSkipChildren, nil
	})

	if firstH1 != "" {
		return firstH1
	}
	if firstH2 != "" {
		return firstH2
	}
	return titleFromFilename(filename)
}

// titleFromFilename removes the extension, treats dashes and underscores as spaces
// and capitalizes the first letter of each word.
func titleFromFilename(filename string) string {
	name := filepath.Base(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	words := strings.Fields(name)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}

// textOf extracts text content from a node and its children.
func textOf(n ast.Node, content []byte) string {
	var b strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(content))
			if v.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}
