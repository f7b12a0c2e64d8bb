package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// Parser renders goal descriptions and reads goal files. Raw HTML in the
// source is never passed through.
type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			&frontmatter.Extender{},
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
		),
	)

	return &Parser{
		md: md,
	}
}

// Parse renders Markdown to HTML.
func (p *Parser) Parse(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := p.md.Convert(source, &buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SplitFrontmatter returns the YAML front matter of source as a map and
// the Markdown body that follows it. A document without front matter
// yields an empty map and the whole source as body.
func (p *Parser) SplitFrontmatter(source []byte) (meta map[string]any, body []byte, err error) {
	context := parser.NewContext()
	p.md.Parser().Parse(text.NewReader(source), parser.WithContext(context))

	meta = make(map[string]any)
	data := frontmatter.Get(context)
	if data == nil {
		return meta, source, nil
	}

	err = data.Decode(&meta)
	if err != nil {
		return nil, nil, err
	}

	return meta, stripFrontmatter(source), nil
}

// stripFrontmatter drops a leading "---" delimited block.
func stripFrontmatter(source []byte) []byte {
	const delim = "---"

	lines := bytes.SplitAfter(source, []byte("\n"))
	if len(lines) == 0 || string(bytes.TrimSpace(lines[0])) != delim {
		return source
	}
	for i := 1; i < len(lines); i++ {
		if string(bytes.TrimSpace(lines[i])) == delim {
			return bytes.Join(lines[i+1:], nil)
		}
	}
	return source
}
