package inline

import (
	"io"
	"strings"

	"github.com/npillmayer/paragraph"
	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/paragraph/style"
	"golang.org/x/net/html"
)

// FromNode creates a paragraph from the textual content of an HTML element
// and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that FromNode cannot respect CSS styling (including
// properties changing the visibility of the node's descendents).
// Therefore the styles of the resulting paragraph are limited to inline
// elements like
//
//	<strong> … </strong>
//	<i> … </i>
//
// etc. Runs of white space collapse to a single space, and <br> starts a
// new line. Clients should provide a paragraph-like element.
func FromNode(n *html.Node, pstyle style.ParagraphStyle, ctx *measure.Context) (*paragraph.Paragraph, error) {
	if n == nil {
		return nil, paragraph.ErrIllegalArguments
	}
	c := newCollector(pstyle, ctx)
	if err := c.collect(n, PlainStyle); err != nil {
		return nil, err
	}
	return c.b.Build()
}

// FromHTML creates a paragraph from the textual content of an HTML fragment.
// The HTML fragment should reflect the content of a paragraph-like element.
func FromHTML(input io.Reader, pstyle style.ParagraphStyle, ctx *measure.Context) (*paragraph.Paragraph, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	c := newCollector(pstyle, ctx)
	for _, n := range nodes {
		if err := c.collect(n, PlainStyle); err != nil {
			return nil, err
		}
	}
	return c.b.Build()
}

// Elements whose content is not part of the text.
var invisible = map[string]bool{
	"head":   true,
	"script": true,
	"style":  true,
	"title":  true,
}

type collector struct {
	b       *paragraph.Builder
	styles  []style.SpanStyle // effective styles
	bol     bool              // at the beginning of a line
	pending bool              // collapsed white space to output before the next text
}

func newCollector(pstyle style.ParagraphStyle, ctx *measure.Context) *collector {
	return &collector{
		b:      paragraph.NewBuilder(pstyle, ctx),
		styles: []style.SpanStyle{pstyle.Default},
		bol:    true,
	}
}

func (c *collector) collect(n *html.Node, st Style) error {
	switch n.Type {
	case html.ElementNode:
		if invisible[n.Data] {
			return nil
		}
		if n.Data == "br" {
			c.pending = false
			c.bol = true
			return c.b.AddText("\n")
		}
		if s := StyleFromHTMLName(n.Data); s != PlainStyle {
			tracer().Debugf("inline text: <%s> is %v", n.Data, s)
			if err := c.push(s); err != nil {
				return err
			}
			defer c.pop()
			st = st.Add(s)
		}
	case html.TextNode:
		s := c.collapse(n.Data)
		if s == "" {
			return nil
		}
		tracer().Debugf("inline text = %q (%v)", s, st)
		return c.b.AddText(s)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := c.collect(ch, st); err != nil {
			return err
		}
	}
	return nil
}

func (c *collector) push(s Style) error {
	if err := c.flush(); err != nil {
		return err
	}
	parent := c.styles[len(c.styles)-1]
	st := s.SpanStyle(parent)
	if err := c.b.PushStyle(st); err != nil {
		return err
	}
	c.styles = append(c.styles, st.Inherit(parent))
	return nil
}

func (c *collector) pop() {
	c.flush()
	c.styles = c.styles[:len(c.styles)-1]
	c.b.Pop()
}

// flush outputs pending white space in the current style.
func (c *collector) flush() error {
	if !c.pending || c.bol {
		return nil
	}
	c.pending = false
	return c.b.AddText(" ")
}

// collapse replaces runs of HTML white space by a single space. White space
// at the beginning of a line is dropped, white space at the end of s is held
// back until more text or a change of style follows.
func (c *collector) collapse(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if strings.ContainsRune(" \t\n\f\r", r) {
			c.pending = true
			continue
		}
		if c.pending && !c.bol {
			sb.WriteByte(' ')
		}
		c.pending = false
		c.bol = false
		sb.WriteRune(r)
	}
	return sb.String()
}
