package inline

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/paragraph"
	"github.com/npillmayer/paragraph/text"
	"golang.org/x/net/html"
)

// ToHTML writes a paragraph as a <p> element with inline markup. Styles are
// expressed relative to the paragraph's default style; properties without
// an HTML inline element, e.g. colors, are lost. Line breaks are output as
// <br>, placeholders are dropped.
//
// ToHTML and FromHTML round-trip for paragraphs created by FromHTML.
func ToHTML(para *paragraph.Paragraph, w io.Writer) error {
	out := bufio.NewWriter(w)
	pstyle := para.Style()
	if pstyle.Direction() == text.RightToLeft {
		out.WriteString(`<p dir="rtl">`)
	} else {
		out.WriteString("<p>")
	}
	plain := para.PlainText()
	units := text.FromString(plain)
	for _, span := range para.Spans() {
		if span.IsPlaceholder() || span.Start == span.End {
			continue
		}
		st := StyleOf(span.Style, pstyle.Default)
		lines := strings.Split(units.String(span.Start, span.End), "\n")
		for i, line := range lines {
			if i > 0 {
				out.WriteString("<br>")
			}
			if line == "" {
				continue
			}
			out.WriteString(st.tags(false))
			out.WriteString(html.EscapeString(line))
			out.WriteString(st.tags(true))
		}
	}
	out.WriteString("</p>")
	tracer().Debugf("exported paragraph of %d spans to HTML", len(para.Spans()))
	return out.Flush()
}
