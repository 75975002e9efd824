package textfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/paragraph"
	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/paragraph/style"
)

const maxLineLength = 1048576

// Document is a text file loaded as a sequence of paragraphs.
type Document struct {
	Name  string
	paras []*paragraph.Paragraph
	cast  *caster.Caster // broadcaster for layout progress
	wg    sync.WaitGroup
}

// Progress is broadcast to subscribers of a document whenever a paragraph
// has been laid out.
type Progress struct {
	Index int // paragraph which has been laid out
	Total int // number of paragraphs
}

// Done is true if p reports the last paragraph of a document.
func (p Progress) Done() bool {
	return p.Index == p.Total-1
}

// Load reads a file, which must be a text file, and splits it into
// paragraphs in style pstyle. The paragraphs are not laid out yet.
func Load(name string, pstyle style.ParagraphStyle, ctx *measure.Context) (*Document, error) {
	f, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Read(f, pstyle, ctx)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	doc.Name = name
	return doc, nil
}

// openFile opens an OS file, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %s is not a regular file", name)
	}
	return os.Open(name) // just open for read access
}

// Read splits text from r into paragraphs in style pstyle.
func Read(r io.Reader, pstyle style.ParagraphStyle, ctx *measure.Context) (*Document, error) {
	doc := &Document{cast: caster.New(nil)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			if err := doc.add(lines, pstyle, ctx); err != nil {
				return nil, err
			}
			lines = lines[:0]
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := doc.add(lines, pstyle, ctx); err != nil {
		return nil, err
	}
	tracer().Infof("text split into %d paragraphs", len(doc.paras))
	return doc, nil
}

func (doc *Document) add(lines []string, pstyle style.ParagraphStyle, ctx *measure.Context) error {
	if len(lines) == 0 {
		return nil
	}
	b := paragraph.NewBuilder(pstyle, ctx)
	if err := b.AddText(strings.Join(lines, " ")); err != nil {
		return err
	}
	para, err := b.Build()
	if err != nil {
		return err
	}
	doc.paras = append(doc.paras, para)
	return nil
}

// Len returns the number of paragraphs.
func (doc *Document) Len() int {
	return len(doc.paras)
}

// Paragraph returns paragraph no. i.
func (doc *Document) Paragraph(i int) *paragraph.Paragraph {
	return doc.paras[i]
}

// Subscribe returns a channel which receives a Progress message for every
// paragraph laid out. Subscribers have to drain the channel, as layout waits
// for messages to be delivered.
func (doc *Document) Subscribe(capacity uint) (<-chan interface{}, bool) {
	return doc.cast.Sub(nil, capacity)
}

// Unsubscribe cancels a subscription.
func (doc *Document) Unsubscribe(ch <-chan interface{}) {
	doc.cast.Unsub(ch)
}

// LayoutAsync lays out all paragraphs in the background. A layout already in
// progress is waited for first.
func (doc *Document) LayoutAsync(c paragraph.Constraints) {
	doc.Wait()
	doc.wg.Add(1)
	go func() {
		defer doc.wg.Done()
		for i, para := range doc.paras {
			para.Layout(c)
			doc.cast.Pub(Progress{Index: i, Total: len(doc.paras)})
		}
		tracer().Debugf("document laid out for width %.2f", c.Width)
	}()
}

// Wait waits for the layout started by LayoutAsync to complete.
func (doc *Document) Wait() {
	doc.wg.Wait()
}

// Height returns the sum of the heights of all paragraphs. All paragraphs
// have to be laid out.
func (doc *Document) Height() float64 {
	h := 0.0
	for _, para := range doc.paras {
		h += para.Height()
	}
	return h
}

// Close ends all subscriptions. The document's paragraphs stay usable.
func (doc *Document) Close() {
	doc.Wait()
	doc.cast.Close()
}
