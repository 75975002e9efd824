package console

import (
	"bufio"
	"image/color"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	fcolor "github.com/fatih/color"
	"github.com/npillmayer/paragraph"
	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/paragraph/measure/cells"
	"github.com/npillmayer/paragraph/style"
	"github.com/npillmayer/paragraph/text"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ControlCodes holds escape sequences which a terminal uses to control
// bidi behaviour.
type ControlCodes struct {
	Preamble, Postamble []byte
	Newline             []byte
}

// DefaultCodes is the default set of control codes.
// See https://terminal-wg.pages.freedesktop.org/bidi/recommendation/escape-sequences.html
var DefaultCodes = ControlCodes{
	Preamble:  []byte{27, '[', '8', 'l'}, // switch to explicit mode
	Postamble: []byte{27, '[', '8', 'h'}, // back to implicit mode
	Newline:   []byte{'\n'},
}

// PlainCodes are control codes for output devices without bidi support,
// e.g. files.
var PlainCodes = ControlCodes{
	Newline: []byte{'\n'},
}

// Config represents a set of configuration parameters for console output.
type Config struct {
	LineWidth int            // in cells
	Context   *uax11.Context // nil for uax11.LatinContext
}

// Console outputs paragraphs to a terminal.
type Console struct {
	Codes      *ControlCodes
	Monochrome bool // output text without colors
	ForceColor bool // output colors even if stdout is not a terminal
	// Palette, if set, selects colors for span styles. If it returns nil,
	// the default colors are used.
	Palette func(style.SpanStyle) *fcolor.Color
	config  Config
	oracle  *cells.Oracle
	ctx     *measure.Context
}

// New creates a console. Paragraphs to print have to be built with the
// console's measurement context.
//
// If codes is nil, DefaultCodes are used. If config is nil, a heuristic will
// create a config from the current terminal's properties (if stdout is
// interactive), with a width context derived from the user environment.
func New(codes *ControlCodes, config *Config) *Console {
	if codes == nil {
		codes = &DefaultCodes
	}
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	con := &Console{Codes: codes, config: *config}
	if con.config.LineWidth <= 0 {
		con.config.LineWidth = 65
	}
	con.oracle = cells.New(&cells.Config{Context: con.config.Context})
	con.ctx = measure.NewContext(con.oracle)
	return con
}

// Context returns the measurement context for paragraphs output to con.
func (con *Console) Context() *measure.Context {
	return con.ctx
}

// LineWidth returns the width of the console's lines in cells.
func (con *Console) LineWidth() int {
	return con.config.LineWidth
}

// Print outputs a paragraph to stdout.
func (con *Console) Print(para *paragraph.Paragraph) error {
	return con.Output(para, os.Stdout)
}

// Output lays out a paragraph for the console's line width and writes it
// to w, one row per line.
func (con *Console) Output(para *paragraph.Paragraph, w io.Writer) error {
	para.Layout(paragraph.Constraints{Width: float64(con.config.LineWidth)})
	scr := &screen{rows: make([][]cell, para.NumberOfLines())}
	para.Paint(scr, text.Point{})
	out := bufio.NewWriter(w)
	out.Write(con.Codes.Preamble)
	for i, row := range scr.rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].col < row[j].col })
		col := 0
		for _, c := range row {
			if c.col > col {
				out.WriteString(strings.Repeat(" ", c.col-col))
				col = c.col
			}
			s := c.run.Visual()
			con.styledText(s, c.run.Style, out)
			col += con.oracle.Cells(s)
		}
		tracer().Debugf("console row %d has %d cells", i, col)
		out.Write(con.Codes.Newline)
	}
	out.Write(con.Codes.Postamble)
	return out.Flush()
}

func (con *Console) styledText(s string, st style.SpanStyle, w io.Writer) {
	if !con.Monochrome {
		if c := con.colorFor(st); c != nil {
			if con.ForceColor {
				c.EnableColor()
			}
			c.Fprint(w, s)
			return
		}
	}
	io.WriteString(w, s)
}

func (con *Console) colorFor(st style.SpanStyle) *fcolor.Color {
	if con.Palette != nil {
		if c := con.Palette(st); c != nil {
			return c
		}
	}
	var attrs []fcolor.Attribute
	if st.Color != nil {
		if bits := ansiBits(st.Color); bits != 0 { // leave black to the terminal
			attrs = append(attrs, fcolor.FgBlack+fcolor.Attribute(bits))
		}
	}
	if st.Background != nil {
		attrs = append(attrs, fcolor.BgBlack+fcolor.Attribute(ansiBits(st.Background)))
	}
	if st.Font().Weight >= 600 {
		attrs = append(attrs, fcolor.Bold)
	}
	if st.Italic {
		attrs = append(attrs, fcolor.Italic)
	}
	if len(attrs) == 0 {
		return nil
	}
	return fcolor.New(attrs...)
}

// ansiBits maps a color to the nearest of the 8 basic ANSI colors, which are
// ordered by bits red=1, green=2, blue=4.
func ansiBits(c color.Color) int {
	r, g, b, _ := c.RGBA()
	bits := 0
	if r >= 0x8000 {
		bits |= 1
	}
	if g >= 0x8000 {
		bits |= 2
	}
	if b >= 0x8000 {
		bits |= 4
	}
	return bits
}

// screen collects text runs by line.
type screen struct {
	rows [][]cell
}

type cell struct {
	col int
	run paragraph.TextRun
}

func (scr *screen) DrawText(run paragraph.TextRun) {
	for len(scr.rows) <= run.Line {
		scr.rows = append(scr.rows, nil)
	}
	col := int(math.Round(run.X))
	scr.rows[run.Line] = append(scr.rows[run.Line], cell{col: col, run: run})
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a console Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().Infof("setting line length to %d cells", config.LineWidth)
	return config
}
