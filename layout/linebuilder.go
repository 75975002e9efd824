package layout

import (
	"github.com/npillmayer/paragraph/style"
	"github.com/npillmayer/paragraph/text"
)

// LineBuilder fills a single line with fragments. When the line is
// committed, fragments which did not make it into the line are handed to
// the builder of the next line.
type LineBuilder struct {
	sm     *Spanometer
	pstyle *style.ParagraphStyle
	//
	maxWidth          float64
	lineNumber        int
	accumulatedHeight float64 // height of the lines above
	startIndex        text.Index
	//
	fragments            []*Fragment
	fragmentsForNextLine []*Fragment // nil until the line is broken explicitly
	breakCount           int
	//
	width               float64 // excluding trailing white space
	widthIncludingSpace float64
	ascent, descent     float64
	spaceCount          int
	trailingSpaces      int
}

// NewLineBuilder creates the builder for the first line of a paragraph.
func NewLineBuilder(sm *Spanometer, pstyle *style.ParagraphStyle, maxWidth float64) *LineBuilder {
	return &LineBuilder{
		sm:       sm,
		pstyle:   pstyle,
		maxWidth: max(maxWidth, 0),
	}
}

// LineNumber is the 0-based number of the line under construction.
func (lb *LineBuilder) LineNumber() int {
	return lb.lineNumber
}

// IsEmpty is true if the line has no fragments.
func (lb *LineBuilder) IsEmpty() bool {
	return len(lb.fragments) == 0
}

// Width of the line, excluding trailing white space.
func (lb *LineBuilder) Width() float64 {
	return lb.width
}

// EndIndex is the end of the text of the line.
func (lb *LineBuilder) EndIndex() text.Index {
	if len(lb.fragments) == 0 {
		return lb.startIndex
	}
	return lb.fragments[len(lb.fragments)-1].End
}

func (lb *LineBuilder) last() *Fragment {
	return lb.fragments[len(lb.fragments)-1]
}

// AddFragment appends a measured fragment to the line.
func (lb *LineBuilder) AddFragment(f *Fragment) {
	lb.updateMetrics(f)
	lb.fragments = append(lb.fragments, f)
}

func (lb *LineBuilder) updateMetrics(f *Fragment) {
	lb.spaceCount += f.TrailingSpaces
	if f.IsSpaceOnly() {
		lb.trailingSpaces += f.TrailingSpaces
	} else {
		lb.trailingSpaces = f.TrailingSpaces
		lb.width = lb.widthIncludingSpace + f.WidthExcludingTrailingSpaces
	}
	lb.widthIncludingSpace += f.WidthIncludingTrailingSpaces()
	if f.IsPlaceholder() {
		lb.alignPlaceholder(f)
	}
	if f.IsBreak() {
		lb.breakCount++
	}
	lb.ascent = max(lb.ascent, f.Ascent)
	lb.descent = max(lb.descent, f.Descent)
}

// alignPlaceholder derives ascent and descent of a placeholder fragment from
// its alignment mode and the metrics of the line so far.
func (lb *LineBuilder) alignPlaceholder(f *Fragment) {
	ph := f.Span.Placeholder
	var ascent, descent float64
	switch ph.Alignment {
	case style.AlignTop:
		ascent = lb.ascent
		descent = ph.Height - lb.ascent
	case style.AlignBottom:
		ascent = ph.Height - lb.descent
		descent = lb.descent
	case style.AlignMiddle:
		diff := ph.Height/2 - (lb.ascent+lb.descent)/2
		ascent = lb.ascent + diff
		descent = lb.descent + diff
	case style.AlignAboveBaseline:
		ascent, descent = ph.Height, 0
	case style.AlignBelowBaseline:
		ascent, descent = 0, ph.Height
	default: // baseline
		ascent = ph.BaselineOffset
		if ph.Baseline == style.Ideographic {
			// the ideographic baseline lies below the alphabetic one
			ruler := lb.sm.m.Ruler(f.Span.Style.HeightKey())
			ascent -= ruler.IdeographicBaseline - ruler.AlphabeticBaseline
		}
		descent = ph.Height - ascent
	}
	f.Ascent, f.Descent = ascent, descent
}

func (lb *LineBuilder) recalculateMetrics() {
	lb.width, lb.widthIncludingSpace = 0, 0
	lb.ascent, lb.descent = 0, 0
	lb.spaceCount, lb.trailingSpaces = 0, 0
	lb.breakCount = 0
	for _, f := range lb.fragments {
		lb.updateMetrics(f)
	}
}

// IsOverflowing is true if the line is wider than allowed.
func (lb *LineBuilder) IsOverflowing() bool {
	return lb.width > lb.maxWidth
}

// IsBreakable is true if the line may be broken before its last fragment.
func (lb *LineBuilder) IsBreakable() bool {
	if len(lb.fragments) == 0 {
		return false
	}
	if lb.last().IsBreak() {
		return lb.breakCount > 1
	}
	return lb.breakCount > 0
}

// IsHardBreak is true if the line ends with a mandatory break or the end of
// text.
func (lb *LineBuilder) IsHardBreak() bool {
	return len(lb.fragments) > 0 && lb.last().IsHardBreak()
}

// CanHaveEllipsis is true if the line is the last one allowed and an
// ellipsis is configured.
func (lb *LineBuilder) CanHaveEllipsis() bool {
	if lb.pstyle.Ellipsis == "" {
		return false
	}
	return !lb.pstyle.HasLineLimit() || lb.pstyle.MaxLines == lb.lineNumber+1
}

func (lb *LineBuilder) prependToNextLine(frags ...*Fragment) {
	next := make([]*Fragment, 0, len(frags)+len(lb.fragmentsForNextLine))
	next = append(next, frags...)
	lb.fragmentsForNextLine = append(next, lb.fragmentsForNextLine...)
}

func (lb *LineBuilder) popFragment() *Fragment {
	f := lb.last()
	lb.fragments = lb.fragments[:len(lb.fragments)-1]
	return f
}

// RevertToLastBreakOpportunity moves the fragment which caused the line to
// overflow, together with all fragments after the last break opportunity, to
// the next line.
func (lb *LineBuilder) RevertToLastBreakOpportunity() {
	assert(lb.IsBreakable(), "line has no break opportunity to revert to")
	lb.prependToNextLine(lb.popFragment())
	for !lb.last().IsBreak() {
		lb.prependToNextLine(lb.popFragment())
	}
	lb.recalculateMetrics()
	tracer().Debugf("line %d reverted to break at %d", lb.lineNumber, lb.EndIndex())
}

// ForceBreakLastFragment cuts the last fragment of the line at the position
// where the line overflows. The remainder goes to the next line.
func (lb *LineBuilder) ForceBreakLastFragment() {
	lb.forceBreakLastFragment(lb.maxWidth, false)
}

func (lb *LineBuilder) forceBreakLastFragment(availableWidth float64, allowEmptyLine bool) {
	assert(len(lb.fragments) > 0, "force break of empty line")
	if lb.fragmentsForNextLine == nil {
		lb.fragmentsForNextLine = []*Fragment{}
	}
	allowEmpty := len(lb.fragments) > 1 || allowEmptyLine
	last := lb.last()
	if last.IsPlaceholder() {
		// placeholders are kept or moved as a whole
		if allowEmpty {
			lb.prependToNextLine(lb.popFragment())
			lb.recalculateMetrics()
		}
		return
	}
	lb.sm.SetSpan(last.Span)
	widthWithoutLast := lb.widthIncludingSpace - last.WidthIncludingTrailingSpaces()
	end := last.VisibleEnd()
	at := lb.sm.ForceBreak(last.Start, end, availableWidth-widthWithoutLast, allowEmpty)
	if at == end {
		return
	}
	tracer().Debugf("line %d force-broken at %d", lb.lineNumber, at)
	lb.popFragment()
	lb.recalculateMetrics()
	first, second := last.Split(at)
	if first != nil {
		lb.sm.MeasureFragment(first)
		lb.AddFragment(first)
	}
	if second != nil {
		lb.sm.MeasureFragment(second)
		lb.prependToNextLine(second)
	}
}

// InsertEllipsis truncates the line to make room for the paragraph's
// ellipsis and appends an ellipsis fragment. All other fragments of the
// line are dropped.
func (lb *LineBuilder) InsertEllipsis() {
	assert(lb.CanHaveEllipsis(), "line cannot have an ellipsis")
	ellipsis := lb.pstyle.Ellipsis
	lb.fragmentsForNextLine = []*Fragment{}
	lb.sm.SetSpan(lb.last().Span)
	ellipsisWidth := lb.sm.MeasureText(ellipsis)
	available := max(0, lb.maxWidth-ellipsisWidth)
	for lb.widthExcludingLastFragment() > available {
		lb.prependToNextLine(lb.popFragment())
		lb.recalculateMetrics()
		lb.sm.SetSpan(lb.last().Span)
		ellipsisWidth = lb.sm.MeasureText(ellipsis)
		available = max(0, lb.maxWidth-ellipsisWidth)
	}
	last := lb.last()
	lb.forceBreakLastFragment(available, true)
	f := newEllipsis(lb.EndIndex(), ellipsis, last.Span)
	f.setMetrics(last.Ascent, last.Descent, ellipsisWidth, ellipsisWidth)
	lb.AddFragment(f)
	tracer().Debugf("line %d truncated at %d", lb.lineNumber, f.Start)
}

func (lb *LineBuilder) widthExcludingLastFragment() float64 {
	if len(lb.fragments) <= 1 {
		return 0
	}
	return lb.widthIncludingSpace - lb.last().WidthIncludingTrailingSpaces()
}

// AppendZeroWidthFragments appends the fragments following index which do
// not occupy visible width, e.g. white space. This happens only if the line
// has just been completed and nothing has been deferred to the next line.
// It returns the number of fragments appended.
func (lb *LineBuilder) AppendZeroWidthFragments(fragments []*Fragment, from int) int {
	if lb.IsHardBreak() || len(lb.fragmentsForNextLine) > 0 {
		return 0
	}
	i := from
	for i < len(fragments) && fragments[i].WidthExcludingTrailingSpaces == 0 && !fragments[i].IsPlaceholder() {
		lb.AddFragment(fragments[i])
		i++
		if lb.IsHardBreak() {
			break
		}
	}
	return i - from
}

// Build commits the line. If the line has not been broken explicitly,
// fragments after the last break opportunity are deferred to the next line.
func (lb *LineBuilder) Build() *Line {
	if lb.fragmentsForNextLine == nil {
		cut := len(lb.fragments)
		for cut > 0 && !lb.fragments[cut-1].IsBreak() {
			cut--
		}
		if cut > 0 && cut < len(lb.fragments) {
			lb.fragmentsForNextLine = append([]*Fragment{}, lb.fragments[cut:]...)
			lb.fragments = lb.fragments[:cut]
			lb.recalculateMetrics()
		}
	}
	line := &Line{
		StartIndex:              lb.startIndex,
		EndIndex:                lb.EndIndex(),
		TrailingSpaces:          lb.trailingSpaces,
		SpaceCount:              lb.spaceCount,
		HardBreak:               lb.IsHardBreak(),
		Width:                   lb.width,
		WidthWithTrailingSpaces: lb.widthIncludingSpace,
		Ascent:                  lb.ascent,
		Descent:                 lb.descent,
		Height:                  lb.ascent + lb.descent,
		Baseline:                lb.accumulatedHeight + lb.ascent,
		LineNumber:              lb.lineNumber,
		Direction:               lb.pstyle.Direction(),
		Fragments:               lb.fragments,
	}
	if len(lb.fragments) > 0 {
		line.TrailingNewlines = lb.last().TrailingNewlines
	}
	for _, f := range lb.fragments {
		f.Line = line
	}
	tracer().Debugf("committed %v", line)
	return line
}

// NextLine creates the builder for the line following a committed one,
// seeded with the fragments deferred from this line.
func (lb *LineBuilder) NextLine(line *Line) *LineBuilder {
	next := &LineBuilder{
		sm:                lb.sm,
		pstyle:            lb.pstyle,
		maxWidth:          lb.maxWidth,
		lineNumber:        lb.lineNumber + 1,
		accumulatedHeight: lb.accumulatedHeight + line.Height,
		startIndex:        line.EndIndex,
		fragments:         lb.fragmentsForNextLine,
	}
	next.recalculateMetrics()
	return next
}
