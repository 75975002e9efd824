/*
Package raster paints paragraphs onto raster images.

A Canvas draws text with the font faces of a measure/faces oracle, i.e. with
exactly the faces text has been measured with during layout. Paragraphs to
paint have to be built with the canvas's measurement context.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package raster

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/npillmayer/paragraph"
	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/paragraph/measure/faces"
	"github.com/npillmayer/paragraph/text"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paragraph'
func tracer() tracing.Trace {
	return tracing.Select("paragraph")
}

// Canvas is a raster image to paint paragraphs on. It implements
// paragraph.Surface and paragraph.RectFiller.
type Canvas struct {
	dc     *gg.Context
	oracle *faces.Oracle
	ctx    *measure.Context
}

var _ paragraph.Surface = (*Canvas)(nil)
var _ paragraph.RectFiller = (*Canvas)(nil)

// New creates a white canvas of the given size in pixels. oracle may be nil,
// in which case an oracle with the Go fonts is created.
func New(width, height int, oracle *faces.Oracle) (*Canvas, error) {
	if oracle == nil {
		var err error
		if oracle, err = faces.New(nil); err != nil {
			return nil, err
		}
	}
	c := &Canvas{
		dc:     gg.NewContext(width, height),
		oracle: oracle,
		ctx:    measure.NewContext(oracle),
	}
	c.Clear(color.White)
	return c, nil
}

// Context returns the measurement context for paragraphs painted on c.
func (c *Canvas) Context() *measure.Context {
	return c.ctx
}

// Clear fills the whole canvas with a color.
func (c *Canvas) Clear(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// DrawText is part of interface paragraph.Surface.
func (c *Canvas) DrawText(run paragraph.TextRun) {
	c.dc.SetFontFace(c.oracle.Face(run.Style.Font()))
	c.dc.SetColor(run.Style.Foreground())
	s := run.Visual()
	ls := run.Style.LetterSpacing
	if ls == 0 {
		c.dc.DrawString(s, run.X, run.Baseline)
		return
	}
	// letter spacing is measured per UTF-16 code unit, so we have to place
	// code points one by one
	x := run.X
	for _, r := range s {
		ch := string(r)
		c.dc.DrawString(ch, x, run.Baseline)
		w, _ := c.dc.MeasureString(ch)
		units := 1
		if utf8.RuneLen(r) == 4 { // outside the BMP
			units = 2
		}
		x += w + ls*float64(units)
	}
}

// FillRect is part of interface paragraph.RectFiller.
func (c *Canvas) FillRect(box text.Box, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(box.Left, box.Top, box.Right-box.Left, box.Bottom-box.Top)
	c.dc.Fill()
}

// StrokeBoxes draws the outlines of boxes, shifted by offset. It is useful
// for showing placeholder slots or the results of box queries.
func (c *Canvas) StrokeBoxes(boxes []text.Box, offset text.Point, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(1)
	for _, b := range boxes {
		c.dc.DrawRectangle(offset.X+b.Left, offset.Y+b.Top, b.Right-b.Left, b.Bottom-b.Top)
		c.dc.Stroke()
	}
}

// Image returns the canvas as an image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(filename string) error {
	tracer().Infof("saving canvas to %s", filename)
	return c.dc.SavePNG(filename)
}
