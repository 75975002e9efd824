/*
Package cells implements a measurement oracle for fixed-width output, e.g.
terminals. Text is measured in character cells, honouring East Asian Width
(UAX#11) and grapheme clusters: a wide ideograph occupies two cells, a base
character with combining marks a single one.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package cells

import (
	"sync"

	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Config is the configuration of a cell oracle. Zero values are replaced by
// defaults.
type Config struct {
	CellWidth  float64        // width of a cell, defaults to 1
	CellHeight float64        // height of a cell, defaults to 1
	Context    *uax11.Context // defaults to uax11.LatinContext
}

// Oracle measures text in cells. Font properties are ignored.
type Oracle struct {
	config Config
}

var _ measure.Oracle = (*Oracle)(nil)

var graphemeSetup sync.Once

// New creates a cell oracle. config may be nil.
func New(config *Config) *Oracle {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.CellWidth == 0 {
		c.CellWidth = 1
	}
	if c.CellHeight == 0 {
		c.CellHeight = 1
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return &Oracle{config: c}
}

// MeasureText is part of interface measure.Oracle.
func (o *Oracle) MeasureText(s string, _ measure.Font) float64 {
	return float64(o.Cells(s)) * o.config.CellWidth
}

// Cells returns the number of cells s occupies.
func (o *Oracle) Cells(s string) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), o.config.Context)
}

// Metrics is part of interface measure.Oracle. A line of cells has no
// descent.
func (o *Oracle) Metrics(_ measure.Font) measure.FontMetrics {
	return measure.FontMetrics{Ascent: o.config.CellHeight}
}
