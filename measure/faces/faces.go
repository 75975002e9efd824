/*
Package faces implements a measurement oracle on top of font faces from
golang.org/x/image/font.

Fonts are selected by family, weight and slant from a set of OpenType
sources. If no sources are configured, the Go fonts are used: family “Go”
with regular, bold, italic and bold italic variants. Faces are created
lazily, one per font size, and kept for the lifetime of the oracle.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package faces

import (
	"fmt"
	"sync"

	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'paragraph'
func tracer() tracing.Trace {
	return tracing.Select("paragraph")
}

// Variant selects a font of a family.
type Variant struct {
	Bold, Italic bool
}

// Config is the configuration of an oracle.
type Config struct {
	DPI     float64 // defaults to 72, i.e. font size is in pixels
	Hinting font.Hinting
	// Sources maps family names to font variants. If a variant is missing,
	// the regular variant of the family is used.
	Sources map[string]map[Variant]*opentype.Font
	// Fallback is the family to use for unknown families.
	Fallback string
}

// Oracle measures text with font faces. It is safe for concurrent use.
type Oracle struct {
	config Config
	mx     sync.Mutex
	faces  map[faceKey]font.Face
}

type faceKey struct {
	family  string
	variant Variant
	size    float64
}

var _ measure.Oracle = (*Oracle)(nil)

// New creates an oracle. config may be nil, in which case the Go fonts are
// used.
func New(config *Config) (*Oracle, error) {
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.DPI == 0 {
		c.DPI = 72
	}
	if len(c.Sources) == 0 {
		sources, err := goFonts()
		if err != nil {
			return nil, err
		}
		c.Sources = map[string]map[Variant]*opentype.Font{"Go": sources}
		if c.Fallback == "" {
			c.Fallback = "Go"
		}
	}
	if _, ok := c.Sources[c.Fallback]; !ok {
		return nil, fmt.Errorf("fallback font family %q is not configured", c.Fallback)
	}
	return &Oracle{config: c, faces: make(map[faceKey]font.Face)}, nil
}

func goFonts() (map[Variant]*opentype.Font, error) {
	sources := make(map[Variant]*opentype.Font)
	for v, ttf := range map[Variant][]byte{
		{}:                         goregular.TTF,
		{Bold: true}:               gobold.TTF,
		{Italic: true}:             goitalic.TTF,
		{Bold: true, Italic: true}: gobolditalic.TTF,
	} {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parsing Go font: %w", err)
		}
		sources[v] = f
	}
	return sources, nil
}

// MeasureText is part of interface measure.Oracle.
func (o *Oracle) MeasureText(s string, f measure.Font) float64 {
	face := o.Face(f)
	return fromFixed(font.MeasureString(face, s))
}

// Metrics is part of interface measure.Oracle.
func (o *Oracle) Metrics(f measure.Font) measure.FontMetrics {
	m := o.Face(f).Metrics()
	ascent, descent := fromFixed(m.Ascent), fromFixed(m.Descent)
	gap := fromFixed(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return measure.FontMetrics{Ascent: ascent, Descent: descent, LineGap: gap}
}

// Face returns the font face for a font, creating it if necessary.
// Renderers use it to draw text with the same face it was measured with.
func (o *Oracle) Face(f measure.Font) font.Face {
	key := faceKey{family: f.Family, variant: Variant{Bold: f.Weight >= 600, Italic: f.Italic}, size: f.Size}
	o.mx.Lock()
	defer o.mx.Unlock()
	if face, ok := o.faces[key]; ok {
		return face
	}
	src := o.source(key)
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     o.config.DPI,
		Hinting: o.config.Hinting,
	})
	if err != nil {
		// sources have been parsed already, this is not expected to happen
		panic(fmt.Sprintf("cannot create face for %v: %v", f, err))
	}
	tracer().Debugf("created font face for %v", f)
	o.faces[key] = face
	return face
}

func (o *Oracle) source(key faceKey) *opentype.Font {
	family, ok := o.config.Sources[key.family]
	if !ok {
		tracer().Infof("font family %q not configured, using %q", key.family, o.config.Fallback)
		family = o.config.Sources[o.config.Fallback]
	}
	if src, ok := family[key.variant]; ok {
		return src
	}
	if src, ok := family[Variant{}]; ok {
		return src
	}
	for _, src := range family {
		return src
	}
	panic(fmt.Sprintf("font family %q has no fonts", key.family))
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
