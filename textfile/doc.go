/*
Package textfile loads UTF-8 text files as sequences of paragraphs.

Paragraphs are separated by blank lines. Line ends within a paragraph are
treated as spaces, i.e. paragraphs are re-flowed when laid out.

Laying out a long document may take a while. Documents are therefore laid
out in the background, and progress is broadcast to subscribers:

	doc, err := textfile.Load("lorem.txt", style.ParagraphStyle{}, ctx)
	progress, _ := doc.Subscribe(0)
	doc.LayoutAsync(paragraph.Constraints{Width: 400})
	for msg := range progress {
		p := msg.(textfile.Progress)
		…
	}

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.
Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paragraph'
func tracer() tracing.Trace {
	return tracing.Select("paragraph")
}
