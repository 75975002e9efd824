/*
Package style holds the styling vocabulary of paragraphs: paragraph-wide
settings (alignment, direction, line limits, ellipsis) and the styles of
text runs (font, line height, letter spacing, colors).

Styles are plain values. A zero value is a usable default: unset fields of
a span style are inherited from the enclosing style when styles are pushed
onto a builder's style stack.

A paragraph's text is partitioned into spans. A span is either a run of
styled text or an inline placeholder, which reserves a box of given size
for content laid out elsewhere (e.g. an image).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package style
