/*
Package wordbreak finds word boundaries in paragraph text, following the
rules of UAX#29 (https://www.unicode.org/reports/tr29/#Word_Boundaries).

The word breaker is stateless. IsBreak decides for a single position,
NextBreakIndex and PrevBreakIndex scan outward from a position. Clients use
these for word selection (e.g. on a double click) and for editing operations
like “delete previous word”. MoveByWordBoundary is a tailoring for caret
movement, which skips punctuation and white space following a word.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package wordbreak
