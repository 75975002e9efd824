/*
Package text holds the basic vocabulary of paragraph layout: positions and
ranges over UTF-16 encoded text, the code-unit buffer itself and writing
directions.

All positions are offsets in UTF-16 code units. This is what measurement
backends and the Unicode segmentation rules of this module operate on, and it
means surrogate pairs have to be detected explicitly. Helpers for that live
here as well.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package text
