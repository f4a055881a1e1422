/**
 * Copyright (c) 2018, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package token

// SourceBody is the text of a GraphQL document as a byte sequence.
type SourceBody []byte

// Size returns the number of bytes in the body.
func (body SourceBody) Size() uint {
	return uint(len(body))
}

// SourceLocationInfo spells a SourceLocation out as the source name with line and column numbers.
type SourceLocationInfo struct {
	Name   string
	Line   uint
	Column uint
}

// SourceConfig is what NewSource builds a Source from.
type SourceConfig struct {
	Body SourceBody

	// Name, LineOffset and ColumnOffset are optional. They matter to clients whose GraphQL
	// document is embedded in a larger file. A document starting at line 40 of Foo.graphql would
	// set Name to "Foo.graphql" and LineOffset to 40 so reported locations land on the enclosing
	// file. Both offsets are 0-indexed and an absent offset means no offset.
	Name         string
	LineOffset   uint
	ColumnOffset uint
}

// Source represents a GraphQL source text.
type Source struct {
	config SourceConfig
}

// NewSource initializes a Source instance from the given config.
func NewSource(config *SourceConfig) *Source {
	source := &Source{
		config: *config,
	}
	if len(config.Name) == 0 {
		source.config.Name = "GraphQL request"
	}
	return source
}

// Body returns the source text.
func (source *Source) Body() SourceBody {
	return source.config.Body
}

// Name returns the name given to the source.
func (source *Source) Name() string {
	return source.config.Name
}

// LineOffset returns the line offset configured for the source.
func (source *Source) LineOffset() uint {
	return source.config.LineOffset
}

// ColumnOffset returns the column offset configured for the source.
func (source *Source) ColumnOffset() uint {
	return source.config.ColumnOffset
}

// LocationFromPos returns the SourceLocation for the given byte position in the body. The position
// one past the end of the body is allowed and stands for the end of the source.
func (source *Source) LocationFromPos(bytePos uint) SourceLocation {
	if bytePos > source.Body().Size() {
		panic("illegal byte position value")
	}
	return SourceLocation(bytePos + 1)
}

// PosFromLocation undoes LocationFromPos. It converts the given SourceLocation back into a byte
// position, a 0-based offset relative to the beginning of the source body.
func (source *Source) PosFromLocation(location SourceLocation) uint {
	if !location.IsValid() || uint(location) > (source.Body().Size()+1) {
		panic("illegal location value")
	}
	return uint(location) - 1
}

// LocationInfoOf expands loc into its SourceLocationInfo by scanning the body up to it.
func (source *Source) LocationInfoOf(loc SourceLocation) SourceLocationInfo {
	// TODO: Build a line offset table on the first call and look locations up from it.

	// An invalid SourceLocation (NoSourceLocation) resolves to the bare source name. Queries for
	// such locations do occur, e.g. for an <SOF> token which exists in no source text.
	if !loc.IsValid() {
		return SourceLocationInfo{
			Name: source.Name(),
		}
	}

	var (
		line     uint = 1
		column   uint = 1
		position      = uint(loc) - 1
	)

	body := source.Body()
	bodySize := body.Size()
	if position >= bodySize {
		position = bodySize
	}

	var i uint
	for i < position {
		switch body[i] {
		case '\r':
			if (i+1) < bodySize && body[i+1] == '\n' {
				// The "\r" of an "\r\n" pair still counts toward the line it ends; both graphql-js
				// and graphql-go number it that way. Only the pair as a whole advances the line.
				i++

				// The "\n" of the pair sits on the next line at column 0 when it is itself the
				// requested position. Past it, counting continues as if it were a plain newline.
				if i == position {
					line++
					column = 0
				}
			} else {
				line++
				column = 1
				i++
			}

		case '\n':
			line++
			column = 1
			i++

		default:
			column++
			i++
		}
	}

	return SourceLocationInfo{
		Name:   source.Name(),
		Line:   source.LineOffset() + line,
		Column: source.ColumnOffset() + column,
	}
}
