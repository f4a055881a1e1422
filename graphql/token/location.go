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

// SourceLocation encodes a position in a source text. It lives in the context of a Source: the
// value is a 1-indexed byte offset relative to the beginning of the source. Given a SourceLocation
// loc and the Source s that contains it, s.LocationInfoOf(loc) expands it into the larger
// SourceLocationInfo representation.
type SourceLocation uint

// NoSourceLocation is the SourceLocation that belongs to no source. Anything accepting a
// SourceLocation has to expect this value.
const NoSourceLocation SourceLocation = 0

// IsValid returns true if the SourceLocation is valid.
func (location SourceLocation) IsValid() bool {
	return location != NoSourceLocation
}
