/**
 * Copyright (c) 2019, The Selene Authors.
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

package jsonwriter

import (
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// safeSet holds the ASCII characters that can appear in a JSON string without further escaping.
// Entries for '<', '>' and '&' are cleared so they're escaped like encoding/json does by default,
// which keeps the output safe for embedding inside HTML <script> tags.
var safeSet [utf8.RuneSelf]bool

func init() {
	for b := 0x20; b < utf8.RuneSelf; b++ {
		safeSet[b] = true
	}
	for _, b := range []byte{'"', '\\', '<', '>', '&'} {
		safeSet[b] = false
	}
}

// WriteString encodes s in JSON string format and writes it to the output.
//
// Implementation mirrored from encodeState.string in
// https://go.googlesource.com/go/+/5fae09b/src/encoding/json/encode.go.
func (stream *Stream) WriteString(s string) {
	if stream.err != nil {
		return
	}

	stream.writeByte('"')
	start := 0
	for i := 0; i < len(s); {
		if b := s[i]; b < utf8.RuneSelf {
			if safeSet[b] {
				i++
				continue
			}
			if start < i {
				stream.WriteRawString(s[start:i])
			}
			switch b {
			case '\\':
				stream.writeLiteral(`\\`)
			case '"':
				stream.writeLiteral(`\"`)
			case '\n':
				stream.writeLiteral(`\n`)
			case '\r':
				stream.writeLiteral(`\r`)
			case '\t':
				stream.writeLiteral(`\t`)
			default:
				// This encodes bytes < 0x20 except for \t, \n and \r as well as the HTML
				// characters <, > and & excluded from safeSet above.
				stream.writeLiteral(`\u00`)
				stream.writeByte(hexDigits[b>>4])
				stream.writeByte(hexDigits[b&0xf])
			}
			i++
			start = i
			continue
		}

		c, size := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError && size == 1 {
			if start < i {
				stream.WriteRawString(s[start:i])
			}
			stream.writeLiteral(`\ufffd`)
			i += size
			start = i
			continue
		}

		// U+2028 (LINE SEPARATOR) and U+2029 (PARAGRAPH SEPARATOR) are valid in JSON strings but
		// invalid in JavaScript ones. Escape them to keep the output evaluable as JavaScript.
		if c == '\u2028' || c == '\u2029' {
			if start < i {
				stream.WriteRawString(s[start:i])
			}
			stream.writeLiteral(`\u202`)
			stream.writeByte(hexDigits[c&0xf])
			i += size
			start = i
			continue
		}

		i += size
	}

	if start < len(s) {
		stream.WriteRawString(s[start:])
	}
	stream.writeByte('"')
}
