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
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// WriteInt writes an int in decimal.
func (stream *Stream) WriteInt(i int) {
	stream.WriteInt64(int64(i))
}

// WriteInt8 writes an int8 in decimal.
func (stream *Stream) WriteInt8(i int8) {
	stream.WriteInt64(int64(i))
}

// WriteInt16 writes an int16 in decimal.
func (stream *Stream) WriteInt16(i int16) {
	stream.WriteInt64(int64(i))
}

// WriteInt32 writes an int32 in decimal.
func (stream *Stream) WriteInt32(i int32) {
	stream.WriteInt64(int64(i))
}

// WriteInt64 writes an int64 in decimal.
func (stream *Stream) WriteInt64(i int64) {
	stream.write(strconv.AppendInt(stream.scratch[:0], i, 10))
}

// WriteUint writes a uint in decimal.
func (stream *Stream) WriteUint(i uint) {
	stream.WriteUint64(uint64(i))
}

// WriteUint8 writes a uint8 in decimal.
func (stream *Stream) WriteUint8(i uint8) {
	stream.WriteUint64(uint64(i))
}

// WriteUint16 writes a uint16 in decimal.
func (stream *Stream) WriteUint16(i uint16) {
	stream.WriteUint64(uint64(i))
}

// WriteUint32 writes a uint32 in decimal.
func (stream *Stream) WriteUint32(i uint32) {
	stream.WriteUint64(uint64(i))
}

// WriteUint64 writes a uint64 in decimal.
func (stream *Stream) WriteUint64(i uint64) {
	stream.write(strconv.AppendUint(stream.scratch[:0], i, 10))
}

// WriteFloat32 writes a float32.
func (stream *Stream) WriteFloat32(f float32) {
	stream.writeFloat(float64(f), 32)
}

// WriteFloat64 writes a float64.
func (stream *Stream) WriteFloat64(f float64) {
	stream.writeFloat(f, 64)
}

// writeFloat writes f formatted the same way encoding/json formats a float of the given bit size:
// NaN and infinities are rejected with json.UnsupportedValueError, exponent notation kicks in only
// for very large and very small magnitudes, and a zero-padded exponent is shortened (e-09 turns
// into e-9).
//
// See floatEncoder in https://go.googlesource.com/go/+/5fae09b/src/encoding/json/encode.go#546.
func (stream *Stream) writeFloat(f float64, bits int) {
	if stream.err != nil {
		return
	}

	if math.IsInf(f, 0) || math.IsNaN(f) {
		stream.err = &json.UnsupportedValueError{
			Value: reflect.ValueOf(f),
			Str:   strconv.FormatFloat(f, 'g', -1, bits),
		}
		return
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 {
		// The cutoffs must be evaluated in the precision of the value being encoded.
		if (bits == 64 && (abs < 1e-6 || abs >= 1e21)) ||
			(bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21)) {
			format = 'e'
		}
	}

	b := strconv.AppendFloat(stream.scratch[:0], f, format, -1, bits)
	if format == 'e' {
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}

	stream.write(b)
}
