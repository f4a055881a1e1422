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
	"io"
	"reflect"
)

const initialStreamBufSize = 512

// Stream writes JSON-encoded data to an io.Writer. Unlike encoding/json which marshals a value
// into an in-memory buffer in one shot, a Stream lets the caller produce output piece by piece.
//
// Write errors are sticky. Once a write fails, all subsequent writes are discarded and the error
// remains available from Error.
type Stream struct {
	w io.Writer

	// Small writes are collected here and handed to w in batches.
	buf []byte

	// Scratch space for strconv.Append* conversions
	scratch [64]byte

	// Lazily-initialized encoding/json encoder which deals with the values WriteInterface cannot
	// encode by itself
	fallbackEncoder *json.Encoder

	err error
}

// NewStream creates a stream that encodes JSON into w.
func NewStream(w io.Writer) *Stream {
	return &Stream{
		w:   w,
		buf: make([]byte, 0, initialStreamBufSize),
	}
}

// Error returns the first error that occurred during use of the stream.
func (stream *Stream) Error() error {
	return stream.err
}

// write sends b to the output, buffering it if it is small enough.
func (stream *Stream) write(b []byte) {
	if stream.err != nil {
		return
	}

	if len(stream.buf)+len(b) < cap(stream.buf) {
		stream.buf = append(stream.buf, b...)
		return
	}

	if len(stream.buf) > 0 {
		_, err := stream.w.Write(stream.buf)
		stream.buf = stream.buf[:0]
		if err != nil {
			stream.err = err
			return
		}
	}

	if len(b) > 0 {
		if _, err := stream.w.Write(b); err != nil {
			stream.err = err
		}
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (stream *Stream) Flush() error {
	if stream.err != nil {
		return stream.err
	}

	if len(stream.buf) > 0 {
		_, err := stream.w.Write(stream.buf)
		stream.buf = stream.buf[:0]
		if err != nil {
			stream.err = err
			return err
		}
	}

	return nil
}

// writeByte appends a single byte to the buffer. The buffer may grow past its initial capacity;
// write and Flush drain it regardless of size.
func (stream *Stream) writeByte(b byte) {
	stream.buf = append(stream.buf, b)
}

// writeLiteral appends a short fixed token such as "null" to the buffer.
func (stream *Stream) writeLiteral(s string) {
	stream.buf = append(stream.buf, s...)
}

// WriteRawString writes s to the output without any encoding.
func (stream *Stream) WriteRawString(s string) {
	stream.write([]byte(s))
}

// WriteMore writes a ",".
func (stream *Stream) WriteMore() {
	stream.writeByte(',')
}

// WriteArrayStart writes a "[".
func (stream *Stream) WriteArrayStart() {
	stream.writeByte('[')
}

// WriteArrayEnd writes a "]".
func (stream *Stream) WriteArrayEnd() {
	stream.writeByte(']')
}

// WriteEmptyArray writes "[]".
func (stream *Stream) WriteEmptyArray() {
	stream.writeLiteral("[]")
}

// WriteObjectStart writes a "{".
func (stream *Stream) WriteObjectStart() {
	stream.writeByte('{')
}

// WriteObjectField writes the field name in JSON string format followed by a ":".
func (stream *Stream) WriteObjectField(field string) {
	stream.WriteString(field)
	stream.writeByte(':')
}

// WriteObjectEnd writes a "}".
func (stream *Stream) WriteObjectEnd() {
	stream.writeByte('}')
}

// WriteEmptyObject writes "{}".
func (stream *Stream) WriteEmptyObject() {
	stream.writeLiteral("{}")
}

// WriteBool writes "true" or "false".
func (stream *Stream) WriteBool(b bool) {
	if b {
		stream.writeLiteral("true")
	} else {
		stream.writeLiteral("false")
	}
}

// WriteNil writes "null".
func (stream *Stream) WriteNil() {
	stream.writeLiteral("null")
}

// streamWriter adapts a Stream into an io.Writer for use by the fallback encoder.
type streamWriter struct {
	stream *Stream
}

func (writer streamWriter) Write(p []byte) (n int, err error) {
	stream := writer.stream
	stream.write(p)
	if err = stream.err; err == nil {
		n = len(p)
	}
	return
}

var jsonMarshalerType = reflect.TypeOf(new(json.Marshaler)).Elem()

// WriteInterface encodes an arbitrary value. Booleans, strings and numeric values are written
// directly. Values of other types, and any value that implements json.Marshaler, are passed to
// encoding/json.
func (stream *Stream) WriteInterface(v interface{}) {
	if stream.err != nil {
		return
	}

	switch v := v.(type) {
	case nil:
		stream.WriteNil()

	case bool:
		stream.WriteBool(v)

	case string:
		stream.WriteString(v)

	case int:
		stream.WriteInt(v)
	case int8:
		stream.WriteInt8(v)
	case int16:
		stream.WriteInt16(v)
	case int32:
		stream.WriteInt32(v)
	case int64:
		stream.WriteInt64(v)
	case uint:
		stream.WriteUint(v)
	case uint8:
		stream.WriteUint8(v)
	case uint16:
		stream.WriteUint16(v)
	case uint32:
		stream.WriteUint32(v)
	case uint64:
		stream.WriteUint64(v)

	case float32:
		stream.WriteFloat32(v)
	case float64:
		stream.WriteFloat64(v)

	default:
		stream.writeReflected(reflect.ValueOf(v))
	}
}

// writeReflected encodes values whose types missed the type switch in WriteInterface. This
// includes named types whose underlying type is a boolean, string or number, as well as pointers
// to any supported type.
func (stream *Stream) writeReflected(value reflect.Value) {
	if value.Type().Implements(jsonMarshalerType) {
		// Let encoding/json invoke the custom marshaler.
		stream.writeFallback(value.Interface())
		return
	}

	switch value.Kind() {
	case reflect.Invalid:
		stream.WriteNil()

	case reflect.Bool:
		stream.WriteBool(value.Bool())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		stream.WriteInt64(value.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		stream.WriteUint64(value.Uint())

	case reflect.Float32:
		stream.WriteFloat32(float32(value.Float()))
	case reflect.Float64:
		stream.WriteFloat64(value.Float())

	case reflect.String:
		stream.WriteString(value.String())

	case reflect.Ptr:
		elemValue := value.Elem()
		if !elemValue.IsValid() {
			// A nil pointer
			stream.WriteNil()
		} else {
			stream.WriteInterface(elemValue.Interface())
		}

	default:
		stream.writeFallback(value.Interface())
	}
}

// writeFallback encodes v with encoding/json. Note that the encoder terminates each value with a
// newline in the output.
func (stream *Stream) writeFallback(v interface{}) {
	encoder := stream.fallbackEncoder
	if encoder == nil {
		encoder = json.NewEncoder(streamWriter{stream})
		stream.fallbackEncoder = encoder
	}

	if err := encoder.Encode(v); err != nil {
		if stream.err == nil {
			stream.err = err
		}
	}
}
