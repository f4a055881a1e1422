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

package jsonwriter_test

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/botobag/selene/internal/util"
	"github.com/botobag/selene/jsonwriter"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// Named primitive types take the reflection path in WriteInterface.
type (
	customBool    bool
	customInt     int
	customUint    uint8
	customFloat32 float32
	customFloat64 float64
	customString  string
)

// unixTime encodes itself to a plain integer via json.Marshaler.
type unixTime struct {
	sec int64
}

func (t unixTime) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, t.sec, 10), nil
}

// failingMarshaler always returns an error from MarshalJSON.
type failingMarshaler struct{}

func (failingMarshaler) MarshalJSON() ([]byte, error) {
	return nil, errors.New("marshal failed for testing")
}

var errBrokenPipe = errors.New("broken pipe")

// brokenWriter fails every Write with errBrokenPipe.
type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}

// encode runs write against a stream backed by an in-memory buffer and returns whatever was
// written to it.
func encode(write func(stream *jsonwriter.Stream)) (string, error) {
	var out util.StringBuilder
	stream := jsonwriter.NewStream(&out)
	write(stream)
	err := stream.Flush()
	return out.String(), err
}

// stdlibJSON returns the encoding/json encoding of value to compare output against.
func stdlibJSON(value interface{}) string {
	expected, err := json.Marshal(value)
	Expect(err).ShouldNot(HaveOccurred())
	return string(expected)
}

// expectEncodes checks that WriteInterface produces the same encoding for value as encoding/json.
// The fallback path terminates its output with a newline which is ignored for comparison.
func expectEncodes(value interface{}) {
	output, err := encode(func(stream *jsonwriter.Stream) {
		stream.WriteInterface(value)
	})
	Expect(err).ShouldNot(HaveOccurred())
	Expect(strings.TrimSuffix(output, "\n")).Should(Equal(stdlibJSON(value)), "value = %#v", value)
}

var _ = Describe("Stream", func() {
	Describe("WriteInterface", func() {
		It("encodes nil to null", func() {
			expectEncodes(nil)
		})

		It("encodes booleans", func() {
			expectEncodes(true)
			expectEncodes(false)
		})

		It("encodes integers of every width", func() {
			for _, value := range []interface{}{
				0,
				1,
				-1,
				int8(math.MinInt8),
				int8(math.MaxInt8),
				int16(math.MinInt16),
				int16(math.MaxInt16),
				int32(math.MinInt32),
				int32(math.MaxInt32),
				int64(math.MinInt64),
				int64(math.MaxInt64),
				uint(42),
				uint8(math.MaxUint8),
				uint16(math.MaxUint16),
				uint32(math.MaxUint32),
				uint64(math.MaxUint64),
			} {
				expectEncodes(value)
			}
		})

		It("encodes floating point numbers the way encoding/json formats them", func() {
			for _, value := range []interface{}{
				0.0,
				1.5,
				-2.25,
				3.141592653589793,
				// Values around the cutoffs where the format switches between fixed and
				// exponent notation
				1e20,
				1e21,
				1e22,
				-1e21,
				1e-6,
				1e-7,
				// The exponent gets printed without a leading zero (1e-9, not 1e-09).
				1e-9,
				math.MaxFloat64,
				math.SmallestNonzeroFloat64,
				float32(1.5),
				float32(16777216),
				float32(math.MaxFloat32),
				float32(1e-7),
			} {
				expectEncodes(value)
			}
		})

		It("encodes strings", func() {
			expectEncodes("")
			expectEncodes("hello")
			expectEncodes(`say "hello"`)
		})

		It("encodes named primitive types through reflection", func() {
			expectEncodes(customBool(true))
			expectEncodes(customInt(-7))
			expectEncodes(customUint(200))
			expectEncodes(customFloat32(0.25))
			expectEncodes(customFloat64(1e21))
			expectEncodes(customString("<tagged>"))
		})

		It("follows pointers to the pointed-to value", func() {
			n := 42
			s := "hello"
			b := true
			f := 1.5
			pn := &n

			expectEncodes(&n)
			expectEncodes(&s)
			expectEncodes(&b)
			expectEncodes(&f)
			// Pointer to pointer
			expectEncodes(&pn)

			expectEncodes((*int)(nil))
			expectEncodes((*string)(nil))
			expectEncodes((*customBool)(nil))
		})

		It("falls back to encoding/json for composite values", func() {
			type request struct {
				Query         string                 `json:"query"`
				OperationName string                 `json:"operationName,omitempty"`
				Variables     map[string]interface{} `json:"variables,omitempty"`
			}

			expectEncodes([]int{1, 2, 3})
			expectEncodes([2]string{"a", "b"})
			expectEncodes(map[string]int{"a": 1, "b": 2})
			// []byte encodes to a base64 string.
			expectEncodes([]byte("hello"))
			expectEncodes(request{
				Query: "{ hero { name } }",
			})
			expectEncodes(request{
				Query:         "query HeroName($episode: Episode) { hero(episode: $episode) { name } }",
				OperationName: "HeroName",
				Variables: map[string]interface{}{
					"episode": "JEDI",
				},
			})
		})

		It("delegates to values implementing json.Marshaler", func() {
			expectEncodes(unixTime{sec: 1546300800})
			expectEncodes(&unixTime{sec: 1546300800})

			output, err := encode(func(stream *jsonwriter.Stream) {
				stream.WriteInterface(unixTime{sec: 0})
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(strings.TrimSuffix(output, "\n")).Should(Equal("0"))
		})

		It("propagates errors from json.Marshaler implementations", func() {
			_, err := encode(func(stream *jsonwriter.Stream) {
				stream.WriteInterface(failingMarshaler{})
			})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("marshal failed for testing"))

			_, ok := err.(*json.MarshalerError)
			Expect(ok).Should(BeTrue())
		})

		It("rejects NaN and infinities like encoding/json does", func() {
			for _, value := range []interface{}{
				math.NaN(),
				math.Inf(1),
				math.Inf(-1),
				float32(math.NaN()),
				float32(math.Inf(1)),
			} {
				_, err := encode(func(stream *jsonwriter.Stream) {
					stream.WriteInterface(value)
				})
				Expect(err).Should(HaveOccurred(), "value = %v", value)

				_, ok := err.(*json.UnsupportedValueError)
				Expect(ok).Should(BeTrue(), "value = %v", value)
			}
		})
	})

	Describe("WriteString", func() {
		It("encodes strings exactly like encoding/json", func() {
			samples := []string{
				"",
				"simple",
				`with "quotes" and \backslashes\`,
				"line\nbreaks\tand\rother controls \x00\x01\x1f\x7f",
				"<script>alert('&')</script>",
				"  and   separators",
				"héllo, 世界",
				// Invalid UTF-8 sequences are replaced with U+FFFD.
				"invalid \xff byte",
				"truncated \xe6",
			}
			for _, s := range samples {
				output, err := encode(func(stream *jsonwriter.Stream) {
					stream.WriteString(s)
				})
				Expect(err).ShouldNot(HaveOccurred())
				Expect(output).Should(Equal(stdlibJSON(s)), "s = %q", s)
			}
		})

		It("escapes every byte value the way encoding/json does", func() {
			for b := 0; b < 256; b++ {
				s := string([]byte{byte(b)})
				output, err := encode(func(stream *jsonwriter.Stream) {
					stream.WriteString(s)
				})
				Expect(err).ShouldNot(HaveOccurred())
				Expect(output).Should(Equal(stdlibJSON(s)), "byte = 0x%02x", b)
			}
		})
	})

	Describe("writing a value piece by piece", func() {
		It("writes object and array scaffolding verbatim", func() {
			output, err := encode(func(stream *jsonwriter.Stream) {
				stream.WriteObjectStart()
				stream.WriteObjectField("data")
				stream.WriteObjectStart()
				stream.WriteObjectField("name")
				stream.WriteString("R2-D2")
				stream.WriteMore()
				stream.WriteObjectField("appearsIn")
				stream.WriteArrayStart()
				stream.WriteInt(4)
				stream.WriteMore()
				stream.WriteInt(5)
				stream.WriteMore()
				stream.WriteInt(6)
				stream.WriteArrayEnd()
				stream.WriteMore()
				stream.WriteObjectField("friends")
				stream.WriteEmptyArray()
				stream.WriteMore()
				stream.WriteObjectField("primaryFunction")
				stream.WriteNil()
				stream.WriteMore()
				stream.WriteObjectField("isDroid")
				stream.WriteBool(true)
				stream.WriteObjectEnd()
				stream.WriteMore()
				stream.WriteObjectField("extensions")
				stream.WriteEmptyObject()
				stream.WriteObjectEnd()
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(output).Should(Equal(`{"data":{"name":"R2-D2","appearsIn":[4,5,6],"friends":[],` +
				`"primaryFunction":null,"isDroid":true},"extensions":{}}`))
		})

		It("writes raw strings without encoding", func() {
			output, err := encode(func(stream *jsonwriter.Stream) {
				stream.WriteRawString(`{"already":"encoded"}`)
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(output).Should(Equal(`{"already":"encoded"}`))
		})
	})

	Describe("buffering", func() {
		It("holds small writes until Flush", func() {
			var out util.StringBuilder
			stream := jsonwriter.NewStream(&out)

			stream.WriteString("buffered")
			Expect(out.String()).Should(BeEmpty())

			Expect(stream.Flush()).ShouldNot(HaveOccurred())
			Expect(out.String()).Should(Equal(`"buffered"`))
		})

		It("streams large writes through without waiting for a flush", func() {
			var out util.StringBuilder
			stream := jsonwriter.NewStream(&out)

			big := strings.Repeat("x", 2048)
			stream.WriteRawString(big)
			Expect(stream.Error()).ShouldNot(HaveOccurred())
			Expect(out.String()).Should(Equal(big))
		})
	})

	Describe("error handling", func() {
		It("reports errors from the underlying writer", func() {
			stream := jsonwriter.NewStream(brokenWriter{})
			stream.WriteString("data")
			// The write is small enough to be buffered so the error only surfaces on Flush.
			Expect(stream.Error()).ShouldNot(HaveOccurred())
			Expect(stream.Flush()).Should(MatchError(errBrokenPipe))
			Expect(stream.Error()).Should(MatchError(errBrokenPipe))
		})

		It("keeps the first error and discards subsequent writes", func() {
			var out util.StringBuilder
			stream := jsonwriter.NewStream(&out)

			stream.WriteArrayStart()
			stream.WriteFloat64(math.NaN())

			firstErr := stream.Error()
			Expect(firstErr).Should(HaveOccurred())

			stream.WriteInterface(42)
			stream.WriteArrayEnd()
			Expect(stream.Error()).Should(BeIdenticalTo(firstErr))
			Expect(stream.Flush()).Should(BeIdenticalTo(firstErr))
			Expect(out.String()).Should(BeEmpty())
		})
	})
})
