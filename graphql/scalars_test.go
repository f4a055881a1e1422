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

package graphql_test

import (
	"math"

	"github.com/botobag/selene/graphql"
	"github.com/botobag/selene/graphql/ast"
	"github.com/botobag/selene/graphql/token"
	"github.com/botobag/selene/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

func MatchCoercionError(message string) types.GomegaMatcher {
	return testutil.MatchGraphQLError(
		testutil.MessageEqual(message),
		testutil.KindIs(graphql.ErrKindCoercion),
	)
}

func intLiteral(value string) ast.Value {
	return ast.IntValue{Token: &token.Token{Kind: token.KindInt, Value: value}}
}

func floatLiteral(value string) ast.Value {
	return ast.FloatValue{Token: &token.Token{Kind: token.KindFloat, Value: value}}
}

func stringLiteral(value string) ast.Value {
	return ast.StringValue{Token: &token.Token{Kind: token.KindString, Value: value}}
}

func booleanLiteral(value bool) ast.Value {
	literal := "false"
	if value {
		literal = "true"
	}
	return ast.BooleanValue{Token: &token.Token{Kind: token.KindName, Value: literal}}
}

var _ = Describe("Scalars", func() {
	// graphql-js/src/type/__tests__/serialization-test.js
	Describe("Type System: Scalar coercion", func() {
		It("serializes output as Int", func() {
			Expect(graphql.Int().CoerceResultValue(1)).Should(Equal(1))
			Expect(graphql.Int().CoerceResultValue(123)).Should(Equal(123))
			Expect(graphql.Int().CoerceResultValue(0)).Should(Equal(0))
			Expect(graphql.Int().CoerceResultValue(-1)).Should(Equal(-1))
			Expect(graphql.Int().CoerceResultValue(1e5)).Should(Equal(100000))
			Expect(graphql.Int().CoerceResultValue(false)).Should(Equal(0))
			Expect(graphql.Int().CoerceResultValue(true)).Should(Equal(1))

			var err error
			// Serializing a fractional value as Int would silently drop data, so it must error
			// instead.
			_, err = graphql.Int().CoerceResultValue(0.1)
			Expect(err).Should(MatchCoercionError("Int cannot represent 0.1: not an integer"))

			_, err = graphql.Int().CoerceResultValue(1.1)
			Expect(err).Should(MatchCoercionError("Int cannot represent 1.1: not an integer"))

			_, err = graphql.Int().CoerceResultValue(-1.1)
			Expect(err).Should(MatchCoercionError("Int cannot represent -1.1: not an integer"))

			_, err = graphql.Int().CoerceResultValue("-1.1")
			Expect(err).Should(MatchCoercionError("Int cannot represent \"-1.1\": not an integer"))

			// Fits in an int64 but crosses the 32-bit bounds GraphQL sets for Int.
			_, err = graphql.Int().CoerceResultValue(9876504321)
			Expect(err).Should(MatchCoercionError("Int cannot represent 9876504321: value too large for 32-bit signed integer"))

			_, err = graphql.Int().CoerceResultValue(-9876504321)
			Expect(err).Should(MatchCoercionError("Int cannot represent -9876504321: value too small for 32-bit signed integer"))

			// Floats of this size have no integer form at all.
			_, err = graphql.Int().CoerceResultValue(1e100)
			Expect(err).Should(MatchCoercionError("Int cannot represent 1e+100: not an integer"))

			_, err = graphql.Int().CoerceResultValue(-1e100)
			Expect(err).Should(MatchCoercionError("Int cannot represent -1e+100: not an integer"))

			_, err = graphql.Int().CoerceResultValue("one")
			Expect(err).Should(MatchCoercionError("Int cannot represent \"one\": not an integer"))

			// Strings with no numeric reading
			_, err = graphql.Int().CoerceResultValue("")
			Expect(err).Should(MatchCoercionError("Int cannot represent \"\": not an integer"))

			_, err = graphql.Int().CoerceResultValue(math.NaN())
			Expect(err).Should(MatchCoercionError("Int cannot represent NaN: not an integer"))

			_, err = graphql.Int().CoerceResultValue(math.Inf(1))
			Expect(err).Should(MatchCoercionError("Int cannot represent +Inf: not an integer"))

			_, err = graphql.Int().CoerceResultValue(math.Inf(-1))
			Expect(err).Should(MatchCoercionError("Int cannot represent -Inf: not an integer"))

			_, err = graphql.Int().CoerceResultValue([]int{5})
			Expect(err).Should(MatchCoercionError("Int cannot represent [5]: unexpected result type `[]int`"))
		})

		It("serializes output as Float", func() {
			Expect(graphql.Float().CoerceResultValue(1)).Should(Equal(1.0))
			Expect(graphql.Float().CoerceResultValue(0)).Should(Equal(0.0))
			Expect(graphql.Float().CoerceResultValue("123.5")).Should(Equal(123.5))
			Expect(graphql.Float().CoerceResultValue(-1)).Should(Equal(-1.0))
			Expect(graphql.Float().CoerceResultValue(0.1)).Should(Equal(0.1))
			Expect(graphql.Float().CoerceResultValue(1.1)).Should(Equal(1.1))
			Expect(graphql.Float().CoerceResultValue(-1.1)).Should(Equal(-1.1))
			Expect(graphql.Float().CoerceResultValue("-1.1")).Should(Equal(-1.1))
			Expect(graphql.Float().CoerceResultValue(false)).Should(Equal(0.0))
			Expect(graphql.Float().CoerceResultValue(true)).Should(Equal(1.0))

			var err error

			_, err = graphql.Float().CoerceResultValue(math.NaN())
			Expect(err).Should(MatchCoercionError("Float cannot represent NaN: not a numeric value"))
			_, err = graphql.Float().CoerceResultValue(math.Inf(1))
			Expect(err).Should(MatchCoercionError("Float cannot represent +Inf: not a numeric value"))
			_, err = graphql.Float().CoerceResultValue(math.Inf(-1))
			Expect(err).Should(MatchCoercionError("Float cannot represent -Inf: not a numeric value"))

			_, err = graphql.Float().CoerceResultValue("NaN")
			Expect(err).Should(MatchCoercionError("Float cannot represent NaN: not a numeric value"))
			_, err = graphql.Float().CoerceResultValue("Inf")
			Expect(err).Should(MatchCoercionError("Float cannot represent +Inf: not a numeric value"))
			_, err = graphql.Float().CoerceResultValue("+Inf")
			Expect(err).Should(MatchCoercionError("Float cannot represent +Inf: not a numeric value"))
			_, err = graphql.Float().CoerceResultValue("-Inf")
			Expect(err).Should(MatchCoercionError("Float cannot represent -Inf: not a numeric value"))

			_, err = graphql.Float().CoerceResultValue("one")
			Expect(err).Should(MatchCoercionError("Float cannot represent \"one\": not a numeric value"))
			_, err = graphql.Float().CoerceResultValue("")
			Expect(err).Should(MatchCoercionError("Float cannot represent \"\": not a numeric value"))
			_, err = graphql.Float().CoerceResultValue([]int{5})
			Expect(err).Should(MatchCoercionError("Float cannot represent [5]: unexpected result type `[]int`"))
		})

		It("serializes output as String", func() {
			Expect(graphql.String().CoerceResultValue("string")).Should(Equal("string"))
			Expect(graphql.String().CoerceResultValue(1)).Should(Equal("1"))
			Expect(graphql.String().CoerceResultValue(uint(100))).Should(Equal("100"))
			Expect(graphql.String().CoerceResultValue(-1.1)).Should(Equal("-1.1"))
			Expect(graphql.String().CoerceResultValue(true)).Should(Equal("true"))
			Expect(graphql.String().CoerceResultValue(false)).Should(Equal("false"))

			var err error
			_, err = graphql.String().CoerceResultValue(math.NaN())
			Expect(err).Should(MatchCoercionError("String cannot represent NaN: not a value"))

			_, err = graphql.String().CoerceResultValue([]int{5})
			Expect(err).Should(MatchCoercionError("String cannot represent [5]: unexpected result type `[]int`"))
		})

		It("serializes output as Boolean", func() {
			Expect(graphql.Boolean().CoerceResultValue(100)).Should(Equal(true))
			Expect(graphql.Boolean().CoerceResultValue(1)).Should(Equal(true))
			Expect(graphql.Boolean().CoerceResultValue(0)).Should(Equal(false))
			Expect(graphql.Boolean().CoerceResultValue(-100)).Should(Equal(true))
			Expect(graphql.Boolean().CoerceResultValue(uint(100))).Should(Equal(true))
			Expect(graphql.Boolean().CoerceResultValue(uint(1))).Should(Equal(true))
			Expect(graphql.Boolean().CoerceResultValue(uint(0))).Should(Equal(false))
			Expect(graphql.Boolean().CoerceResultValue(true)).Should(Equal(true))
			Expect(graphql.Boolean().CoerceResultValue(false)).Should(Equal(false))

			var err error
			_, err = graphql.Boolean().CoerceResultValue(math.NaN())
			Expect(err).Should(MatchCoercionError("Boolean cannot represent NaN: not a boolean value"))

			_, err = graphql.Boolean().CoerceResultValue("")
			Expect(err).Should(MatchCoercionError("Boolean cannot represent \"\": unexpected result type `string`"))
			_, err = graphql.Boolean().CoerceResultValue("true")
			Expect(err).Should(MatchCoercionError("Boolean cannot represent \"true\": unexpected result type `string`"))
			_, err = graphql.Boolean().CoerceResultValue([]bool{false})
			Expect(err).Should(MatchCoercionError("Boolean cannot represent [false]: unexpected result type `[]bool`"))
			_, err = graphql.Boolean().CoerceResultValue(struct{}{})
			Expect(err).Should(MatchCoercionError("Boolean cannot represent {}: unexpected result type `struct {}`"))
		})

		It("serializes output as ID", func() {
			Expect(graphql.ID().CoerceResultValue("string")).Should(Equal("string"))
			Expect(graphql.ID().CoerceResultValue("false")).Should(Equal("false"))
			Expect(graphql.ID().CoerceResultValue("")).Should(Equal(""))
			Expect(graphql.ID().CoerceResultValue(123)).Should(Equal("123"))
			Expect(graphql.ID().CoerceResultValue(0)).Should(Equal("0"))
			Expect(graphql.ID().CoerceResultValue(-1)).Should(Equal("-1"))

			var err error
			_, err = graphql.ID().CoerceResultValue(true)
			Expect(err).Should(MatchCoercionError("ID cannot represent true: unexpected result type `bool`"))
			_, err = graphql.ID().CoerceResultValue(3.14)
			Expect(err).Should(MatchCoercionError("ID cannot represent 3.14: unexpected result type `float64`"))
			_, err = graphql.ID().CoerceResultValue(struct{}{})
			Expect(err).Should(MatchCoercionError("ID cannot represent {}: unexpected result type `struct {}`"))
			_, err = graphql.ID().CoerceResultValue([]string{"abc"})
			Expect(err).Should(MatchCoercionError("ID cannot represent [\"abc\"]: unexpected result type `[]string`"))
		})
	})

	// graphql-js/src/utilities/__tests__/coerceValue-test.js
	Describe("Type System: Scalar input coercion", func() {
		It("coerces input variables as Int", func() {
			Expect(graphql.Int().CoerceVariableValue(1)).Should(Equal(1))
			Expect(graphql.Int().CoerceVariableValue(123)).Should(Equal(123))
			Expect(graphql.Int().CoerceVariableValue(-1)).Should(Equal(-1))
			Expect(graphql.Int().CoerceVariableValue(int32(100))).Should(Equal(100))
			Expect(graphql.Int().CoerceVariableValue(uint16(30000))).Should(Equal(30000))
			Expect(graphql.Int().CoerceVariableValue(nil)).Should(BeNil())

			var err error
			_, err = graphql.Int().CoerceVariableValue(int64(9876504321))
			Expect(err).Should(MatchCoercionError("Int cannot represent 9876504321: value too large for 32-bit signed integer"))

			_, err = graphql.Int().CoerceVariableValue(int64(-9876504321))
			Expect(err).Should(MatchCoercionError("Int cannot represent -9876504321: value too small for 32-bit signed integer"))

			// Unlike result coercion, input coercion never converts from other types.
			_, err = graphql.Int().CoerceVariableValue(1.5)
			Expect(err).Should(MatchCoercionError("Int cannot represent 1.5: invalid variable type `float64`"))

			_, err = graphql.Int().CoerceVariableValue("123")
			Expect(err).Should(MatchCoercionError("Int cannot represent \"123\": invalid variable type `string`"))

			_, err = graphql.Int().CoerceVariableValue(true)
			Expect(err).Should(MatchCoercionError("Int cannot represent true: invalid variable type `bool`"))

			_, err = graphql.Int().CoerceVariableValue([]int{5})
			Expect(err).Should(MatchCoercionError("Int cannot represent [5]: invalid variable type `[]int`"))
		})

		It("coerces input literals as Int", func() {
			Expect(graphql.Int().CoerceArgumentValue(intLiteral("123"))).Should(Equal(123))
			Expect(graphql.Int().CoerceArgumentValue(intLiteral("0"))).Should(Equal(0))
			Expect(graphql.Int().CoerceArgumentValue(intLiteral("-1"))).Should(Equal(-1))

			var err error
			_, err = graphql.Int().CoerceArgumentValue(intLiteral("9876504321"))
			Expect(err).Should(MatchCoercionError("Int cannot represent \"9876504321\": value too large for 32-bit signed integer"))

			_, err = graphql.Int().CoerceArgumentValue(intLiteral("-9876504321"))
			Expect(err).Should(MatchCoercionError("Int cannot represent \"-9876504321\": value too small for 32-bit signed integer"))

			_, err = graphql.Int().CoerceArgumentValue(floatLiteral("0.1"))
			Expect(err).Should(MatchCoercionError("Int cannot represent 0.1: unexpected argument node type `ast.FloatValue`"))

			_, err = graphql.Int().CoerceArgumentValue(stringLiteral("123"))
			Expect(err).Should(MatchCoercionError("Int cannot represent \"123\": unexpected argument node type `ast.StringValue`"))

			_, err = graphql.Int().CoerceArgumentValue(booleanLiteral(true))
			Expect(err).Should(MatchCoercionError("Int cannot represent true: unexpected argument node type `ast.BooleanValue`"))
		})

		It("coerces input variables as Float", func() {
			Expect(graphql.Float().CoerceVariableValue(1)).Should(Equal(1.0))
			Expect(graphql.Float().CoerceVariableValue(0.1)).Should(Equal(0.1))
			Expect(graphql.Float().CoerceVariableValue(-1.1)).Should(Equal(-1.1))
			Expect(graphql.Float().CoerceVariableValue(uint(100))).Should(Equal(100.0))

			var err error
			_, err = graphql.Float().CoerceVariableValue("123.5")
			Expect(err).Should(MatchCoercionError("Float cannot represent \"123.5\": invalid variable type `string`"))

			_, err = graphql.Float().CoerceVariableValue(false)
			Expect(err).Should(MatchCoercionError("Float cannot represent false: invalid variable type `bool`"))

			_, err = graphql.Float().CoerceVariableValue(math.NaN())
			Expect(err).Should(MatchCoercionError("Float cannot represent NaN: not a numeric value"))

			_, err = graphql.Float().CoerceVariableValue([]int{5})
			Expect(err).Should(MatchCoercionError("Float cannot represent [5]: invalid variable type `[]int`"))
		})

		It("coerces input literals as Float", func() {
			Expect(graphql.Float().CoerceArgumentValue(floatLiteral("123.5"))).Should(Equal(123.5))
			Expect(graphql.Float().CoerceArgumentValue(floatLiteral("-1.1"))).Should(Equal(-1.1))
			// Integer literals are accepted as Float as well.
			Expect(graphql.Float().CoerceArgumentValue(intLiteral("123"))).Should(Equal(123.0))

			var err error
			_, err = graphql.Float().CoerceArgumentValue(stringLiteral("123.5"))
			Expect(err).Should(MatchCoercionError("Float cannot represent \"123.5\": unexpected argument node type `ast.StringValue`"))

			_, err = graphql.Float().CoerceArgumentValue(booleanLiteral(false))
			Expect(err).Should(MatchCoercionError("Float cannot represent false: unexpected argument node type `ast.BooleanValue`"))
		})

		It("coerces input variables as String", func() {
			Expect(graphql.String().CoerceVariableValue("string")).Should(Equal("string"))
			Expect(graphql.String().CoerceVariableValue("")).Should(Equal(""))

			var err error
			_, err = graphql.String().CoerceVariableValue(int64(1))
			Expect(err).Should(MatchCoercionError("String cannot represent 1: invalid variable type `int64`"))

			_, err = graphql.String().CoerceVariableValue(true)
			Expect(err).Should(MatchCoercionError("String cannot represent true: invalid variable type `bool`"))

			_, err = graphql.String().CoerceVariableValue(-1.1)
			Expect(err).Should(MatchCoercionError("String cannot represent -1.1: invalid variable type `float64`"))
		})

		It("coerces input literals as String", func() {
			Expect(graphql.String().CoerceArgumentValue(stringLiteral("abc"))).Should(Equal("abc"))
			Expect(graphql.String().CoerceArgumentValue(stringLiteral(""))).Should(Equal(""))

			var err error
			_, err = graphql.String().CoerceArgumentValue(intLiteral("123"))
			Expect(err).Should(MatchCoercionError("String cannot represent 123: unexpected argument node type `ast.IntValue`"))

			_, err = graphql.String().CoerceArgumentValue(booleanLiteral(false))
			Expect(err).Should(MatchCoercionError("String cannot represent false: unexpected argument node type `ast.BooleanValue`"))
		})

		It("coerces input variables as Boolean", func() {
			Expect(graphql.Boolean().CoerceVariableValue(true)).Should(Equal(true))
			Expect(graphql.Boolean().CoerceVariableValue(false)).Should(Equal(false))

			var err error
			_, err = graphql.Boolean().CoerceVariableValue(int64(1))
			Expect(err).Should(MatchCoercionError("Boolean cannot represent 1: invalid variable type `int64`"))

			_, err = graphql.Boolean().CoerceVariableValue("true")
			Expect(err).Should(MatchCoercionError("Boolean cannot represent \"true\": invalid variable type `string`"))
		})

		It("coerces input literals as Boolean", func() {
			Expect(graphql.Boolean().CoerceArgumentValue(booleanLiteral(true))).Should(Equal(true))
			Expect(graphql.Boolean().CoerceArgumentValue(booleanLiteral(false))).Should(Equal(false))

			var err error
			_, err = graphql.Boolean().CoerceArgumentValue(intLiteral("1"))
			Expect(err).Should(MatchCoercionError("Boolean cannot represent 1: unexpected argument node type `ast.IntValue`"))

			_, err = graphql.Boolean().CoerceArgumentValue(stringLiteral("true"))
			Expect(err).Should(MatchCoercionError("Boolean cannot represent \"true\": unexpected argument node type `ast.StringValue`"))
		})

		It("coerces input variables as ID", func() {
			Expect(graphql.ID().CoerceVariableValue("id-1")).Should(Equal("id-1"))
			Expect(graphql.ID().CoerceVariableValue(123)).Should(Equal("123"))
			Expect(graphql.ID().CoerceVariableValue(uint(42))).Should(Equal("42"))

			var err error
			_, err = graphql.ID().CoerceVariableValue(3.14)
			Expect(err).Should(MatchCoercionError("ID cannot represent 3.14: invalid variable type `float64`"))

			_, err = graphql.ID().CoerceVariableValue(true)
			Expect(err).Should(MatchCoercionError("ID cannot represent true: invalid variable type `bool`"))
		})

		It("coerces input literals as ID", func() {
			Expect(graphql.ID().CoerceArgumentValue(stringLiteral("abc"))).Should(Equal("abc"))
			Expect(graphql.ID().CoerceArgumentValue(intLiteral("123"))).Should(Equal("123"))

			var err error
			_, err = graphql.ID().CoerceArgumentValue(floatLiteral("3.14"))
			Expect(err).Should(MatchCoercionError("ID cannot represent 3.14: unexpected argument node type `ast.FloatValue`"))

			_, err = graphql.ID().CoerceArgumentValue(booleanLiteral(true))
			Expect(err).Should(MatchCoercionError("ID cannot represent true: unexpected argument node type `ast.BooleanValue`"))
		})
	})

	It("stringifies built-in scalar types", func() {
		tests := []struct {
			t        graphql.Type
			expected string
		}{
			{graphql.Int(), "Int"},
			{graphql.Float(), "Float"},
			{graphql.String(), "String"},
			{graphql.Boolean(), "Boolean"},
			{graphql.ID(), "ID"},
		}

		for _, test := range tests {
			Expect(graphql.Inspect(test.t)).Should(Equal(test.expected))
		}
	})
})
