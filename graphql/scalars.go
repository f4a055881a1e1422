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

package graphql

import (
	"fmt"
	"math"
	"strconv"

	"github.com/botobag/selene/graphql/ast"
	"github.com/botobag/selene/graphql/typeutil"
)

// Values coerced by the built-in scalars are returned behind an interface{} whose dynamic type is
// fixed per scalar:
//
//	Int     int
//	Float   float64
//	String  string
//	Boolean bool
//	ID      string
//
// Callers receiving an Int argument can therefore assert an "int" directly. They never see an
// int32 or any other width.

// Failure reasons fed to RaiseError by the coercers below
const (
	reasonNonInteger       string = "not an integer"
	reasonTooLargeForInt32        = "value too large for 32-bit signed integer"
	reasonTooSmallForInt32        = "value too small for 32-bit signed integer"
	reasonNonNumeric              = "not a numeric value"
	reasonNonBoolean              = "not a boolean value"
	reasonLossyIntToFloat         = "value cannot be converted to float without losing precision"
)

// builtinCoercerBase carries the pieces shared by the coercers below: the scalar name used in
// error messages, the typeutil.CoercionHelperBase driving the dispatch, and the two entry points
// that run a coercion in the desired mode.
type builtinCoercerBase struct {
	typeutil.CoercionHelperBase
	typeName string
}

var _ typeutil.CoercionHelper = (*builtinCoercerBase)(nil)

// RaiseError overrides typeutil.CoercionHelperBase to phrase errors with the scalar name and the
// offending value.
func (coercer *builtinCoercerBase) RaiseError(value interface{}, ctx *typeutil.CoercionContext, format string, a ...interface{}) error {
	if v, ok := value.(string); ok {
		// Strings read better quoted.
		value = strconv.Quote(v)
	}
	return NewCoercionError("%s cannot represent %v: %s", coercer.typeName, value, fmt.Sprintf(format, a...))
}

// RaiseInvalidArgumentTypeError reports an argument literal whose AST node kind the scalar does
// not take.
func (coercer *builtinCoercerBase) RaiseInvalidArgumentTypeError(value ast.Value) error {
	v := value.Interface()
	if s, ok := v.(string); ok {
		v = strconv.Quote(s)
	}
	return NewCoercionError("%s cannot represent %v: unexpected argument node type `%T`", coercer.typeName, v, value)
}

// CoerceResultValue implements ScalarResultCoercer.
func (coercer *builtinCoercerBase) CoerceResultValue(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, typeutil.CoercionContext{
		Mode: typeutil.ResultCoercionMode,
	})
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer *builtinCoercerBase) CoerceVariableValue(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, typeutil.CoercionContext{
		Mode: typeutil.InputCoercionMode,
	})
}

func (coercer *builtinCoercerBase) init(typeName string, impl typeutil.CoercionHelper) {
	coercer.SetImpl(impl)
	coercer.typeName = typeName
}

// scalarCoercer bundles the two coercion roles every scalar fills.
type scalarCoercer interface {
	ScalarResultCoercer
	ScalarInputCoercer
}

// builtinScalar implements the scalar types defined by the GraphQL specification. The five differ
// only in their metadata and coercion rules, so one implementation parameterized by a coercer
// serves them all.
type builtinScalar struct {
	ThisIsScalarType
	name        string
	description string
	coercer     scalarCoercer
}

var _ Scalar = (*builtinScalar)(nil)

// Name implements TypeWithName.
func (b *builtinScalar) Name() string {
	return b.name
}

// Description implements TypeWithDescription.
func (b *builtinScalar) Description() string {
	return b.description
}

// String implements fmt.Stringer.
func (b *builtinScalar) String() string {
	return b.name
}

// CoerceResultValue implements LeafType.
func (b *builtinScalar) CoerceResultValue(value interface{}) (interface{}, error) {
	return b.coercer.CoerceResultValue(value)
}

// CoerceVariableValue implements Scalar.
func (b *builtinScalar) CoerceVariableValue(value interface{}) (interface{}, error) {
	return b.coercer.CoerceVariableValue(value)
}

// CoerceArgumentValue implements Scalar.
func (b *builtinScalar) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	return b.coercer.CoerceArgumentValue(value)
}

//===-----------------------------------------------------------------------------------------===//
// Int
//===-----------------------------------------------------------------------------------------===//
// Signed 32-bit non-fractional values.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Int

// intCoercer coerces results and inputs for the Int type.
type intCoercer struct {
	builtinCoercerBase
}

var _ scalarCoercer = (*intCoercer)(nil)

func (coercer *intCoercer) init() {
	coercer.builtinCoercerBase.init("Int", coercer)
}

// RaiseNonValue implements typeutil.CoercionHelper. NaN and the infinities count as non-integers.
func (coercer *intCoercer) RaiseNonValue(value interface{}, ctx *typeutil.CoercionContext) error {
	return coercer.RaiseError(value, ctx, reasonNonInteger)
}

// CoerceBool overrides typeutil.CoercionHelperBase.
func (coercer *intCoercer) CoerceBool(value bool, ctx *typeutil.CoercionContext) (interface{}, error) {
	// Input coercion takes integer values only.
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}

	if value {
		return 1, nil
	}
	return 0, nil
}

// CoerceSignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *intCoercer) CoerceSignedInteger(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if value > int64(math.MaxInt32) {
		return nil, coercer.RaiseError(value, ctx, reasonTooLargeForInt32)
	} else if value < int64(math.MinInt32) {
		return nil, coercer.RaiseError(value, ctx, reasonTooSmallForInt32)
	}
	return int(value), nil
}

// CoerceUnsignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *intCoercer) CoerceUnsignedInteger(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if value > uint64(math.MaxInt32) {
		return nil, coercer.RaiseError(value, ctx, reasonTooLargeForInt32)
	}
	return int(value), nil
}

// CoerceFloat overrides typeutil.CoercionHelperBase.
func (coercer *intCoercer) CoerceFloat(value float64, ctx *typeutil.CoercionContext) (interface{}, error) {
	// Input coercion takes integer values only.
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}

	// Accept a float in a result only when the conversion round-trips.
	intValue := int32(value)
	if float64(intValue) != value {
		return nil, coercer.RaiseError(value, ctx, reasonNonInteger)
	}
	return int(intValue), nil
}

func (coercer *intCoercer) coerceFromString(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	val, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			// ParseInt does not say which bound was crossed. The sign does.
			if len(value) > 0 && value[0] == '-' {
				return nil, coercer.RaiseError(value, ctx, reasonTooSmallForInt32)
			}
			return nil, coercer.RaiseError(value, ctx, reasonTooLargeForInt32)
		}
		return nil, coercer.RaiseError(value, ctx, reasonNonInteger)
	}
	return int(val), nil
}

// CoerceString overrides typeutil.CoercionHelperBase.
func (coercer *intCoercer) CoerceString(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	// Input coercion takes integer values only.
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return coercer.coerceFromString(value, ctx)
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer *intCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	ctx := &typeutil.CoercionContext{
		Mode: typeutil.InputCoercionMode,
	}

	if value, ok := value.(ast.IntValue); ok {
		return coercer.coerceFromString(value.String(), ctx)
	}

	// Any other literal kind yields a field error.
	return nil, coercer.RaiseInvalidArgumentTypeError(value)
}

var builtinInt = func() Scalar {
	coercer := &intCoercer{}
	coercer.init()
	return &builtinScalar{
		name: "Int",
		description: "The `Int` scalar type represents non-fractional signed whole numeric " +
			"values. Int can represent values between -(2^31) and 2^31 - 1.",
		coercer: coercer,
	}
}()

// Int returns the Int scalar type.
func Int() Scalar {
	return builtinInt
}

//===-----------------------------------------------------------------------------------------===//
// Float
//===-----------------------------------------------------------------------------------------===//
// Signed double-precision fractional values as specified by IEEE 754.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Float

// floatCoercer coerces results and inputs for the Float type.
type floatCoercer struct {
	builtinCoercerBase
}

var _ scalarCoercer = (*floatCoercer)(nil)

func (coercer *floatCoercer) init() {
	coercer.builtinCoercerBase.init("Float", coercer)
}

// ensureFinite rejects NaN and the infinities. They are valid IEEE 754 values but have no GraphQL
// serialization.
func (coercer *floatCoercer) ensureFinite(value float64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, coercer.RaiseNonValue(value, ctx)
	}
	return value, nil
}

// RaiseNonValue implements typeutil.CoercionHelper.
func (coercer *floatCoercer) RaiseNonValue(value interface{}, ctx *typeutil.CoercionContext) error {
	return coercer.RaiseError(value, ctx, reasonNonNumeric)
}

// CoerceBool overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceBool(value bool, ctx *typeutil.CoercionContext) (interface{}, error) {
	// Input coercion takes integer and float values only.
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}

	if value {
		return 1.0, nil
	}
	return 0.0, nil
}

// CoerceSignedInteger overrides typeutil.CoercionHelperBase. Only integers up to 32 bits wide get
// here and those always convert exactly. int and int64 have their own handlers with a loss check.
func (coercer *floatCoercer) CoerceSignedInteger(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	return coercer.ensureFinite(float64(value), ctx)
}

// CoerceInt overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceInt(value int, ctx *typeutil.CoercionContext) (interface{}, error) {
	return coercer.CoerceInt64(int64(value), ctx)
}

// CoerceInt64 overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceInt64(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	// float64 carries 53 bits of mantissa. Accept the value only when the conversion round-trips.
	floatValue := float64(value)
	if int64(floatValue) != value {
		return nil, coercer.RaiseError(value, ctx, reasonLossyIntToFloat)
	}
	return coercer.ensureFinite(floatValue, ctx)
}

// CoerceUnsignedInteger overrides typeutil.CoercionHelperBase. Only integers up to 32 bits wide
// get here. uint and uint64 have their own handlers with a loss check.
func (coercer *floatCoercer) CoerceUnsignedInteger(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	return coercer.ensureFinite(float64(value), ctx)
}

// CoerceUint overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceUint(value uint, ctx *typeutil.CoercionContext) (interface{}, error) {
	return coercer.CoerceUint64(uint64(value), ctx)
}

// CoerceUint64 overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceUint64(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	floatValue := float64(value)
	if uint64(floatValue) != value {
		return nil, coercer.RaiseError(value, ctx, reasonLossyIntToFloat)
	}
	return coercer.ensureFinite(floatValue, ctx)
}

// CoerceFloat overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceFloat(value float64, ctx *typeutil.CoercionContext) (interface{}, error) {
	return coercer.ensureFinite(value, ctx)
}

func (coercer *floatCoercer) coerceFromString(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, coercer.RaiseError(value, ctx, reasonNonNumeric)
	}
	// ParseFloat accepts "NaN" and "Inf" spellings which have no place in a result.
	return coercer.ensureFinite(parsed, ctx)
}

// CoerceString overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceString(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	// Input coercion takes integer and float values only.
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return coercer.coerceFromString(value, ctx)
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer *floatCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	ctx := &typeutil.CoercionContext{
		Mode: typeutil.InputCoercionMode,
	}

	// Integer literals qualify as Float as well.
	switch value := value.(type) {
	case ast.FloatValue:
		return coercer.coerceFromString(value.String(), ctx)

	case ast.IntValue:
		return coercer.coerceFromString(value.String(), ctx)
	}

	return nil, coercer.RaiseInvalidArgumentTypeError(value)
}

var builtinFloat = func() Scalar {
	coercer := &floatCoercer{}
	coercer.init()
	return &builtinScalar{
		name: "Float",
		description: "The `Float` scalar type represents signed double-precision fractional " +
			"values as specified by [IEEE 754](http://en.wikipedia.org/wiki/IEEE_floating_point). ",
		coercer: coercer,
	}
}()

// Float returns the Float scalar type.
func Float() Scalar {
	return builtinFloat
}

//===-----------------------------------------------------------------------------------------===//
// String
//===-----------------------------------------------------------------------------------------===//
// Reference: https://facebook.github.io/graphql/June2018/#sec-String

// stringCoercer coerces results and inputs for the String type.
type stringCoercer struct {
	builtinCoercerBase
}

var _ scalarCoercer = (*stringCoercer)(nil)

func (coercer *stringCoercer) init() {
	coercer.builtinCoercerBase.init("String", coercer)
}

// CoerceBool overrides typeutil.CoercionHelperBase.
func (coercer *stringCoercer) CoerceBool(value bool, ctx *typeutil.CoercionContext) (interface{}, error) {
	// Input coercion takes string values only.
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	if value {
		return "true", nil
	}
	return "false", nil
}

// CoerceSignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *stringCoercer) CoerceSignedInteger(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	// Input coercion takes string values only.
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return strconv.FormatInt(value, 10), nil
}

// CoerceUnsignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *stringCoercer) CoerceUnsignedInteger(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	// Input coercion takes string values only.
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return strconv.FormatUint(value, 10), nil
}

// CoerceFloat overrides typeutil.CoercionHelperBase.
func (coercer *stringCoercer) CoerceFloat(value float64, ctx *typeutil.CoercionContext) (interface{}, error) {
	// Input coercion takes string values only.
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return fmt.Sprintf("%v", value), nil
}

// CoerceString overrides typeutil.CoercionHelperBase.
func (coercer *stringCoercer) CoerceString(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	return value, nil
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer *stringCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	if value, ok := value.(ast.StringValue); ok {
		return value.Value(), nil
	}

	return nil, coercer.RaiseInvalidArgumentTypeError(value)
}

var builtinString = func() Scalar {
	coercer := &stringCoercer{}
	coercer.init()
	return &builtinScalar{
		name: "String",
		description: "The `String` scalar type represents textual data, represented as UTF-8 character " +
			"sequences. The String type is most often used by GraphQL to represent free-form human-" +
			"readable text.",
		coercer: coercer,
	}
}()

// String returns the String scalar type.
func String() Scalar {
	return builtinString
}

//===-----------------------------------------------------------------------------------------===//
// Boolean
//===-----------------------------------------------------------------------------------------===//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Boolean

// booleanCoercer coerces results and inputs for the Boolean type. Implementations disagree on
// which result values convert to a Boolean: graphql-ruby takes actual booleans only while
// graphql-go converts almost anything, strings included. This one sides with graphql-js and
// converts numeric and boolean values.
type booleanCoercer struct {
	builtinCoercerBase
}

var _ scalarCoercer = (*booleanCoercer)(nil)

func (coercer *booleanCoercer) init() {
	coercer.builtinCoercerBase.init("Boolean", coercer)
}

// RaiseNonValue implements typeutil.CoercionHelper.
func (coercer *booleanCoercer) RaiseNonValue(value interface{}, ctx *typeutil.CoercionContext) error {
	return coercer.RaiseError(value, ctx, reasonNonBoolean)
}

// CoerceBool overrides typeutil.CoercionHelperBase.
func (coercer *booleanCoercer) CoerceBool(value bool, ctx *typeutil.CoercionContext) (interface{}, error) {
	return value, nil
}

// CoerceSignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *booleanCoercer) CoerceSignedInteger(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	// Input coercion takes boolean values only.
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return value != 0, nil
}

// CoerceUnsignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *booleanCoercer) CoerceUnsignedInteger(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	// Input coercion takes boolean values only.
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return value != 0, nil
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer *booleanCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	// Literals other than booleans never qualify.
	if value, ok := value.(ast.BooleanValue); ok {
		return value.Value(), nil
	}

	return nil, coercer.RaiseInvalidArgumentTypeError(value)
}

var builtinBoolean = func() Scalar {
	coercer := &booleanCoercer{}
	coercer.init()
	return &builtinScalar{
		name:        "Boolean",
		description: "The `Boolean` scalar type represents `true` or `false`.",
		coercer:     coercer,
	}
}()

// Boolean returns the Boolean scalar type.
func Boolean() Scalar {
	return builtinBoolean
}

//===-----------------------------------------------------------------------------------------===//
// ID
//===-----------------------------------------------------------------------------------------===//
// Reference: https://facebook.github.io/graphql/June2018/#sec-ID

// idCoercer coerces results and inputs for the ID type. IDs are strings on the wire but take
// integer input as a convenience.
type idCoercer struct {
	builtinCoercerBase
}

var _ scalarCoercer = (*idCoercer)(nil)

func (coercer *idCoercer) init() {
	coercer.builtinCoercerBase.init("ID", coercer)
}

// CoerceSignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *idCoercer) CoerceSignedInteger(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	return strconv.FormatInt(value, 10), nil
}

// CoerceUnsignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *idCoercer) CoerceUnsignedInteger(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	return strconv.FormatUint(value, 10), nil
}

// CoerceString overrides typeutil.CoercionHelperBase.
func (coercer *idCoercer) CoerceString(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	return value, nil
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer *idCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	// Both string and integer literals qualify as IDs.
	switch value := value.(type) {
	case ast.StringValue:
		return value.Value(), nil

	case ast.IntValue:
		return value.String(), nil
	}
	return nil, coercer.RaiseInvalidArgumentTypeError(value)
}

var builtinID = func() Scalar {
	coercer := &idCoercer{}
	coercer.init()
	return &builtinScalar{
		name: "ID",
		description: "The `ID` scalar type represents a unique identifier, often used to " +
			"refetch an object or as key for a cache. The ID type appears in a JSON " +
			"response as a String; however, it is not intended to be human-readable. " +
			"When expected as an input type, any string (such as `\"4\"`) or integer " +
			"(such as `4`) input value will be accepted as an ID.",
		coercer: coercer,
	}
}()

// ID returns the ID scalar type.
func ID() Scalar {
	return builtinID
}
