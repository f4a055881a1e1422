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

	"github.com/botobag/selene/graphql/ast"
)

// Type is implemented by all GraphQL type definitions.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Types
type Type interface {
	// String returns the notation that refers to the type in a document.
	fmt.Stringer

	// graphqlType limits the set of objects that can be assigned to a Type.
	graphqlType()
}

// LeafType represents a type whose value terminates the traversal of hierarchical queries. Only
// Scalar and Enum can serve leaf nodes in GraphQL. See [0] and [1].
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Scalars
// [1]: https://facebook.github.io/graphql/June2018/#sec-Enums
type LeafType interface {
	Type
	TypeWithName
	TypeWithDescription

	// CoerceResultValue coerces the given value to one eligible for the result of a field with the
	// type.
	CoerceResultValue(value interface{}) (interface{}, error)

	// graphqlLeafType marks a GraphQL leaf type.
	graphqlLeafType()
}

// WrappingType wraps another type. List and NonNull are the two wrapping types in GraphQL.
//
// Reference: https://facebook.github.io/graphql/draft/#sec-Wrapping-Types
type WrappingType interface {
	Type

	// UnwrappedType returns the type wrapped by this type.
	UnwrappedType() Type

	graphqlWrappingType()
}

//===----------------------------------------------------------------------------------------====//
// Interfaces implemented by some but not all types
//===----------------------------------------------------------------------------------------====//

// TypeWithName is implemented by the definitions of named types.
type TypeWithName interface {
	// Name the type is referred to by in a document
	Name() string
}

// TypeWithDescription is implemented by types that carry documentation.
type TypeWithDescription interface {
	// Description documents the type for introspection.
	Description() string
}

//===----------------------------------------------------------------------------------------====//
// Scalar
//===----------------------------------------------------------------------------------------====//

// Scalar is the definition of a scalar type. The leaf values of any request and the input values
// fed to arguments are scalars (or enums); a scalar is defined with a name and a set of functions
// that parse input from documents or variables and serialize values for results.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type Scalar interface {
	LeafType

	// CoerceVariableValue coerces a value given in an input variable into a Go value eligible for
	// the scalar.
	CoerceVariableValue(value interface{}) (interface{}, error)

	// CoerceArgumentValue coerces a value given to a field or directive argument into a Go value
	// eligible for the scalar.
	CoerceArgumentValue(value ast.Value) (interface{}, error)

	// graphqlScalarType marks a scalar type.
	graphqlScalarType()
}

// ThisIsScalarType must be embedded in a struct that intends to be a Scalar.
type ThisIsScalarType struct{}

// graphqlType implements Type.
func (*ThisIsScalarType) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*ThisIsScalarType) graphqlLeafType() {}

// graphqlScalarType implements Scalar.
func (*ThisIsScalarType) graphqlScalarType() {}

// ScalarResultCoercer prepares a result value for inclusion in the response as described in
// "Result Coercion" of [0].
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Scalars
type ScalarResultCoercer interface {
	// CoerceResultValue coerces the given value for a field to return. CompleteValue() [0] invokes
	// this as per the specification.
	//
	// [0]: https://facebook.github.io/graphql/June2018/#CompleteValue()
	CoerceResultValue(value interface{}) (interface{}, error)
}

// CoerceScalarResultFunc lets an ordinary function serve as a ScalarResultCoercer.
type CoerceScalarResultFunc func(value interface{}) (interface{}, error)

// CoerceResultValue calls f(value).
func (f CoerceScalarResultFunc) CoerceResultValue(value interface{}) (interface{}, error) {
	return f(value)
}

// CoerceScalarResultFunc implements ScalarResultCoercer.
var _ ScalarResultCoercer = (CoerceScalarResultFunc)(nil)

// ScalarInputCoercer parses values supplied to the scalar in a GraphQL request as described in
// "Input Coercion" of [0].
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Scalars
type ScalarInputCoercer interface {
	// CoerceVariableValue coerces a scalar value given in the query variables [0].
	//
	// [0]: https://facebook.github.io/graphql/June2018/#CoerceVariableValues()
	CoerceVariableValue(value interface{}) (interface{}, error)

	// CoerceArgumentValue coerces a scalar value given in a field argument [0].
	//
	// [0]: https://facebook.github.io/graphql/June2018/#CoerceArgumentValues()
	CoerceArgumentValue(value ast.Value) (interface{}, error)
}

// ScalarInputCoercerFuncs builds a ScalarInputCoercer from a pair of function values.
type ScalarInputCoercerFuncs struct {
	CoerceVariableValueFunc func(value interface{}) (interface{}, error)
	CoerceArgumentValueFunc func(value ast.Value) (interface{}, error)
}

// CoerceVariableValue calls f.CoerceVariableValueFunc(value).
func (f ScalarInputCoercerFuncs) CoerceVariableValue(value interface{}) (interface{}, error) {
	return f.CoerceVariableValueFunc(value)
}

// CoerceArgumentValue calls f.CoerceArgumentValueFunc(value).
func (f ScalarInputCoercerFuncs) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	return f.CoerceArgumentValueFunc(value)
}

// ScalarInputCoercerFuncs implements ScalarInputCoercer.
var _ ScalarInputCoercer = ScalarInputCoercerFuncs{}

//===------------------------------------------------------------------------------------------===//
// List
//===------------------------------------------------------------------------------------------===//

// List is the definition of a list type, a wrapping type which declares the type of every element
// in the collection it wraps.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.List
type List interface {
	WrappingType

	// ElementType indicates the type of the elements in the list.
	ElementType() Type

	// graphqlListType marks a List type.
	graphqlListType()
}

// ThisIsListType must be embedded in a struct that intends to be a List.
type ThisIsListType struct{}

// graphqlType implements Type.
func (*ThisIsListType) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*ThisIsListType) graphqlWrappingType() {}

// graphqlListType implements List.
func (*ThisIsListType) graphqlListType() {}

//===------------------------------------------------------------------------------------------===//
// NonNull
//===------------------------------------------------------------------------------------------===//

// NonNull is the definition of a non-null type, a wrapping type which declares that the value of
// the type it wraps is never null. Fields of a non-null type raise an error when a null shows up
// where their value should be, which makes the guarantee enforceable during a request.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Non-Null
type NonNull interface {
	WrappingType

	// InnerType indicates the type whose values are declared non-null.
	InnerType() Type

	// graphqlNonNullType marks a NonNull type.
	graphqlNonNullType()
}

// ThisIsNonNullType must be embedded in a struct that intends to be a NonNull.
type ThisIsNonNullType struct{}

// graphqlType implements Type.
func (*ThisIsNonNullType) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*ThisIsNonNullType) graphqlWrappingType() {}

// graphqlNonNullType implements NonNull.
func (*ThisIsNonNullType) graphqlNonNullType() {}

//===------------------------------------------------------------------------------------------===//
// Type predicates
//===------------------------------------------------------------------------------------------===//

// NamedTypeOf strips all wrapping types and returns the named type sitting innermost.
//
// Reference: https://facebook.github.io/graphql/draft/#sec-Wrapping-Types
func NamedTypeOf(t Type) Type {
	for {
		switch ttype := t.(type) {
		case List:
			if ttype == nil {
				return nil
			}
			t = ttype.ElementType()

		case NonNull:
			if ttype == nil {
				return nil
			}
			t = ttype.InnerType()

		default:
			return t
		}
	}
}

// NullableTypeOf returns the inner type if the given type is a non-null type, and otherwise the
// given type itself.
func NullableTypeOf(t Type) Type {
	if t, ok := t.(NonNull); ok && t != nil {
		return t.InnerType()
	}
	return t
}

// IsInputType returns true if the given type can take values in input arguments and variables.
//
// Reference: https://facebook.github.io/graphql/June2018/#IsInputType()
func IsInputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case Scalar:
		return true
	default:
		return false
	}
}

// IsNullableType returns true if the type accepts a null value.
func IsNullableType(t Type) bool {
	_, ok := t.(NonNull)
	return !ok
}

// IsNamedType returns true if the type is not a wrapping type.
//
// Reference: https://facebook.github.io/graphql/draft/#sec-Wrapping-Types
func IsNamedType(t Type) bool {
	return !IsWrappingType(t)
}

// The remaining predicates wrap a type assertion to the corresponding interface so they read well
// in an "if".

// IsLeafType reports whether t is a leaf type.
func IsLeafType(t Type) bool {
	_, ok := t.(LeafType)
	return ok
}

// IsWrappingType reports whether t wraps another type.
func IsWrappingType(t Type) bool {
	_, ok := t.(WrappingType)
	return ok
}

// IsScalarType reports whether t is a Scalar.
func IsScalarType(t Type) bool {
	_, ok := t.(Scalar)
	return ok
}

// IsListType reports whether t is a List.
func IsListType(t Type) bool {
	_, ok := t.(List)
	return ok
}

// IsNonNullType reports whether t is a NonNull.
func IsNonNullType(t Type) bool {
	_, ok := t.(NonNull)
	return ok
}
