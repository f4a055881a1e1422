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

// TypeDefinition describes a type to be built. Definitions only carry data; NewType (or the
// type-specific constructors such as NewScalar) turn them into usable Type instances.
type TypeDefinition interface {
	// ThisIsGraphQLTypeDefinition identifies a TypeDefinition object.
	ThisIsGraphQLTypeDefinition()
}

// ThisIsTypeDefinition is embedded by every TypeDefinition implementation to supply the identifying
// mark.
type ThisIsTypeDefinition struct{}

// ThisIsGraphQLTypeDefinition implements TypeDefinition.
func (ThisIsTypeDefinition) ThisIsGraphQLTypeDefinition() {}

//===-----------------------------------------------------------------------------------------====//
// NewType
//===-----------------------------------------------------------------------------------------====//

// NewType builds the Type described by the given TypeDefinition. Prefer the constructor matching
// the definition kind when it is known up front; NewScalar on a ScalarTypeDefinition returns a
// Scalar without the extra type assertion.
func NewType(typeDef TypeDefinition) (Type, error) {
	switch typeDef := typeDef.(type) {
	case typeWrapperTypeDefinition:
		return typeDef.Type(), nil

	default:
		return newTypeImpl(newCreatorFor(typeDef))
	}
}

//===-----------------------------------------------------------------------------------------====//
// T Function
//===-----------------------------------------------------------------------------------------====//

// typeWrapperTypeDefinition presents an already-built Type as a TypeDefinition so it can be passed
// anywhere a definition is expected.
type typeWrapperTypeDefinition struct {
	ThisIsTypeDefinition
	t Type
}

var _ TypeDefinition = typeWrapperTypeDefinition{}

// Type returns the wrapped Type instance.
func (typeDef typeWrapperTypeDefinition) Type() Type {
	return typeDef.t
}

// T wraps a Type in a TypeDefinition. Definitions reference the types they depend on as other
// definitions (an argument names the definition of its input type, for example). When the
// dependency already exists as a built Type, T supplies the definition form; NewType recognizes
// the wrapper and hands back the Type inside without building anything.
func T(t Type) TypeDefinition {
	return typeWrapperTypeDefinition{t: t}
}

//===-----------------------------------------------------------------------------------------====//
// Scalar Type Definition
//===-----------------------------------------------------------------------------------------====//

// ScalarTypeData contains the data needed to build a Scalar.
type ScalarTypeData struct {
	// Name of the scalar type to define
	Name string

	// Description for the type; may be empty
	Description string
}

// ThisIsScalarTypeDefinition is embedded by every ScalarTypeDefinition implementation.
type ThisIsScalarTypeDefinition struct {
	ThisIsTypeDefinition
}

// ThisIsGraphQLScalarTypeDefinition implements ScalarTypeDefinition.
func (ThisIsScalarTypeDefinition) ThisIsGraphQLScalarTypeDefinition() {}

// ScalarTypeDefinition describes a Scalar to be built.
type ScalarTypeDefinition interface {
	TypeDefinition

	// TypeData returns the data for the scalar under definition.
	TypeData() ScalarTypeData

	// NewResultCoercer supplies the ScalarResultCoercer for the scalar being initialized. The scalar
	// under construction is passed in so the coercer can refer to it.
	NewResultCoercer(scalar Scalar) (ScalarResultCoercer, error)

	// NewInputCoercer supplies the ScalarInputCoercer for the scalar being initialized.
	NewInputCoercer(scalar Scalar) (ScalarInputCoercer, error)

	// ThisIsGraphQLScalarTypeDefinition identifies a ScalarTypeDefinition object.
	ThisIsGraphQLScalarTypeDefinition()
}

//===-----------------------------------------------------------------------------------------====//
// List Type Definition
//===-----------------------------------------------------------------------------------------====//

// ThisIsListTypeDefinition is embedded by every ListTypeDefinition implementation.
type ThisIsListTypeDefinition struct {
	ThisIsTypeDefinition
}

// ThisIsGraphQLListTypeDefinition implements ListTypeDefinition.
func (ThisIsListTypeDefinition) ThisIsGraphQLListTypeDefinition() {}

// ListTypeDefinition describes a List to be built.
type ListTypeDefinition interface {
	TypeDefinition

	// ElementType names the definition of the type wrapped by the List.
	ElementType() TypeDefinition

	// ThisIsGraphQLListTypeDefinition identifies a ListTypeDefinition object.
	ThisIsGraphQLListTypeDefinition()
}

//===-----------------------------------------------------------------------------------------====//
// NonNull Type Definition
//===-----------------------------------------------------------------------------------------====//

// ThisIsNonNullTypeDefinition is embedded by every NonNullTypeDefinition implementation.
type ThisIsNonNullTypeDefinition struct {
	ThisIsTypeDefinition
}

// ThisIsGraphQLNonNullTypeDefinition implements NonNullTypeDefinition.
func (ThisIsNonNullTypeDefinition) ThisIsGraphQLNonNullTypeDefinition() {}

// NonNullTypeDefinition describes a NonNull to be built.
type NonNullTypeDefinition interface {
	TypeDefinition

	// ElementType names the definition of the type wrapped by the NonNull.
	ElementType() TypeDefinition

	// ThisIsGraphQLNonNullTypeDefinition identifies a NonNullTypeDefinition object.
	ThisIsGraphQLNonNullTypeDefinition()
}
