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
)

// nonNullTypeCreator drives newTypeImpl when building a NonNull.
type nonNullTypeCreator struct {
	typeDef NonNullTypeDefinition
}

// nonNullTypeCreator implements typeCreator.
var _ typeCreator = (*nonNullTypeCreator)(nil)

// TypeDefinition implements typeCreator.
func (creator *nonNullTypeCreator) TypeDefinition() TypeDefinition {
	return creator.typeDef
}

// LoadDataAndNew implements typeCreator.
func (creator *nonNullTypeCreator) LoadDataAndNew() (Type, error) {
	return &nonNull{}, nil
}

// Finalize implements typeCreator.
func (creator *nonNullTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	innerType, err := typeDefResolver(creator.typeDef.ElementType())
	if err != nil {
		return err
	} else if innerType == nil {
		return NewError("Must provide an non-nil element type for NonNull.", ErrKindDefinition)
	} else if !IsNullableType(innerType) {
		// Wrapping a NonNull in another NonNull has no meaning.
		return NewError(fmt.Sprintf("Expected a nullable type for NonNull but got an %s.", innerType.String()), ErrKindDefinition)
	}

	nonNull := t.(*nonNull)
	nonNull.innerType = innerType
	nonNull.notation = fmt.Sprintf("%s!", innerType.String())
	return nil
}

// nonNullTypeDefinitionOf is the NonNullTypeDefinition for an inner type given as a
// TypeDefinition.
type nonNullTypeDefinitionOf struct {
	ThisIsNonNullTypeDefinition
	elementTypeDef TypeDefinition
}

var _ NonNullTypeDefinition = nonNullTypeDefinitionOf{}

// ElementType implements NonNullTypeDefinition.
func (typeDef nonNullTypeDefinitionOf) ElementType() TypeDefinition {
	return typeDef.elementTypeDef
}

// NonNullOf makes a NonNullTypeDefinition whose inner type comes from the given definition.
func NonNullOf(elementTypeDef TypeDefinition) NonNullTypeDefinition {
	return nonNullTypeDefinitionOf{
		elementTypeDef: elementTypeDef,
	}
}

// NonNullOfType makes a NonNullTypeDefinition whose inner type is an already-built Type.
func NonNullOfType(elementType Type) NonNullTypeDefinition {
	return nonNullTypeDefinitionOf{
		elementTypeDef: T(elementType),
	}
}

// nonNull implements NonNull on top of the data loaded from a NonNullTypeDefinition.
type nonNull struct {
	ThisIsNonNullType
	innerType Type
	// The "Foo!" form returned from String, computed once at build time.
	notation string
}

var _ NonNull = (*nonNull)(nil)

// NewNonNullOfType defines a NonNull wrapping the given inner type.
func NewNonNullOfType(elementType Type) (NonNull, error) {
	return NewNonNull(NonNullOfType(elementType))
}

// MustNewNonNullOfType is a panic-on-fail version of NewNonNullOfType.
func MustNewNonNullOfType(elementType Type) NonNull {
	return MustNewNonNull(NonNullOfType(elementType))
}

// NewNonNullOf defines a NonNull wrapping the inner type described by the given definition.
func NewNonNullOf(elementTypeDef TypeDefinition) (NonNull, error) {
	return NewNonNull(NonNullOf(elementTypeDef))
}

// MustNewNonNullOf is a panic-on-fail version of NewNonNullOf.
func MustNewNonNullOf(elementTypeDef TypeDefinition) NonNull {
	return MustNewNonNull(NonNullOf(elementTypeDef))
}

// NewNonNull builds the NonNull described by a NonNullTypeDefinition.
func NewNonNull(typeDef NonNullTypeDefinition) (NonNull, error) {
	t, err := newTypeImpl(&nonNullTypeCreator{
		typeDef: typeDef,
	})
	if err != nil {
		return nil, err
	}
	return t.(NonNull), nil
}

// MustNewNonNull is a panic-on-fail version of NewNonNull.
func MustNewNonNull(typeDef NonNullTypeDefinition) NonNull {
	n, err := NewNonNull(typeDef)
	if err != nil {
		panic(err)
	}
	return n
}

// String implements fmt.Stringer.
func (n *nonNull) String() string {
	return n.notation
}

// UnwrappedType implements WrappingType.
func (n *nonNull) UnwrappedType() Type {
	return n.InnerType()
}

// InnerType implements NonNull.
func (n *nonNull) InnerType() Type {
	return n.innerType
}
