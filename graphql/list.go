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

// listTypeCreator drives newTypeImpl when building a List.
type listTypeCreator struct {
	typeDef ListTypeDefinition
}

// listTypeCreator implements typeCreator.
var _ typeCreator = (*listTypeCreator)(nil)

// TypeDefinition implements typeCreator.
func (creator *listTypeCreator) TypeDefinition() TypeDefinition {
	return creator.typeDef
}

// LoadDataAndNew implements typeCreator.
func (creator *listTypeCreator) LoadDataAndNew() (Type, error) {
	return &list{}, nil
}

// Finalize implements typeCreator.
func (creator *listTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	elementType, err := typeDefResolver(creator.typeDef.ElementType())
	if err != nil {
		return err
	} else if elementType == nil {
		return NewError("Must provide an non-nil element type for List.", ErrKindDefinition)
	}

	list := t.(*list)
	list.elementType = elementType
	list.notation = fmt.Sprintf("[%s]", elementType.String())
	return nil
}

// listTypeDefinitionOf is the ListTypeDefinition for an element type given as a TypeDefinition.
type listTypeDefinitionOf struct {
	ThisIsListTypeDefinition
	elementTypeDef TypeDefinition
}

var _ ListTypeDefinition = listTypeDefinitionOf{}

// ElementType implements ListTypeDefinition.
func (typeDef listTypeDefinitionOf) ElementType() TypeDefinition {
	return typeDef.elementTypeDef
}

// ListOf makes a ListTypeDefinition whose element type comes from the given definition.
func ListOf(elementTypeDef TypeDefinition) ListTypeDefinition {
	return listTypeDefinitionOf{
		elementTypeDef: elementTypeDef,
	}
}

// ListOfType makes a ListTypeDefinition whose element type is an already-built Type.
func ListOfType(elementType Type) ListTypeDefinition {
	return listTypeDefinitionOf{
		elementTypeDef: T(elementType),
	}
}

// list implements List on top of the data loaded from a ListTypeDefinition.
type list struct {
	ThisIsListType
	elementType Type
	// The "[Foo]" form returned from String, computed once at build time.
	notation string
}

var _ List = (*list)(nil)

// NewListOfType defines a List wrapping the given element type.
func NewListOfType(elementType Type) (List, error) {
	return NewList(ListOfType(elementType))
}

// MustNewListOfType is a panic-on-fail version of NewListOfType.
func MustNewListOfType(elementType Type) List {
	return MustNewList(ListOfType(elementType))
}

// NewListOf defines a List wrapping the element type described by the given definition.
func NewListOf(elementTypeDef TypeDefinition) (List, error) {
	return NewList(ListOf(elementTypeDef))
}

// MustNewListOf is a panic-on-fail version of NewListOf.
func MustNewListOf(elementTypeDef TypeDefinition) List {
	return MustNewList(ListOf(elementTypeDef))
}

// NewList builds the List described by a ListTypeDefinition.
func NewList(typeDef ListTypeDefinition) (List, error) {
	t, err := newTypeImpl(&listTypeCreator{
		typeDef: typeDef,
	})
	if err != nil {
		return nil, err
	}
	return t.(List), nil
}

// MustNewList is a panic-on-fail version of NewList.
func MustNewList(typeDef ListTypeDefinition) List {
	l, err := NewList(typeDef)
	if err != nil {
		panic(err)
	}
	return l
}

// String implements fmt.Stringer.
func (l *list) String() string {
	return l.notation
}

// UnwrappedType implements WrappingType.
func (l *list) UnwrappedType() Type {
	return l.ElementType()
}

// ElementType implements List.
func (l *list) ElementType() Type {
	return l.elementType
}
