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

// defaultScalarInputCoercer steps in when a scalar definition supplies no input coercer. Variable
// values pass through untouched while argument values raise an error, matching a scalar that was
// never meant to appear in an input position.
type defaultScalarInputCoercer struct {
	scalar *scalar
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer *defaultScalarInputCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	return value, nil
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer *defaultScalarInputCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	return nil, NewError(fmt.Sprintf("coercer for the input type %s was not provided", coercer.scalar.Name()))
}

// ScalarConfig describes a scalar type in one literal. It is the quickest way to get a
// ScalarTypeDefinition when the coercers are ready-made values.
type ScalarConfig struct {
	ThisIsScalarTypeDefinition

	// Name under which the scalar is registered
	Name string

	// Description for introspection; may be empty
	Description string

	// ResultCoercer turns field results into the serialized scalar value
	ResultCoercer ScalarResultCoercer

	// InputCoercer reads the scalar from variables and argument literals; leave unset for a scalar
	// that never appears in input position
	InputCoercer ScalarInputCoercer
}

var (
	_ TypeDefinition       = (*ScalarConfig)(nil)
	_ ScalarTypeDefinition = (*ScalarConfig)(nil)
)

// TypeData implements ScalarTypeDefinition.
func (config *ScalarConfig) TypeData() ScalarTypeData {
	return ScalarTypeData{
		Name:        config.Name,
		Description: config.Description,
	}
}

// NewResultCoercer implements ScalarTypeDefinition.
func (config *ScalarConfig) NewResultCoercer(scalar Scalar) (ScalarResultCoercer, error) {
	return config.ResultCoercer, nil
}

// NewInputCoercer implements ScalarTypeDefinition.
func (config *ScalarConfig) NewInputCoercer(scalar Scalar) (ScalarInputCoercer, error) {
	return config.InputCoercer, nil
}

// scalarTypeCreator builds a scalar for newTypeImpl.
type scalarTypeCreator struct {
	typeDef ScalarTypeDefinition
}

var _ typeCreator = (*scalarTypeCreator)(nil)

// TypeDefinition implements typeCreator.
func (creator *scalarTypeCreator) TypeDefinition() TypeDefinition {
	return creator.typeDef
}

// LoadDataAndNew implements typeCreator.
func (creator *scalarTypeCreator) LoadDataAndNew() (Type, error) {
	data := creator.typeDef.TypeData()

	// A scalar without a name cannot be referenced from anywhere.
	if len(data.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.", ErrKindDefinition)
	}

	return &scalar{
		data: data,
	}, nil
}

// Finalize implements typeCreator.
func (creator *scalarTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	scalar := t.(*scalar)
	typeDef := creator.typeDef

	// The coercers are built here rather than in LoadDataAndNew so they can capture the scalar
	// instance itself.
	resultCoercer, err := typeDef.NewResultCoercer(scalar)
	if err != nil {
		return err
	} else if resultCoercer == nil {
		return NewError(fmt.Sprintf(
			`%v must provide ResultCoercer. If this custom Scalar is also used as an input type, `+
				`ensure InputCoercer is also provided.`, scalar.data.Name), ErrKindDefinition)
	}
	scalar.resultCoercer = resultCoercer

	inputCoercer, err := typeDef.NewInputCoercer(scalar)
	if err != nil {
		return err
	}

	if inputCoercer != nil {
		scalar.inputCoercer = inputCoercer
	} else {
		scalar.inputCoercer = &defaultScalarInputCoercer{scalar}
	}

	return nil
}

// scalar is the Scalar implementation produced by NewScalar. All of its state comes from the
// ScalarTypeDefinition it was built from.
type scalar struct {
	ThisIsScalarType

	data          ScalarTypeData
	resultCoercer ScalarResultCoercer
	inputCoercer  ScalarInputCoercer
}

var _ Scalar = (*scalar)(nil)

// NewScalar defines a scalar type from a ScalarTypeDefinition.
func NewScalar(typeDef ScalarTypeDefinition) (Scalar, error) {
	t, err := newTypeImpl(&scalarTypeCreator{
		typeDef: typeDef,
	})
	if err != nil {
		return nil, err
	}
	return t.(*scalar), nil
}

// MustNewScalar is a variant of NewScalar which panics on failure.
func MustNewScalar(typeDef ScalarTypeDefinition) Scalar {
	s, err := NewScalar(typeDef)
	if err != nil {
		panic(err)
	}
	return s
}

// String implements fmt.Stringer.
func (s *scalar) String() string {
	return s.Name()
}

// Name implements TypeWithName.
func (s *scalar) Name() string {
	return s.data.Name
}

// Description implements TypeWithDescription.
func (s *scalar) Description() string {
	return s.data.Description
}

// CoerceResultValue implements LeafType.
func (s *scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	return s.resultCoercer.CoerceResultValue(value)
}

// CoerceVariableValue implements Scalar.
func (s *scalar) CoerceVariableValue(value interface{}) (interface{}, error) {
	return s.inputCoercer.CoerceVariableValue(value)
}

// CoerceArgumentValue implements Scalar.
func (s *scalar) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	return s.inputCoercer.CoerceArgumentValue(value)
}
