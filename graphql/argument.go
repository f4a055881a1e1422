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
	"github.com/botobag/selene/graphql/ast"
)

// ArgumentConfigMap carries the declarations of the arguments accepted by a directive or a field,
// keyed by argument name.
type ArgumentConfigMap map[string]ArgumentConfig

// The unexported type behind NilArgumentDefaultValue; no value of it can be made outside the
// package.
type argumentNilValueType int

// NilArgumentDefaultValue given as the DefaultValue in an ArgumentConfig declares the default to be
// an explicit null. Leaving DefaultValue unset (or nil) declares no default at all; nil alone
// cannot carry both meanings, hence the sentinel.
const NilArgumentDefaultValue argumentNilValueType = 0

// ArgumentConfig declares one argument of a directive or a field.
type ArgumentConfig struct {
	// Description documents the argument for introspection; may be empty
	Description string

	// Type names the definition of the argument's input type
	Type TypeDefinition

	// DefaultValue takes effect when the usage site omits the argument. Assign
	// NilArgumentDefaultValue to make the default an explicit null.
	DefaultValue interface{}

	// ASTNode is the parsed definition that defined the argument; nil if the argument was not
	// defined through a type system definition language document.
	ASTNode *ast.InputValueDefinition
}

// buildArguments projects an ArgumentConfigMap into Argument values, resolving each entry's type
// through typeDefResolver. The order of the result follows map iteration and is unspecified.
func buildArguments(argConfigMap ArgumentConfigMap, typeDefResolver typeDefinitionResolver) ([]Argument, error) {
	numArgs := len(argConfigMap)
	if numArgs == 0 {
		return nil, nil
	}

	argIdx := 0
	args := make([]Argument, numArgs)
	for name, argConfig := range argConfigMap {
		arg := &args[argIdx]

		argType, err := typeDefResolver(argConfig.Type)
		if err != nil {
			return nil, err
		}

		arg.name = name
		arg.description = argConfig.Description
		arg.ttype = argType
		arg.defaultValue = argConfig.DefaultValue
		arg.astNode = argConfig.ASTNode

		argIdx++
	}

	return args, nil
}

// Argument is accepted in querying a field or applying a directive to further specify the
// behavior.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Field-Arguments
type Argument struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
	astNode      *ast.InputValueDefinition
}

// Name returns the name the argument is passed by.
func (arg *Argument) Name() string {
	return arg.name
}

// Description documents the argument for introspection.
func (arg *Argument) Description() string {
	return arg.description
}

// Type returns the input type of the argument.
func (arg *Argument) Type() Type {
	return arg.ttype
}

// HasDefaultValue reports whether the argument declares a default, an explicit null one included.
func (arg *Argument) HasDefaultValue() bool {
	return arg.defaultValue != nil
}

// DefaultValue returns the value assigned to the argument when the usage site omits it. An
// explicit null default comes back as nil; HasDefaultValue tells it apart from no default.
func (arg *Argument) DefaultValue() interface{} {
	// The sentinel stands for a null default.
	if _, ok := arg.defaultValue.(argumentNilValueType); ok {
		return nil
	}
	return arg.defaultValue
}

// ASTNode returns the parsed definition that defined the argument or nil if the argument was not
// defined through a type system definition language document.
func (arg *Argument) ASTNode() *ast.InputValueDefinition {
	return arg.astNode
}

// IsRequiredArgument reports whether usage sites have to supply a value for the argument: its type
// permits no null and no default fills in for omission.
func IsRequiredArgument(arg *Argument) bool {
	return IsNonNullType(arg.Type()) && !arg.HasDefaultValue()
}

// MockArgument builds an Argument directly from its parts. Tests construct expected values with it
// for comparison; arguments in live use always come from buildArguments.
func MockArgument(name string, description string, t Type, defaultValue interface{}) Argument {
	return Argument{
		name:         name,
		description:  description,
		ttype:        t,
		defaultValue: defaultValue,
	}
}
