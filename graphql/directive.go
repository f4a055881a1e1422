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
	"io"

	"github.com/botobag/selene/graphql/ast"
)

// DirectiveLocation names a place in a document or schema where directives may appear.
type DirectiveLocation string

// Reference: https://facebook.github.io/graphql/June2018/#DirectiveLocations
const (
	// Locations in executable documents
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation                             = "MUTATION"
	DirectiveLocationSubscription                         = "SUBSCRIPTION"
	DirectiveLocationField                                = "FIELD"
	DirectiveLocationFragmentDefinition                   = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread                       = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment                       = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition                   = "VARIABLE_DEFINITION"

	// Locations in type system definitions
	DirectiveLocationSchema               = "SCHEMA"
	DirectiveLocationScalar               = "SCALAR"
	DirectiveLocationObject               = "OBJECT"
	DirectiveLocationFieldDefinition      = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            = "INTERFACE"
	DirectiveLocationUnion                = "UNION"
	DirectiveLocationEnum                 = "ENUM"
	DirectiveLocationEnumValue            = "ENUM_VALUE"
	DirectiveLocationInputObject          = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition = "INPUT_FIELD_DEFINITION"
)

// DirectiveConfig carries everything NewDirective needs to define a directive.
type DirectiveConfig struct {
	// Name the directive is applied by, without the leading @; never empty
	Name string

	// Description for introspection; may be empty
	Description string

	// Locations where use of the directive is valid
	Locations []DirectiveLocation

	// Args declares the arguments the directive accepts
	Args ArgumentConfigMap

	// ASTNode is the parsed definition that defined the directive; nil if the directive was not
	// defined through a type system definition language document.
	ASTNode *ast.DirectiveDefinition
}

// DeepCopy clones config along with its Locations and Args containers, so mutating the original
// afterwards leaves the copy alone.
func (config *DirectiveConfig) DeepCopy() *DirectiveConfig {
	if config == nil {
		return nil
	}
	out := new(DirectiveConfig)
	*out = *config

	if len(config.Locations) == 0 {
		out.Locations = nil
	} else {
		out.Locations = make([]DirectiveLocation, len(config.Locations))
		copy(out.Locations, config.Locations)
	}

	if len(config.Args) == 0 {
		out.Args = nil
	} else {
		out.Args = make(ArgumentConfigMap, len(config.Args))
		for name, argConfig := range config.Args {
			out.Args[name] = argConfig
		}
	}
	return out
}

// Directive describes a way to alter the behavior of validation, execution or client tooling at
// the locations in a document or schema it is applied to.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives
type Directive interface {
	fmt.Stringer

	// Name returns the directive name without the leading @.
	Name() string

	// Description documents the directive for introspection.
	Description() string

	// Locations lists where use of the directive is valid.
	Locations() []DirectiveLocation

	// Args returns the arguments the directive accepts.
	Args() []Argument

	// ASTNode returns the parsed definition that defined the directive or nil if the directive was
	// not defined through a type system definition language document.
	ASTNode() *ast.DirectiveDefinition

	// graphqlDirective restricts implementations of Directive to this package; every Directive
	// value originates from NewDirective.
	graphqlDirective()
}

// directive implements Directive on top of a deep-copied DirectiveConfig.
type directive struct {
	config DirectiveConfig
	args   []Argument
	// The "@name" form returned from String, computed once at build time.
	notation string
}

var (
	_ Directive              = (*directive)(nil)
	_ ValueWithCustomInspect = (*directive)(nil)
)

// NewDirective defines a directive from the given config. The config must at least carry a name.
func NewDirective(config *DirectiveConfig) (Directive, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Directive must be named.", ErrKindDefinition)
	}

	// Directives are defined outside any type build, so argument types resolve with plain NewType.
	args, err := buildArguments(config.Args, typeDefinitionResolver(NewType))
	if err != nil {
		return nil, err
	}

	return &directive{
		config:   *config.DeepCopy(),
		args:     args,
		notation: fmt.Sprintf("@%s", config.Name),
	}, nil
}

// MustNewDirective is a panic-on-fail version of NewDirective.
func MustNewDirective(config *DirectiveConfig) Directive {
	directive, err := NewDirective(config)
	if err != nil {
		panic(err)
	}
	return directive
}

// Name implements Directive.
func (d *directive) Name() string {
	return d.config.Name
}

// Description implements Directive.
func (d *directive) Description() string {
	return d.config.Description
}

// Locations implements Directive.
func (d *directive) Locations() []DirectiveLocation {
	return d.config.Locations
}

// Args implements Directive.
func (d *directive) Args() []Argument {
	return d.args
}

// ASTNode implements Directive.
func (d *directive) ASTNode() *ast.DirectiveDefinition {
	return d.config.ASTNode
}

// graphqlDirective implements Directive.
func (d *directive) graphqlDirective() {}

// String implements fmt.Stringer.
func (d *directive) String() string {
	return d.notation
}

// Inspect implements ValueWithCustomInspect.
func (d *directive) Inspect(out io.Writer) error {
	_, err := io.WriteString(out, d.notation)
	return err
}

// IsDirective returns true if the given value is a Directive.
func IsDirective(value interface{}) bool {
	_, ok := value.(Directive)
	return ok
}

// AssertDirective returns the given value as a Directive or an error if it is not one.
func AssertDirective(value interface{}) (Directive, error) {
	directive, ok := value.(Directive)
	if !ok {
		return nil, NewError(
			fmt.Sprintf("Expected %s to be a GraphQL directive.", Inspect(value)), ErrKindInvariant)
	}
	return directive, nil
}
