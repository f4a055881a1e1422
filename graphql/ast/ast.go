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

package ast

import (
	"math"
	"strconv"

	"github.com/botobag/selene/graphql/token"
)

// Node is an AST node produced by parsing a GraphQL document.
type Node interface {
	// TokenRange reports the region in the source covered by the node.
	TokenRange() token.Range
}

// singleToken builds the range covering exactly one token.
func singleToken(tok *token.Token) token.Range {
	return token.Range{
		First: tok,
		Last:  tok,
	}
}

// Name names something: a directive, an argument, a type, an enum value.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
type Name struct {
	// Token backing the name. Its kind is token.KindName.
	Token *token.Token
}

var _ Node = Name{}

// Value returns the name as a string.
func (node Name) Value() string {
	return node.Token.Value
}

// IsNil reports whether the node names nothing, that is, it has no backing token.
func (node Name) IsNil() bool {
	return node.Token == nil
}

// TokenRange implements Node.
func (node Name) TokenRange() token.Range {
	return singleToken(node.Token)
}

//===----------------------------------------------------------------------------------------====//
// 2.6 Argument
//===----------------------------------------------------------------------------------------====//
// Arguments parameterize fields and directives with values.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Arguments

// Arguments is a list of Argument nodes.
type Arguments []*Argument

var _ Node = Arguments{}

// FirstToken returns the token opening the argument list, or nil for an empty list.
func (nodes Arguments) FirstToken() *token.Token {
	if len(nodes) == 0 {
		return nil
	}
	// The left paren sits right before the first argument name.
	return nodes[0].Name.Token.Prev
}

// LastToken returns the token closing the argument list, or nil for an empty list.
func (nodes Arguments) LastToken() *token.Token {
	if len(nodes) == 0 {
		return nil
	}
	// The right paren follows the last value.
	return nodes[len(nodes)-1].Value.TokenRange().Last.Next
}

// TokenRange implements Node.
func (nodes Arguments) TokenRange() token.Range {
	return token.Range{
		First: nodes.FirstToken(),
		Last:  nodes.LastToken(),
	}
}

// An Argument supplies a value to a field or a directive.
//
// Reference: https://facebook.github.io/graphql/June2018/#Argument
type Argument struct {
	// Name the argument is passed by
	Name Name

	// Value the argument is set to
	Value Value
}

var _ Node = (*Argument)(nil)

// TokenRange implements Node.
func (node *Argument) TokenRange() token.Range {
	return token.Range{
		First: node.Name.Token,
		Last:  node.Value.TokenRange().Last,
	}
}

//===----------------------------------------------------------------------------------------====//
// 2.9 Input Values
//===----------------------------------------------------------------------------------------====//
// Input values are the literals accepted by field and directive arguments: scalars, enum values,
// lists, and input objects.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Values

// Value is a node holding an input value.
//
// Reference: https://facebook.github.io/graphql/June2018/#Value
type Value interface {
	Node

	// Interface returns the held value as an interface{}.
	Interface() interface{}

	// valueNode restricts the interface to the value nodes defined in this package.
	valueNode()
}

// The value nodes
var (
	_ Value = Variable{}
	_ Value = IntValue{}
	_ Value = FloatValue{}
	_ Value = StringValue{}
	_ Value = BooleanValue{}
	_ Value = NullValue{}
	_ Value = EnumValue{}
	_ Value = ListValue{}
	_ Value = ObjectValue{}
)

// IntValue is an integer literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#IntValue
type IntValue struct {
	// Token backing the literal. Its kind is token.KindInt; its Value spells the integer in base 10.
	Token *token.Token
}

// TokenRange implements Node.
func (value IntValue) TokenRange() token.Range {
	return singleToken(value.Token)
}

// Interface implements Value. Literals that overflow an int32 degrade to zero here; coercion is
// where such literals get diagnosed.
func (value IntValue) Interface() interface{} {
	v, err := value.Int32Value()
	if err == nil {
		return v
	}
	return int32(0)
}

// valueNode implements Value.
func (IntValue) valueNode() {}

// String returns the literal as spelled in the source.
func (value IntValue) String() string {
	return value.Token.Value
}

// Uint32Value parses the literal into a uint32.
func (value IntValue) Uint32Value() (uint32, error) {
	v, err := strconv.ParseUint(value.String(), 10, 32)
	return uint32(v), err
}

// Int32Value parses the literal into an int32.
func (value IntValue) Int32Value() (int32, error) {
	v, err := strconv.ParseInt(value.String(), 10, 32)
	return int32(v), err
}

// Uint64Value parses the literal into a uint64.
func (value IntValue) Uint64Value() (uint64, error) {
	return strconv.ParseUint(value.String(), 10, 64)
}

// Int64Value parses the literal into an int64.
func (value IntValue) Int64Value() (int64, error) {
	return strconv.ParseInt(value.String(), 10, 64)
}

// FloatValue is a float literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#FloatValue
type FloatValue struct {
	// Token backing the literal. Its kind is token.KindFloat.
	Token *token.Token
}

// TokenRange implements Node.
func (value FloatValue) TokenRange() token.Range {
	return singleToken(value.Token)
}

// Interface implements Value. Unparsable literals degrade to NaN.
func (value FloatValue) Interface() interface{} {
	v, err := value.FloatValue()
	if err != nil {
		return math.NaN()
	}
	return v
}

// valueNode implements Value.
func (FloatValue) valueNode() {}

// String returns the literal as spelled in the source.
func (value FloatValue) String() string {
	return value.Token.Value
}

// FloatValue parses the literal into a float64.
func (value FloatValue) FloatValue() (float64, error) {
	return strconv.ParseFloat(value.String(), 64)
}

// StringValue is a string literal, quoted with either " or """ in the source.
//
// Reference: https://facebook.github.io/graphql/June2018/#StringValue
type StringValue struct {
	// Token backing the literal with quotes and escapes already processed. Its kind is
	// token.KindString or token.KindBlockString.
	Token *token.Token
}

// TokenRange implements Node.
func (value StringValue) TokenRange() token.Range {
	return singleToken(value.Token)
}

// Interface implements Value.
func (value StringValue) Interface() interface{} {
	return value.Value()
}

// valueNode implements Value.
func (StringValue) valueNode() {}

// Value returns the content of the string, without the enclosing quotes.
func (value StringValue) Value() string {
	return value.Token.Value
}

// IsBlockString reports whether the literal was written as a block string (quoted with """).
func (value StringValue) IsBlockString() bool {
	return value.Token.Kind == token.KindBlockString
}

// BooleanValue is a true or false literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#BooleanValue
type BooleanValue struct {
	// Token backing the literal: a token.KindName whose Value spells "true" or "false".
	Token *token.Token
}

// TokenRange implements Node.
func (value BooleanValue) TokenRange() token.Range {
	return singleToken(value.Token)
}

// Interface implements Value.
func (value BooleanValue) Interface() interface{} {
	return value.Value()
}

// Value returns the boolean value. The first byte of the spelling disambiguates.
func (value BooleanValue) Value() bool {
	return value.Token.Value[0] == 't'
}

// valueNode implements Value.
func (BooleanValue) valueNode() {}

// NullValue is the keyword "null".
//
// Reference: https://facebook.github.io/graphql/June2018/#NullValue
type NullValue struct {
	// Token backing the keyword: a token.KindName spelling "null".
	Token *token.Token
}

// TokenRange implements Node.
func (value NullValue) TokenRange() token.Range {
	return singleToken(value.Token)
}

// Interface implements Value.
func (value NullValue) Interface() interface{} {
	return nil
}

// valueNode implements Value.
func (NullValue) valueNode() {}

// EnumValue is an enum value literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValue
type EnumValue struct {
	// Token backing the literal. Its kind is token.KindName.
	Token *token.Token
}

// TokenRange implements Node.
func (value EnumValue) TokenRange() token.Range {
	return singleToken(value.Token)
}

// Interface implements Value.
func (value EnumValue) Interface() interface{} {
	return value.Value()
}

// valueNode implements Value.
func (EnumValue) valueNode() {}

// Value returns the enum value name.
func (value EnumValue) Value() string {
	return value.Token.Value
}

// ListValue is a list literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#ListValue
type ListValue struct {
	// Either a []Value or a *token.Token.
	//
	// An empty list has no value nodes to borrow source locations from, so the parser stores the
	// left bracket token that opened it. A non-empty list stores its []Value and the brackets are
	// recovered from the neighbors of the first and last value.
	ValuesOrStartToken interface{}
}

// FirstToken returns the left bracket opening the list.
func (value ListValue) FirstToken() *token.Token {
	if value.IsEmpty() {
		return value.ValuesOrStartToken.(*token.Token)
	}
	return value.Values()[0].TokenRange().First.Prev
}

// LastToken returns the right bracket closing the list.
func (value ListValue) LastToken() *token.Token {
	if value.IsEmpty() {
		return value.ValuesOrStartToken.(*token.Token).Next
	}
	values := value.Values()
	return values[len(values)-1].TokenRange().Last
}

// TokenRange implements Node.
func (value ListValue) TokenRange() token.Range {
	return token.Range{
		First: value.FirstToken(),
		Last:  value.LastToken(),
	}
}

// Interface implements Value. It returns a []interface{} with every item unwrapped through its own
// Interface method.
func (value ListValue) Interface() interface{} {
	values := value.Values()
	result := make([]interface{}, len(values))
	for i := range values {
		result[i] = values[i].Interface()
	}
	return result
}

// IsEmpty reports whether the list holds no values.
func (value ListValue) IsEmpty() bool {
	_, ok := value.ValuesOrStartToken.([]Value)
	return !ok
}

// Values returns the values in the list, or nil for an empty list.
func (value ListValue) Values() []Value {
	if values, ok := value.ValuesOrStartToken.([]Value); ok {
		return values
	}
	return nil
}

// valueNode implements Value.
func (ListValue) valueNode() {}

// ObjectValue is an input object literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectValue
type ObjectValue struct {
	// Either a []*ObjectField or a *token.Token.
	//
	// Mirrors ListValue.ValuesOrStartToken: an empty object stores the left brace token that opened
	// it, a non-empty object stores its fields.
	FieldsOrStartToken interface{}
}

// FirstToken returns the left brace opening the object.
func (value ObjectValue) FirstToken() *token.Token {
	if value.HasFields() {
		return value.Fields()[0].Name.Token.Prev
	}
	return value.FieldsOrStartToken.(*token.Token)
}

// LastToken returns the right brace closing the object.
func (value ObjectValue) LastToken() *token.Token {
	if value.HasFields() {
		fields := value.Fields()
		return fields[len(fields)-1].Value.TokenRange().Last.Next
	}
	return value.FieldsOrStartToken.(*token.Token).Next
}

// TokenRange implements Node.
func (value ObjectValue) TokenRange() token.Range {
	return token.Range{
		First: value.FirstToken(),
		Last:  value.LastToken(),
	}
}

// Interface implements Value. It returns a map from field name to the field's unwrapped value.
func (value ObjectValue) Interface() interface{} {
	fields := value.Fields()
	values := make(map[string]interface{}, len(fields))
	for i := range fields {
		field := fields[i]
		values[field.Name.Value()] = field.Value.Interface()
	}
	return values
}

// HasFields reports whether the object holds any fields.
func (value ObjectValue) HasFields() bool {
	_, ok := value.FieldsOrStartToken.([]*ObjectField)
	return ok
}

// Fields returns the fields in the object, or nil for an empty object.
func (value ObjectValue) Fields() []*ObjectField {
	if fields, ok := value.FieldsOrStartToken.([]*ObjectField); ok {
		return fields
	}
	return nil
}

// valueNode implements Value.
func (ObjectValue) valueNode() {}

// ObjectField assigns a value to one field of an input object literal.
//
// https://facebook.github.io/graphql/June2018/#ObjectField
type ObjectField struct {
	// Name of the field the value goes to
	Name Name

	// Value assigned to the field
	Value Value
}

var _ Node = (*ObjectField)(nil)

// TokenRange implements Node.
func (node *ObjectField) TokenRange() token.Range {
	return token.Range{
		First: node.Name.Token,
		Last:  node.Value.TokenRange().Last,
	}
}

//===----------------------------------------------------------------------------------------====//
// 2.10 Variables
//===----------------------------------------------------------------------------------------====//
// Variables parameterize a request so the same document can be reused with different values.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Variables

// Variable references a variable by name.
//
// Reference: https://facebook.github.io/graphql/June2018/#Variable
type Variable struct {
	// Name of the referenced variable
	Name Name
}

// FirstToken returns the token at which the variable reference starts.
func (value Variable) FirstToken() *token.Token {
	// The $ sign sits right before the name.
	return value.Name.Token.Prev
}

// TokenRange implements Node.
func (value Variable) TokenRange() token.Range {
	return token.Range{
		First: value.FirstToken(),
		Last:  value.Name.Token,
	}
}

// Interface implements Value. The value of a variable is resolved at execution time; the node only
// carries the name.
func (value Variable) Interface() interface{} {
	return value.Name.Value()
}

// valueNode implements Value.
func (Variable) valueNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.11 Type Reference
//===----------------------------------------------------------------------------------------====//
// Type references give the expected type of variables and argument definitions. A reference may
// name a type, wrap another reference in a list, or mark one non-null.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-References

// Type is a node referencing a type.
//
//	Type
//		NamedType
//		ListType
//		NonNullType
//
// Reference: https://facebook.github.io/graphql/June2018/#Type
type Type interface {
	Node

	// typeNode restricts the interface to the type nodes defined in this package.
	typeNode()
}

var (
	_ Type = NamedType{}
	_ Type = ListType{}
	_ Type = NonNullType{}
)

// NullableType is a Type that a NonNullType may wrap: NamedType or ListType. Non-null types do not
// nest.
type NullableType interface {
	Type
	nullableTypeNode()
}

var (
	_ NullableType = NamedType{}
	_ NullableType = ListType{}
)

// NamedType references a type by name.
type NamedType struct {
	// Name of the referenced type
	Name Name
}

// TokenRange implements Node.
func (t NamedType) TokenRange() token.Range {
	return t.Name.TokenRange()
}

// typeNode implements Type.
func (NamedType) typeNode() {}

// nullableTypeNode implements NullableType.
func (NamedType) nullableTypeNode() {}

// ListType references the list type of an item type.
type ListType struct {
	// ItemType is the type of the items in the list.
	ItemType Type
}

// TokenRange implements Node.
func (t ListType) TokenRange() token.Range {
	var r token.Range

	// Walk down to the named type at the center, remembering every wrapper passed on the way.
	stack := []Type{t}

	ttype := t.ItemType
	for r.First == nil {
		switch x := ttype.(type) {
		case NamedType:
			// Setting r.First also exits the loop.
			r.First = x.Name.Token
			r.Last = x.Name.Token

		case ListType:
			stack = append(stack, ttype)
			ttype = x.ItemType

		case NonNullType:
			stack = append(stack, ttype)
			ttype = x.Type
		}
	}

	// Unwind. Each wrapper grows the range by its surrounding tokens.
	for len(stack) > 0 {
		ttype, stack = stack[len(stack)-1], stack[:len(stack)-1]
		switch ttype.(type) {
		case ListType:
			r.First = r.First.Prev // left bracket
			r.Last = r.Last.Next   // right bracket

		case NonNullType:
			r.Last = r.Last.Next // bang
		}
	}

	return r
}

// typeNode implements Type.
func (ListType) typeNode() {}

// nullableTypeNode implements NullableType.
func (ListType) nullableTypeNode() {}

// NonNullType references a type that rejects null values.
type NonNullType struct {
	// Type being wrapped; never itself a NonNullType.
	Type NullableType
}

// TokenRange implements Node.
func (t NonNullType) TokenRange() token.Range {
	r := t.Type.TokenRange()
	// The bang follows the wrapped type.
	r.Last = r.Last.Next
	return r
}

// typeNode implements Type.
func (NonNullType) typeNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.12 Directives
//===----------------------------------------------------------------------------------------====//
// Directives annotate parts of a document to alter how they are validated or executed.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Directives

// Directives is a list of directive applications.
type Directives []*Directive

var _ Node = Directives{}

// FirstToken returns the first token in the directive sequence, or nil for an empty sequence.
func (nodes Directives) FirstToken() *token.Token {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0].FirstToken()
}

// LastToken returns the last token in the directive sequence, or nil for an empty sequence.
func (nodes Directives) LastToken() *token.Token {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[len(nodes)-1].LastToken()
}

// TokenRange implements Node.
func (nodes Directives) TokenRange() token.Range {
	return token.Range{
		First: nodes.FirstToken(),
		Last:  nodes.LastToken(),
	}
}

// Directive applies a directive.
type Directive struct {
	// Name of the applied directive
	Name Name

	// Arguments given to the directive
	Arguments Arguments
}

var _ Node = (*Directive)(nil)

// FirstToken returns the token at which the application starts.
func (node *Directive) FirstToken() *token.Token {
	// The @ sign sits right before the name.
	return node.Name.Token.Prev
}

// LastToken returns the token at which the application ends.
func (node *Directive) LastToken() *token.Token {
	if len(node.Arguments) == 0 {
		return node.Name.Token
	}
	return node.Arguments.LastToken()
}

// TokenRange implements Node.
func (node *Directive) TokenRange() token.Range {
	return token.Range{
		First: node.FirstToken(),
		Last:  node.LastToken(),
	}
}

//===----------------------------------------------------------------------------------------====//
// 3.13 Directives (Type System)
//===----------------------------------------------------------------------------------------====//
// A schema describes the directives available to documents written against it. Each one is
// declared with a definition naming the directive, its arguments, and the locations where it may
// be applied.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives

// InputValueDefinition describes an argument taken by a directive (or by a field in full SDL).
//
// Reference: https://facebook.github.io/graphql/June2018/#InputValueDefinition
type InputValueDefinition struct {
	// Description of the input value; Its Token is nil if the description was not given.
	Description StringValue

	// Name of the input value
	Name Name

	// Type of the value that the input accepts
	Type Type

	// DefaultValue to be applied when no value was provided; nil if the definition doesn't have one.
	DefaultValue Value

	// Directives applied to the input value definition
	Directives Directives
}

var _ Node = (*InputValueDefinition)(nil)

// HasDescription returns true if a description was given to the definition.
func (node *InputValueDefinition) HasDescription() bool {
	return node.Description.Token != nil
}

// TokenRange implements Node.
func (node *InputValueDefinition) TokenRange() token.Range {
	var r token.Range

	if node.HasDescription() {
		r.First = node.Description.Token
	} else {
		r.First = node.Name.Token
	}

	if len(node.Directives) > 0 {
		r.Last = node.Directives.LastToken()
	} else if node.DefaultValue != nil {
		r.Last = node.DefaultValue.TokenRange().Last
	} else {
		r.Last = node.Type.TokenRange().Last
	}

	return r
}

// InputValueDefinitionList specifies a list of InputValueDefinitions which forms an arguments
// definition when enclosed in parens.
//
// Reference: https://facebook.github.io/graphql/June2018/#ArgumentsDefinition
type InputValueDefinitionList []*InputValueDefinition

var _ Node = InputValueDefinitionList{}

// FirstToken returns the first token in the sequence of input value definitions.
func (nodes InputValueDefinitionList) FirstToken() *token.Token {
	if len(nodes) == 0 {
		return nil
	}
	// The "(" opening the list sits right before the first definition.
	return nodes[0].TokenRange().First.Prev
}

// LastToken returns the last token in the sequence of input value definitions.
func (nodes InputValueDefinitionList) LastToken() *token.Token {
	if len(nodes) == 0 {
		return nil
	}
	// Find right paren ")" token which is next to the last token of the last definition.
	return nodes[len(nodes)-1].TokenRange().Last.Next
}

// TokenRange implements Node.
func (nodes InputValueDefinitionList) TokenRange() token.Range {
	return token.Range{
		First: nodes.FirstToken(),
		Last:  nodes.LastToken(),
	}
}

// DirectiveDefinition defines a directive in the schema.
//
//	DirectiveDefinition ::
//		Description(opt) directive @ Name ArgumentsDefinition(opt) on DirectiveLocations
//
// Reference: https://facebook.github.io/graphql/June2018/#DirectiveDefinition
type DirectiveDefinition struct {
	// Description of the directive; Its Token is nil if the description was not given.
	Description StringValue

	// Name of the directive being defined
	Name Name

	// Arguments the directive accepts, possibly empty
	Arguments InputValueDefinitionList

	// Locations lists the places in a document where the directive may be applied. Each Name holds a
	// token.KindName token containing one DirectiveLocation value. A valid definition has at least
	// one location.
	Locations []Name
}

var _ Node = (*DirectiveDefinition)(nil)

// HasDescription returns true if a description was given to the definition.
func (node *DirectiveDefinition) HasDescription() bool {
	return node.Description.Token != nil
}

// TokenRange implements Node.
func (node *DirectiveDefinition) TokenRange() token.Range {
	var r token.Range

	if node.HasDescription() {
		r.First = node.Description.Token
	} else {
		// The definition starts with the "directive" keyword which sits two tokens before the name
		// ("directive", "@", Name).
		r.First = node.Name.Token.Prev.Prev
	}

	if numLocations := len(node.Locations); numLocations > 0 {
		r.Last = node.Locations[numLocations-1].Token
	} else {
		r.Last = node.Name.Token
	}

	return r
}
