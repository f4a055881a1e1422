/**
 * Copyright (c) 2019, The Selene Authors.
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
	"fmt"
	"strings"

	"github.com/botobag/selene/internal/util"
	"github.com/botobag/selene/jsonwriter"
)

// Print converts an AST node back into GraphQL source text. The formatting rules follow graphql-js
// so both produce identical output for the same node.
func Print(node Node) string {
	var buf util.StringBuilder
	FPrint(&buf, node)
	return buf.String()
}

// FPrint is like Print but writes to the given writer instead of returning a string.
func FPrint(out util.StringWriter, node Node) {
	(&printer{
		StringWriter: out,
	}).printNode(node)
}

// printer renders nodes onto the embedded writer. Nodes in this package all print on the line
// where they start; only descriptions and block strings ever produce a line break.
type printer struct {
	util.StringWriter
}

// Write turns p into an io.Writer so jsonwriter.Stream can encode through it.
func (p *printer) Write(b []byte) (n int, err error) {
	return p.WriteString(string(b))
}

func (p *printer) printNode(node Node) {
	switch node := node.(type) {
	case *Argument:
		p.printArgument(node)
	case Arguments:
		p.printArguments(node)
	case *Directive:
		p.printDirective(node)
	case Directives:
		p.printDirectives(node)
	case *DirectiveDefinition:
		p.printDirectiveDefinition(node)
	case *InputValueDefinition:
		p.printInputValueDefinition(node)
	case InputValueDefinitionList:
		p.printInputValueDefinitionList(node)
	case Name:
		p.printName(node)
	case *ObjectField:
		p.printObjectField(node)
	case Type:
		p.printType(node)
	case Value:
		p.printValue(node)
	default:
		panic(fmt.Sprintf("unsupported node type %T to print", node))
	}
}

func (p *printer) printName(name Name) {
	p.WriteString(name.Value())
}

//===----------------------------------------------------------------------------------------====//
// Argument
//===----------------------------------------------------------------------------------------====//

// printArguments writes a parenthesized, comma-separated argument list. An empty list prints
// nothing, not "()".
func (p *printer) printArguments(args Arguments) {
	if len(args) == 0 {
		return
	}
	p.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			p.WriteString(", ")
		}
		p.printArgument(arg)
	}
	p.WriteString(")")
}

func (p *printer) printArgument(arg *Argument) {
	p.printName(arg.Name)
	p.WriteString(": ")
	p.printValue(arg.Value)
}

//===----------------------------------------------------------------------------------------====//
// Value
//===----------------------------------------------------------------------------------------====//

func (p *printer) printValue(node Value) {
	switch node := node.(type) {
	case BooleanValue:
		p.printBooleanValue(node)
	case EnumValue:
		p.printEnumValue(node)
	case FloatValue:
		p.printFloatValue(node)
	case IntValue:
		p.printIntValue(node)
	case ListValue:
		p.printListValue(node)
	case NullValue:
		p.printNullValue(node)
	case ObjectValue:
		p.printObjectValue(node)
	case StringValue:
		p.printStringValue(node, "  ")
	case Variable:
		p.printVariable(node)
	default:
		panic(fmt.Sprintf("unexpected node type %T when printing Value", node))
	}
}

func (p *printer) printBooleanValue(value BooleanValue) {
	if value.Value() {
		p.WriteString("true")
	} else {
		p.WriteString("false")
	}
}

func (p *printer) printEnumValue(value EnumValue) {
	p.WriteString(value.Value())
}

func (p *printer) printFloatValue(value FloatValue) {
	p.WriteString(value.String())
}

func (p *printer) printIntValue(value IntValue) {
	p.WriteString(value.String())
}

func (p *printer) printListValue(value ListValue) {
	p.WriteString("[")
	for i, item := range value.Values() {
		if i > 0 {
			p.WriteString(", ")
		}
		p.printValue(item)
	}
	p.WriteString("]")
}

func (p *printer) printNullValue(value NullValue) {
	p.WriteString("null")
}

func (p *printer) printObjectValue(value ObjectValue) {
	p.WriteString("{")
	for i, field := range value.Fields() {
		if i > 0 {
			p.WriteString(", ")
		}
		p.printObjectField(field)
	}
	p.WriteString("}")
}

func (p *printer) printObjectField(field *ObjectField) {
	p.printName(field.Name)
	p.WriteString(": ")
	p.printValue(field.Value)
}

func (p *printer) printStringValue(value StringValue, blockIndent string) {
	if value.IsBlockString() {
		p.printBlockString(value.Value(), blockIndent)
		return
	}
	// Quote and escape the same way JSON.stringify does in graphql-js.
	stream := jsonwriter.NewStream(p)
	stream.WriteString(value.Value())
	stream.Flush()
}

// printBlockString writes value in the triple-quoted block form. Multi-line strings put the quotes
// on lines of their own and indent the content by blockIndent; a string that fits on one line
// keeps its quotes inline unless it ends with a " that would run into the closing quotes.
func (p *printer) printBlockString(value string, blockIndent string) {
	singleLine := !strings.ContainsRune(value, '\n')
	multiLineForm := !singleLine || strings.HasSuffix(value, `"`)

	p.WriteString(`"""`)

	// A leading space or tab would become indistinguishable from indentation after a line break,
	// so a single-line string starting with one stays on the opening quote line.
	startsWithSpace := len(value) > 0 && (value[0] == ' ' || value[0] == '\t')
	if multiLineForm && !(singleLine && startsWithSpace) {
		p.WriteString("\n")
		p.WriteString(blockIndent)
	}

	value = strings.Replace(value, `"""`, `\"""`, -1)
	if len(blockIndent) > 0 {
		value = strings.Replace(value, "\n", "\n"+blockIndent, -1)
	}
	p.WriteString(value)

	if multiLineForm {
		p.WriteString("\n")
	}

	p.WriteString(`"""`)
}

func (p *printer) printVariable(v Variable) {
	p.WriteString("$")
	p.printName(v.Name)
}

//===----------------------------------------------------------------------------------------====//
// Type
//===----------------------------------------------------------------------------------------====//

func (p *printer) printType(node Type) {
	switch node := node.(type) {
	case ListType:
		p.printListType(node)
	case NamedType:
		p.printNamedType(node)
	case NonNullType:
		p.printNonNullType(node)
	default:
		panic(fmt.Sprintf("unexpected node type %T when printing Type", node))
	}
}

func (p *printer) printListType(list ListType) {
	p.WriteString("[")
	p.printType(list.ItemType)
	p.WriteString("]")
}

func (p *printer) printNamedType(named NamedType) {
	p.printName(named.Name)
}

func (p *printer) printNonNullType(nonNull NonNullType) {
	p.printType(nonNull.Type)
	p.WriteString("!")
}

//===----------------------------------------------------------------------------------------====//
// Directive
//===----------------------------------------------------------------------------------------====//

func (p *printer) printDirectives(directives Directives) {
	for i, directive := range directives {
		if i > 0 {
			p.WriteString(" ")
		}
		p.printDirective(directive)
	}
}

func (p *printer) printDirective(directive *Directive) {
	p.WriteString("@")
	p.printName(directive.Name)
	p.printArguments(directive.Arguments)
}

//===----------------------------------------------------------------------------------------====//
// Directive Definition
//===----------------------------------------------------------------------------------------====//

// printDescription writes the description that precedes a definition, if one was given.
func (p *printer) printDescription(description StringValue) {
	if description.Token == nil {
		return
	}
	// Descriptions take no extra block string indentation.
	p.printStringValue(description, "")
	p.WriteString("\n")
}

func (p *printer) printInputValueDefinitionList(defs InputValueDefinitionList) {
	if len(defs) == 0 {
		return
	}
	p.WriteString("(")
	for i, def := range defs {
		if i > 0 {
			p.WriteString(", ")
		}
		p.printInputValueDefinition(def)
	}
	p.WriteString(")")
}

func (p *printer) printInputValueDefinition(def *InputValueDefinition) {
	p.printDescription(def.Description)

	p.printName(def.Name)
	p.WriteString(": ")
	p.printType(def.Type)

	if def.DefaultValue != nil {
		p.WriteString(" = ")
		p.printValue(def.DefaultValue)
	}

	if len(def.Directives) > 0 {
		p.WriteString(" ")
		p.printDirectives(def.Directives)
	}
}

func (p *printer) printDirectiveDefinition(def *DirectiveDefinition) {
	p.printDescription(def.Description)

	p.WriteString("directive @")
	p.printName(def.Name)
	p.printInputValueDefinitionList(def.Arguments)

	p.WriteString(" on ")
	for i, location := range def.Locations {
		if i > 0 {
			p.WriteString(" | ")
		}
		p.printName(location)
	}
}
