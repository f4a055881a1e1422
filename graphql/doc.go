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

// Package graphql provides the foundation of a GraphQL type system: the scalar types and
// directives every GraphQL service has to support, and the building blocks for defining custom
// ones.
//
// TypeDefinition-NewType-Type Design
//
// Types are described by TypeDefinition values and built from them with NewType or with the
// type-specific constructors such as NewScalar. A definition is not a plain data struct; it hands
// its data to NewType through a set of accessor interfaces. Reading data through method calls
// sidesteps the "initialization loop" errors the compiler raises for global variables that
// reference each other, so mutually dependent and even self-referential types need no extra
// ceremony to define.
//
// A TypeDefinition builds at most one Type. The first NewType call on a definition (directly, or
// through a type that references it) memoizes the built instance and later calls return the same
// one. In consequence, changes to a definition made after its type was built are never picked up.
package graphql
