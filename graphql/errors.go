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

//===----------------------------------------------------------------------------------------====//
// Coercion Error
//===----------------------------------------------------------------------------------------====//

// NewCoercionError creates an error to indicate a failure when coercing a value for a type. The
// message is formatted with the given format specifier and contains the description about the
// error.
//
// Coercers signal errors in the following way:
//
// 1. Return an Error value with ErrKindCoercion (i.e., the one built from this function): the
//    error is presented to the user as is. Use this when the message describes the problem
//    precisely enough to guide the user (e.g., "Int cannot represent 0.1: not an integer").
//
// 2. Return any other error: the caller that requested the coercion wraps the error in a message
//    built from the type and the input value before presenting it.
func NewCoercionError(format string, a ...interface{}) error {
	return NewError(fmt.Sprintf(format, a...), ErrKindCoercion)
}
