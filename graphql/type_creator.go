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
	"github.com/botobag/selene/internal/util"
)

// createdTypes memoizes the Type instance created for each TypeDefinition so a definition resolves
// to the same instance no matter how many times and from how many goroutines it is used.
var createdTypes util.SyncMap

// newTypeResult is the value type stored in createdTypes.
type newTypeResult struct {
	// The created type
	t Type

	// The creator building t; held only until creation completes
	creator typeCreator

	// Any error occurred during creation
	err error

	// Closed when the creation completes so other goroutines can wait on it
	done chan bool
}

func (result *newTypeResult) waitForCompletion() (Type, error) {
	<-result.done
	return result.t, result.err
}

func (result *newTypeResult) complete() {
	// Drop the creator so it can be garbage collected, then wake up the waiters.
	result.creator = nil
	close(result.done)
}

func (result *newTypeResult) completeWithError(err error) {
	result.t = nil
	result.creator = nil
	result.err = err
	close(result.done)
}

// typeDefinitionResolver turns a TypeDefinition into a Type during type finalization.
type typeDefinitionResolver func(typeDef TypeDefinition) (Type, error)

// Resolve calls resolver(typeDef) so a typeDefinitionResolver can be used like an object.
func (resolver typeDefinitionResolver) Resolve(typeDef TypeDefinition) (Type, error) {
	return resolver(typeDef)
}

// typeCreator drives newTypeImpl to build a Type instance out of one kind of TypeDefinition.
type typeCreator interface {
	// TypeDefinition returns the definition this creator is processing.
	TypeDefinition() TypeDefinition

	// LoadDataAndNew reads the definition and returns a "semi-initialized" Type instance.
	LoadDataAndNew() (Type, error)

	// Finalize completes the creation of the t returned from LoadDataAndNew. Resolution of any
	// referenced type, such as the element type of a List, must happen here and not in
	// LoadDataAndNew: t is registered by the time Finalize runs, which is what lets two types
	// depend on each other (even on themselves) without deadlocking. The resolver turns a
	// referenced TypeDefinition into its Type.
	Finalize(t Type, typeDefResolver typeDefinitionResolver) error
}

// nilTypeCreator resolves a nil TypeDefinition to a nil Type without raising an error. A nil Type
// is almost always invalid, but it is the caller which knows what was expected, so the error is
// raised there.
type nilTypeCreator struct{}

var _ typeCreator = nilTypeCreator{}

// TypeDefinition implements typeCreator.
func (nilTypeCreator) TypeDefinition() TypeDefinition {
	return nil
}

// LoadDataAndNew implements typeCreator.
func (nilTypeCreator) LoadDataAndNew() (Type, error) {
	return nil, nil
}

// Finalize implements typeCreator.
func (nilTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	return nil
}

func newCreatorFor(typeDef TypeDefinition) typeCreator {
	switch typeDef := typeDef.(type) {
	case ScalarTypeDefinition:
		return &scalarTypeCreator{typeDef}
	case ListTypeDefinition:
		return &listTypeCreator{typeDef}
	case NonNullTypeDefinition:
		return &nonNullTypeCreator{typeDef}
	case nil:
		return nilTypeCreator{}
	}
	panic("unknown type of TypeDefinition")
}

// newTypeImpl creates the type instance for the definition processed by creator. It backs NewType
// and its variants such as NewScalar; call those instead of calling it directly.
func newTypeImpl(creator typeCreator) (Type, error) {
	// The definition may already have its instance.
	typeCreatedResult, ok := createdTypes.Load(creator.TypeDefinition())
	if ok {
		return typeCreatedResult.(*newTypeResult).waitForCompletion()
	}

	return newTypeImplInternal(creator, map[TypeDefinition]Type{})
}

// newTypeImplInternal recurses into itself when the type being created references other types.
// finalizingTypeDefs carries the definitions whose Finalize is running further up the call stack,
// mapped to their semi-initialized instances.
func newTypeImplInternal(creator typeCreator, finalizingTypeDefs map[TypeDefinition]Type) (Type, error) {
	typeDef := creator.TypeDefinition()

	// Load data from the definition into a fresh instance. No referenced definition gets resolved
	// at this point; that must wait until the instance is registered below.
	typeInstance, err := creator.LoadDataAndNew()
	if err != nil {
		return nil, err
	}

	result := &newTypeResult{
		t:       typeInstance,
		creator: creator,
		done:    make(chan bool),
	}

	typeCreatedResult, loaded := createdTypes.LoadOrStore(typeDef, result)
	if loaded {
		// Another goroutine took the ticket to create this type. Wait for its result.
		return typeCreatedResult.(*newTypeResult).waitForCompletion()
	}

	// The resolver handed to Finalize; resolving a referenced definition looks much like resolving
	// the current one.
	typeDefResolver := typeDefinitionResolver(func(typeDef TypeDefinition) (Type, error) {
		// Pseudo-definitions wrap an existing type instance and resolve trivially.
		switch typeDef := typeDef.(type) {
		case typeWrapperTypeDefinition:
			return typeDef.Type(), nil
		}

		// If typeDef is being finalized somewhere up the stack, hand out its semi-initialized
		// instance instead of recursing into it forever.
		if t, exists := finalizingTypeDefs[typeDef]; exists {
			return t, nil
		}

		typeCreatedResult, ok := createdTypes.Load(typeDef)
		if ok {
			return typeCreatedResult.(*newTypeResult).waitForCompletion()
		}

		return newTypeImplInternal(newCreatorFor(typeDef), finalizingTypeDefs)
	})

	finalizingTypeDefs[typeDef] = result.t
	defer func() {
		delete(finalizingTypeDefs, typeDef)
	}()

	// This goroutine holds the ticket, so it runs the finalization.
	if err = creator.Finalize(result.t, typeDefResolver); err != nil {
		result.completeWithError(err)
		return nil, err
	}

	result.complete()

	return result.t, nil
}
