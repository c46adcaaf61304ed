package types

import (
	"context"
	"reflect"
)

type Signatures []Signature

func (s Signatures) Lookup(name string) *Signature {
	for i := range s {
		sig := &s[i]
		if sig.Name == name {
			return sig
		}
	}
	return nil
}

// Signature declares the name and expected shape of an operation. A signature
// has to be registered before a callable may be bound under its name.
type Signature struct {
	Name        string
	Description string
	Input       reflect.Type
	Output      reflect.Type
}

// Callable is the uniform invocation shape every bound function is erased to:
// a sequence of loosely-typed values in, a loosely-typed value or a
// classified error out.
type Callable func(ctx context.Context, args []interface{}) (interface{}, error)
