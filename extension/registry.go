package extension

import (
	"sync"

	"github.com/viant/x"

	"github.com/taskwing/taskwing/model/types"
)

// Registry binds named, signature-described operations to type-erased
// asynchronous callables. Signatures and callables live in two independent
// concurrent maps so that reads and writes across different names never
// contend on one lock; same-name writes are last-writer-wins.
type Registry struct {
	signatures sync.Map // name -> *types.Signature
	callables  sync.Map // name -> types.Callable
	types      *Types
}

// NewRegistry creates a registry, optionally pre-registering Go types used
// by signature inputs and outputs.
func NewRegistry(goTypes ...*x.Type) *Registry {
	ret := &Registry{types: NewTypes()}
	for _, t := range goTypes {
		if t != nil {
			ret.types.Register(t)
		}
	}
	return ret
}

// Types returns the Go type registry backing signature lookups.
func (r *Registry) Types() *Types {
	return r.types
}

// Sign inserts or overwrites the signature keyed by its declared name. It
// always succeeds and returns the registry for chaining.
func (r *Registry) Sign(signature *types.Signature) *Registry {
	r.signatures.Store(signature.Name, signature)
	return r
}

// Signature returns the signature registered under name, or nil.
func (r *Registry) Signature(name string) *types.Signature {
	v, ok := r.signatures.Load(name)
	if !ok {
		return nil
	}
	return v.(*types.Signature)
}

// Add binds a callable to name. It fails when no signature has been
// registered for name and leaves the registry unchanged in that case.
// Binding overwrites any previously bound callable for the same name.
func (r *Registry) Add(name string, callable types.Callable) error {
	if _, ok := r.signatures.Load(name); !ok {
		return types.NewSignatureNotFoundError(name)
	}
	r.callables.Store(name, callable)
	return nil
}

// Remove returns the callable bound to name, or false when none is bound.
// Despite its name it is a lookup: the entry stays registered. The name is
// part of the public contract and is kept; use it as you would a Get.
func (r *Registry) Remove(name string) (types.Callable, bool) {
	v, ok := r.callables.Load(name)
	if !ok {
		return nil, false
	}
	return v.(types.Callable), true
}
