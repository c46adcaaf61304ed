package invoker

import (
	"context"
	"reflect"

	"github.com/viant/structology/conv"

	"github.com/taskwing/taskwing/extension"
	"github.com/taskwing/taskwing/model/types"
	"github.com/taskwing/taskwing/tracing"
)

// Service invokes operations bound in a registry. Arguments arrive as a
// sequence of loosely-typed values; when the operation's signature declares
// an input type the first argument is coerced to it before the call.
type Service struct {
	registry  *extension.Registry
	converter *conv.Converter
}

// Option customises the invoker.
type Option func(*Service)

// WithConverter overrides the input converter.
func WithConverter(converter *conv.Converter) Option {
	return func(s *Service) {
		s.converter = converter
	}
}

// New creates an invoker for the supplied registry.
func New(registry *extension.Registry, opts ...Option) *Service {
	s := &Service{
		registry:  registry,
		converter: newConverter(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Invoke calls the callable bound to name. A missing binding is reported as
// a plain error; failures of the callable itself surface as
// *types.ActionError.
func (s *Service) Invoke(ctx context.Context, name string, args []interface{}) (interface{}, error) {
	callable, ok := s.registry.Remove(name)
	if !ok {
		return nil, types.NewFunctionNotFoundError(name)
	}

	if signature := s.registry.Signature(name); signature != nil && signature.Input != nil && len(args) > 0 {
		coerced, err := s.typedValue(signature.Input, args[0])
		if err != nil {
			return nil, types.NewInvalidInputError(name, err)
		}
		args = append([]interface{}{coerced}, args[1:]...)
	}

	spanCtx, span := tracing.StartSpan(ctx, "invoke."+name, "INTERNAL")
	out, err := callable(spanCtx, args)
	tracing.EndSpan(span, err)
	if err != nil {
		if _, ok := err.(*types.ActionError); ok {
			return nil, err
		}
		return nil, types.NewExecutionError(name, err)
	}
	return out, nil
}

// typedValue converts a value to the specified type
func (s *Service) typedValue(aType reflect.Type, value interface{}) (interface{}, error) {
	instance := newInstancePtr(aType)
	err := s.converter.Convert(value, instance)
	if aType.Kind() == reflect.Slice {
		instance = reflect.ValueOf(instance).Elem().Interface()
	}
	return instance, err
}

// newInstancePtr creates a new instance pointer of the given type
func newInstancePtr(t reflect.Type) interface{} {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return reflect.New(t).Interface()
}

func newConverter() *conv.Converter {
	options := conv.DefaultOptions()
	options.ClonePointerData = true
	options.IgnoreUnmapped = true
	options.AccessUnexported = true
	return conv.NewConverter(options)
}

// Typed adapts a strongly-typed implementation to the uniform callable
// shape, coercing the first loosely-typed argument into I. It is the
// counterpart of Registry.Add for implementations that do not want to deal
// with raw argument sequences.
func Typed[I any](name string, fn func(ctx context.Context, input *I) (interface{}, error)) types.Callable {
	converter := newConverter()
	return func(ctx context.Context, args []interface{}) (interface{}, error) {
		input := new(I)
		if len(args) > 0 && args[0] != nil {
			if err := converter.Convert(args[0], input); err != nil {
				return nil, types.NewInvalidInputError(name, err)
			}
		}
		out, err := fn(ctx, input)
		if err != nil {
			if _, ok := err.(*types.ActionError); ok {
				return nil, err
			}
			return nil, types.NewExecutionError(name, err)
		}
		return out, nil
	}
}
