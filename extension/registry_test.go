package extension

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/x"

	"github.com/taskwing/taskwing/model/types"
)

func echoCallable(tag string) types.Callable {
	return func(ctx context.Context, args []interface{}) (interface{}, error) {
		return tag, nil
	}
}

func TestRegistry_AddRequiresSignature(t *testing.T) {
	registry := NewRegistry()

	err := registry.Add("readFile", echoCallable("v1"))
	assert.EqualError(t, err, "no signature found for function: readFile")

	// the failed Add did not mutate the registry
	_, ok := registry.Remove("readFile")
	assert.False(t, ok)

	registry.Sign(&types.Signature{Name: "readFile", Input: reflect.TypeOf("")})
	err = registry.Add("readFile", echoCallable("v1"))
	require.NoError(t, err)

	callable, ok := registry.Remove("readFile")
	require.True(t, ok)
	out, err := callable(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", out)
}

func TestRegistry_RemoveIsALookup(t *testing.T) {
	registry := NewRegistry()
	registry.Sign(&types.Signature{Name: "op"})
	require.NoError(t, registry.Add("op", echoCallable("bound")))

	// Remove does not unbind: repeated calls keep returning the callable
	for i := 0; i < 3; i++ {
		callable, ok := registry.Remove("op")
		require.True(t, ok)
		out, err := callable(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "bound", out)
	}
}

func TestRegistry_LastWriterWins(t *testing.T) {
	registry := NewRegistry()
	registry.Sign(&types.Signature{Name: "op"})
	require.NoError(t, registry.Add("op", echoCallable("first")))
	require.NoError(t, registry.Add("op", echoCallable("second")))

	callable, ok := registry.Remove("op")
	require.True(t, ok)
	out, err := callable(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "second", out)
}

func TestRegistry_SignOverwrites(t *testing.T) {
	registry := NewRegistry()
	registry.Sign(&types.Signature{Name: "op", Description: "v1"}).
		Sign(&types.Signature{Name: "op", Description: "v2"})
	sig := registry.Signature("op")
	require.NotNil(t, sig)
	assert.Equal(t, "v2", sig.Description)
	assert.Nil(t, registry.Signature("unknown"))
}

func TestRegistry_Concurrent(t *testing.T) {
	registry := NewRegistry()
	names := 20
	var wg sync.WaitGroup

	// writers across distinct names do not block each other
	wg.Add(names)
	for i := 0; i < names; i++ {
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("op-%d", i)
			registry.Sign(&types.Signature{Name: name})
			assert.NoError(t, registry.Add(name, echoCallable(name)))
		}(i)
	}
	wg.Wait()

	// concurrent readers
	wg.Add(names)
	for i := 0; i < names; i++ {
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("op-%d", i)
			callable, ok := registry.Remove(name)
			assert.True(t, ok)
			out, err := callable(context.Background(), nil)
			assert.NoError(t, err)
			assert.Equal(t, name, out)
		}(i)
	}
	wg.Wait()
}

type widget struct {
	Name string
}

func TestTypes_Lookup(t *testing.T) {
	typesRegistry := NewTypes()
	typesRegistry.Register(x.NewType(reflect.TypeOf(widget{}), x.WithName("widget")))

	base := typesRegistry.Lookup("widget")
	require.NotNil(t, base)
	assert.Equal(t, reflect.TypeOf(widget{}), base.Type)

	sliceOf := typesRegistry.Lookup("[]widget")
	require.NotNil(t, sliceOf)
	assert.Equal(t, reflect.SliceOf(reflect.TypeOf(widget{})), sliceOf.Type)

	mapOf := typesRegistry.Lookup("map[string]widget")
	require.NotNil(t, mapOf)
	assert.Equal(t, reflect.MapOf(reflect.TypeOf(""), reflect.TypeOf(widget{})), mapOf.Type)
}
