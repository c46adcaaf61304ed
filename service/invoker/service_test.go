package invoker

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwing/taskwing/extension"
	"github.com/taskwing/taskwing/model/types"
)

type greetInput struct {
	Name string `json:"name"`
}

func TestService_Invoke(t *testing.T) {
	registry := extension.NewRegistry()
	registry.Sign(&types.Signature{
		Name:  "greet",
		Input: reflect.TypeOf(&greetInput{}),
	})
	err := registry.Add("greet", Typed("greet", func(ctx context.Context, input *greetInput) (interface{}, error) {
		if input.Name == "" {
			return nil, fmt.Errorf("name was empty")
		}
		return "hello " + input.Name, nil
	}))
	require.NoError(t, err)

	service := New(registry)
	ctx := context.Background()

	// loosely-typed argument is coerced into the declared input type
	out, err := service.Invoke(ctx, "greet", []interface{}{map[string]interface{}{"name": "ann"}})
	require.NoError(t, err)
	assert.Equal(t, "hello ann", out)

	// callable failure surfaces as a classified error
	_, err = service.Invoke(ctx, "greet", []interface{}{map[string]interface{}{}})
	require.Error(t, err)
	var actionErr *types.ActionError
	require.ErrorAs(t, err, &actionErr)
	assert.Equal(t, "greet", actionErr.Name)
	assert.Equal(t, "execution", actionErr.Kind)

	// unbound name
	_, err = service.Invoke(ctx, "unknown", nil)
	assert.EqualError(t, err, "function unknown not found")
}

func TestService_InvokeWithoutSignatureInput(t *testing.T) {
	registry := extension.NewRegistry()
	registry.Sign(&types.Signature{Name: "sum"})
	err := registry.Add("sum", func(ctx context.Context, args []interface{}) (interface{}, error) {
		total := 0
		for _, arg := range args {
			value, ok := arg.(int)
			if !ok {
				return nil, types.NewInvalidInputError("sum", fmt.Errorf("expected int, got %T", arg))
			}
			total += value
		}
		return total, nil
	})
	require.NoError(t, err)

	service := New(registry)
	out, err := service.Invoke(context.Background(), "sum", []interface{}{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6, out)

	_, err = service.Invoke(context.Background(), "sum", []interface{}{"one"})
	var actionErr *types.ActionError
	require.ErrorAs(t, err, &actionErr)
	assert.Equal(t, "invalid-input", actionErr.Kind)
}
