package cradle

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cradle-di/cradle/internal/reflection"
)

func TestServiceRegistry(t *testing.T) {
	analyzer := reflection.New()

	t.Run("lookup of missing contract", func(t *testing.T) {
		r := newServiceRegistry()

		_, ok := r.lookup(reflect.TypeOf(0))
		assert.False(t, ok)
		assert.Zero(t, r.count())
	})

	t.Run("register then lookup", func(t *testing.T) {
		r := newServiceRegistry()

		d, err := newDescriptor(nil, newDescConsoleLogger, Singleton, analyzer)
		require.NoError(t, err)
		r.register(d)

		got, ok := r.lookup(d.Type)
		require.True(t, ok)
		assert.Same(t, d, got)
		assert.Equal(t, 1, r.count())
	})

	t.Run("overwrite replaces descriptor", func(t *testing.T) {
		r := newServiceRegistry()

		first, err := newDescriptor(nil, newDescConsoleLogger, Singleton, analyzer)
		require.NoError(t, err)
		second, err := newDescriptor(nil, newDescConsoleLogger, Transient, analyzer)
		require.NoError(t, err)

		r.register(first)
		r.register(second)

		got, ok := r.lookup(first.Type)
		require.True(t, ok)
		assert.Same(t, second, got)
		assert.Equal(t, 1, r.count())
	})

	t.Run("contracts snapshot", func(t *testing.T) {
		r := newServiceRegistry()

		d, err := newDescriptor(nil, newDescConsoleLogger, Singleton, analyzer)
		require.NoError(t, err)
		r.register(d)

		contracts := r.contracts()
		require.Len(t, contracts, 1)
		assert.Equal(t, d.Type, contracts[0])
	})
}
