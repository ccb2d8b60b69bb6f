package cradle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cradle-di/cradle"
)

func TestNew(t *testing.T) {
	t.Run("containers are isolated", func(t *testing.T) {
		c1 := cradle.New()
		c2 := cradle.New()

		require.NoError(t, cradle.RegisterSingleton[testLogger](c1, newConsoleLogger))

		assert.True(t, cradle.IsRegistered[testLogger](c1))
		assert.False(t, cradle.IsRegistered[testLogger](c2))
	})

	t.Run("unique identity", func(t *testing.T) {
		c1 := cradle.New()
		c2 := cradle.New()

		assert.NotEmpty(t, c1.ID())
		assert.NotEqual(t, c1.ID(), c2.ID())
	})

	t.Run("String reports service count", func(t *testing.T) {
		c := cradle.New()
		require.NoError(t, cradle.RegisterSingleton[testLogger](c, newConsoleLogger))

		s := c.String()
		assert.True(t, strings.HasPrefix(s, "cradle.Container("))
		assert.Contains(t, s, "1 services")
	})
}

func TestRegister(t *testing.T) {
	t.Run("explicit contract", func(t *testing.T) {
		c := cradle.New()

		err := cradle.Register[testLogger](c, newConsoleLogger, cradle.Singleton)
		require.NoError(t, err)

		assert.True(t, cradle.IsRegistered[testLogger](c))
		// The concrete type was not bound, only the contract.
		assert.False(t, cradle.IsRegistered[*consoleLogger](c))
	})

	t.Run("contract inferred from return type", func(t *testing.T) {
		c := cradle.New()

		require.NoError(t, c.RegisterTransient(newConsoleLogger))

		assert.True(t, cradle.IsRegistered[*consoleLogger](c))
		assert.False(t, cradle.IsRegistered[testLogger](c))
	})

	t.Run("last registration wins", func(t *testing.T) {
		c := cradle.New()

		require.NoError(t, cradle.RegisterSingleton[testLogger](c, newConsoleLogger))
		first, err := cradle.Resolve[testLogger](c)
		require.NoError(t, err)

		// Re-register the same contract as Transient; the prior binding and
		// its cached instance must both be replaced.
		require.NoError(t, cradle.RegisterTransient[testLogger](c, newConsoleLogger))

		second, err := cradle.Resolve[testLogger](c)
		require.NoError(t, err)
		third, err := cradle.Resolve[testLogger](c)
		require.NoError(t, err)

		assert.NotSame(t, first, second)
		assert.NotSame(t, second, third)
	})

	t.Run("nil constructor", func(t *testing.T) {
		c := cradle.New()

		err := cradle.RegisterSingleton[testLogger](c, nil)
		require.Error(t, err)
		var nsc cradle.NoSuitableConstructorError
		assert.ErrorAs(t, err, &nsc)
	})

	t.Run("constructor is not a function", func(t *testing.T) {
		c := cradle.New()

		err := cradle.RegisterSingleton[testLogger](c, &consoleLogger{})
		require.Error(t, err)
		var nsc cradle.NoSuitableConstructorError
		assert.ErrorAs(t, err, &nsc)
	})

	t.Run("constructor does not satisfy contract", func(t *testing.T) {
		c := cradle.New()

		err := cradle.Register[userService](c, newConsoleLogger, cradle.Singleton)
		require.Error(t, err)
		var reg cradle.RegistrationError
		require.ErrorAs(t, err, &reg)
		assert.Equal(t, "assert-contract", reg.Operation)
	})

	t.Run("invalid lifetime", func(t *testing.T) {
		c := cradle.New()

		err := cradle.Register[testLogger](c, newConsoleLogger, cradle.Lifetime(42))
		require.Error(t, err)
		var lt cradle.LifetimeError
		assert.ErrorAs(t, err, &lt)
	})

	t.Run("nil container", func(t *testing.T) {
		err := cradle.RegisterSingleton[testLogger](nil, newConsoleLogger)
		assert.ErrorIs(t, err, cradle.ErrContainerNil)
	})

	t.Run("cyclic binding registers without error", func(t *testing.T) {
		c := cradle.New()

		// Cycles are not detected at registration; resolving such a graph
		// recurses until the stack is exhausted, so the test stops here.
		require.NoError(t, cradle.RegisterTransient[*selfDependent](c, newSelfDependent))
		assert.True(t, cradle.IsRegistered[*selfDependent](c))
	})
}

func TestRegisterInstance(t *testing.T) {
	t.Run("instance behaves as resolved singleton", func(t *testing.T) {
		c := cradle.New()

		logger := newConsoleLogger()
		require.NoError(t, cradle.RegisterInstance[testLogger](c, logger))

		resolved, err := cradle.Resolve[testLogger](c)
		require.NoError(t, err)
		assert.Same(t, logger, resolved)

		again, err := cradle.Resolve[testLogger](c)
		require.NoError(t, err)
		assert.Same(t, logger, again)
	})

	t.Run("instance injected as dependency", func(t *testing.T) {
		c := cradle.New()

		logger := newConsoleLogger()
		require.NoError(t, cradle.RegisterInstance[testLogger](c, logger))
		require.NoError(t, cradle.RegisterTransient[userService](c, newUserService))

		svc, err := cradle.Resolve[userService](c)
		require.NoError(t, err)

		svc.Greet("ada")
		assert.Equal(t, []string{"hello, ada"}, logger.lines)
	})

	t.Run("nil instance", func(t *testing.T) {
		c := cradle.New()

		err := cradle.RegisterInstance[testLogger](c, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, cradle.ErrInstanceNil)
	})
}

func TestContracts(t *testing.T) {
	c := cradle.New()

	require.NoError(t, cradle.RegisterSingleton[testLogger](c, newConsoleLogger))
	require.NoError(t, cradle.RegisterTransient[userService](c, newUserService))

	contracts := c.Contracts()
	assert.Len(t, contracts, 2)
	assert.Contains(t, contracts, cradle.TypeOf[testLogger]())
	assert.Contains(t, contracts, cradle.TypeOf[userService]())
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, "cradle_test.testLogger", cradle.TypeOf[testLogger]().String())
	assert.Equal(t, "*cradle_test.consoleLogger", cradle.TypeOf[*consoleLogger]().String())
	assert.Equal(t, "string", cradle.TypeOf[string]().String())
}
