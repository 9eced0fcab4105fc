package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/jotbook/pkg/types"
)

func TestStaticPrecedence(t *testing.T) {
	t.Run("flag wins over config and env", func(t *testing.T) {
		t.Setenv(EnvOwner, "env-user")
		owner, err := Static{FlagOwner: "flag-user", ConfigOwner: "cfg-user"}.CurrentOwner()
		require.NoError(t, err)
		assert.Equal(t, "flag-user", owner)
	})

	t.Run("config wins over env", func(t *testing.T) {
		t.Setenv(EnvOwner, "env-user")
		owner, err := Static{ConfigOwner: "cfg-user"}.CurrentOwner()
		require.NoError(t, err)
		assert.Equal(t, "cfg-user", owner)
	})

	t.Run("env as last resort", func(t *testing.T) {
		t.Setenv(EnvOwner, "env-user")
		owner, err := Static{}.CurrentOwner()
		require.NoError(t, err)
		assert.Equal(t, "env-user", owner)
	})

	t.Run("nothing configured", func(t *testing.T) {
		t.Setenv(EnvOwner, "")
		_, err := Static{}.CurrentOwner()
		assert.ErrorIs(t, err, types.ErrNoOwner)
	})
}
