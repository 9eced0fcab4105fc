// Package identity is the seam through which the authentication
// collaborator supplies the owner for every store operation. The core
// never authenticates; it only consumes an opaque non-empty owner
// string as a filter key.
package identity

import (
	"os"

	"github.com/mesh-intelligence/jotbook/pkg/types"
)

// EnvOwner is the environment variable consulted by Static as the
// lowest-precedence owner source.
const EnvOwner = "JOTBOOK_OWNER"

// Provider yields the owner on whose behalf operations run.
type Provider interface {
	// CurrentOwner returns the opaque owner identifier, or
	// types.ErrNoOwner when none is available.
	CurrentOwner() (string, error)
}

// Static resolves the owner from fixed configuration, in precedence
// order: the explicit flag value, then the config file value, then the
// JOTBOOK_OWNER environment variable.
type Static struct {
	// FlagOwner is the --owner flag value, highest precedence.
	FlagOwner string

	// ConfigOwner is the owner from config.yaml.
	ConfigOwner string
}

var _ Provider = Static{}

// CurrentOwner implements Provider.
func (s Static) CurrentOwner() (string, error) {
	for _, owner := range []string{s.FlagOwner, s.ConfigOwner, os.Getenv(EnvOwner)} {
		if owner != "" {
			return owner, nil
		}
	}
	return "", types.ErrNoOwner
}
