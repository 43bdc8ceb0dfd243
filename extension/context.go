// context.go defines the Context interface for extension access to the
// library.
//
// Extensions receive the Context during Init(), not at construction, so
// they can register commands before the library has been opened.

package extension

import (
	"github.com/jpl-au/booksearch/internal/config"
	"github.com/jpl-au/booksearch/internal/service"
)

// Context provides extensions controlled access to booksearch internals.
type Context interface {
	// Service returns the library.
	Service() service.Service

	// Config returns user configuration for respecting user preferences.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	svc service.Service
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(svc service.Service, cfg *config.Config) Context {
	return &extContext{
		svc: svc,
		cfg: cfg,
	}
}

func (c *extContext) Service() service.Service {
	return c.svc
}

func (c *extContext) Config() *config.Config {
	return c.cfg
}
