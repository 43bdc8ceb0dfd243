/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but aren't initialised until the first
// command that needs the library runs. The library is opened once and shared
// across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/booksearch/extension"
	"github.com/jpl-au/booksearch/internal/config"
	"github.com/jpl-au/booksearch/internal/library"
	"github.com/jpl-au/booksearch/internal/log"
)

// noStoreCommands lists commands that bypass automatic library opening.
// Built from the bootstrap commands plus extension-declared storeless commands.
var noStoreCommands map[string]bool

// buildNoStoreCommands creates the set of commands that skip library opening.
//
// Bootstrap commands (init, guide, config) must work before "booksearch init"
// has been run. Extensions declare further storeless commands through the
// Storeless interface; search uses this because it can scan corpus files
// without a library.
func buildNoStoreCommands() map[string]bool {
	cmds := map[string]bool{
		"init":   true,
		"guide":  true,
		"config": true,
		"help":   true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Storeless); ok {
			for _, name := range s.NoStoreCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	extService *library.Service
	initOnce   sync.Once
	initErr    error
)

// initExtensions opens the library and injects it into extensions.
//
// sync.Once guarantees exactly one library per process. Storeless commands
// that later decide they need the library (search without corpus files)
// call Library, which goes through the same path.
func initExtensions() error {
	initOnce.Do(func() {
		svc, err := library.NewIn(DB(), Dir())
		if err != nil {
			initErr = fmt.Errorf("opening library: %w", err)
			return
		}
		extService = svc

		log.SetProject(svc.FilesDir())

		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		extContext = extension.NewContext(svc, cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// Library opens the library on demand for storeless commands. The returned
// service is closed by Execute.
func Library() (*library.Service, error) {
	if err := initExtensions(); err != nil {
		return nil, err
	}
	return extService, nil
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		noStoreCommands = buildNoStoreCommands()
	})
}
