package syntax

import (
	"sort"
	"strings"
	"sync"
)

var (
	configsMu sync.RWMutex
	configs   = make(map[string]*Config)
)

// Get returns a registered configuration by name.
func Get(name string) (*Config, bool) {
	configsMu.RLock()
	defer configsMu.RUnlock()
	c, ok := configs[strings.ToLower(name)]
	return c, ok
}

// Register registers a configuration in the global registry.
// Built-in grammars register themselves; callers may add custom notations.
func Register(c *Config) {
	configsMu.Lock()
	defer configsMu.Unlock()
	configs[strings.ToLower(c.Name)] = c
}

// List returns all registered configuration names (sorted).
func List() []string {
	configsMu.RLock()
	defer configsMu.RUnlock()
	names := make([]string, 0, len(configs))
	for name := range configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
