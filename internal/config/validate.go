package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Admin.UserIDs) == 0 {
		return fmt.Errorf("admin.user_ids must list at least one admin")
	}
	for _, id := range c.Admin.UserIDs {
		if id <= 0 {
			return fmt.Errorf("admin.user_ids: invalid user id %d", id)
		}
	}

	if c.Registry.ListPageSize <= 0 {
		return fmt.Errorf("registry.list_page_size must be > 0 (got %d)", c.Registry.ListPageSize)
	}
	if c.Registry.ListMaxPageSize < c.Registry.ListPageSize {
		return fmt.Errorf("registry.list_max_page_size must be >= list_page_size (got %d < %d)",
			c.Registry.ListMaxPageSize, c.Registry.ListPageSize)
	}
	return nil
}
