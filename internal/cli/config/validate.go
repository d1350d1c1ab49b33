package config

import (
	"fmt"
	"os"
)

// validOutputs lists the accepted values for the output setting.
var validOutputs = []string{"auto", "text", "markdown", "json"}

// validFailOn lists the accepted values for the fail_on setting.
var validFailOn = []string{"error", "warning", "hint"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !contains(validOutputs, c.Output) {
		return fmt.Errorf("invalid output format %q (valid: auto, text, markdown, json)", c.Output)
	}
	if !contains(validFailOn, c.FailOn) {
		return fmt.Errorf("invalid fail_on severity %q (valid: error, warning, hint)", c.FailOn)
	}
	return nil
}

// ValidateRCFile checks that an explicitly configured rcfile exists.
// An empty RCFile is valid: commands fall back to the upward search.
func (c *Config) ValidateRCFile() error {
	if c.RCFile == "" {
		return nil
	}
	if _, err := os.Stat(c.RCFile); os.IsNotExist(err) {
		return fmt.Errorf("configuration file does not exist: %s\nHint: Check the path or drop --rcfile to search for one automatically", c.RCFile)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
