package config

import (
	"fmt"
	"os"
)

func Template() string {
	return podctlTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(podctlTemplate), 0o600)
}

const podctlTemplate = `# decoder
max_depth = 64
policy = "collect"
hexdump = true

# extra vocabulary files (.toml, .yaml), relative to this file
vocabulary = []

# introspection service
listen_addr = ":9400"
cors_origins = ["http://localhost:3000"]
`
