package paths

import (
	"os"

	"github.com/mitchellh/go-homedir"
)

const (
	// EnvRepoPath overrides the default repo location.
	EnvRepoPath = "PERMIT_BANK_PATH"

	defaultRepoDir = "~/.permit-bank"
)

// GetRepoPath resolves the repo directory: explicit flag first, then the
// environment, then the home default.
func GetRepoPath(override string) (string, error) {
	if override != "" {
		return homedir.Expand(override)
	}
	if env := os.Getenv(EnvRepoPath); env != "" {
		return homedir.Expand(env)
	}
	return homedir.Expand(defaultRepoDir)
}
