package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
)

// ExpandPath resolves environment variables and a leading ~ in path.
func ExpandPath(path string) (string, error) {
	return homedir.Expand(os.ExpandEnv(path))
}
