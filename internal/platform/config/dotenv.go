package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFileVar names the variable that points at an optional dotenv file.
const EnvFileVar = "PORTAL_ENV_FILE"

// DefaultEnvFile is loaded when EnvFileVar is unset.
const DefaultEnvFile = ".env"

// LoadDotEnv loads variables from path into the process environment.
//
// Variables already set in the environment keep their values. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// LoadDefaultDotEnv loads the file named by EnvFileVar, or DefaultEnvFile.
func LoadDefaultDotEnv() error {
	return LoadDotEnv(os.Getenv(EnvFileVar))
}
