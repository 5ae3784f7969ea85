package envutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// LoadEnvFile loads variables from a file and returns them as a map. The
// format follows the extension:
//   - .env: KEY=VALUE lines, parsed by godotenv
//   - .json: an object with an "env" field of string values
//   - .yml/.yaml: a document with an "env" mapping of string values
//
// The result is meant for WithEnvOverrides; the process environment is not
// modified.
func LoadEnvFile(path string) (map[string]string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".env":
		return godotenv.Read(path)
	case ".json":
		return loadStructured(path, json.Unmarshal)
	case ".yml", ".yaml":
		return loadStructured(path, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}
}

// envFile is the shape of JSON and YAML env files.
type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

func loadStructured(path string, unmarshal func([]byte, any) error) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var out envFile

	if err := unmarshal(bts, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	return out.Env, nil
}
