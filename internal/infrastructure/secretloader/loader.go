package secretloader

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// APIKeyEnvVar is checked before any secrets file is opened.
const APIKeyEnvVar = "HELIUS_API_KEY"

// SecretFileLoader reads credentials from a flat YAML map on disk. It is the
// fallback store behind environment variables.
type SecretFileLoader struct {
	filePath   string
	loggerInfo func(msg string, args ...any)
}

// NewSecretFileLoader creates a new SecretFileLoader.
func NewSecretFileLoader(filePath string, loggerInfo func(msg string, args ...any)) *SecretFileLoader {
	return &SecretFileLoader{
		filePath:   filePath,
		loggerInfo: loggerInfo,
	}
}

// Get returns the named secret from the file.
func (l *SecretFileLoader) Get(name string) (string, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read secrets file %s: %w", l.filePath, err)
	}

	secrets := make(map[string]string)
	if err := yaml.Unmarshal(data, &secrets); err != nil {
		return "", fmt.Errorf("failed to unmarshal secrets file %s: %w", l.filePath, err)
	}

	value := strings.TrimSpace(secrets[name])
	if value == "" {
		return "", fmt.Errorf("secret %s not found in %s", name, l.filePath)
	}

	if l.loggerInfo != nil {
		l.loggerInfo("Secret loaded from file", "name", name, "path", l.filePath)
	}
	return value, nil
}

// ResolveAPIKey returns the Helius API key from the environment, falling back
// to the secrets file at secretsPath. An empty result is a configuration
// error: the caller must halt before any fetch.
func ResolveAPIKey(secretsPath string, loggerInfo func(msg string, args ...any)) (string, error) {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnvVar)); key != "" {
		if loggerInfo != nil {
			loggerInfo("Helius API key resolved from environment", "var", APIKeyEnvVar)
		}
		return key, nil
	}

	if secretsPath != "" {
		loader := NewSecretFileLoader(secretsPath, loggerInfo)
		if key, err := loader.Get(APIKeyEnvVar); err == nil {
			return key, nil
		}
	}

	return "", fmt.Errorf("API key not found: set %s in the environment or in the secrets file", APIKeyEnvVar)
}
