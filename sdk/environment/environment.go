// Package environment provides utilities for loading configuration from
// environment variables and .env files with support for namespacing.
package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadPath loads variables from the .env file at p, or from ./.env when p
// is empty. A missing ./.env is not an error; values already set in the
// process environment are never overwritten.
//
// Example:
//
//	if err := LoadPath("/config/.env.production"); err != nil {
//	    log.Printf("loading env: %v", err)
//	}
func LoadPath(p string) error {
	var err error
	if p != "" {
		err = godotenv.Load(p)
	} else {
		err = godotenv.Load()
	}
	if err != nil && p == "" && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}

// GetEnvOrDefault retrieves an environment variable value, returning a fallback
// value if the variable is not set.
func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetNamespaceEnvKey joins a namespace and key with an underscore. If no
// namespace is provided the key is returned unchanged.
//
//	GetNamespaceEnvKey("TODOVIEW", "PORT") // "TODOVIEW_PORT"
//	GetNamespaceEnvKey("", "PORT")         // "PORT"
func GetNamespaceEnvKey(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", namespace, key)
}

// GetNamespaceEnvOrDefault retrieves a namespaced environment variable value,
// returning fallback if the variable is not set.
func GetNamespaceEnvOrDefault(namespace, key, fallback string) string {
	return GetEnvOrDefault(GetNamespaceEnvKey(namespace, key), fallback)
}
