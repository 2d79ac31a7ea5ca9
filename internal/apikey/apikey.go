// Package apikey retrieves the Gemini API key. Priority: macOS Keychain when
// a service/account pair is configured, then the environment (with a
// best-effort .env load). Keychain failure falls back to the environment with
// a warning rather than aborting.
package apikey

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// DefaultEnvVar is the environment variable consulted when no other source
// is configured.
const DefaultEnvVar = "GEMINI_API_KEY"

// FromEnv reads the API key from the named environment variable. A .env file
// in the working directory is loaded first if present.
func FromEnv(name string) (string, error) {
	_ = godotenv.Load() // optional; missing .env is fine

	key := os.Getenv(name)
	if key == "" {
		return "", fmt.Errorf("API key not found in environment variable %s. Set it with: export %s='your_api_key'", name, name)
	}
	return key, nil
}

// FromKeychain reads the API key from the macOS Keychain via the security
// command.
func FromKeychain(service, account string) (string, error) {
	cmd := exec.Command("security", "find-generic-password", "-a", account, "-s", service, "-w")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if strings.Contains(stderr.String(), "could not be found") {
			return "", fmt.Errorf("API key not found in Keychain. Store it with: security add-generic-password -a %q -s %q -w YOUR_API_KEY -U", account, service)
		}
		return "", fmt.Errorf("retrieving API key from Keychain: %v: %s", err, strings.TrimSpace(stderr.String()))
	}

	key := strings.TrimSpace(stdout.String())
	if key == "" {
		return "", fmt.Errorf("empty API key retrieved from Keychain")
	}
	return key, nil
}

// Resolve picks the API key source: Keychain when service and account are
// both set, environment otherwise. A Keychain miss logs a warning and falls
// through to the environment.
func Resolve(log zerolog.Logger, envName, keychainService, keychainAccount string) (string, error) {
	if envName == "" {
		envName = DefaultEnvVar
	}

	if keychainService != "" && keychainAccount != "" {
		key, err := FromKeychain(keychainService, keychainAccount)
		if err == nil {
			return key, nil
		}
		log.Warn().Err(err).Msg("Keychain lookup failed, falling back to environment variable")
	}

	return FromEnv(envName)
}
