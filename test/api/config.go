/*
Copyright 2026 the Foody API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the load balancer fronting the Foody service.
	DefaultBaseURL = "http://softuni-qa-loadbalancer-2137572849.eu-north-1.elb.amazonaws.com:86"

	DefaultUsername = "andarz"
	DefaultPassword = "test123"

	// DefaultMissingFoodID is assumed never to be assigned by the service.
	DefaultMissingFoodID = "77777"
)

type TestConfig struct {
	BaseURL          string        `validate:"required,url"`
	Username         string        `validate:"required"`
	Password         string        `validate:"required"`
	MissingFoodID    string        `validate:"required"`
	RequestTimeout   time.Duration `validate:"gt=0"`
	SkipIntegration  bool
	StubServer       bool
	ValidateContract bool
	LogRequests      bool
	LogResponses     bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if configuration values are invalid.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	return NewTestConfig(os.Getenv)
}

// NewTestConfig builds a configuration from the given lookup, which returns
// the empty string for unset keys.  Unset keys fall back to the defaults.
func NewTestConfig(lookup func(string) string) (*TestConfig, error) {
	config := &TestConfig{
		BaseURL:          strings.TrimSuffix(getStringWithDefault(lookup, "API_BASE_URL", DefaultBaseURL), "/"),
		Username:         getStringWithDefault(lookup, "API_USERNAME", DefaultUsername),
		Password:         getStringWithDefault(lookup, "API_PASSWORD", DefaultPassword),
		MissingFoodID:    getStringWithDefault(lookup, "TEST_MISSING_FOOD_ID", DefaultMissingFoodID),
		RequestTimeout:   getDurationWithDefault(lookup, "REQUEST_TIMEOUT", 30*time.Second),
		SkipIntegration:  getBoolWithDefault(lookup, "SKIP_INTEGRATION", false),
		StubServer:       getBoolWithDefault(lookup, "STUB_SERVER", false),
		ValidateContract: getBoolWithDefault(lookup, "VALIDATE_CONTRACT", false),
		LogRequests:      getBoolWithDefault(lookup, "LOG_REQUESTS", false),
		LogResponses:     getBoolWithDefault(lookup, "LOG_RESPONSES", false),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func getStringWithDefault(lookup func(string) string, key, defaultValue string) string {
	value := strings.TrimSpace(lookup(key))
	if value == "" {
		return defaultValue
	}

	return value
}

// getDurationWithDefault gets a duration from the lookup or returns default.
func getDurationWithDefault(lookup func(string) string, key string, defaultValue time.Duration) time.Duration {
	value := lookup(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from the lookup or returns default.
func getBoolWithDefault(lookup func(string) string, key string, defaultValue bool) bool {
	value := lookup(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/api/suites directory
		"../../../.env", // From test/contracts/consumer/foody directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// configKeys maps struct fields back to the variables that set them so
// validation errors name something the user can change.
//
//nolint:gochecknoglobals
var configKeys = map[string]string{
	"BaseURL":        "API_BASE_URL",
	"Username":       "API_USERNAME",
	"Password":       "API_PASSWORD",
	"MissingFoodID":  "TEST_MISSING_FOOD_ID",
	"RequestTimeout": "REQUEST_TIMEOUT",
}

// validateConfig checks that all configuration values are usable.
func validateConfig(config *TestConfig) error {
	err := validator.New().Struct(config)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validating configuration: %w", err)
	}

	invalid := make([]string, 0, len(validationErrors))

	for _, fieldError := range validationErrors {
		key, ok := configKeys[fieldError.Field()]
		if !ok {
			key = fieldError.Field()
		}

		invalid = append(invalid, fmt.Sprintf("%s (%s)", key, fieldError.Tag()))
	}

	return fmt.Errorf("invalid configuration: %s. Please set these environment variables or add them to a .env file", strings.Join(invalid, ", "))
}
