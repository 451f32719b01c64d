package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetEnvAsInt tests the getEnvAsInt helper function
func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 42, result)
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 100, result)
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 42, result, "Should return default for invalid integer")
	})

	t.Run("parses negative integers", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "-10")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, -10, result)
	})

	t.Run("parses zero", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "0")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 0, result)
	})

	t.Run("returns default for float values", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "42.5")
		result := getEnvAsInt("TEST_INT_VAR", 10)
		assert.Equal(t, 10, result, "Should return default for float values")
	})
}

// TestGetEnvAsDuration tests the getEnvAsDuration helper function
func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_DURATION_VAR")
		result, err := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, result)
	})

	t.Run("returns default for empty string", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "")
		result, err := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, result)
	})

	t.Run("parses valid duration from env var", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "10m")
		result, err := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 10*time.Minute, result)
	})

	t.Run("parses complex duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1h30m45s")
		result, err := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		require.NoError(t, err)
		expected := 1*time.Hour + 30*time.Minute + 45*time.Second
		assert.Equal(t, expected, result)
	})

	t.Run("parses zero duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "0s")
		result, err := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), result)
	})

	t.Run("returns error for invalid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "not-a-duration")
		_, err := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_DURATION_VAR")
	})

	t.Run("returns error for plain numbers without unit", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "100")
		_, err := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		require.Error(t, err)
	})

	t.Run("returns error for negative duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "-10m")
		_, err := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be negative")
	})
}

// TestSplitAndTrim tests the splitAndTrim helper function
func TestSplitAndTrim(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty string", "", nil},
		{"single value", "10.0.0.1", []string{"10.0.0.1"}},
		{"multiple values", "a,b,c", []string{"a", "b", "c"}},
		{"values with spaces", " a , b ,c ", []string{"a", "b", "c"}},
		{"empty entries dropped", "a,,b,", []string{"a", "b"}},
		{"only commas", ",,,", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, splitAndTrim(tc.input))
		})
	}
}
