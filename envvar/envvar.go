// Package envvar reads typed configuration values from environment variables.
package envvar

import (
	"os"
	"strconv"
	"time"

	"github.com/couchbase/tools-sum/log"
)

// Get returns the value of the environmental variable varName converted using parse, if the env var is not set or fails
// to parse it will return the zero value and false.
func Get[T any](varName string, parse func(string) (T, error)) (T, bool) {
	var zero T

	env, ok := os.LookupEnv(varName)
	if !ok {
		return zero, false
	}

	val, err := parse(env)
	if err != nil {
		log.Warnf("(envvar) Ignoring invalid value for '%s': %v", varName, err)
		return zero, false
	}

	return val, true
}

// GetString returns the string value of the environmental variable varName, if the env var is not set it will return
// "", false.
func GetString(varName string) (string, bool) {
	return os.LookupEnv(varName)
}

// GetInt returns the int value of the environmental variable varName if the env var is not an int or empty it will
// return 0, false.
func GetInt(varName string) (int, bool) {
	return Get(varName, strconv.Atoi)
}

// GetBool returns the boolean value of the environmental variable varName if the env var is empty or not a boolean it
// will return false, false.
func GetBool(varName string) (bool, bool) {
	return Get(varName, strconv.ParseBool)
}

// GetDuration returns the time.Duration value of the environmental variable varName if the env var is empty or not a
// valid duration string it will return 0, false.
func GetDuration(varName string) (time.Duration, bool) {
	return Get(varName, time.ParseDuration)
}

// GetLevel returns the log level named by the environmental variable varName, for example "debug", if the env var is
// empty or not a level it will return 0, false.
func GetLevel(varName string) (log.Level, bool) {
	return Get(varName, log.ParseLevel)
}
