package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// HostRX matches a DNS host name such as "linqyard.com" or "localhost"
var HostRX = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// EnvVarRX matches a portable environment variable name
var EnvVarRX = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validator collects configuration errors keyed by setting name
type Validator struct {
	Errors map[string]string
}

// New creates a Validator with an empty error map
func New() *Validator {
	return &Validator{
		Errors: make(map[string]string),
	}
}

// Valid returns true if no errors exist
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error if the key doesn't exist
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Error joins the collected errors in key order so the result is stable
func (v *Validator) Error() string {
	keys := make([]string, 0, len(v.Errors))
	for k := range v.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v.Errors[k]))
	}
	return strings.Join(parts, "; ")
}

// In returns true if value is in the list
func In(value string, list ...string) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

// Matches returns true if value matches the regex
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// Unique returns true if all values are unique
func Unique(values []string) bool {
	uniqueValues := make(map[string]bool)
	for _, value := range values {
		uniqueValues[value] = true
	}
	return len(values) == len(uniqueValues)
}

// IsOrigin reports whether s is a bare http(s) origin: scheme and host, no path
func IsOrigin(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != "" && (u.Path == "" || u.Path == "/") && u.RawQuery == "" && u.Fragment == ""
}
