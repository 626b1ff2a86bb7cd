package config

import "strconv"

// Development reports whether DEVELOPMENT (or --dev) is set to anything
// other than "0" or a false boolean.
func Development() bool {
	development := v.GetString(keyDevelopment)
	if development == "" {
		return false
	}
	if b, err := strconv.ParseBool(development); err == nil {
		return b
	}
	return development != "0"
}
