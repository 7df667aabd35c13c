package db

import (
	adb "github.com/mongodb/anser/db"
)

// IsNotFound returns true when err, or the error it wraps, reports that no
// document matched.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	return adb.ResultsNotFound(err)
}
