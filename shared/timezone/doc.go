// Package timezone provides timezone utilities for the application.
//
// The timezone is configured via the APP_TIMEZONE environment variable using
// standard IANA timezone database names ("UTC", "Asia/Jakarta", ...) and is
// initialized when the package is imported. Workout timestamps use UTC by
// default.
package timezone
