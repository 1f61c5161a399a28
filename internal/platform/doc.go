// Package platform contains OS-specific helpers for locating the
// application data directory and launching the system browser.
package platform
