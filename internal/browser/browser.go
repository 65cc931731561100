// Package browser opens article links in the user's web browser.
package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
)

// Validate accepts only absolute http and https links. Feed content is
// untrusted, so nothing else is handed to the OS.
func Validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", rawURL)
	}
	return nil
}

// Command returns the program and arguments that open rawURL on goos.
// A non-empty override (the BROWSER variable) wins on every platform.
func Command(goos, override, rawURL string) (string, []string) {
	if override != "" {
		return override, []string{rawURL}
	}
	switch goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		// rundll32 avoids cmd /c start and its shell parsing
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}

// Open validates rawURL and starts the browser without waiting for it.
func Open(rawURL string) error {
	if err := Validate(rawURL); err != nil {
		return err
	}
	name, args := Command(runtime.GOOS, os.Getenv("BROWSER"), rawURL)
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}
