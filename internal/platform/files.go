package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// AppDataDirName is the hidden directory under the user home that holds
// the sidebar database.
const AppDataDirName = ".widget-sidebar"

// GetAppDataDir returns the per-user application data directory
func GetAppDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, AppDataDirName), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenInBrowser opens the URL in the system default browser
func OpenInBrowser(url string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("url is empty")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("url must start with http:// or https://: %s", url)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return openInBrowserMacOS(url)
	case OSWindows:
		return openInBrowserWindows(url)
	case OSLinux:
		return openInBrowserLinux(url)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openInBrowserMacOS opens URL with default browser on macOS
func openInBrowserMacOS(url string) error {
	cmd := exec.Command(OpenCommand, url)
	return cmd.Run()
}

// openInBrowserWindows opens URL with default browser on Windows
func openInBrowserWindows(url string) error {
	cmd := exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", url)
	return cmd.Run()
}

// openInBrowserLinux opens URL with default browser on Linux
func openInBrowserLinux(url string) error {
	cmd := exec.Command(XDGOpenCommand, url)
	return cmd.Run()
}
