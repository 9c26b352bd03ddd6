// Package paths provides cross-platform path resolution utilities for the
// sshconv CLI.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux and macOS, configuration paths follow
// XDG conventions (~/.config).
//
// # SSH Directory
//
// [DefaultSSHDir] resolves the standard OpenSSH client directory:
//
//	paths.DefaultSSHDir() // ~/.ssh
//
// User-supplied paths may carry a leading tilde; [ExpandUser] normalizes
// them before any filesystem access:
//
//	paths.ExpandUser("~/.ssh/config") // /home/user/.ssh/config
//
// # Error Handling
//
// Resolution failures surface as sentinel errors checkable with [errors.Is]:
//
//	if errors.Is(err, paths.ErrHomeDirNotFound) {
//	    // no home directory in this environment
//	}
package paths
