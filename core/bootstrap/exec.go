package bootstrap

import (
	"errors"
	"fmt"
	"os/exec"
)

// PrivilegeDropper is the helper used to switch user before exec.
const PrivilegeDropper = "su-exec"

// ErrExecUnsupported is returned by Replace on platforms without execve.
var ErrExecUnsupported = errors.New("process replacement not supported on this platform")

// Command builds the argv that replaces the bootstrap process. With runAs
// set (user:group) the server is launched through PrivilegeDropper.
func Command(self, runAs string, args ...string) []string {
	var argv []string
	if runAs != "" {
		argv = append(argv, PrivilegeDropper, runAs)
	}
	argv = append(argv, self)
	return append(argv, args...)
}

// Replace swaps the current process image for argv, so signals sent to the
// bootstrap reach the server directly. It only returns on failure.
func Replace(argv, env []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("failed to locate %s: %w", argv[0], err)
	}
	if err := execve(path, argv, env); err != nil {
		if errors.Is(err, ErrExecUnsupported) {
			return err
		}
		return fmt.Errorf("failed to execute %s: %w", path, err)
	}
	return nil
}
