//go:build !unix

package bootstrap

var execve = func(string, []string, []string) error {
	return ErrExecUnsupported
}
