//go:build unix

package bootstrap

import "golang.org/x/sys/unix"

var execve = unix.Exec
