package main

import (
	"syscall"

	"github.com/opencontainers/runc/libcontainer/system"
	"github.com/opencontainers/runc/libcontainer/user"
)

// raw syscalls only change the ids of the locked thread, which is the one that execs
func switchUser(u *user.ExecUser) error {
	if err := syscall.Setgroups(u.Sgids); err != nil {
		return err
	}
	if err := system.Setgid(u.Gid); err != nil {
		return err
	}
	return system.Setuid(u.Uid)
}
