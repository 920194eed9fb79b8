package main

import (
	"syscall"

	"github.com/opencontainers/runc/libcontainer/user"
)

func switchUser(u *user.ExecUser) error {
	if err := syscall.Setgroups(u.Sgids); err != nil {
		return err
	}
	if err := syscall.Setgid(u.Gid); err != nil {
		return err
	}
	return syscall.Setuid(u.Uid)
}
