package main

import (
	"syscall"

	"github.com/opencontainers/runc/libcontainer/user"

	"github.com/lumoslabs/envflow/pkg/environ"
)

// SetupUser switches the process to the user-spec and, unless e already has one, sets HOME in e
// to the user's home directory.
func SetupUser(spec string, e *environ.Environ) error {
	execUser, err := lookupUser(spec)
	if err != nil {
		return err
	}
	if err := switchUser(execUser); err != nil {
		return err
	}
	if _, ok := e.Load("HOME"); !ok {
		e.Set("HOME", execUser.Home)
	}
	return nil
}

// lookupUser resolves a user-spec such as "nobody:root" or "1000:1" against the passwd and group
// databases, falling back to the current ids.
func lookupUser(spec string) (*user.ExecUser, error) {
	defaults := user.ExecUser{
		Uid:  syscall.Getuid(),
		Gid:  syscall.Getgid(),
		Home: "/",
	}
	passwdPath, err := user.GetPasswdPath()
	if err != nil {
		return nil, err
	}
	groupPath, err := user.GetGroupPath()
	if err != nil {
		return nil, err
	}
	return user.GetExecUserPath(spec, &defaults, passwdPath, groupPath)
}
