package main

import (
	"fmt"
	stdlog "log"
	"os"
	"os/exec"
	"runtime"
	"syscall"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/lumoslabs/envflow/internal/cliflags"
	"github.com/lumoslabs/envflow/pkg/environ"
	"github.com/lumoslabs/envflow/pkg/environ/providers/cascade"
	"github.com/lumoslabs/envflow/pkg/environ/providers/dotenv"
	"github.com/lumoslabs/envflow/pkg/log"
)

var (
	app       = kingpin.New("flow", "Load the .env* files cascade into the environment, then run a command.")
	flags     = cliflags.Register(app)
	providers = app.Flag("provider", fmt.Sprintf("Variable provider, in decreasing priority. Can be used multiple times. Available providers: %v", []string{cascade.Name, dotenv.Name})).Short('p').Default(cascade.Name).Strings()
	userSpec  = app.Flag("user", "Switch to this user-spec (user[:group], uid[:gid]) before running the command").Short('u').String()
	command   = app.Arg("command", "Command to run, followed by its arguments").Required().Strings()
)

func init() {
	runtime.LockOSThread()
}

func main() {
	stdlog.SetFlags(0) // no timestamps on our logs

	app.Version(appVersion())
	app.HelpFlag.Short('h')
	app.Interspersed(false)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetLogger(log.NewLogger(flags.LogLevel(), os.Stderr))

	opts, er := flags.Options()
	if er != nil {
		stdlog.Fatalf("error: %v", er)
	}
	environ.RegisterProvider(cascade.Name, func() (environ.Provider, error) {
		return &cascade.Cascade{Options: opts}, nil
	})

	e := environ.NewEnvironFromEnv()
	e.Populate(*providers)

	if *userSpec != "" {
		// clear HOME so that SetupUser will set it
		os.Unsetenv("HOME")
		e.Delete("HOME")

		if err := SetupUser(*userSpec, e); err != nil {
			stdlog.Fatalf("error: failed switching to %q: %v", *userSpec, err)
		}
	}

	if p, ok := e.Load("PATH"); ok {
		os.Setenv("PATH", p)
	}
	args := *command
	name, err := exec.LookPath(args[0])
	if err != nil {
		stdlog.Fatalf("error: %v", err)
	}

	log.Debugf("Running command. name=%s vars=%d", name, e.Len())
	if err = syscall.Exec(name, args, e.Slice()); err != nil {
		stdlog.Fatalf("error: exec failed: %v", err)
	}
}
