package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/lumoslabs/envflow/internal/cliflags"
	"github.com/lumoslabs/envflow/pkg/environ"
	"github.com/lumoslabs/envflow/pkg/flow"
	"github.com/lumoslabs/envflow/pkg/log"
)

const author = "Lumos Labs"

var (
	app      = kingpin.New("flowfile", "Write the variables of the .env* files cascade to a file.")
	flags    = cliflags.Register(app)
	format   = app.Flag("format", fmt.Sprintf("Format of the output file. Available formats: %v", environ.Marshallers())).Short('F').Default("dotenv").HintOptions(environ.Marshallers()...).Enum(environ.Marshallers()...)
	list     = app.Flag("list", "Only print the files of the cascade, in ascending priority").Short('l').Bool()
	filename = app.Arg("file", "Path of output file, - for stdout").Default("-").String()
)

func main() {
	app.Author(author)
	app.Version(appVersion())
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetLogger(log.NewLogger(flags.LogLevel(), os.Stderr))

	opts, er := flags.Options()
	app.FatalIfError(er, "invalid options")

	l := &flow.Loader{Fs: afero.NewOsFs(), Env: environ.NewEnvironFromEnv()}
	if *list {
		files, er := l.ListFiles(opts.Path, opts.Pattern, l.NodeEnv(opts))
		app.FatalIfError(er, "listing files")
		for _, f := range files {
			fmt.Println(f)
		}
		return
	}

	res := l.Config(opts)
	app.FatalIfError(res.Err, "loading files")

	log.Debugf("Writing variables to file. file=%s fmt=%s", *filename, *format)
	var out io.Writer = os.Stdout
	if *filename != "-" {
		file, er := os.Create(*filename)
		app.FatalIfError(er, "creating output file")
		defer file.Close()
		out = file
	}
	if er := environ.Write(out, *format, res.Parsed); er != nil {
		log.Warnf("Failed to write variables to file. file=%s msg=%s", *filename, er.Error())
		os.Exit(1)
	}
}
