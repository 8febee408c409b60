package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/jmereardon17/fsjs-techdegree-project-3/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls back
	// to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	flags := &commands.Flags{}
	app := commands.NewApp(flags, build())

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		if !errors.Is(err, commands.ErrNotSubmitted) {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		log.Debug().Err(err).Msg("exit")
		exitCode = 1
	}

	os.Exit(exitCode)
}
