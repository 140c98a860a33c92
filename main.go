package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"gopkg.microglot.org/functional.go/internal/iter"
	"gopkg.microglot.org/functional.go/internal/logger"
	"gopkg.microglot.org/functional.go/maybe"
)

type opts struct {
	Default   string
	Prefix    string
	Upper     bool
	Trim      bool
	Lookahead uint8
	All       bool
	LogLevel  string
}

var errNoValue = errors.New("no value matched and no default was given")

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	op := &opts{}
	flags := pflag.NewFlagSet("maybe", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&op.Default, "default", "", "Value printed when nothing matches.")
	flags.StringVar(&op.Prefix, "prefix", "", "Only consider values starting with this prefix.")
	flags.BoolVar(&op.Upper, "upper", false, "Upper-case the selected value.")
	flags.BoolVar(&op.Trim, "trim", false, "Trim surrounding whitespace from every value before matching.")
	flags.Uint8Var(&op.Lookahead, "lookahead", 0, "Also print the Nth matching value after the selected one.")
	flags.BoolVar(&op.All, "all", false, "Also print every remaining matching value, one per line.")
	flags.StringVar(&op.LogLevel, "log-level", "", "Log level. Defaults to LOG_LEVEL or info.")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	log := logger.Configure(stderr, op.LogLevel, lookupEnv)

	values := flags.Args()
	if op.Trim {
		values = lo.Map(values, func(v string, _ int) string { return strings.TrimSpace(v) })
	}
	log.Debug().Strs("values", values).Str("prefix", op.Prefix).Msg("selecting value")

	candidates := iter.NewIteratorFilter[string](iter.NewSlice(values), iter.FilterFunc[string](func(ctx context.Context, v string) bool {
		return strings.HasPrefix(v, op.Prefix)
	}))
	look := iter.NewLookahead(candidates, op.Lookahead)
	defer func() {
		if err := look.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("closing iterator")
		}
	}()

	shape := func(m maybe.Maybe[string]) maybe.Maybe[string] {
		m = m.Filter(func(v string) bool { return v != "" })
		if op.Upper {
			m = maybe.Map(m, strings.ToUpper)
		}
		return m
	}
	selected := shape(look.Next(ctx))
	fallback := maybe.FromOk(op.Default, flags.Changed("default"))
	result := selected.
		IfNothing(func() { log.Debug().Msg("no value matched") }).
		Alt(fallback)

	value, err := result.GetOrElseThrow(func() error { return errNoValue })
	if err != nil {
		log.Error().Err(err).Msg("selection failed")
		return 1
	}
	fmt.Fprintln(stdout, value)

	if op.Lookahead > 0 {
		peek := look.Lookahead(ctx, op.Lookahead)
		logPeek(log, peek)
		fmt.Fprintf(stdout, "lookahead(%d): %s\n", op.Lookahead, peek)
	}
	if op.All {
		for _, v := range iter.Collect(ctx, look) {
			shape(maybe.Just(v)).IfJust(func(v string) { fmt.Fprintln(stdout, v) })
		}
	}
	return 0
}

func logPeek(log zerolog.Logger, peek maybe.Maybe[string]) {
	peek.Tap(
		func() { log.Debug().Msg("lookahead exhausted") },
		func(v string) { log.Debug().Str("value", v).Msg("lookahead") },
	)
}
