// Command lazydemo prints a few lazy sequences and a pi
// approximation to standard output.
//
// The number of elements shown for each sequence and the number of
// series terms used for pi are read from the LAZY_SHOW_COUNT and
// LAZY_PI_TERMS environment variables, which may also be set in a
// dotenv file (see the -env flag). Values in the environment take
// precedence over the file.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/tychoish/lazy"
	"github.com/tychoish/lazy/ers"
	"github.com/tychoish/lazy/ft"
	"github.com/tychoish/lazy/numeric"
)

const (
	envShowCount = "LAZY_SHOW_COUNT"
	envPiTerms   = "LAZY_PI_TERMS"
)

type config struct {
	ShowCount int
	PiTerms   int
}

func defaultConfig() config { return config{ShowCount: 10, PiTerms: 100} }

// loadConfig reads the optional dotenv file at path (a missing file
// is not an error) and then applies the lookup function, which is
// typically os.LookupEnv.
func loadConfig(path string, lookup func(string) (string, bool)) (config, error) {
	file := map[string]string{}
	if path != "" {
		var err error
		file, err = godotenv.Read(path)
		switch {
		case ers.Is(err, fs.ErrNotExist):
			file = map[string]string{}
		case err != nil:
			return config{}, fmt.Errorf("reading %q: %w", path, err)
		}
	}

	get := func(key string) string {
		if val, ok := lookup(key); ok {
			return val
		}
		return file[key]
	}

	conf := defaultConfig()
	err := ers.Join(
		parseCount(envShowCount, get(envShowCount), &conf.ShowCount),
		parseCount(envPiTerms, get(envPiTerms), &conf.PiTerms),
	)
	return conf, err
}

func parseCount(key, raw string, out *int) error {
	if raw == "" {
		return nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s=%q: %w: %w", key, raw, ers.ErrMalformedConfiguration, err)
	}
	if err := ers.Whenf(val < 0, "%s=%d must not be negative: %w", key, val, ers.ErrMalformedConfiguration); err != nil {
		return err
	}
	*out = val
	return nil
}

func show[T any](w io.Writer, label string, n int, seq lazy.Sequence[T]) {
	fmt.Fprintf(w, "%-10s %v\n", label, lazy.Collect(lazy.Take(n, seq)))
}

func run(w io.Writer, conf config) {
	naturals := lazy.Generate(func(in int) int { return in + 1 })(1)

	show(w, "naturals", conf.ShowCount, naturals)
	show(w, "plus ten", conf.ShowCount, lazy.Map(func(in int) int { return in + 10 }, naturals))
	show(w, "odds", conf.ShowCount, lazy.Filter(func(in int) bool { return in%2 == 1 }, naturals))
	show(w, "leibniz", conf.ShowCount, numeric.Leibniz())

	last, _ := lazy.Last(lazy.Take(conf.ShowCount, naturals))
	fmt.Fprintf(w, "%-10s %d\n", "last", last)
	fmt.Fprintf(w, "%-10s %v (%d terms)\n", "pi", numeric.PiApproximation(conf.PiTerms), conf.PiTerms)
}

func main() {
	envFile := flag.String("env", ft.Default(os.Getenv("LAZY_ENV_FILE"), ".env"), "path to an optional dotenv file")
	flag.Parse()

	conf, err := loadConfig(*envFile, os.LookupEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lazydemo:", err)
		os.Exit(2)
	}

	run(os.Stdout, conf)
}
