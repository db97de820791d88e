package utils

import (
	"flag"
	"fmt"
	"strings"
)

type options struct {
	noColorize bool
}

var opts = &options{}

type optInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

// CanColorize guards a colorization function behind the -no-colorize flag.
func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

func init() {
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
}

func ParseArgs() {
	// Calling flag.Parse in init messes up unit tests.
	// See https://stackoverflow.com/questions/60235896/flag-provided-but-not-defined-test-v
	flag.Parse()
}
