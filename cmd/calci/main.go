// Command calci compiles a Calci source file to C and, unless told
// otherwise, hands the result to an external C compiler.
//
// The getopt flags are registered (on getopt's default set) inside
// main(), not at package scope, so startup has no global side effects.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"calci.dev/calci/internal/build"
	"calci.dev/calci/pkg/calci"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"
)

const version = "calci 1.0.0"

func main() {
	var lang string
	var sourceOnly bool
	var showVersion bool

	getopt.StringVarLong(&lang, "lang", 'l', "destination language (only \"c\" is implemented)", "LANG")
	getopt.BoolVarLong(&sourceOnly, "source", 'S', "emit the translated source only; do not invoke the external C compiler")
	getopt.BoolVarLong(&showVersion, "version", 'v', "print version and exit")
	getopt.SetParameters("file")

	if err := getopt.Getopt(func(getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if showVersion {
		fmt.Println(version)
		return
	}

	args := getopt.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Expected one argument: source file")
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if lang == "" {
		lang = "c"
	}

	if err := run(args[0], lang, sourceOnly); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run compiles source to C, and (unless sourceOnly or lang isn't "c")
// hands the result to the external compiler. The "java" target is
// accepted but intentionally unimplemented.
func run(source, lang string, sourceOnly bool) error {
	data, err := os.ReadFile(source)
	if os.IsNotExist(err) {
		calci.ReportIOError(calci.MissingFileMessage(source), err)
	}
	if err != nil {
		return errors.Wrapf(err, "reading %s", source)
	}

	outC := deriveName(source) + ".c"

	if err := calci.Compile(string(data), outC); err != nil {
		return err
	}

	if sourceOnly || lang != "c" {
		return nil
	}

	dir := filepath.Dir(source)
	cfg, err := build.LoadConfig(dir)
	if err != nil {
		calci.ReportIOError("Cannot load build configuration", err)
	}

	compiler := build.NewCompiler(cfg)
	outExe := deriveName(source)
	if err := compiler.Build(outC, outExe); err != nil {
		return err
	}

	return os.Remove(outC)
}

// deriveName returns the base name of path with its extension removed,
// in the same directory as path.
func deriveName(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx >= 0 {
		base = base[:idx]
	}
	return filepath.Join(filepath.Dir(path), base)
}
