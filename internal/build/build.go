// Package build invokes the external C compiler that turns Calci's
// generated translation unit into a native executable. This is
// deliberately kept outside the Calci language core, which only
// produces C source text.
package build

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// defaultCC is used when neither the CC environment variable nor a
// sidecar config file names a compiler.
const defaultCC = "tcc"

// Config is the optional per-directory build override, read from a
// ".calcirc.yaml" file next to the Calci source.
type Config struct {
	CC    string   `yaml:"cc"`
	Flags []string `yaml:"flags"`
}

// LoadConfig reads ".calcirc.yaml" from dir, if present. A missing file
// is not an error — it returns a zero Config. A present-but-malformed
// file is reported as an IOError-class failure (it's a configuration
// read failure, not a Calci source error).
func LoadConfig(dir string) (Config, error) {
	path := filepath.Join(dir, ".calcirc.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, errors.Wrapf(err, "reading %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, nil
}

// Compiler invokes the external C compiler named by CC (or "tcc" if
// empty) on a generated C file.
type Compiler struct {
	CC    string
	Flags []string
}

// NewCompiler resolves the compiler binary from, in order: cfg.CC, the
// CC environment variable, defaultCC.
func NewCompiler(cfg Config) *Compiler {
	cc := cfg.CC
	if cc == "" {
		cc = os.Getenv("CC")
	}
	if cc == "" {
		cc = defaultCC
	}
	return &Compiler{CC: cc, Flags: cfg.Flags}
}

// Build invokes `$CC cFile -o outPath $Flags...`. The compiler's
// combined stdout/stderr is drained concurrently while the process runs,
// and the process is waited on once the drain reaches EOF, so a chatty
// compiler can never deadlock on a full pipe buffer; the collected
// output is only written to stderr if the compiler exits non-zero.
//
// On Windows, ".exe" is appended to outPath.
func (c *Compiler) Build(cFile, outPath string) error {
	if runtime.GOOS == "windows" {
		outPath += ".exe"
	}

	args := append([]string{cFile, "-o", outPath}, c.Flags...)
	cmd := exec.Command(c.CC, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "attaching to compiler stdout")
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "starting %s", c.CC)
	}

	var out bytes.Buffer
	errs := errgroup.Group{}
	errs.Go(func() error {
		_, err := io.Copy(&out, stdout)
		return err
	})

	// cmd.Wait closes the pipe, so the drain must finish first.
	if err := errs.Wait(); err != nil {
		return errors.Wrap(err, "reading compiler output")
	}
	waitErr := cmd.Wait()

	if waitErr != nil {
		os.Stderr.Write(out.Bytes())
		return errors.Wrapf(waitErr, "%s failed", c.CC)
	}

	return nil
}
