// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dnadotplot/internal/config"
	"dnadotplot/internal/runutil"
	"dnadotplot/internal/writers"
)

// KeyConfig names the flag that points at a config file. It is not itself a
// setting, so it is not bound to viper.
const KeyConfig = "config"

// RegisterPersistent wires the flags shared by every subcommand onto fs.
func RegisterPersistent(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "YAML config file")
	fs.BoolP(config.KeyVerbose, "v", false, "debug logging")
	fs.BoolP(config.KeyQuiet, "q", false, "only log warnings and errors")
}

// Register wires the dot plot flags onto fs.
func Register(fs *pflag.FlagSet) {
	// Input
	fs.StringP(config.KeyFirstFile, "1", "", "first FASTA file, optionally gzipped, or '-' for STDIN [*]")
	fs.StringP(config.KeySecondFile, "2", "", "second FASTA file (omit for self comparison)")
	fs.StringP(config.KeyFirstName, "f", "", "record ID to use from the first file (default: first record)")
	fs.StringP(config.KeySecondName, "s", "", "record ID to use from the second file (default: first record)")

	// Matching
	fs.Float64P(config.KeyWidth, "w", config.DefaultWidth, "image size: >1 is pixels, <=1 is a fraction of the longest sequence")
	fs.Int(config.KeyWindow, config.DefaultWindow, "window size for matching")
	fs.BoolP(config.KeyRevCompl, "r", false, "also look for reverse complement matches")

	// Output
	fs.StringP(config.KeyOutput, "o", "", "output file, or '-' for STDOUT [*]")
	fs.Bool(config.KeySVG, false, "write SVG with coordinate axes instead of PNG")
	fs.String(config.KeyFormat, "", "output format: png | svg | text (default: from --svg or the output extension)")
	fs.String(config.KeySummary, "", "write a run summary (.json, .yaml or .yml)")

	// Performance
	fs.IntP(config.KeyThreads, "t", 0, "worker threads (0 = all CPUs)")
}

// Bind makes viper read every setting flag from fs.
func Bind(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, k := range config.Keys {
		f := fs.Lookup(k)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(k, f); err != nil {
			return fmt.Errorf("bind --%s: %w", k, err)
		}
	}
	return nil
}

// Validate applies the CLI invariants. Width and window are range-checked
// here for friendlier messages; the dot plot builder checks them again.
func Validate(c config.Config) error {
	if c.FirstFile == "" {
		return errors.New("--first-file is required")
	}
	if c.Output == "" {
		return errors.New("--output is required")
	}
	if c.FirstFile == "-" && c.SecondFile == "-" {
		return errors.New("--first-file and --second-file cannot both read STDIN")
	}
	if c.Summary != "" && c.Summary == c.Output {
		return errors.New("--summary must differ from --output")
	}
	if c.Window < 1 {
		return errors.New("--window must be ≥ 1")
	}
	if math.IsNaN(c.Width) || math.IsInf(c.Width, 0) || c.Width <= 0 {
		return fmt.Errorf("--width must be a positive number, got %v", c.Width)
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.Verbose && c.Quiet {
		return errors.New("--verbose conflicts with --quiet")
	}
	format := runutil.ResolveFormat(c.Format, c.SVG, c.Output)
	if _, err := writers.Lookup(format); err != nil {
		return fmt.Errorf("invalid --format: %w", err)
	}
	return nil
}
