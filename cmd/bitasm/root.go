package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ezrec/bitasm/asm"
	"github.com/ezrec/bitasm/codegen"
	"github.com/ezrec/bitasm/isa"
	"github.com/ezrec/bitasm/resolver"
	"github.com/ezrec/bitasm/translate"
)

var f = translate.From

var (
	ErrSourceMissing = errors.New(f("expected a single source file"))
)

type options struct {
	output    string
	isa       string
	listing   string
	layout    string
	logLevel  string
	verbose   bool
	mnemonics bool
}

func newRootCommand() (cmd *cobra.Command) {
	opts := &options{
		layout:   resolver.LAYOUT_UNITS.String(),
		logLevel: logrus.WarnLevel.String(),
	}

	cmd = &cobra.Command{
		Use:   filepath.Base(os.Args[0]) + " [options] SOURCE",
		Short: "Table driven assembler",
		Long: `Assembles SOURCE into a flat big-endian binary.

The instruction set is builtin, or loaded from a Starlark (.star) or
YAML (.yaml, .yml) file defining tables, instructions and pseudo.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loggingHook(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args)
		},
	}

	rootFlags(cmd.Flags(), opts)
	return
}

func rootFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default: SOURCE with a .bin extension)")
	flags.StringVar(&opts.isa, "isa", "", "instruction set file (.star, .yaml or .yml)")
	flags.StringVarP(&opts.listing, "listing", "l", "", "write a listing to FILE, or '-' for standard output")
	flags.StringVar(&opts.layout, "layout", opts.layout, "label layout: units or bytes")
	flags.StringVar(&opts.logLevel, "log-level", opts.logLevel, "log messages above specified level (debug, info, warn, error)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every assembler stage")
	flags.BoolVar(&opts.mnemonics, "mnemonics", false, "list the mnemonics of the instruction set and exit")
}

func loggingHook(opts *options) (err error) {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return
	}
	if opts.verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	return
}

// outputName replaces the extension of source with .bin.
func outputName(source string) string {
	ext := filepath.Ext(source)
	if ext == ".bin" {
		return source + ".bin"
	}
	return strings.TrimSuffix(source, ext) + ".bin"
}

// loadSet compiles the instruction set file, or the builtin set.
func loadSet(path string) (set *isa.Set, err error) {
	if len(path) == 0 {
		return isa.Builtin()
	}

	cfg, err := isa.LoadFile(path)
	if err != nil {
		return
	}

	set, err = isa.Compile(cfg)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}
	return
}

func run(stdout io.Writer, opts *options, args []string) (err error) {
	set, err := loadSet(opts.isa)
	if err != nil {
		return
	}

	if opts.mnemonics {
		for mnemonic := range set.Mnemonics() {
			fmt.Fprintln(stdout, mnemonic)
		}
		return
	}

	if len(args) != 1 {
		err = ErrSourceMissing
		return
	}
	source := args[0]

	layout, err := resolver.ParseLayout(opts.layout)
	if err != nil {
		return
	}

	assembler, err := asm.NewAssembler(set)
	if err != nil {
		return
	}
	assembler.Verbose = opts.verbose
	assembler.Layout = layout

	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	img, err := assembler.Assemble(source, inf)
	if err != nil {
		return
	}

	output := opts.output
	if len(output) == 0 {
		output = outputName(source)
	}
	err = os.WriteFile(output, img.Bytes, 0o644)
	if err != nil {
		return
	}

	err = writeListing(stdout, opts.listing, img)
	if err != nil {
		return
	}

	_, err = translate.Fprintf(stdout, "Assembled file: %v (%d bytes)\n", output, len(img.Bytes))
	return
}

func writeListing(stdout io.Writer, path string, img *codegen.Image) (err error) {
	switch path {
	case "":
		return
	case "-":
		return img.WriteListing(stdout)
	}

	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = img.WriteListing(ouf)
	if cerr := ouf.Close(); err == nil {
		err = cerr
	}
	return
}
