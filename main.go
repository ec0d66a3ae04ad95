// Command gtrc-filter converts a Winfiol GTRC routing log into an Excel
// route report, naming the PSP/SSP signalling points from the SPC table.
//
//	gtrc-filter [flags] <routing.log>
//	gtrc-filter -import-spc spc.db [-spc SPC.txt]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jalad-shrimali/gtrc-filter/config"
	"github.com/jalad-shrimali/gtrc-filter/logging"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

type options struct {
	input     string
	output    string
	importSPC string
}

// run is main without the exit; it returns the process status.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("gtrc-filter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		envFile     = fs.String("env", ".env", "optional .env file seeding the environment")
		spcFile     = fs.String("spc", "", "SPC reference file (overrides SPC_FILE)")
		spcDB       = fs.String("spc-db", "", "SQLite SPC store used instead of the text file (overrides SPC_DB)")
		outDir      = fs.String("out-dir", "", "report directory (overrides OUTPUT_DIR)")
		keepCleaned = fs.Bool("keep-cleaned", false, "also write <input>_cleaned<ext>")
		logLevel    = fs.String("log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
		logFormat   = fs.String("log-format", "", "text or json (overrides LOG_FORMAT)")
		opt         options
	)
	fs.StringVar(&opt.output, "o", "", "report path (default <out-dir>/<input base>.xlsx)")
	fs.StringVar(&opt.importSPC, "import-spc", "", "load the SPC file into this SQLite store and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: gtrc-filter [flags] <routing.log>\n       gtrc-filter -import-spc <spc.db> [-spc SPC.txt]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if _, err := config.LoadEnvFile(*envFile); err != nil {
		fmt.Fprintf(stderr, "read %s: %v\n", *envFile, err)
		return 1
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "spc":
			cfg.Reference.File = *spcFile
		case "spc-db":
			cfg.Reference.DB = *spcDB
		case "out-dir":
			cfg.Output.Dir = *outDir
		case "keep-cleaned":
			cfg.Output.KeepCleaned = *keepCleaned
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-format":
			cfg.Logging.Format = *logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	slog.SetDefault(logging.New(stderr, cfg.Logging.Level, cfg.Logging.Format))

	if opt.importSPC != "" {
		if err := importReference(ctx, cfg.Reference.File, opt.importSPC); err != nil {
			slog.Error("spc import failed", "error", err)
			return 1
		}
		return 0
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	opt.input = fs.Arg(0)

	out, err := convertFile(ctx, cfg, opt)
	if err != nil {
		slog.Error("conversion failed", "input", opt.input, "error", err)
		return 1
	}
	slog.Info("report written", "output", out)
	return 0
}
