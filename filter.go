package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jalad-shrimali/gtrc-filter/config"
	"github.com/jalad-shrimali/gtrc-filter/routing"
	"github.com/jalad-shrimali/gtrc-filter/spc"
)

/* ──────────── one log file → one report ──────────── */

// convertFile checks the input kind and the reference first, then runs
// the pipeline and stores the report. It returns the report path.
func convertFile(ctx context.Context, cfg *config.Config, opt options) (string, error) {
	if err := routing.CheckInputKind(opt.input, cfg.Input.Kinds); err != nil {
		return "", err
	}

	names, closeRef, err := openReference(ctx, cfg.Reference)
	if err != nil {
		return "", err
	}
	defer closeRef()

	raw, err := os.ReadFile(opt.input)
	if err != nil {
		return "", err
	}
	res := routing.Process(raw, names)

	if cfg.Output.KeepCleaned {
		p := routing.CleanedPath(opt.input)
		if err := routing.WriteCleanedFile(p, res.Cleaned); err != nil {
			return "", fmt.Errorf("write cleaned lines: %w", err)
		}
		slog.Debug("cleaned lines kept", "path", p, "lines", len(res.Cleaned))
	}

	out := opt.output
	if out == "" {
		if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
			return "", err
		}
		out = routing.ReportPath(cfg.Output.Dir, opt.input)
	}
	if err := routing.WriteReportFile(out, res.Records); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	psp, ssp := res.Resolved()
	slog.Info("routing log converted",
		"input", filepath.Base(opt.input),
		"records", len(res.Records),
		"psp_named", psp,
		"ssp_named", ssp,
	)
	return out, nil
}

// openReference prefers the SQLite store when one is configured.
func openReference(ctx context.Context, ref config.ReferenceConfig) (spc.Lookuper, func(), error) {
	if ref.DB != "" {
		st, err := routing.OpenReferenceStore(ctx, ref.DB)
		if err != nil {
			return nil, nil, err
		}
		if n, err := st.Count(ctx); err == nil {
			slog.Debug("spc store opened", "path", ref.DB, "codes", n)
		}
		return st, func() { st.Close() }, nil
	}

	t, err := routing.LoadReference(ref.File)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("spc file loaded", "path", ref.File, "codes", len(t))
	return t, func() {}, nil
}

// importReference copies the SPC text file into a SQLite store.
func importReference(ctx context.Context, file, db string) error {
	t, err := routing.LoadReference(file)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(db); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := spc.Import(ctx, db, t); err != nil {
		return err
	}
	slog.Info("spc store written", "path", db, "codes", len(t))
	return nil
}
