// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dnadotplot/core/dotplot"
	"dnadotplot/core/fasta"
	"dnadotplot/internal/output"
	"dnadotplot/internal/runutil"
	"dnadotplot/internal/version"
	"dnadotplot/internal/writers"
	"dnadotplot/pkg/api"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitFailure     = 3
	ExitInterrupted = 130
)

type Options struct {
	FirstFile  string
	FirstName  string
	SecondFile string
	SecondName string

	Width    float64
	Window   int
	RevCompl bool
	Threads  int

	Output  string
	Format  string
	SVG     bool
	Summary string
}

// inputs holds the two records of one comparison.
type inputs struct {
	first, second fasta.Record
	file2         string
	self          bool
}

func loadInputs(ctx context.Context, o Options) (inputs, error) {
	file2, name2, self := runutil.SecondInput(o.FirstFile, o.FirstName, o.SecondFile, o.SecondName)
	in := inputs{file2: file2, self: self}

	switch {
	case self:
		rec, err := fasta.ReadRecord(ctx, o.FirstFile, o.FirstName)
		if err != nil {
			return in, err
		}
		in.first, in.second = rec, rec
	case file2 == o.FirstFile:
		// one pass, so STDIN can supply both records
		recs, err := fasta.ReadRecords(ctx, o.FirstFile, o.FirstName, name2)
		if err != nil {
			return in, err
		}
		in.first, in.second = recs[0], recs[1]
	default:
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			rec, err := fasta.ReadRecord(gctx, o.FirstFile, o.FirstName)
			in.first = rec
			return err
		})
		g.Go(func() error {
			rec, err := fasta.ReadRecord(gctx, file2, name2)
			in.second = rec
			return err
		})
		if err := g.Wait(); err != nil {
			return in, err
		}
	}
	return in, nil
}

// Run loads both sequences, builds the match matrix, renders it and writes
// the optional summary. It returns the process exit code.
func Run(ctx context.Context, stdout io.Writer, log *zap.Logger, o Options) int {
	start := time.Now()
	format := runutil.ResolveFormat(o.Format, o.SVG, o.Output)

	in, err := loadInputs(ctx, o)
	if err != nil {
		return fail(log, "load sequences", err)
	}
	log.Debug("sequences loaded",
		zap.String("seq1", in.first.ID), zap.Int("len1", len(in.first.Seq)),
		zap.String("seq2", in.second.ID), zap.Int("len2", len(in.second.Seq)),
		zap.Bool("self", in.self))

	workers := runutil.EffectiveThreads(o.Threads)
	m, err := dotplot.Build(in.first.Seq, in.second.Seq, dotplot.Config{
		Width:             o.Width,
		Window:            o.Window,
		ReverseComplement: o.RevCompl,
		Workers:           workers,
	})
	if err != nil {
		return fail(log, "build matrix", err)
	}
	counts := m.Counts()
	log.Debug("matrix built",
		zap.Int("grid", m.Size), zap.Int("workers", workers),
		zap.Int("forward", counts.Forward), zap.Int("revcompl", counts.ReverseComplement))
	if counts.Forward+counts.ReverseComplement == 0 {
		log.Warn("no matches found", zap.Int("window", o.Window))
	}

	if err := render(stdout, o.Output, format, m); err != nil {
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		return fail(log, "render", err)
	}

	if o.Summary != "" {
		s := api.SummaryV1{
			Version:                version.Version,
			Seq1:                   api.SequenceV1{Source: o.FirstFile, ID: in.first.ID, Length: len(in.first.Seq)},
			Seq2:                   api.SequenceV1{Source: in.file2, ID: in.second.ID, Length: len(in.second.Seq)},
			SelfComparison:         in.self,
			Width:                  o.Width,
			Window:                 o.Window,
			ReverseComplement:      o.RevCompl,
			GridSize:               m.Size,
			ForwardCells:           counts.Forward,
			ReverseComplementCells: counts.ReverseComplement,
			Format:                 format,
			Output:                 o.Output,
			ElapsedMS:              time.Since(start).Milliseconds(),
		}
		if err := output.WriteSummary(o.Summary, s); err != nil {
			return fail(log, "summary", err)
		}
	}

	log.Info("dot plot written",
		zap.String("output", o.Output), zap.String("format", format),
		zap.Int("grid", m.Size), zap.Duration("elapsed", time.Since(start)))
	if o.Output != fasta.Stdin {
		if _, err := fmt.Fprintf(stdout, "Dot plot saved to %s\n", o.Output); err != nil && !writers.IsBrokenPipe(err) {
			return fail(log, "report", err)
		}
	}
	return ExitOK
}

// render writes the matrix to path ("-" is stdout). A failed file is removed.
func render(stdout io.Writer, path, format string, m *dotplot.Matrix) (err error) {
	if path == fasta.Stdin {
		bw := bufio.NewWriter(stdout)
		if err := writers.Render(format, bw, m); err != nil {
			return err
		}
		return bw.Flush()
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	bw := bufio.NewWriter(fh)
	if err := writers.Render(format, bw, m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// fail logs err and classifies it into an exit code.
func fail(log *zap.Logger, stage string, err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		log.Warn("interrupted", zap.String("stage", stage))
		return ExitInterrupted
	case errors.Is(err, dotplot.ErrInvalidConfig), errors.Is(err, fasta.ErrNotFound):
		log.Error(stage+" failed", zap.Error(err))
		return ExitUsage
	}
	log.Error(stage+" failed", zap.Error(err))
	return ExitFailure
}
