package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/beam"
	"github.com/katalvlaran/beam/chemgraph"
	"github.com/katalvlaran/beam/core"
	"github.com/katalvlaran/beam/dfs"
	"github.com/katalvlaran/beam/generator"
	"github.com/katalvlaran/beam/parser"
)

// ErrInvalid is returned by validate when at least one line failed, and by
// the other commands when --fail-fast stopped them.
var ErrInvalid = errors.New("cli: invalid input")

func (a *app) normaliseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "normalise [files]",
		Aliases: []string{"normalize"},
		Short:   "Parse each line and write it back.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, a.rewrite(false))
		},
	}
}

func (a *app) kekuleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kekule [files]",
		Short: "Write each line with explicit single and double bonds.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, a.rewrite(true))
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [files]",
		Short: "Report lines that do not parse; exit status 1 if any.",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := readRecords(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			results := process(cmd.Context(), a.cfg.Workers, a.cfg.FailFast, recs,
				func(r record) (string, error) {
					_, err := a.parse(r.text, false)
					return "", err
				})

			w := cmd.OutOrStdout()
			bad := 0
			for _, res := range results {
				if !res.done {
					return a.incomplete(cmd.Context(), results)
				}
				if res.err != nil {
					bad++
					fmt.Fprintf(w, "%s: %v\n", res.rec, res.err)
				}
			}
			log.WithFields(log.Fields{"lines": len(recs), "invalid": bad}).Info("validated")
			if bad > 0 {
				return fmt.Errorf("%w: %d of %d lines", ErrInvalid, bad, len(recs))
			}
			return nil
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [files]",
		Short: "Count atoms, bonds, fragments, rings, stereocentres and aromatic atoms per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func(r record) (string, error) {
				g, err := a.parse(r.text, false)
				if err != nil {
					return "", err
				}
				s, err := Summarise(g)
				if err != nil {
					return "", err
				}
				return withTitle(s.String(), g.Title()), nil
			})
		},
	}
}

// run reads the input, applies fn on the worker pool and writes the
// successful results in input order. Failed lines are logged; with
// --fail-fast the first one ends the output and the command fails.
func (a *app) run(cmd *cobra.Command, args []string, fn func(record) (string, error)) error {
	recs, err := readRecords(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	log.WithField("lines", len(recs)).Debug("read input")

	results := process(cmd.Context(), a.cfg.Workers, a.cfg.FailFast, recs, fn)
	return a.emit(cmd.Context(), cmd.OutOrStdout(), results)
}

// emit writes results up to the first one that was never processed. A
// short run is an error: the fail-fast failure that stopped it, otherwise
// the cancellation of ctx.
func (a *app) emit(ctx context.Context, w io.Writer, results []result) error {
	failed := 0
	for _, res := range results {
		if !res.done {
			return a.incomplete(ctx, results)
		}
		if res.err != nil {
			failed++
			log.WithField("input", res.rec.String()).Warn(res.err)
			if a.cfg.FailFast {
				return fmt.Errorf("%w: %s: %w", ErrInvalid, res.rec, res.err)
			}
			continue
		}
		if _, err := fmt.Fprintln(w, res.text); err != nil {
			return err
		}
	}
	if failed > 0 {
		log.WithField("failed", failed).Info("done with errors")
	}
	return nil
}

// incomplete explains why process stopped before the last record. With
// --fail-fast a later record may fail first and cancel the earlier ones.
func (a *app) incomplete(ctx context.Context, results []result) error {
	if a.cfg.FailFast {
		for _, res := range results {
			if res.done && res.err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalid, res.rec, res.err)
			}
		}
	}
	if err := ctx.Err(); err != nil {
		log.WithError(err).Warn("interrupted")
		return fmt.Errorf("cli: interrupted: %w", err)
	}
	return errors.New("cli: run stopped early")
}

// rewrite parses a record, optionally Kekulizes it and writes it back with
// its title.
func (a *app) rewrite(kekule bool) func(record) (string, error) {
	return func(r record) (string, error) {
		g, err := a.parse(r.text, kekule)
		if err != nil {
			return "", err
		}
		s, err := a.write(g)
		if err != nil {
			return "", err
		}
		return withTitle(s, g.Title()), nil
	}
}

func (a *app) parse(text string, kekule bool) (*core.Graph, error) {
	var opts []parser.Option
	if a.cfg.Strict {
		opts = append(opts, parser.WithStrict())
	}
	if kekule {
		opts = append(opts, parser.WithKekulize())
	}
	return beam.FromSmiles(text, opts...)
}

func (a *app) write(g *core.Graph) (string, error) {
	cmp, err := beam.Ordering(a.cfg.Order...)
	if err != nil {
		return "", err
	}
	g.Sort(cmp)
	var opts []generator.Option
	if a.cfg.AromaticBonds {
		opts = append(opts, generator.WithAromaticBonds())
	}
	return beam.ToSmiles(g, opts...)
}

func withTitle(s, title string) string {
	if title == "" {
		return s
	}
	return s + " " + title
}

// Stats summarises one molecule.
type Stats struct {
	Atoms         int
	Bonds         int
	Fragments     int
	Rings         int
	Stereocentres int
	Aromatic      int
}

// Summarise counts the parts of g. Rings is the cyclomatic number.
func Summarise(g *core.Graph) (Stats, error) {
	rings, err := dfs.CountRings(g)
	if err != nil {
		return Stats{}, err
	}
	s := Stats{
		Atoms:         g.Order(),
		Bonds:         g.Size(),
		Fragments:     len(chemgraph.Fragments(g)),
		Rings:         rings,
		Stereocentres: len(g.Topologies()),
	}
	for v := 0; v < g.Order(); v++ {
		if g.Atom(v).Aromatic {
			s.Aromatic++
		}
	}
	return s, nil
}

func (s Stats) String() string {
	return fmt.Sprintf("atoms=%d bonds=%d fragments=%d rings=%d stereo=%d aromatic=%d",
		s.Atoms, s.Bonds, s.Fragments, s.Rings, s.Stereocentres, s.Aromatic)
}
