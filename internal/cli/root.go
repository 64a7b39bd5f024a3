package cli

import (
	"context"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Flag names shared by the subcommands.
const (
	flagConfig        = "config"
	flagWorkers       = "workers"
	flagVerbose       = "verbose"
	flagOrder         = "order"
	flagFailFast      = "fail-fast"
	flagStrict        = "strict"
	flagAromaticBonds = "aromatic-bonds"
)

// app carries the resolved configuration from the root command's pre-run
// hook into the subcommands.
type app struct {
	cfg Config
}

// NewRootCommand builds the beam command tree.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: DefaultConfig()}
	root := &cobra.Command{
		Use:   "beam",
		Short: "Read, normalise and Kekulize SMILES.",
		Long: "beam reads SMILES line notation, one molecule per line, and writes it back\n" +
			"normalised, Kekulized, validated or summarised. Input files ending in .zst\n" +
			"are decompressed on the fly; no file or \"-\" reads standard input.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "YAML configuration file")
	pf.IntP(flagWorkers, "j", 0, "number of parallel workers (default: one per CPU)")
	pf.BoolP(flagVerbose, "v", false, "increase logging verbosity")
	pf.StringSlice(flagOrder, nil, "traversal order: canonical, hydrogen-first, high-order-first (comma separated)")
	pf.Bool(flagFailFast, false, "stop at the first line that fails")
	pf.Bool(flagStrict, false, "reject non-standard SMILES and impossible valences")
	pf.Bool(flagAromaticBonds, false, "write ':' between aromatic atoms")

	root.AddCommand(
		a.normaliseCmd(),
		a.kekuleCmd(),
		a.validateCmd(),
		a.statsCmd(),
	)
	return root
}

// Execute runs the beam command with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// setup merges the config file and flags, then configures logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := DefaultConfig()
	if path, _ := cmd.Flags().GetString(flagConfig); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if err := cfg.override(cmd.Flags()); err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	a.cfg = cfg

	configureLogging(cmd.ErrOrStderr(), cfg.Verbose)
	log.WithFields(log.Fields{
		"workers": cfg.Workers,
		"order":   cfg.Order,
		"strict":  cfg.Strict,
	}).Debug("configuration")
	return nil
}

// configureLogging sends logrus output to w, with colours only when w is a
// terminal.
func configureLogging(w io.Writer, verbose bool) {
	colours := false
	if f, ok := w.(*os.File); ok {
		colours = term.IsTerminal(int(f.Fd()))
	}
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{
		DisableColors:    !colours,
		DisableTimestamp: true,
	})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
