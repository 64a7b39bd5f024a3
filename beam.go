package beam

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/beam/core"
	"github.com/katalvlaran/beam/generator"
	"github.com/katalvlaran/beam/localise"
	"github.com/katalvlaran/beam/parser"
)

// Traversal strategies accepted by Ordering and WithOrder.
const (
	OrderCanonical      = "canonical"
	OrderHydrogenFirst  = "hydrogen-first"
	OrderHighOrderFirst = "high-order-first"
)

// ErrUnknownOrdering is returned for a strategy name Ordering does not know.
var ErrUnknownOrdering = errors.New("beam: unknown ordering")

var orderings = map[string]core.EdgeComparator{
	OrderCanonical:      core.CanonicalFirst,
	OrderHydrogenFirst:  core.VisitHydrogenFirst,
	OrderHighOrderFirst: core.VisitHighOrderFirst,
}

// Ordering chains the named strategies; later names break ties of earlier
// ones. No names yields nil, which leaves the written order untouched.
func Ordering(names ...string) (core.EdgeComparator, error) {
	if len(names) == 0 {
		return nil, nil
	}
	cmps := make([]core.EdgeComparator, 0, len(names))
	for _, name := range names {
		c, ok := orderings[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOrdering, name)
		}
		cmps = append(cmps, c)
	}
	return core.Chain(cmps...), nil
}

// FromSmiles parses s.
func FromSmiles(s string, opts ...parser.Option) (*core.Graph, error) {
	return parser.Parse(s, opts...)
}

// ToSmiles writes g.
func ToSmiles(g *core.Graph, opts ...generator.Option) (string, error) {
	return generator.Generate(g, opts...)
}

// Kekule returns the Kekulé form of g.
func Kekule(g *core.Graph) (*core.Graph, error) {
	return localise.Kekulize(g)
}

// NormaliseOptions configures Normalise.
type NormaliseOptions struct {
	Kekulize      bool
	Strict        bool
	AromaticBonds bool
	Order         []string // strategy names, see Ordering
}

// NormaliseOption configures Normalise.
type NormaliseOption func(*NormaliseOptions)

// WithKekule writes the Kekulé form.
func WithKekule() NormaliseOption {
	return func(o *NormaliseOptions) { o.Kekulize = true }
}

// WithStrict parses with parser.WithStrict.
func WithStrict() NormaliseOption {
	return func(o *NormaliseOptions) { o.Strict = true }
}

// WithAromaticBonds writes ':' between aromatic atoms.
func WithAromaticBonds() NormaliseOption {
	return func(o *NormaliseOptions) { o.AromaticBonds = true }
}

// WithOrder sorts every adjacency list with the named strategies before
// writing.
func WithOrder(names ...string) NormaliseOption {
	return func(o *NormaliseOptions) { o.Order = names }
}

// Normalise parses smiles and writes it back in the configured form. The
// title, if any, is dropped; use FromSmiles and Graph.Title to keep it.
func Normalise(smiles string, opts ...NormaliseOption) (string, error) {
	var o NormaliseOptions
	for _, fn := range opts {
		fn(&o)
	}
	cmp, err := Ordering(o.Order...)
	if err != nil {
		return "", err
	}

	var popts []parser.Option
	if o.Kekulize {
		popts = append(popts, parser.WithKekulize())
	}
	if o.Strict {
		popts = append(popts, parser.WithStrict())
	}
	g, err := parser.Parse(smiles, popts...)
	if err != nil {
		return "", err
	}
	g.Sort(cmp)

	var gopts []generator.Option
	if o.AromaticBonds {
		gopts = append(gopts, generator.WithAromaticBonds())
	}
	return generator.Generate(g, gopts...)
}
