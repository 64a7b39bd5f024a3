// Package cli implements the beam command: normalise, kekule, validate and
// stats over files of SMILES, one molecule per line.
//
// Lines are processed on a pool of workers and written back in input order.
// Settings come from an optional YAML file (--config) overridden by flags:
//
//	workers: 8
//	order: [hydrogen-first, high-order-first]
//	fail_fast: false
//	strict: true
//	aromatic_bonds: false
//	verbose: false
package cli
