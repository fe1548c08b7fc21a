// SPDX-License-Identifier: MIT
// Package: cld/sim
//
// simulation.go — synchronous discrete-time propagation over a core.Graph.
//
// Update rule, for every node n at each step:
//
//	new(n) = v(n) + Σ_{(src,e) ∈ inbound(n)} (v(src) − target(src)) · α · sign(e)
//
// where sign(e) is −1 for opposite edges and +1 otherwise, target defaults
// to 0, and the result is rounded to two decimals. All contributions read
// the previous step's values, so node order never affects the outcome.

package sim

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/cld/core"
)

// Sentinel errors of the simulator.
var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("sim: graph is nil")

	// ErrUnknownNode indicates a configuration entry or query names a node
	// that is not in the simulated graph.
	ErrUnknownNode = errors.New("sim: unknown node")

	// ErrNegativeSteps indicates Run was asked for a negative step count.
	ErrNegativeSteps = errors.New("sim: negative step count")
)

// precision is the number of decimals kept after every step.
const precision = 100.0

// Simulation holds the evolving node values and their histories.
//
// The inbound structure of the graph is captured at New; later changes to
// the graph are not observed.
type Simulation struct {
	order   []string                  // node names in graph order
	inbound map[string][]core.Inbound // node → (source, edge) pairs
	values  map[string]float64        // current values
	history map[string][]float64      // history[n][0] is the initial value
	targets map[string]float64        // per-source means, missing = 0
	alpha   float64
	steps   int
	log     *zap.Logger
}

// New prepares a simulation of g.
//
// Every name in WithInitialValues or WithTargets must exist in g; otherwise
// New fails with ErrUnknownNode and returns no state.
func New(g *core.Graph, opts ...Option) (*Simulation, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := newSimConfig(opts...)

	// 1) Reject configuration naming absent nodes (sorted for stable errors).
	for _, name := range slices.Sorted(maps.Keys(cfg.initial)) {
		if _, ok := g.FindByName(name); !ok {
			return nil, fmt.Errorf("initial value for %q: %w", name, ErrUnknownNode)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(cfg.targets)) {
		if _, ok := g.FindByName(name); !ok {
			return nil, fmt.Errorf("target for %q: %w", name, ErrUnknownNode)
		}
	}

	// 2) Snapshot structure and seed values.
	nodes := g.Nodes()
	s := &Simulation{
		order:   make([]string, 0, len(nodes)),
		inbound: make(map[string][]core.Inbound, len(nodes)),
		values:  make(map[string]float64, len(nodes)),
		history: make(map[string][]float64, len(nodes)),
		targets: cfg.targets,
		alpha:   cfg.edgeAlpha,
		log:     cfg.logger,
	}
	for _, n := range nodes {
		in, err := g.InboundNeighbors(n.Name)
		if err != nil {
			return nil, err
		}
		v, ok := cfg.initial[n.Name]
		if !ok {
			v = cfg.defaultValue
		}
		s.order = append(s.order, n.Name)
		s.inbound[n.Name] = in
		s.values[n.Name] = v
		s.history[n.Name] = []float64{v}
	}

	s.log.Debug("simulation created",
		zap.Int("nodes", len(s.order)),
		zap.Float64("edge_alpha", s.alpha),
		zap.Int("targets", len(s.targets)),
	)

	return s, nil
}

// Step advances the simulation by one synchronous update.
func (s *Simulation) Step() {
	next := make(map[string]float64, len(s.order))
	for _, name := range s.order {
		v := s.values[name]
		for _, in := range s.inbound[name] {
			src := in.Source.Name
			delta := (s.values[src] - s.targets[src]) * s.alpha
			if in.Edge.Opposite {
				delta = -delta
			}
			v += delta
		}
		next[name] = round(v)
	}

	s.values = next
	for _, name := range s.order {
		s.history[name] = append(s.history[name], next[name])
	}
	s.steps++

	s.log.Debug("simulation step", zap.Int("step", s.steps))
}

// Run advances the simulation by steps updates.
func (s *Simulation) Run(steps int) error {
	if steps < 0 {
		return fmt.Errorf("Run(%d): %w", steps, ErrNegativeSteps)
	}
	for i := 0; i < steps; i++ {
		s.Step()
	}

	return nil
}

// Steps returns the number of updates applied so far.
func (s *Simulation) Steps() int { return s.steps }

// Nodes returns the simulated node names in graph order.
func (s *Simulation) Nodes() []string { return slices.Clone(s.order) }

// Value returns the current value of name.
func (s *Simulation) Value(name string) (float64, error) {
	v, ok := s.values[name]
	if !ok {
		return 0, fmt.Errorf("Value(%q): %w", name, ErrUnknownNode)
	}

	return v, nil
}

// Values returns a copy of every current value.
func (s *Simulation) Values() map[string]float64 { return maps.Clone(s.values) }

// History returns a copy of the value series of name; index 0 is the
// initial value and the length is Steps()+1.
func (s *Simulation) History(name string) ([]float64, error) {
	h, ok := s.history[name]
	if !ok {
		return nil, fmt.Errorf("History(%q): %w", name, ErrUnknownNode)
	}

	return slices.Clone(h), nil
}

// Histories returns a copy of every node's series.
func (s *Simulation) Histories() map[string][]float64 {
	out := make(map[string][]float64, len(s.history))
	for name, h := range s.history {
		out[name] = slices.Clone(h)
	}

	return out
}

// Downsample resamples the history of name into bins means (see Downsample).
func (s *Simulation) Downsample(name string, bins int) ([]float64, error) {
	h, ok := s.history[name]
	if !ok {
		return nil, fmt.Errorf("Downsample(%q): %w", name, ErrUnknownNode)
	}

	return Downsample(h, bins)
}

func round(v float64) float64 { return math.Round(v*precision) / precision }
