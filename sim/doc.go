// Package sim runs a discrete-time numeric simulation over a causal-loop
// graph and records how every node's value evolves.
//
// Each step computes all new values from the previous ones (synchronous
// update): a node moves by the sum, over its inbound edges, of the source's
// deviation from its target times the influence coefficient, negated for
// opposite edges. Values are rounded to two decimals after every step.
//
//	s, err := sim.New(g,
//		sim.WithEdgeAlpha(0.1),
//		sim.WithInitialValues(map[string]float64{"Population": 10}),
//		sim.WithTargets(map[string]float64{"Population": 8}),
//	)
//	if err != nil { ... }
//	_ = s.Run(20)
//	series, _ := s.History("Population") // len 21, index 0 = initial value
//	bins, _ := s.Downsample("Population", 5)
//
// Configuration mistakes (names absent from the graph) fail in New, never
// in Run. Config/LoadConfig read the same settings from YAML.
//
// A Simulation is single-owner and performs no I/O.
package sim
