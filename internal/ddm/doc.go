// Package ddm simulates the two-boundary drift-diffusion decision process.
//
// The package is the stateless core of the simulator:
//
//   - [Params]: process configuration (a, v, z, s, dt)
//   - [Simulate]: one discretised trial until absorption or the step cap
//   - [Histogram]: class-conditional decision time counts
//   - [Distribution]: histogram plus the scaling the renderer needs
//
// # Example
//
//	src := ddm.NewSource(42)
//	p := ddm.Params{A: 1, V: 0.5, Z: 0.5, S: 0.1, Dt: 0.01}
//	trial := ddm.Simulate(p, src)
//	upper, lower := ddm.Histogram([]ddm.Trial{trial}, ddm.DefaultBins)
//
// # Randomness
//
// Every draw comes from the injected [Source]. A *rand.Rand satisfies it, and
// tests can pass a fixed sequence to make a trial fully deterministic.
package ddm
