// Package gravity advances point masses under mutual Newtonian gravity.
//
// A [System] holds two sets of bodies:
//
//   - massive bodies, which both exert and feel gravity
//   - tracers (satellites), which have zero mass and only feel gravity
//
// Each call to [System.Step] performs one explicit forward-Euler step with
// the caller's [Params]. The integrator is first order and not symplectic,
// so energy drifts over long runs; [System.Energy] exposes that drift but
// nothing corrects it.
//
// # Example
//
//	sys, _ := gravity.NewSystem(bodies, satellites)
//	p := gravity.Params{G: gravity.G, Dt: 86400}
//	err := sys.Run(ctx, p, 20, func(s *gravity.System) bool {
//	    redraw(s)
//	    return true
//	})
//
// # Failure
//
// A step that would divide by a zero separation returns a [*StepError]
// wrapping [ErrCoincident]. The system is left exactly as it was before the
// call.
package gravity
