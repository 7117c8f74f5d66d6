// Package fem solves one-dimensional chains of axial bar elements.
//
// Element i joins node i to node i+1 and carries its applied force at
// node i+1. Node 0 is fixed to the wall. [Solve] assembles the global
// stiffness matrix, removes the fixed row and column and solves the
// reduced system for the free nodal displacements.
//
//	res, err := fem.Solve([]fem.Element{
//	    {Area: 1, Modulus: 200e9, Length: 2, Force: 0},
//	    {Area: 0.5, Modulus: 200e9, Length: 1, Force: 1e4},
//	})
//	// res.Displacements[0] == 0
package fem
