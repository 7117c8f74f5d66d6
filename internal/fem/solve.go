package fem

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Result holds a solved chain. Slices indexed by node have len(elements)+1
// entries; slices indexed by element have len(elements).
type Result struct {
	Stiffness     []float64
	Global        *mat.SymDense
	Displacements []float64
	Reaction      float64
	AxialForces   []float64
	Stresses      []float64
}

// Nodes returns the node count.
func (r *Result) Nodes() int { return len(r.Displacements) }

// Assemble builds the (N+1)×(N+1) global stiffness matrix of the chain.
func Assemble(elements []Element) (*mat.SymDense, error) {
	if err := validate(elements); err != nil {
		return nil, err
	}
	return assemble(stiffnesses(elements)), nil
}

func stiffnesses(elements []Element) []float64 {
	k := make([]float64, len(elements))
	for i, e := range elements {
		k[i] = e.Stiffness()
	}
	return k
}

func assemble(k []float64) *mat.SymDense {
	n := len(k) + 1
	global := mat.NewSymDense(n, nil)
	for i, ki := range k {
		global.SetSym(i, i, global.At(i, i)+ki)
		global.SetSym(i, i+1, global.At(i, i+1)-ki)
		global.SetSym(i+1, i+1, global.At(i+1, i+1)+ki)
	}
	return global
}

// Solve computes nodal displacements for the chain with node 0 fixed.
// Inputs are not modified. A reduced matrix that is not positive definite
// or is too ill-conditioned to trust fails with ErrSingular.
func Solve(elements []Element) (*Result, error) {
	if err := validate(elements); err != nil {
		return nil, err
	}

	k := stiffnesses(elements)
	global := assemble(k)
	n := len(elements)

	forces := mat.NewVecDense(n, nil)
	for i, e := range elements {
		forces.SetVec(i, e.Force)
	}

	reduced := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			reduced.SetSym(i, j, global.At(i+1, j+1))
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(reduced); !ok {
		return nil, fmt.Errorf("%w: reduced matrix is not positive definite", ErrSingular)
	}
	if cond := chol.Cond(); cond > mat.ConditionTolerance {
		return nil, fmt.Errorf("%w: condition number %g", ErrSingular, cond)
	}

	var u mat.VecDense
	if err := chol.SolveVecTo(&u, forces); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	res := &Result{
		Stiffness:     k,
		Global:        global,
		Displacements: make([]float64, n+1),
		AxialForces:   make([]float64, n),
		Stresses:      make([]float64, n),
	}
	for i := 0; i < n; i++ {
		res.Displacements[i+1] = u.AtVec(i)
		res.Reaction -= elements[i].Force
	}
	for i, e := range elements {
		res.AxialForces[i] = k[i] * (res.Displacements[i+1] - res.Displacements[i])
		if e.Area != 0 {
			res.Stresses[i] = res.AxialForces[i] / e.Area
		}
	}
	return res, nil
}
