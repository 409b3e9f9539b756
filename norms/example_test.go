package norms_test

import (
	"fmt"
	"math"

	"github.com/cvxgraph/cvxgraph/expr"
	"github.com/cvxgraph/cvxgraph/matrix"
	"github.com/cvxgraph/cvxgraph/norms"
)

// ExampleNorm demonstrates the factory routing and a Euclidean evaluation.
//
// Scenario:
//
//	Build ‖x‖₂ over a 2-vector and evaluate it at the classic (3,4) point.
func ExampleNorm() {
	x := expr.NewVariable("x", 2, 1)

	atom, err := norms.Norm(x, 2, nil)
	if err != nil {
		fmt.Println("construction failed:", err)

		return
	}

	point, _ := matrix.FromColumn([]float64{3, 4})
	out, _ := atom.Evaluate(point)
	val, _ := out.At(0, 0)

	fmt.Println(atom.Name())
	fmt.Println(val)
	// Output:
	// PNorm(x, 2)
	// 5
}

// ExampleNorm_routing shows the dedicated atoms behind p=1 and p=∞.
func ExampleNorm_routing() {
	x := expr.NewVariable("x", 3, 1)

	one, _ := norms.Norm(x, 1, nil)
	inf, _ := norms.Norm(x, math.Inf(1), nil)

	fmt.Println(one.Name(), one.IsPiecewiseLinear())
	fmt.Println(inf.Name(), inf.IsPiecewiseLinear())
	// Output:
	// OneNorm(x) true
	// InfNorm(x) true
}

// ExamplePNorm_Gradient walks the subgradient surface: a regular point, the
// origin, and a point outside the concave branch's domain.
func ExamplePNorm_Gradient() {
	x := expr.NewVariable("x", 2, 1)

	euclid, _ := norms.NewPNorm(x, 2, nil)
	point, _ := matrix.FromColumn([]float64{3, 4})
	grad, ok, _ := euclid.Gradient(point)
	fmt.Println("at (3,4):", grad.Flatten(), ok)

	origin, _ := matrix.FromColumn([]float64{0, 0})
	grad, ok, _ = euclid.Gradient(origin)
	fmt.Println("at origin:", grad.Flatten(), ok)

	sqrtish, _ := norms.NewPNorm(x, 0.5, nil)
	edge, _ := matrix.FromColumn([]float64{0, 1})
	_, ok, _ = sqrtish.Gradient(edge)
	fmt.Println("p=1/2 at boundary:", ok)
	// Output:
	// at (3,4): [0.6 0.8] true
	// at origin: [0 0] true
	// p=1/2 at boundary: false
}

// ExamplePNorm_Domain shows the implicit constraint synthesized for 0<p<1.
func ExamplePNorm_Domain() {
	x := expr.NewVariable("x", 4, 1)

	atom, _ := norms.NewPNorm(x, 0.5, nil)
	for _, c := range atom.Domain() {
		fmt.Println(c)
	}
	// Output:
	// x >= 0
}
