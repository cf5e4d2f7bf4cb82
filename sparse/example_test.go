// Package sparse_test contains runnable examples for the sparse package.
package sparse_test

import (
	"fmt"

	"github.com/nshimiyeemmy/sparsemat/sparse"
)

// ExampleMatrix_Set demonstrates the permissive growth policy: writing
// beyond the declared shape grows the matrix instead of failing.
func ExampleMatrix_Set() {
	m, _ := sparse.New(2, 2)
	_ = m.Set(5, 5, 1)

	fmt.Println(m.Rows(), m.Cols(), m.At(5, 5))
	// Output: 6 6 1
}

// ExampleAdd adds two same-shape matrices; overlapping cells accumulate,
// disjoint cells carry over.
func ExampleAdd() {
	a, _ := sparse.New(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(1, 1, 2)

	b, _ := sparse.New(2, 2)
	_ = b.Set(0, 0, 3)
	_ = b.Set(0, 1, 4)

	sum, _ := sparse.Add(a, b)
	for _, e := range sum.Entries() {
		fmt.Printf("(%d, %d, %d)\n", e.Row, e.Col, e.Value)
	}
	// Output:
	// (0, 0, 4)
	// (0, 1, 4)
	// (1, 1, 2)
}

// ExampleMul multiplies a 2×2 pair; rows with no matching inner-dimension
// cells contribute nothing to the product.
func ExampleMul() {
	a, _ := sparse.New(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(1, 1, 2)

	b, _ := sparse.New(2, 2)
	_ = b.Set(0, 0, 3)
	_ = b.Set(0, 1, 4)

	prod, _ := sparse.Mul(a, b)
	fmt.Println(prod)
	// Output: 2x2 nnz=2 (0,0,3) (0,1,4)
}
