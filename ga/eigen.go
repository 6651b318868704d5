// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

// Eigen is a type for extracting the eigenvalues and eigenvectors of a
// set of metric multivectors via a single Householder QR pass.
//
// This is a single-shot extraction, not an iterative algorithm: it is
// only correct for metric vectors that are already triangularizable by
// one Householder pass — the symmetric, diagonalizable metric vectors
// typical of GA use — rather than silently generalizing to an
// iterate-to-convergence eigensolver.
type Eigen struct {
	values  []Scalar
	vectors []MultiVector
}

// Factorize runs Householder QR once over vectors and extracts
// eigenvalues from R's diagonal (entry i is the i-th blade of the i-th
// column) and eigenvectors from Q.
func (e *Eigen) Factorize(g *Algebra, vectors []MultiVector) {
	var h Householder
	h.Factorize(g, vectors)
	r := h.RTo()
	e.values = eigenDiagonal(r)
	e.vectors = h.QTo()
}

// Values returns the extracted eigenvalues, one per input vector.
func (e *Eigen) Values() []Scalar { return e.values }

// Vectors returns the extracted eigenvectors, one per input vector.
func (e *Eigen) Vectors() []MultiVector { return e.vectors }

// eigenDiagonal extracts R's diagonal: entry i is the i-th blade
// (basis-vector-index-i component) of the i-th column.
func eigenDiagonal(r []MultiVector) []Scalar {
	diag := make([]Scalar, len(r))
	for i, col := range r {
		diag[i] = componentAt(col, i)
	}
	return diag
}
