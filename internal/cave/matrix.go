// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package cave

import (
	"fmt"
)

// Matrix is a square {0,1} connectivity matrix stored row-major.
type Matrix struct {
	size  int
	cells []uint8
}

// NewMatrix returns an all-zero size×size matrix.
func NewMatrix(size int) *Matrix {
	if size < 0 {
		size = 0
	}
	return &Matrix{size: size, cells: make([]uint8, size*size)}
}

// Size returns the number of rows (and columns).
func (m *Matrix) Size() int {
	return m.size
}

// At returns the value at row n, column i.
func (m *Matrix) At(n, i int) uint8 {
	m.check(n, i)
	return m.cells[n*m.size+i]
}

// Set stores v (0 or 1) at row n, column i.
func (m *Matrix) Set(n, i int, v uint8) {
	m.check(n, i)
	if v > 1 {
		panic(fmt.Sprintf("Set: value %d is not 0 or 1", v))
	}
	m.cells[n*m.size+i] = v
}

// Cells returns the row-major values. The slice is shared with m.
func (m *Matrix) Cells() []uint8 {
	return m.cells
}

// Edges counts the cells set to 1.
func (m *Matrix) Edges() int {
	total := 0
	for _, v := range m.cells {
		total += int(v)
	}
	return total
}

// Symmetric reports whether At(n,i) == At(i,n) for every pair.
func (m *Matrix) Symmetric() bool {
	for n := 0; n < m.size; n++ {
		for i := n + 1; i < m.size; i++ {
			if m.cells[n*m.size+i] != m.cells[i*m.size+n] {
				return false
			}
		}
	}
	return true
}

// RowSum returns the number of ones in row n.
func (m *Matrix) RowSum(n int) int {
	m.check(n, 0)
	total := 0
	for _, v := range m.cells[n*m.size : (n+1)*m.size] {
		total += int(v)
	}
	return total
}

// ColSum returns the number of ones in column i.
func (m *Matrix) ColSum(i int) int {
	m.check(0, i)
	total := 0
	for n := 0; n < m.size; n++ {
		total += int(m.cells[n*m.size+i])
	}
	return total
}

func (m *Matrix) check(n, i int) {
	if n < 0 || n >= m.size || i < 0 || i >= m.size {
		panic(fmt.Sprintf("matrix index (%d,%d) out of range for size %d", n, i, m.size))
	}
}
