package utils

import (
	"errors"
	"fmt"
)

var ErrShapeMismatch = errors.New("shape mismatch")

// Arange returns the integers 0 through n-1.
func Arange(n int) []int {
	if n <= 0 {
		return []int{}
	}
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return values
}

// Reshape lays flat out row by row. Every row gets its own backing array.
func Reshape(flat []int, rows, cols int) ([][]int, error) {
	if rows < 0 || cols < 0 || rows*cols != len(flat) {
		return nil, fmt.Errorf("cannot reshape %d values into %dx%d: %w", len(flat), rows, cols, ErrShapeMismatch)
	}
	matrix := make([][]int, rows)
	for r := 0; r < rows; r++ {
		row := make([]int, cols)
		copy(row, flat[r*cols:(r+1)*cols])
		matrix[r] = row
	}
	return matrix, nil
}
