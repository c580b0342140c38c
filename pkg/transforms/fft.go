// Package transforms provides spectral utilities for 2-D diagnostic
// fields: forward/inverse Fourier transforms and singular value
// decomposition.
package transforms

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ForwardFFT2D computes the forward fast Fourier transform of a 2-D
// real-valued field stored row-major as [ny, nx]. The result is the full
// complex coefficient matrix in the same layout.
func ForwardFFT2D(varin []float64, ny, nx int) ([]complex128, error) {
	if ny < 1 || nx < 1 || len(varin) != ny*nx {
		return nil, fmt.Errorf("field length %d does not match %dx%d", len(varin), ny, nx)
	}

	out := make([]complex128, ny*nx)
	for i, v := range varin {
		out[i] = complex(v, 0)
	}

	// Transform rows, then columns.
	rowFFT := fourier.NewCmplxFFT(nx)
	row := make([]complex128, nx)
	for j := 0; j < ny; j++ {
		copy(row, out[j*nx:(j+1)*nx])
		rowFFT.Coefficients(out[j*nx:(j+1)*nx], row)
	}

	colFFT := fourier.NewCmplxFFT(ny)
	col := make([]complex128, ny)
	dst := make([]complex128, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			col[j] = out[j*nx+i]
		}
		colFFT.Coefficients(dst, col)
		for j := 0; j < ny; j++ {
			out[j*nx+i] = dst[j]
		}
	}
	return out, nil
}

// InverseFFT2D computes the inverse fast Fourier transform of a 2-D complex
// coefficient matrix, returning the real part of the reconstructed field.
func InverseFFT2D(varin []complex128, ny, nx int) ([]float64, error) {
	if ny < 1 || nx < 1 || len(varin) != ny*nx {
		return nil, fmt.Errorf("coefficient length %d does not match %dx%d", len(varin), ny, nx)
	}

	work := make([]complex128, len(varin))
	copy(work, varin)

	colFFT := fourier.NewCmplxFFT(ny)
	col := make([]complex128, ny)
	dst := make([]complex128, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			col[j] = work[j*nx+i]
		}
		colFFT.Sequence(dst, col)
		for j := 0; j < ny; j++ {
			work[j*nx+i] = dst[j]
		}
	}

	rowFFT := fourier.NewCmplxFFT(nx)
	row := make([]complex128, nx)
	for j := 0; j < ny; j++ {
		copy(row, work[j*nx:(j+1)*nx])
		rowFFT.Sequence(work[j*nx:(j+1)*nx], row)
	}

	// gonum transforms are unnormalized; scale by the grid size.
	scale := 1.0 / float64(ny*nx)
	out := make([]float64, len(work))
	for i, c := range work {
		out[i] = real(c) * scale
	}
	return out, nil
}
