// Package sofft implements fast forward and inverse Fourier transforms on
// the rotation group SO(3) — the DSOFT algorithm of Kostelec & Rockmore
// ("FFTs on the Rotation Group").
//
// 🚀 What is sofft?
//
//	A pure-Go library that turns a band-limited function sampled on a
//	2B×2B×2B equispaced Euler-angle grid (α, β, γ) into its Wigner-D
//	Fourier coefficients f̂ˡ(M,M′) — and back:
//		• Forward transform (DSOFT): grid → coefficients
//		• Inverse transform (IDSOFT): coefficients → grid
//		• Discrete Wigner transform kernel: stable three-term recurrence,
//		  quadrature weights, eightfold symmetry reuse
//		• Layer-wise 2-D FFTs over gonum's dsp/fourier
//		• Fork-join parallel order enumeration with deterministic output
//
// ✨ Why choose sofft?
//
//   - Exact – the transform pair is an identity on band-limited inputs up
//     to floating-point round-off (round-trip residuals ≈ 1e-12 at B=32)
//   - Deterministic – parallel tasks write disjoint cells and perform no
//     reductions, so results are bit-equal for any thread count
//   - Pure Go – no cgo, no FFTW binding
//
// Under the hood, everything is organized in five subpackages:
//
//	dense/     — dense numeric containers: Matrix, CxMatrix, Vector, Grid3D, flips
//	dwt/       — quadrature weights + Wigner-d recurrence (the DWT kernel)
//	fft2/      — layer-wise 2-D FFT collaborator (gonum dsp/fourier)
//	soft/      — Coefficients container and the DSOFT / IDSOFT drivers
//	stopwatch/ — monotonic wall-clock timer for timing runs by hand
//
// Quick start:
//
//	fc, _ := soft.NewCoefficients(8)
//	soft.RandCoefficients(fc, soft.RandOptions{Min: -1, Max: 1})
//
//	grid, _ := dense.NewGrid3D(16) // 2B × 2B × 2B
//	_ = soft.IDSOFT(fc, grid, soft.DefaultOptions())
//
//	rec, _ := soft.NewCoefficients(8)
//	_ = soft.DSOFT(grid, rec, soft.DefaultOptions())
//	// rec ≈ fc
//
// See each package's doc.go for algorithm outlines, complexity and the
// exact error contracts.
package sofft
