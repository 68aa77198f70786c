// Package fft2 is the layer-wise 2-D FFT collaborator of the SO(3)
// transform drivers: it applies an unnormalized 2-D DFT (or its inverse)
// independently to every layer of a contiguous stack of complex planes.
//
// The underlying 1-D transform is gonum's dsp/fourier CmplxFFT, following
// the sum convention: ForwardLayerwise computes Σ x·e^{−2πi·jk/n} along
// each axis and InverseLayerwise the conjugate sign, with no 1/n factor —
// a forward/inverse round trip multiplies a plane by rows·cols.
//
// # Planner contract
//
// CmplxFFT plans carry mutable scratch state and are not safe for
// concurrent use. All plan acquisition goes through a mutex-guarded pool
// keyed by transform length: plan creation is serialized even when plan
// execution fans out over worker goroutines, and returned plans are
// reused by later calls. The threads argument is advisory; layers are
// independent, and the implementation bounds the fan-out with an
// errgroup limit.
//
// # Errors
//
//	ErrBadDims - non-positive dimensions, or a buffer whose length does
//	             not equal cols·rows·lays.
package fft2
