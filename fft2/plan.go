package fft2

import (
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

// planPool hands out private CmplxFFT plans per transform length.
// CmplxFFT instances mutate internal scratch during execution, so a plan
// may be used by one goroutine at a time; the pool mutex additionally
// serializes plan creation, which keeps the collaborator safe even if the
// planner itself were not reentrant.
var planPool = struct {
	sync.Mutex
	free map[int][]*fourier.CmplxFFT
}{free: make(map[int][]*fourier.CmplxFFT)}

// borrowPlan returns a plan for length n, creating one under the pool
// lock when none is free.
func borrowPlan(n int) *fourier.CmplxFFT {
	planPool.Lock()
	defer planPool.Unlock()

	if fl := planPool.free[n]; len(fl) > 0 {
		p := fl[len(fl)-1]
		planPool.free[n] = fl[:len(fl)-1]

		return p
	}

	return fourier.NewCmplxFFT(n)
}

// releasePlan parks a plan for reuse.
func releasePlan(n int, p *fourier.CmplxFFT) {
	planPool.Lock()
	defer planPool.Unlock()

	planPool.free[n] = append(planPool.free[n], p)
}
