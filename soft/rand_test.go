package soft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sofft/soft"
)

// TestParseEngine covers the full supported name list and the unknown
// name error.
func TestParseEngine(t *testing.T) {
	names := map[string]soft.Engine{
		"default":       soft.EngineDefault,
		"minstd_rand":   soft.EngineMinstdRand,
		"minstd_rand0":  soft.EngineMinstdRand0,
		"mt19937":       soft.EngineMT19937,
		"mt19937_64":    soft.EngineMT19937_64,
		"ranlux24_base": soft.EngineRanlux24Base,
		"ranlux48_base": soft.EngineRanlux48Base,
		"ranlux24":      soft.EngineRanlux24,
		"ranlux48":      soft.EngineRanlux48,
		"knuth_b":       soft.EngineKnuthB,
	}
	for name, want := range names {
		e, err := soft.ParseEngine(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, e, name)
	}

	_, err := soft.ParseEngine("xorshift")
	assert.ErrorIs(t, err, soft.ErrUnknownEngine)
}

// TestRandCoefficients_Range verifies every draw lands inside [Min, Max]
// and that both parts are populated.
func TestRandCoefficients_Range(t *testing.T) {
	fc := mustCoefficients(t, 5)
	soft.RandCoefficients(fc, soft.RandOptions{Min: -1, Max: 1, Seed: 7})

	nonZero := 0
	for l := 0; l < 5; l++ {
		for M := -l; M <= l; M++ {
			for Mp := -l; Mp <= l; Mp++ {
				z := coeffAt(t, fc, l, M, Mp)
				assert.GreaterOrEqual(t, real(z), -1.0)
				assert.LessOrEqual(t, real(z), 1.0)
				assert.GreaterOrEqual(t, imag(z), -1.0)
				assert.LessOrEqual(t, imag(z), 1.0)
				if z != 0 {
					nonZero++
				}
			}
		}
	}
	assert.Greater(t, nonZero, 50, "a uniform fill must touch nearly every cell")
}

// TestRandCoefficients_SeedReproducible verifies that a fixed seed gives
// the identical fill and that distinct seeds differ.
func TestRandCoefficients_SeedReproducible(t *testing.T) {
	a := mustCoefficients(t, 4)
	b := mustCoefficients(t, 4)
	soft.RandCoefficients(a, soft.RandOptions{Min: -1, Max: 1, Seed: 42})
	soft.RandCoefficients(b, soft.RandOptions{Min: -1, Max: 1, Seed: 42})
	assert.Zero(t, maxCoeffResidual(t, a, b), "same seed must reproduce the fill")

	c := mustCoefficients(t, 4)
	soft.RandCoefficients(c, soft.RandOptions{Min: -1, Max: 1, Seed: 43})
	assert.NotZero(t, maxCoeffResidual(t, a, c), "different seeds must differ")
}

// TestRandCoefficients_SwappedRange verifies that a reversed Min/Max pair
// is normalized instead of producing an empty range.
func TestRandCoefficients_SwappedRange(t *testing.T) {
	fc := mustCoefficients(t, 3)
	soft.RandCoefficients(fc, soft.RandOptions{Min: 2, Max: -2, Seed: 5})

	for l := 0; l < 3; l++ {
		for M := -l; M <= l; M++ {
			for Mp := -l; Mp <= l; Mp++ {
				z := coeffAt(t, fc, l, M, Mp)
				assert.GreaterOrEqual(t, real(z), -2.0)
				assert.LessOrEqual(t, real(z), 2.0)
			}
		}
	}
}

// TestRandCoefficients_LehmerEngines verifies the exact Lehmer engines
// are wired distinctly from the default source.
func TestRandCoefficients_LehmerEngines(t *testing.T) {
	def := mustCoefficients(t, 3)
	std := mustCoefficients(t, 3)
	std0 := mustCoefficients(t, 3)

	soft.RandCoefficients(def, soft.RandOptions{Engine: soft.EngineDefault, Min: 0, Max: 1, Seed: 99})
	soft.RandCoefficients(std, soft.RandOptions{Engine: soft.EngineMinstdRand, Min: 0, Max: 1, Seed: 99})
	soft.RandCoefficients(std0, soft.RandOptions{Engine: soft.EngineMinstdRand0, Min: 0, Max: 1, Seed: 99})

	assert.NotZero(t, maxCoeffResidual(t, def, std), "minstd_rand must differ from the default source")
	assert.NotZero(t, maxCoeffResidual(t, std, std0), "the two Lehmer multipliers must differ")

	// minstd_rand first draw from seed 99: x = 99·48271 mod (2³¹−1)
	want := float64(99*48271%2147483647) / 2147483647
	assert.InDelta(t, want, real(coeffAt(t, std, 0, 0, 0)), 1e-15)
}
