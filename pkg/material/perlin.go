package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-path-tracer/pkg/core"
)

const perlinPointCount = 256

// Perlin generates lattice gradient noise. All tables are built once from an
// explicitly passed generator, so two generators with the same seed produce
// identical noise fields.
type Perlin struct {
	ranFloat [perlinPointCount]float64
	ranVec   [perlinPointCount]core.Vec3
	permX    [perlinPointCount]int
	permY    [perlinPointCount]int
	permZ    [perlinPointCount]int
}

// NewPerlin creates a noise generator from the given random source
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := 0; i < perlinPointCount; i++ {
		p.ranFloat[i] = random.Float64()
		p.ranVec[i] = core.SampleOnUnitSphere(core.NewVec2(random.Float64(), random.Float64()))
	}
	generatePerm(&p.permX, random)
	generatePerm(&p.permY, random)
	generatePerm(&p.permZ, random)
	return p
}

// generatePerm fills perm with a Fisher-Yates shuffle of 0..255
func generatePerm(perm *[perlinPointCount]int, random *rand.Rand) {
	for i := 0; i < perlinPointCount; i++ {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// hash combines the three permutation tables for a lattice cell
func (p *Perlin) hash(i, j, k int) int {
	return p.permX[i&255] ^ p.permY[j&255] ^ p.permZ[k&255]
}

// Noise returns the raw lattice float for the cell containing the point.
// No interpolation, so the result looks blocky.
func (p *Perlin) Noise(point core.Vec3) float64 {
	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))
	return p.ranFloat[p.hash(i, j, k)]
}

// NoiseTrilinear interpolates the eight surrounding lattice floats linearly
func (p *Perlin) NoiseTrilinear(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]float64
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranFloat[p.hash(i+di, j+dj, k+dk)]
			}
		}
	}

	return trilinearInterp(c, u, v, w)
}

// NoiseSmooth is trilinear interpolation with Hermite-cubic weights, which
// removes the grid-aligned banding (Mach bands) of plain trilinear.
func (p *Perlin) NoiseSmooth(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)
	u = u * u * (3 - 2*u)
	v = v * v * (3 - 2*v)
	w = w * w * (3 - 2*w)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]float64
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranFloat[p.hash(i+di, j+dj, k+dk)]
			}
		}
	}

	return trilinearInterp(c, u, v, w)
}

// NoiseVec is the full gradient formulation: Hermite-weighted dot products
// of lattice unit vectors against the offset inside the cell. The result
// lies in [-1, 1] and has no lattice-aligned artifacts.
func (p *Perlin) NoiseVec(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranVec[p.hash(i+di, j+dj, k+dk)]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// Turbulence sums octaves of gradient noise, doubling frequency and halving
// weight each octave, and returns the magnitude.
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	temp := point
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * p.NoiseVec(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}

func trilinearInterp(c [2][2][2]float64, u, v, w float64) float64 {
	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*u + (1-fi)*(1-u)) *
					(fj*v + (1-fj)*(1-v)) *
					(fk*w + (1-fk)*(1-w)) * c[i][j][k]
			}
		}
	}
	return accum
}

func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) * c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// NoiseMode selects how a NoiseTexture turns lattice noise into a value
type NoiseMode int

const (
	// NoiseBlocky uses the raw lattice float with no interpolation
	NoiseBlocky NoiseMode = iota
	// NoiseTrilinear interpolates lattice floats linearly
	NoiseTrilinear
	// NoiseSmooth interpolates lattice floats with Hermite weights
	NoiseSmooth
	// NoiseVectors uses the gradient formulation, remapped from [-1,1] to [0,1]
	NoiseVectors
)

// NoiseTexture shades by Perlin noise of the scaled hit point
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
	Mode  NoiseMode
}

// NewNoiseTexture creates a noise texture with the given spatial scale
func NewNoiseTexture(noise *Perlin, scale float64, mode NoiseMode) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale, Mode: mode}
}

// Evaluate returns a gray value from the selected noise mode
func (t *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	scaled := point.Multiply(t.Scale)

	var value float64
	switch t.Mode {
	case NoiseBlocky:
		value = t.Noise.Noise(scaled)
	case NoiseTrilinear:
		value = t.Noise.NoiseTrilinear(scaled)
	case NoiseSmooth:
		value = t.Noise.NoiseSmooth(scaled)
	default:
		value = 0.5 * (1 + t.Noise.NoiseVec(scaled))
	}

	return core.NewVec3(1, 1, 1).Multiply(value)
}

// MarbleTexture shades by a sine wave along Z phase-shifted by turbulence,
// which produces the veined look of polished marble.
type MarbleTexture struct {
	Noise *Perlin
	Scale float64
}

// NewMarbleTexture creates a marble texture with the given vein frequency
func NewMarbleTexture(noise *Perlin, scale float64) *MarbleTexture {
	return &MarbleTexture{Noise: noise, Scale: scale}
}

// Evaluate returns a gray value in [0, 1]
func (t *MarbleTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	value := 0.5 * (1 + math.Sin(t.Scale*point.Z+10*t.Noise.Turbulence(point, 7)))
	return core.NewVec3(1, 1, 1).Multiply(value)
}
