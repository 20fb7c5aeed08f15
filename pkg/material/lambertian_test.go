package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
)

// fixedSampler returns preset values, for steering probabilistic branches
type fixedSampler struct {
	value1D float64
	value2D core.Vec2
	value3D core.Vec3
}

func (f *fixedSampler) Get1D() float64   { return f.value1D }
func (f *fixedSampler) Get2D() core.Vec2 { return f.value2D }
func (f *fixedSampler) Get3D() core.Vec3 { return f.value3D }

func testHit(normal core.Vec3) core.HitRecord {
	return core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    normal,
		FrontFace: true,
	}
}

func TestLambertian_AlwaysScatters(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	hit := testHit(core.NewVec3(0, 0, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}

		if scatter.Scattered.Origin != hit.Point {
			t.Errorf("Expected scattered ray to start at hit point, got %v", scatter.Scattered.Origin)
		}

		// Direction = normal + unit vector, so the offset from the normal
		// is exactly unit length
		offset := scatter.Scattered.Direction.Subtract(hit.Normal)
		if math.Abs(offset.Length()-1.0) > 1e-9 {
			t.Errorf("Expected unit offset from normal, got length %v", offset.Length())
		}

		// Scatter stays on the hemisphere side of the surface
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Errorf("Expected scatter above surface, got direction %v", scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_Attenuation(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	hit := testHit(core.NewVec3(0, 0, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}

	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestLambertian_DegenerateDirectionFallsBack(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))

	// Get2D = (1, 0) makes the unit sample exactly (0, 0, -1), cancelling
	// the +Z normal
	sampler := &fixedSampler{value2D: core.NewVec2(1, 0)}

	hit := testHit(core.NewVec3(0, 0, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}

	if scatter.Scattered.Direction.Subtract(hit.Normal).Length() > 1e-9 {
		t.Errorf("Expected fallback to normal, got %v", scatter.Scattered.Direction)
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	checker := NewCheckerTextureFromColors(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	lambertian := NewTexturedLambertian(checker)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	// sin(10*0.05)^3 > 0 picks the even color
	hitEven := testHit(core.NewVec3(0, 0, 1))
	hitEven.Point = core.NewVec3(0.05, 0.05, 0.05)
	scatter, _ := lambertian.Scatter(ray, hitEven, sampler)
	if scatter.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected even checker color, got %v", scatter.Attenuation)
	}

	// Flipping one axis flips the sign, picking the odd color
	hitOdd := testHit(core.NewVec3(0, 0, 1))
	hitOdd.Point = core.NewVec3(0.05, 0.05, -0.05)
	scatter, _ = lambertian.Scatter(ray, hitOdd, sampler)
	if scatter.Attenuation != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected odd checker color, got %v", scatter.Attenuation)
	}
}

func TestLambertian_PreservesRayTime(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	hit := testHit(core.NewVec3(0, 0, 1))
	ray := core.NewRayWithTime(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0.37)

	scatter, _ := lambertian.Scatter(ray, hit, sampler)
	if scatter.Scattered.Time != 0.37 {
		t.Errorf("Expected scattered ray time 0.37, got %v", scatter.Scattered.Time)
	}
}
