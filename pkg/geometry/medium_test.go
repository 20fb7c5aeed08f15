package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
)

// stubPhase is a placeholder phase function for medium tests
type stubPhase struct{}

func (s *stubPhase) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func TestConstantMedium_DenseMediumScattersInside(t *testing.T) {
	phase := &stubPhase{}
	boundary := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	medium := NewConstantMedium(boundary, 10000, phase)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := medium.Hit(ray, 0.001, math.Inf(1), testSampler())
	if !isHit {
		t.Fatal("Expected dense medium to scatter the ray")
	}

	// The boundary spans t in [4, 6]; a dense medium scatters just inside
	if hit.T < 4.0 || hit.T > 6.0 {
		t.Errorf("Expected scatter inside boundary [4, 6], got t=%f", hit.T)
	}
	if hit.T > 4.01 {
		t.Errorf("Expected dense medium to scatter near entry, got t=%f", hit.T)
	}

	if hit.Material != core.Material(phase) {
		t.Error("Expected hit to carry the phase function material")
	}
	if !hit.FrontFace {
		t.Error("Expected scatter record to be marked front face")
	}
}

func TestConstantMedium_ThinMediumPassesThrough(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	medium := NewConstantMedium(boundary, 1e-9, &stubPhase{})

	sampler := testSampler()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for i := 0; i < 100; i++ {
		if hit, isHit := medium.Hit(ray, 0.001, math.Inf(1), sampler); isHit {
			t.Fatalf("Expected near-vacuum medium to pass rays through, got hit at t=%f", hit.T)
		}
	}
}

func TestConstantMedium_MissesOutsideBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	medium := NewConstantMedium(boundary, 10000, &stubPhase{})

	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, 0, -1))
	if hit, isHit := medium.Hit(ray, 0.001, math.Inf(1), testSampler()); isHit {
		t.Errorf("Expected miss outside boundary, got hit at t=%f", hit.T)
	}
}

func TestConstantMedium_RayStartingInside(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 2.0, nil)
	medium := NewConstantMedium(boundary, 10000, &stubPhase{})

	// Origin is inside the boundary, so the segment starts at the ray origin
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := medium.Hit(ray, 0.001, math.Inf(1), testSampler())
	if !isHit {
		t.Fatal("Expected scatter for ray starting inside the medium")
	}
	if hit.T < 0 || hit.T > 2.0 {
		t.Errorf("Expected scatter between origin and exit at t=2, got t=%f", hit.T)
	}
}

func TestConstantMedium_MeanFreePath(t *testing.T) {
	// Scatter distances follow an exponential distribution with mean
	// 1/density. Average many draws and compare.
	density := 2.0
	boundary := NewBox(core.NewVec3(0, -1, -1), core.NewVec3(1000, 1, 1), nil)
	medium := NewConstantMedium(boundary, density, &stubPhase{})

	sampler := testSampler()
	ray := core.NewRay(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0))

	trials := 10000
	sum := 0.0
	count := 0
	for i := 0; i < trials; i++ {
		hit, isHit := medium.Hit(ray, 0.001, math.Inf(1), sampler)
		if !isHit {
			continue
		}
		// The boundary entry is at t=1, so the free path is t-1
		sum += hit.T - 1.0
		count++
	}

	if count < trials*99/100 {
		t.Fatalf("Expected nearly all rays to scatter in a long box, got %d of %d", count, trials)
	}

	mean := sum / float64(count)
	expected := 1.0 / density
	if math.Abs(mean-expected) > 0.05 {
		t.Errorf("Expected mean free path near %f, got %f", expected, mean)
	}
}

func TestConstantMedium_BoundingBoxMatchesBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(1, 2, 3), 2.0, nil)
	medium := NewConstantMedium(boundary, 0.5, &stubPhase{})

	mediumBox, ok := medium.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected medium to have a bounding box")
	}
	boundaryBox, _ := boundary.BoundingBox(0, 1)
	if mediumBox != boundaryBox {
		t.Errorf("Expected medium box %v, got %v", boundaryBox, mediumBox)
	}
}
