package scene

import "strings"

// BuildFunc assembles a scene for the given output aspect ratio. Builders
// with randomized content derive it from seed; the rest ignore it.
type BuildFunc func(aspectRatio float64, seed int64) *Scene

// SceneInfo describes a registered scene builder with its metadata
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	Name        string // Display name derived from the ID
	Description string // One-line description
	Build       BuildFunc
}

// registry lists every built-in scene in menu order
var registry = []SceneInfo{
	{
		ID:          "shiny-metal",
		Description: "Diffuse, glass and polished metal spheres over a matte ground",
		Build: func(aspect float64, seed int64) *Scene {
			return NewShinyMetalScene(aspect)
		},
	},
	{
		ID:          "hollow-glass",
		Description: "A negative-radius inner shell turns the glass ball into a bubble",
		Build: func(aspect float64, seed int64) *Scene {
			return NewHollowGlassScene(aspect)
		},
	},
	{
		ID:          "wide-angle",
		Description: "Two touching spheres through a 90 degree field of view",
		Build: func(aspect float64, seed int64) *Scene {
			return NewWideAngleScene(aspect)
		},
	},
	{
		ID:          "distant-view",
		Description: "The glass trio from a far viewpoint with a narrow lens",
		Build: func(aspect float64, seed int64) *Scene {
			return NewDistantViewScene(aspect)
		},
	},
	{
		ID:          "depth-of-field",
		Description: "A wide aperture focused on the center sphere",
		Build: func(aspect float64, seed int64) *Scene {
			return NewDepthOfFieldScene(aspect)
		},
	},
	{
		ID:          "random-spheres",
		Description: "A field of random small spheres around three large ones",
		Build:       NewRandomSpheresScene,
	},
	{
		ID:          "moving-spheres",
		Description: "The random sphere field with motion-blurred diffuse spheres",
		Build:       NewMovingSpheresScene,
	},
	{
		ID:          "checkered-floor",
		Description: "Moving spheres over a checkered ground",
		Build:       NewCheckeredFloorScene,
	},
	{
		ID:          "checkered-spheres",
		Description: "Two giant checkered spheres touching at the origin",
		Build: func(aspect float64, seed int64) *Scene {
			return NewCheckeredSpheresScene(aspect)
		},
	},
	{
		ID:          "perlin-spheres",
		Description: "Raw blocky lattice noise on a sphere and its ground",
		Build:       NewPerlinSpheresScene,
	},
	{
		ID:          "smoothed-perlin",
		Description: "Hermite-smoothed Perlin noise at scale 4",
		Build:       NewSmoothedPerlinScene,
	},
	{
		ID:          "marble",
		Description: "Turbulence-driven marble veins",
		Build:       NewMarbleScene,
	},
	{
		ID:          "earth",
		Description: "An image-mapped globe",
		Build: func(aspect float64, seed int64) *Scene {
			return NewEarthScene(aspect)
		},
	},
	{
		ID:          "rectangle-light",
		Description: "Marble spheres lit by a rectangle and a sphere lamp",
		Build:       NewRectangleLightScene,
	},
	{
		ID:          "cornell-box",
		Description: "The classic box with two rotated blocks",
		Build: func(aspect float64, seed int64) *Scene {
			return NewCornellBoxScene(aspect)
		},
	},
	{
		ID:          "cornell-smoke",
		Description: "The box blocks replaced with smoke and fog volumes",
		Build: func(aspect float64, seed int64) *Scene {
			return NewCornellSmokeScene(aspect)
		},
	},
	{
		ID:          "showcase",
		Description: "Volumes, motion blur, textures and a thousand spheres at once",
		Build:       NewShowcaseScene,
	},
}

func init() {
	for i := range registry {
		registry[i].Name = titleCase(registry[i].ID)
	}
}

// Lookup returns the scene registered under the given ID
func Lookup(id string) (SceneInfo, bool) {
	for _, info := range registry {
		if info.ID == id {
			return info, true
		}
	}
	return SceneInfo{}, false
}

// List returns all registered scenes in menu order
func List() []SceneInfo {
	scenes := make([]SceneInfo, len(registry))
	copy(scenes, registry)
	return scenes
}

// titleCase converts an ID-style string to a display name
// e.g., "cornell-box" -> "Cornell Box"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
