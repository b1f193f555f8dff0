package nui

import "fmt"

// Config is a negotiated framebuffer and context configuration.
type Config struct {
	RedBits, GreenBits, BlueBits, AlphaBits int
	DepthBits, StencilBits                  int
	Samples                                 int
	Major, Minor                            int
}

func (c Config) String() string {
	return fmt.Sprintf("rgba%d%d%d%d d%d s%d msaa%d gl%d.%d",
		c.RedBits, c.GreenBits, c.BlueBits, c.AlphaBits,
		c.DepthBits, c.StencilBits, c.Samples, c.Major, c.Minor)
}

// ChooseConfig returns the candidate with the highest sample count; ties go
// to the first seen.
func ChooseConfig(candidates []Config) (Config, error) {
	if len(candidates) == 0 {
		return Config{}, ErrNoConfig
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Samples > best.Samples {
			best = c
		}
	}
	return best, nil
}

// colorDepth is the bit depth of a display mode.
type colorDepth struct{ r, g, b int }

var sampleCounts = []int{0, 2, 4, 8, 16}

// candidates crosses each distinct color depth with every sample count up
// to maxSamples, in the order offered. GLFW can not enumerate framebuffer
// configs, so these stand in for them and the samples of the chosen one are
// only a hint.
func candidates(depths []colorDepth, maxSamples, major, minor int) []Config {
	if len(depths) == 0 {
		depths = []colorDepth{{8, 8, 8}}
	}
	seen := make(map[colorDepth]bool)
	var cs []Config
	for _, d := range depths {
		if seen[d] || d.r <= 0 || d.g <= 0 || d.b <= 0 {
			continue
		}
		seen[d] = true
		for _, n := range sampleCounts {
			if n > maxSamples {
				break
			}
			cs = append(cs, Config{
				RedBits: d.r, GreenBits: d.g, BlueBits: d.b, AlphaBits: 8,
				DepthBits: 24, StencilBits: 8,
				Samples: n, Major: major, Minor: minor,
			})
		}
	}
	return cs
}
