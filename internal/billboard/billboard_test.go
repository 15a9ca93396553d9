package billboard

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShaderSources(t *testing.T) {
	style := Particles()
	style.Version = "430"

	geometry := fmt.Sprintf(geometryShader, style.Version, style.uniforms(), style.Size)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(geometry), "#version 430"))
	assert.Contains(t, geometry, "const float size = 0.2;")
	assert.Contains(t, geometry, "\nuniform mat4 View;")

	fragment := fmt.Sprintf(fragmentShader, style.Version,
		style.Intensity, style.Color[0], style.Color[1], style.Color[2], style.Color[3])
	assert.Contains(t, fragment, "s * vec4(0.3, 0.3, 1, 1)")
	assert.NotContains(t, fragment, "%!")
}

func TestGalaxyStyle(t *testing.T) {
	fragment := fmt.Sprintf(fragmentShader, "410 core", 0.2, 1.0, 0.9, 0.6, 1.0)
	assert.Contains(t, fragment, "float s = 0.2 *")
	assert.Equal(t, float32(1), Galaxy().Size)
}

func TestExplicitLocations(t *testing.T) {
	style := Particles()
	style.Locations = true
	assert.Contains(t, style.uniforms(), "layout(location = 1) uniform mat4 Projection;")
}
