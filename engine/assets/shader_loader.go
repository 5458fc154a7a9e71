package assets

import (
	"embed"
	"fmt"
	"path"
)

//go:embed shaders
var shaders embed.FS

// LoadShader returns a built-in GLSL source as a null-terminated string for
// OpenGL.
func LoadShader(name string) (string, error) {
	b, err := shaders.ReadFile(path.Join("shaders", name))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// gl.Strs expects null termination
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
