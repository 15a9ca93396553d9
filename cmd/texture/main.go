// Command texture draws a fullscreen quad sampling a generated checker
// texture, or a PNG given with -image.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfit/glexamples/internal/config"
	"github.com/adinfit/glexamples/internal/glutil"
	"github.com/adinfit/glexamples/internal/mesh"
	"github.com/adinfit/glexamples/internal/window"
)

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil && !config.IsHelp(err) {
		log.Fatalln(err)
	}
}

func run() error {
	var imagePath string
	cfg, err := config.Load(config.Default("texture"), os.Args[1:], func(fs *flag.FlagSet) {
		fs.StringVar(&imagePath, "image", "", "PNG file to display instead of the generated pattern")
	})
	if err != nil {
		return err
	}

	stop, err := cfg.StartProfile()
	if err != nil {
		return err
	}
	defer stop()

	win, err := window.Open(cfg)
	if err != nil {
		return err
	}
	defer win.Close()

	program, err := glutil.NewProgram(
		glutil.Vertex(vertexShader),
		glutil.Fragment(fragmentShader),
	)
	if err != nil {
		return err
	}
	defer program.Delete()

	quad := mesh.Upload(mesh.Quad(),
		mesh.Attribute{Location: 0, Components: 3},
		mesh.Attribute{Location: 1, Components: 2},
	)
	defer quad.Delete()

	var texture *glutil.Texture
	if imagePath != "" {
		texture, err = glutil.LoadTexture(imagePath)
		if err != nil {
			return err
		}
	} else {
		texture = glutil.NewTexture(glutil.Checkers(cfg.Width, cfg.Height))
	}
	defer texture.Delete()

	for win.Running() {
		win.NextFrame()

		gl.Clear(gl.COLOR_BUFFER_BIT)

		program.Use()
		texture.Bind(0)
		program.SetInt("tex", 0)
		quad.Draw()

		if err := glutil.CheckError(); err != nil {
			log.Println(err)
			break
		}

		win.Present()
	}

	return nil
}

var vertexShader = `
#version 410 core
layout(location = 0) in vec4 vposition;
layout(location = 1) in vec2 vtexcoord;

out vec2 ftexcoord;

void main() {
	ftexcoord = vtexcoord;
	gl_Position = vposition;
}
`

var fragmentShader = `
#version 410 core
uniform sampler2D tex;

in vec2 ftexcoord;

layout(location = 0) out vec4 FragColor;

void main() {
	FragColor = texture(tex, ftexcoord);
}
`
