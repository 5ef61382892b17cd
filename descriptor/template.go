package descriptor

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Extension of every descriptor file.
const Extension = ".tres"

var godot4Template = template.Must(template.New("godot4").Parse(`[gd_resource type="AtlasTexture" load_steps=2 format=3]

[ext_resource type="Texture2D" path="res://{{.Path}}" id="1"]

[resource]
atlas = ExtResource("1")
region = Rect2({{.X}}, {{.Y}}, {{.W}}, {{.H}})

`))

var godot3Template = template.Must(template.New("godot3").Parse(`[gd_resource type="AtlasTexture" load_steps=2 format=2]

[ext_resource path="res://{{.Path}}" type="Texture" id=1]

[resource]
atlas = ExtResource( 1 )
region = Rect2( {{.X}}, {{.Y}}, {{.W}}, {{.H}} )

`))

type region struct {
	Path       string
	X, Y, W, H int
}

type templateEmitter struct {
	tmpl         *template.Template
	dir          string
	resourcePath string
}

func templateFactory(tmpl *template.Template) Factory {
	return func(atlasPath, resourcePath string) Emitter {
		return &templateEmitter{
			tmpl:         tmpl,
			dir:          filepath.Dir(atlasPath),
			resourcePath: resourcePath,
		}
	}
}

// PathFor returns the descriptor path for the sprite name inside dir.
func PathFor(dir, name string) string {
	base := filepath.Base(name)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+Extension)
}

func (e *templateEmitter) Emit(name string, r image.Rectangle) error {
	var buf bytes.Buffer
	err := e.tmpl.Execute(&buf, region{
		Path: e.resourcePath,
		X:    r.Min.X,
		Y:    r.Min.Y,
		W:    r.Dx(),
		H:    r.Dy(),
	})
	if err != nil {
		return err
	}
	return os.WriteFile(PathFor(e.dir, name), buf.Bytes(), 0o644)
}
