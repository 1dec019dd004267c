package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fs := fstest.MapFS{
			"notes.tmpl": &fstest.MapFile{
				Data: []byte("cd {{ .Name | quote }}\n{{ .Manager | upper }}\n"),
			},
		}
		r := NewRenderer(fs)

		data := map[string]string{
			"Name":    "demo-api",
			"Manager": "npm",
		}

		result, err := r.Render("notes.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "cd \"demo-api\"\nNPM\n"
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{
				Data: []byte("cd {{.Name}} && {{.DevCommand}}"),
			},
		}
		r := NewRenderer(fs)

		_, err := r.Render("test.tmpl", map[string]string{"Name": "demo"})
		if err == nil {
			t.Fatal("expected error for missing key")
		}
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("nope.tmpl", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("parse_error", func(t *testing.T) {
		fs := fstest.MapFS{
			"bad.tmpl": &fstest.MapFile{Data: []byte("{{ .Name ")},
		}
		r := NewRenderer(fs)

		if _, err := r.Render("bad.tmpl", nil); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestRenderNextSteps(t *testing.T) {
	notes, err := Notes()
	if err != nil {
		t.Fatalf("Notes error: %v", err)
	}
	r := NewRenderer(notes)

	tests := []struct {
		name    string
		data    NextSteps
		want    []string
		notWant []string
	}{
		{
			name: "installed_without_docker",
			data: NextSteps{
				Name: "demo-api", Installed: true,
				InstallCommand: "npm install", DevCommand: "npm run dev",
			},
			want:    []string{`cd "demo-api"`, "cp .env.example .env", "npm run dev"},
			notWant: []string{"docker-compose up -d", "npm install", "Missing template files"},
		},
		{
			name: "docker_with_install_skipped",
			data: NextSteps{
				Name: "demo-api", Dockerize: true,
				InstallCommand: "yarn install", DevCommand: "yarn dev",
			},
			want:    []string{"yarn install", "docker-compose up -d"},
			notWant: []string{"yarn dev"},
		},
		{
			name: "lists_skipped_sources",
			data: NextSteps{
				Name: "demo-api", Installed: true, DevCommand: "npm run dev",
				Skipped: []string{"README.md", "tsconfig.json"},
			},
			want: []string{"Missing template files (2): README.md, tsconfig.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(NextStepsTemplate, tt.data)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			s := string(out)
			for _, w := range tt.want {
				if !strings.Contains(s, w) {
					t.Errorf("output missing %q:\n%s", w, s)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(s, nw) {
					t.Errorf("output unexpectedly contains %q:\n%s", nw, s)
				}
			}
		})
	}
}
