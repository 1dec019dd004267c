package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tidwall/gjson"
)

const sampleDescriptor = `{
  "name": "restsnap-template",
  "version": "1.0.0",
  "main": "dist/server.js",
  "scripts": {"dev": "nodemon src/server.ts", "build": "tsc"},
  "keywords": ["rest", "api"],
  "private": true,
  "dependencies": {"express": "^4.18.2"}
}`

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestRewriteDescriptor(t *testing.T) {
	t.Run("only_name_changes", func(t *testing.T) {
		root := writeDescriptor(t, sampleDescriptor)

		if err := RewriteDescriptor(root, "demo-api"); err != nil {
			t.Fatalf("RewriteDescriptor error: %v", err)
		}

		out, err := os.ReadFile(filepath.Join(root, "package.json"))
		if err != nil {
			t.Fatal(err)
		}

		var before, after map[string]any
		if err := json.Unmarshal([]byte(sampleDescriptor), &before); err != nil {
			t.Fatal(err)
		}
		if err := json.Unmarshal(out, &after); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if after["name"] != "demo-api" {
			t.Errorf("name = %v, want demo-api", after["name"])
		}
		delete(before, "name")
		delete(after, "name")
		if !reflect.DeepEqual(before, after) {
			t.Errorf("non-name fields changed:\nbefore: %v\nafter:  %v", before, after)
		}
	})

	t.Run("key_order_preserved", func(t *testing.T) {
		root := writeDescriptor(t, sampleDescriptor)
		if err := RewriteDescriptor(root, "demo-api"); err != nil {
			t.Fatal(err)
		}
		out, _ := os.ReadFile(filepath.Join(root, "package.json"))

		var keys []string
		gjson.ParseBytes(out).ForEach(func(k, _ gjson.Result) bool {
			keys = append(keys, k.String())
			return true
		})
		want := []string{"name", "version", "main", "scripts", "keywords", "private", "dependencies"}
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("keys = %v, want %v", keys, want)
		}
	})

	t.Run("two_space_indent_trailing_newline", func(t *testing.T) {
		root := writeDescriptor(t, `{"name":"x","scripts":{"dev":"y"}}`)
		if err := RewriteDescriptor(root, "demo-api"); err != nil {
			t.Fatal(err)
		}
		out, _ := os.ReadFile(filepath.Join(root, "package.json"))
		got := string(out)
		want := "{\n  \"name\": \"demo-api\",\n  \"scripts\": {\n    \"dev\": \"y\"\n  }\n}\n"
		if got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("name_added_when_absent", func(t *testing.T) {
		root := writeDescriptor(t, `{"version":"1.0.0"}`)
		if err := RewriteDescriptor(root, "demo-api"); err != nil {
			t.Fatal(err)
		}
		out, _ := os.ReadFile(filepath.Join(root, "package.json"))
		if got := gjson.GetBytes(out, "name").String(); got != "demo-api" {
			t.Errorf("name = %q", got)
		}
	})

	t.Run("bom_prefixed_descriptor", func(t *testing.T) {
		root := writeDescriptor(t, "\ufeff{\"name\":\"x\",\"version\":\"1.0.0\"}")
		if err := RewriteDescriptor(root, "demo-api"); err != nil {
			t.Fatalf("RewriteDescriptor error: %v", err)
		}
		out, _ := os.ReadFile(filepath.Join(root, "package.json"))
		want := "{\n  \"name\": \"demo-api\",\n  \"version\": \"1.0.0\"\n}\n"
		if string(out) != want {
			t.Errorf("output = %q, want %q", out, want)
		}
	})

	t.Run("missing_descriptor", func(t *testing.T) {
		err := RewriteDescriptor(t.TempDir(), "demo-api")
		var notFound *DescriptorNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected *DescriptorNotFoundError, got %v", err)
		}
		if !errors.Is(err, ErrDescriptorNotFound) {
			t.Error("expected errors.Is(err, ErrDescriptorNotFound)")
		}
	})

	t.Run("malformed_descriptor", func(t *testing.T) {
		for _, content := range []string{`{"name": `, `["not", "an", "object"]`} {
			root := writeDescriptor(t, content)
			err := RewriteDescriptor(root, "demo-api")
			if !errors.Is(err, ErrDescriptorParse) {
				t.Errorf("content %q: expected ErrDescriptorParse, got %v", content, err)
			}
			out, _ := os.ReadFile(filepath.Join(root, "package.json"))
			if string(out) != content {
				t.Errorf("malformed descriptor was modified: %q", out)
			}
		}
	})
}
