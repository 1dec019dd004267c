package project

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/restsnap/restsnap/internal/defs"
)

// utf8BOM is stripped before parsing; editors on some platforms prepend it.
var utf8BOM = []byte("\xef\xbb\xbf")

// descriptorFormat re-indents the descriptor with two spaces and one value
// per line. Width 0 keeps short arrays from collapsing onto a single line.
var descriptorFormat = &pretty.Options{Width: 0, Indent: "  "}

// RewriteDescriptor sets the "name" field of root/package.json to name and
// writes the file back in place. Key order and every other value are kept
// as they were.
func RewriteDescriptor(root, name string) error {
	path := filepath.Join(root, defs.PackageJSON)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &DescriptorNotFoundError{Path: path, Err: err}
	}
	if err != nil {
		return fmt.Errorf("read package descriptor: %w", err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !gjson.ValidBytes(data) {
		return &DescriptorParseError{Path: path, Err: errors.New("invalid JSON")}
	}
	if !gjson.ParseBytes(data).IsObject() {
		return &DescriptorParseError{Path: path, Err: errors.New("top-level value is not an object")}
	}

	updated, err := sjson.SetBytes(data, "name", name)
	if err != nil {
		return &DescriptorParseError{Path: path, Err: err}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat package descriptor: %w", err)
	}
	if err := os.WriteFile(path, pretty.PrettyOptions(updated, descriptorFormat), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write package descriptor: %w", err)
	}
	return nil
}
