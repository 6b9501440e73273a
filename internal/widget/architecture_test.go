package widget

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

func TestControllerPackagesStayBrowserFree(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{"*.go", filepath.Join("templates", "*.go")} {
		entries, err := filepath.Glob(pattern)
		if err != nil {
			t.Fatalf("glob %s: %v", pattern, err)
		}
		fset := token.NewFileSet()
		for _, file := range entries {
			parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse imports for %s: %v", file, err)
			}
			for _, imp := range parsed.Imports {
				path := strings.Trim(imp.Path.Value, "\"")
				if path == "syscall/js" || strings.HasSuffix(path, "/internal/widget/dom") {
					t.Fatalf("file %s imports browser-only package %q", file, path)
				}
			}
		}
	}
}
