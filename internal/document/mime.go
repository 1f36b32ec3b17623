package document

import (
	"mime"
	"path/filepath"
	"strings"
)

// DetectMimeType returns the MIME type for a file path based on its
// extension. Source languages use the conventional text/x-* form so
// they match the default highlighting pattern; unknown extensions fall
// back to the platform MIME table, then to text/plain.
func DetectMimeType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".go":
		return "text/x-go"
	case ".rs":
		return "text/x-rust"
	case ".ts", ".tsx":
		return "text/x-typescript"
	case ".js", ".jsx", ".mjs":
		return "text/x-javascript"
	case ".py":
		return "text/x-python"
	case ".rb":
		return "text/x-ruby"
	case ".java":
		return "text/x-java"
	case ".c":
		return "text/x-c"
	case ".cpp", ".cc", ".cxx", ".h", ".hpp":
		return "text/x-c++"
	case ".cs":
		return "text/x-csharp"
	case ".swift":
		return "text/x-swift"
	case ".kt", ".kts":
		return "text/x-kotlin"
	case ".scala":
		return "text/x-scala"
	case ".php":
		return "text/x-php"
	case ".lua":
		return "text/x-lua"
	case ".sh", ".bash", ".zsh":
		return "text/x-sh"
	case ".json":
		return "text/x-json"
	case ".yaml", ".yml":
		return "text/x-yaml"
	case ".toml":
		return "text/x-toml"
	case ".xml":
		return "text/xml"
	case ".html", ".htm":
		return "text/html"
	case ".css":
		return "text/css"
	case ".md", ".markdown":
		return "text/markdown"
	case ".txt", "":
		return "text/plain"
	}

	if mt := mime.TypeByExtension(ext); mt != "" {
		// Strip any charset parameter.
		if i := strings.IndexByte(mt, ';'); i >= 0 {
			mt = strings.TrimSpace(mt[:i])
		}
		return mt
	}
	return "text/plain"
}
