// Package tree renders a filtered filesystem subtree as connected text lines.
package tree

// GlyphSet holds the connector strings used to draw one tree level.
type GlyphSet struct {
	// Branch connects a child that has later siblings.
	Branch string
	// Corner connects the last child of its parent.
	Corner string
	// Bar continues an ancestor level that has later siblings.
	Bar string
	// Blank pads an ancestor level whose last child was already drawn.
	Blank string
}

// UnicodeGlyphs is the default box-drawing glyph set.
var UnicodeGlyphs = GlyphSet{
	Branch: "├── ",
	Corner: "└── ",
	Bar:    "│   ",
	Blank:  "    ",
}

// ASCIIGlyphs renders the tree with plain ASCII connectors.
var ASCIIGlyphs = GlyphSet{
	Branch: "|-- ",
	Corner: "`-- ",
	Bar:    "|   ",
	Blank:  "    ",
}

const (
	// DefaultMaxDepth bounds the traversal when no depth is configured.
	DefaultMaxDepth = 10
	// DefaultMaxFilesPerDirectory caps the files rendered per directory.
	DefaultMaxFilesPerDirectory = 400
)

// defaultExcludedDirectoryNames lists version-control metadata, editor
// configuration, and front-end toolchain dependency, build, and cache folders.
var defaultExcludedDirectoryNames = []string{
	".git", ".hg", ".svn", ".idea", ".vscode",
	"node_modules", "dist", "build", "coverage", ".next", ".turbo",
	".vercel", ".cache", ".parcel-cache", ".rollup.cache", ".swc",
	".svelte-kit", ".nuxt", ".expo", ".expo-shared", ".expo-cache",
	".pytest_cache", ".DS_Store",
}

// defaultExcludedFileNames lists operating-system metadata files.
var defaultExcludedFileNames = []string{
	".DS_Store", "Thumbs.db",
}

// defaultExcludedExtensions lists source-map and log file extensions.
var defaultExcludedExtensions = []string{
	".map", ".log",
}

// Options configures a single render invocation. The zero value is not
// usable; construct instances with NewDefaultOptions and adjust fields.
type Options struct {
	// MaxDepth is the deepest directory level whose contents are listed.
	MaxDepth int
	// OnlyExtensions keeps exclusively files with these lowercase
	// dot-prefixed extensions. An empty set keeps every extension.
	OnlyExtensions map[string]struct{}
	// ExcludedDirectories removes subdirectories by exact name.
	ExcludedDirectories map[string]struct{}
	// ExcludedFiles removes files by exact name.
	ExcludedFiles map[string]struct{}
	// ExcludedExtensions removes files by lowercase extension.
	ExcludedExtensions map[string]struct{}
	// MaxFilesPerDirectory caps visible files per directory. Zero means
	// unlimited.
	MaxFilesPerDirectory int
	// Glyphs selects the connector characters used for rendering.
	Glyphs GlyphSet
}

// NewDefaultOptions returns options carrying the built-in exclusion sets,
// depth and file caps, and Unicode glyphs.
func NewDefaultOptions() Options {
	return Options{
		MaxDepth:             DefaultMaxDepth,
		OnlyExtensions:       map[string]struct{}{},
		ExcludedDirectories:  newNameSet(defaultExcludedDirectoryNames),
		ExcludedFiles:        newNameSet(defaultExcludedFileNames),
		ExcludedExtensions:   newNameSet(defaultExcludedExtensions),
		MaxFilesPerDirectory: DefaultMaxFilesPerDirectory,
		Glyphs:               UnicodeGlyphs,
	}
}

// newNameSet builds a membership set from the provided names.
func newNameSet(names []string) map[string]struct{} {
	nameSet := make(map[string]struct{}, len(names))
	for _, name := range names {
		nameSet[name] = struct{}{}
	}
	return nameSet
}
