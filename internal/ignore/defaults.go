package ignore

// DefaultIgnorePatterns is the built-in exclusion list applied before any
// source-control or user-supplied patterns. It covers dependency and build
// directories, version-control metadata, archives, images, binaries,
// documents, media, compiled bytecode, fonts, and lock files. Because the
// resolver places these first, a later user pattern such as "!*.png" can
// re-include anything listed here.
var DefaultIgnorePatterns = []string{
	// Dependency and build output directories.
	"node_modules/**",
	"bower_components/**",
	"vendor/**",
	"dist/**",
	"build/**",
	"out/**",
	"coverage/**",
	"__pycache__/**",
	".venv/**",
	// Version control and editor metadata.
	".git/**",
	".svn/**",
	".hg/**",
	".idea/**",
	".vscode/**",
	".DS_Store",
	"Thumbs.db",
	// Archives.
	"*.zip",
	"*.tar",
	"*.tar.gz",
	"*.tgz",
	"*.rar",
	"*.7z",
	// Images.
	"*.png",
	"*.jpg",
	"*.jpeg",
	"*.gif",
	"*.bmp",
	"*.ico",
	"*.webp",
	"*.tiff",
	// Binaries and libraries.
	"*.exe",
	"*.dll",
	"*.so",
	"*.dylib",
	"*.bin",
	"*.o",
	"*.a",
	// Documents.
	"*.pdf",
	"*.doc",
	"*.docx",
	"*.xls",
	"*.xlsx",
	"*.ppt",
	"*.pptx",
	// Media.
	"*.mp3",
	"*.wav",
	"*.flac",
	"*.mp4",
	"*.avi",
	"*.mov",
	"*.mkv",
	"*.webm",
	// Compiled bytecode.
	"*.pyc",
	"*.pyo",
	"*.class",
	"*.jar",
	"*.war",
	// Fonts.
	"*.woff",
	"*.woff2",
	"*.ttf",
	"*.eot",
	"*.otf",
	// Lock files and minified assets.
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"composer.lock",
	"Gemfile.lock",
	"Cargo.lock",
	"*.min.js",
	"*.map",
}
