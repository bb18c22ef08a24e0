package walk

// DefaultPrunedDirs is the default set of directory basenames skipped whole
// during a walk (§4.4). Any directory name beginning with '.' is always
// pruned regardless of this list; it exists separately in walk.go.
var DefaultPrunedDirs = map[string]bool{
	".git": true, ".github": true,
	"build": true, "cmake-build-debug": true, "Debug": true, "Release": true,
	"Debugs": true, "Releases": true, "Bin": true, "bin": true,
	".vscode": true, ".idea": true,
	"node_modules": true, "__pycache__": true,
	"doc": true, "docs": true, "Doc": true, "Docs": true, "Documentation": true,
	"img": true, "images": true, "imgs": true,
	".DS_Store": true, "Binaries": true, "Plugins": true, "Content": true,
	"snap": true, "LICENSES": true, "CMakeFiles": true, "patches": true,
	"tar-install": true, "install": true, "debugPublic": true, "DebugPublic": true,
}

// DefaultSuffixBlacklist is the canonical suffix/filename blacklist from the
// GLOSSARY. Keys are either a leading-dot suffix (".o") or an exact
// filename ("Thumbs.db") for names with no meaningful extension-based rule.
var DefaultSuffixBlacklist = buildSuffixBlacklist()

func buildSuffixBlacklist() map[string]bool {
	suffixes := []string{
		".a", ".bin", ".bz2", ".cr2", ".crw", ".dll", ".dmg", ".dtb", ".dtbo",
		".dwo", ".elf", ".eps", ".exe", ".fbx", ".FBX", ".gcno", ".gif", ".gz",
		".iso", ".jar", ".jpeg", ".jpg", ".ko", ".lz4", ".lzma", ".lzo", ".mod",
		".nef", ".o", ".orf", ".pak", ".patch", ".pdb", ".pdf", ".pef", ".pem",
		".png", ".ply", ".priv", ".pyc", ".qml", ".raw", ".rar", ".s", ".so",
		".sql", ".sqlite", ".sr2", ".su", ".suo", ".sys", ".tar", ".tif",
		".tiff", ".ttf", ".uasset", ".umap", ".user", ".x509", ".xz", ".zip",
		".zst",
	}
	names := []string{
		"Thumbs.db", "ehthumbs.db", ".Spotlight-V100", ".Trashes",
	}

	m := make(map[string]bool, len(suffixes)+len(names))
	for _, s := range suffixes {
		m[s] = true
	}
	for _, n := range names {
		m[n] = true
	}
	return m
}
