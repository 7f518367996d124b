package tree

import "strings"

// Built-in skip lists, matched by exact name. These cover the usual
// noise in project and home directories on both Unix and Windows.
var defaultSkipDirs = []string{
	"node_modules",
	".git",
	".vscode",
	"__pycache__",
	"venv",
	".idea",
	"$RECYCLE.BIN",
	"System Volume Information",
	"Windows.old",
	"AppData",
	"Temp",
}

var defaultSkipFiles = []string{
	".gitignore",
	".DS_Store",
	"Thumbs.db",
	".env",
	"desktop.ini",
	"ntuser.dat",
	"NTUSER.DAT",
	"ntuser.dat.LOG1",
	"ntuser.dat.LOG2",
	"ntuser.ini",
}

// skipDir reports whether a directory entry with the given name is
// excluded under cfg. Rules are checked in order: built-in list, custom
// list, then the hidden-name rule. The hidden rule is independent of
// SkipCommon and applies at every depth.
func skipDir(cfg *Config, name string) bool {
	if cfg.SkipCommon {
		if containsName(defaultSkipDirs, name) || containsName(cfg.SkipDirs, name) {
			return true
		}
	}

	return cfg.SkipHidden && strings.HasPrefix(name, ".")
}

// skipFile reports whether a non-directory entry with the given name is
// excluded under cfg. Same rule order as skipDir.
func skipFile(cfg *Config, name string) bool {
	if cfg.SkipCommon {
		if containsName(defaultSkipFiles, name) || containsName(cfg.SkipFiles, name) {
			return true
		}
	}

	return cfg.SkipHidden && strings.HasPrefix(name, ".")
}

// skipEntry dispatches to the directory or file rule set based on the
// entry's kind. Symlinks and other specials follow the file rules.
func skipEntry(cfg *Config, e Entry) bool {
	if e.Kind == KindDir {
		return skipDir(cfg, e.Name)
	}
	return skipFile(cfg, e.Name)
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
