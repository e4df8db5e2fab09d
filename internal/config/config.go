package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

var defaultBinaries = []string{
	"ls.exe", "cp.exe", "mv.exe", "rm.exe", "rmdir.exe", "mkdir.exe", "install.exe", "ln.exe",
	"readlink.exe", "realpath.exe", "stat.exe", "touch.exe", "chmod.exe", "chown.exe", "pwd.exe",
	"du.exe", "df.exe", "sync.exe", "truncate.exe", "cat.exe", "head.exe", "tail.exe", "nl.exe", "wc.exe",
	"cut.exe", "paste.exe", "join.exe", "sort.exe", "uniq.exe", "tr.exe", "od.exe", "fold.exe", "fmt.exe",
	"column.exe", "expand.exe", "unexpand.exe", "sed.exe", "gawk.exe", "grep.exe", "xargs.exe", "tee.exe",
	"split.exe", "csplit.exe", "comm.exe", "find.exe", "which.exe", "tar.exe", "gzip.exe", "gunzip.exe",
	"bzip2.exe", "bunzip2.exe", "xz.exe", "unxz.exe", "zip.exe", "unzip.exe", "md5sum.exe", "sha1sum.exe",
	"sha256sum.exe", "base64.exe", "uname.exe", "hostname.exe", "whoami.exe", "id.exe", "date.exe",
}

var defaultPackages = []string{
	"mingw-w64-x86_64-coreutils", "mingw-w64-x86_64-grep", "mingw-w64-x86_64-sed",
	"mingw-w64-x86_64-gawk", "mingw-w64-x86_64-findutils", "mingw-w64-x86_64-diffutils",
	"mingw-w64-x86_64-file", "mingw-w64-x86_64-which", "mingw-w64-x86_64-tar",
	"mingw-w64-x86_64-zip", "mingw-w64-x86_64-unzip", "mingw-w64-x86_64-gzip",
	"mingw-w64-x86_64-bzip2", "mingw-w64-x86_64-xz",
}

var defaultRoots = []string{"C:/msys64", "C:/msys32"}

var defaultRootEnvVars = []string{"MSYS2_ROOT", "MSYS2_HOME", "MSYS2_PATH"}

// Config holds the lists a fetch run works from. Every field falls back to the
// built-in value when the config file does not set it.
type Config struct {
	Binaries     []string `toml:"binaries"`
	Packages     []string `toml:"packages"`
	DefaultRoots []string `toml:"default_roots"`
	RootEnvVars  []string `toml:"root_env_vars"`
}

// Default returns the built-in configuration. The slices are fresh copies.
func Default() *Config {
	return &Config{
		Binaries:     slices.Clone(defaultBinaries),
		Packages:     slices.Clone(defaultPackages),
		DefaultRoots: slices.Clone(defaultRoots),
		RootEnvVars:  slices.Clone(defaultRootEnvVars),
	}
}

func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "msys2fetch", "config.toml")
}

// Load reads the TOML file at path over the built-in defaults. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		var file Config
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return nil, err
		}
		if file.Binaries != nil {
			cfg.Binaries = file.Binaries
		}
		if file.Packages != nil {
			cfg.Packages = file.Packages
		}
		if file.DefaultRoots != nil {
			cfg.DefaultRoots = file.DefaultRoots
		}
		if file.RootEnvVars != nil {
			cfg.RootEnvVars = file.RootEnvVars
		}
	}

	return cfg, nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
