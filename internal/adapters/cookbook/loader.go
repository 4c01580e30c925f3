// Package cookbook reads and updates a cookbook checked out on disk.
package cookbook

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	nameLine    = regexp.MustCompile(`^\s*name\s*\(?\s*['"]([^'"]+)['"]`)
	versionLine = regexp.MustCompile(`^\s*version\s*\(?\s*['"]([^'"]+)['"]`)
)

// Loader implements ports.CookbookLoader against the local filesystem.
type Loader struct{}

var _ ports.CookbookLoader = (*Loader)(nil)

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// DiscoverRoot walks up from cwd to the first directory holding cookbook metadata or a Berksfile.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	markers := []string{domain.MetadataRubyFileName, domain.MetadataJSONFileName, domain.BerksfileName}

	currentDir := cwd
	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(currentDir, marker)); err == nil {
				return currentDir, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrMetadataNotFound, "not inside a cookbook"), "cwd", cwd)
}

// Load reads the cookbook rooted at dir. The name comes from metadata.rb, falling back to
// metadata.json. The version comes from the VERSION file when present, else from the metadata.
func (l *Loader) Load(dir string) (domain.Cookbook, error) {
	md, err := readMetadata(dir)
	if err != nil {
		return domain.Cookbook{}, err
	}
	if md.name == "" {
		return domain.Cookbook{}, zerr.With(zerr.Wrap(domain.ErrMetadataParseFailed, "cookbook name is not set"), "path", dir)
	}

	raw := md.version
	data, err := os.ReadFile(filepath.Join(dir, domain.VersionFileName))
	switch {
	case err == nil:
		raw = strings.TrimSpace(string(data))
	case !errors.Is(err, fs.ErrNotExist):
		return domain.Cookbook{}, zerr.Wrap(err, "failed to read VERSION file")
	}

	if raw == "" {
		return domain.Cookbook{}, zerr.With(zerr.Wrap(domain.ErrMetadataParseFailed, "cookbook version is not set"), "cookbook", md.name)
	}

	version, err := domain.ParseVersion(raw)
	if err != nil {
		return domain.Cookbook{}, zerr.With(err, "cookbook", md.name)
	}

	return domain.Cookbook{
		Identity: domain.NewCookbookIdentity(md.name),
		Path:     dir,
		Version:  version,
	}, nil
}

// WriteVersion replaces the VERSION file in dir with v. The file must already exist.
func (l *Loader) WriteVersion(dir string, v domain.SemanticVersion) error {
	path := filepath.Join(dir, domain.VersionFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrVersionFileNotFound, "cannot bump the version"), "path", path)
		}
		return writeFailed(err, path)
	}

	tmpFile, err := os.CreateTemp(dir, ".VERSION-*")
	if err != nil {
		return writeFailed(err, path)
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.WriteString(v.String() + "\n"); err != nil {
		_ = tmpFile.Close()
		return writeFailed(err, path)
	}
	if err := tmpFile.Close(); err != nil {
		return writeFailed(err, path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return writeFailed(err, path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return writeFailed(err, path)
	}

	return nil
}

func writeFailed(err error, path string) error {
	return zerr.With(zerr.Wrap(domain.ErrVersionFileWriteFailed, err.Error()), "path", path)
}

type metadata struct {
	name    string
	version string
}

// readMetadata extracts the name and a literal version from metadata.rb or metadata.json.
// Only literal string arguments are recognized; a version computed in Ruby is left empty.
func readMetadata(dir string) (metadata, error) {
	data, err := os.ReadFile(filepath.Join(dir, domain.MetadataRubyFileName))
	if err == nil {
		return parseRubyMetadata(data), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return metadata{}, zerr.Wrap(err, "failed to read metadata.rb")
	}

	data, err = os.ReadFile(filepath.Join(dir, domain.MetadataJSONFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return metadata{}, zerr.With(zerr.Wrap(domain.ErrMetadataNotFound, "no metadata.rb or metadata.json"), "path", dir)
		}
		return metadata{}, zerr.Wrap(err, "failed to read metadata.json")
	}

	var doc struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return metadata{}, zerr.With(zerr.Wrap(domain.ErrMetadataParseFailed, err.Error()), "path", dir)
	}
	return metadata{name: doc.Name, version: doc.Version}, nil
}

func parseRubyMetadata(data []byte) metadata {
	var md metadata
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if md.name == "" {
			if m := nameLine.FindStringSubmatch(line); m != nil {
				md.name = m[1]
				continue
			}
		}
		if md.version == "" {
			if m := versionLine.FindStringSubmatch(line); m != nil {
				md.version = m[1]
			}
		}
	}
	return md
}
