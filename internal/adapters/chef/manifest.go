package chef

import (
	"crypto/md5" //nolint:gosec // the Chef sandbox API identifies files by MD5
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/zerr"
)

// segments are the top-level cookbook directories the server tracks. Files at the root go to root_files.
var segments = []string{
	"attributes", "definitions", "files", "libraries", "providers", "recipes", "resources", "templates",
}

const rootFilesSegment = "root_files"

// cookbookFile is one file of a cookbook version manifest.
type cookbookFile struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Checksum    string `json:"checksum"`
	Specificity string `json:"specificity"`

	segment string
	abs     string
}

// manifest is the cookbook_version document PUT to the server.
type manifest struct {
	Name         string         `json:"name"`
	CookbookName string         `json:"cookbook_name"`
	Version      string         `json:"version"`
	JSONClass    string         `json:"json_class"`
	ChefType     string         `json:"chef_type"`
	Frozen       bool           `json:"frozen?"`
	Metadata     map[string]any `json:"metadata"`

	Attributes  []cookbookFile `json:"attributes"`
	Definitions []cookbookFile `json:"definitions"`
	Files       []cookbookFile `json:"files"`
	Libraries   []cookbookFile `json:"libraries"`
	Providers   []cookbookFile `json:"providers"`
	Recipes     []cookbookFile `json:"recipes"`
	Resources   []cookbookFile `json:"resources"`
	Templates   []cookbookFile `json:"templates"`
	RootFiles   []cookbookFile `json:"root_files"`
}

// collectFiles walks the cookbook and checksums every file the server tracks.
// Hidden entries and directories outside the known segments are skipped.
func collectFiles(root string) ([]cookbookFile, error) {
	var files []cookbookFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		top, _, nested := strings.Cut(rel, "/")
		if d.IsDir() {
			if !nested && !slices.Contains(segments, top) {
				return filepath.SkipDir
			}
			return nil
		}

		segment := rootFilesSegment
		if nested {
			segment = top
		}

		sum, err := checksum(path)
		if err != nil {
			return err
		}

		files = append(files, cookbookFile{
			Name:        d.Name(),
			Path:        rel,
			Checksum:    sum,
			Specificity: "default",
			segment:     segment,
			abs:         path,
		})
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read cookbook files"), "path", root)
	}

	return files, nil
}

func checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := md5.New() //nolint:gosec // required by the sandbox API
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// buildManifest assembles the cookbook_version document for the collected files.
func buildManifest(cookbook domain.Cookbook, files []cookbookFile, freeze bool) (*manifest, error) {
	md, err := readMetadataJSON(cookbook.Path)
	if err != nil {
		return nil, err
	}
	md["name"] = cookbook.Identity.Name()
	md["version"] = cookbook.Version.String()

	m := &manifest{
		Name:         cookbook.Identity.Name() + "-" + cookbook.Version.String(),
		CookbookName: cookbook.Identity.Name(),
		Version:      cookbook.Version.String(),
		JSONClass:    "Chef::CookbookVersion",
		ChefType:     "cookbook_version",
		Frozen:       freeze,
		Metadata:     md,
		// Empty segments are sent as [] rather than null.
		Attributes:  []cookbookFile{},
		Definitions: []cookbookFile{},
		Files:       []cookbookFile{},
		Libraries:   []cookbookFile{},
		Providers:   []cookbookFile{},
		Recipes:     []cookbookFile{},
		Resources:   []cookbookFile{},
		Templates:   []cookbookFile{},
		RootFiles:   []cookbookFile{},
	}

	for _, f := range files {
		switch f.segment {
		case "attributes":
			m.Attributes = append(m.Attributes, f)
		case "definitions":
			m.Definitions = append(m.Definitions, f)
		case "files":
			m.Files = append(m.Files, f)
		case "libraries":
			m.Libraries = append(m.Libraries, f)
		case "providers":
			m.Providers = append(m.Providers, f)
		case "recipes":
			m.Recipes = append(m.Recipes, f)
		case "resources":
			m.Resources = append(m.Resources, f)
		case "templates":
			m.Templates = append(m.Templates, f)
		default:
			m.RootFiles = append(m.RootFiles, f)
		}
	}

	return m, nil
}

// readMetadataJSON loads metadata.json when present so dependencies reach the server.
func readMetadataJSON(dir string) (map[string]any, error) {
	md := map[string]any{"dependencies": map[string]any{}}

	data, err := os.ReadFile(filepath.Join(dir, domain.MetadataJSONFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return md, nil
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read metadata.json")
	}
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMetadataParseFailed, err.Error()), "path", dir)
	}
	return md, nil
}
