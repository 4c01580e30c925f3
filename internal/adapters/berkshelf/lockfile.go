// Package berkshelf reads Berksfile.lock and applies its locks to Chef environments.
package berkshelf

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"maps"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/core/ports"
	"go.trai.ch/zerr"
)

const graphSection = "GRAPH"

// graphEntry matches a top-level GRAPH line: two spaces, a name and a version in parentheses.
var graphEntry = regexp.MustCompile(`^  ([^\s(]+) \(([^)]+)\)\s*$`)

// Engine implements ports.LockfileEngine for Berkshelf lockfiles.
type Engine struct {
	logger ports.Logger
}

var _ ports.LockfileEngine = (*Engine)(nil)

// NewEngine creates a new Engine.
func NewEngine(logger ports.Logger) *Engine {
	return &Engine{logger: logger}
}

// Load parses the GRAPH section of the lockfile at path.
func (e *Engine) Load(path string) (*domain.LockedGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrLockfileNotFound, "run berks install first"), "path", path)
		}
		return nil, zerr.Wrap(err, "failed to open lockfile")
	}
	defer func() { _ = f.Close() }()

	locks, err := parseGraph(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return &domain.LockedGraph{Path: path, Locks: locks}, nil
}

// parseGraph reads the top-level entries of the GRAPH section. Indented dependency
// lines and all other sections are ignored.
func parseGraph(r io.Reader) (map[string]domain.SemanticVersion, error) {
	locks := make(map[string]domain.SemanticVersion)
	inGraph := false
	seenGraph := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, " ") {
			inGraph = line == graphSection
			seenGraph = seenGraph || inGraph
			continue
		}
		if !inGraph || strings.HasPrefix(line, "    ") {
			continue
		}

		m := graphEntry.FindStringSubmatch(line)
		if m == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrLockfileParseFailed, "unexpected GRAPH entry"), "line", lineNo)
		}

		v, err := domain.ParseVersion(m[2])
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrLockfileParseFailed, err.Error()), "line", lineNo)
		}
		locks[m[1]] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(domain.ErrLockfileParseFailed, err.Error())
	}
	if !seenGraph {
		return nil, zerr.Wrap(domain.ErrLockfileParseFailed, "lockfile has no GRAPH section")
	}

	return locks, nil
}

// Apply replaces the cookbook versions of environment with the locked versions.
// It reports whether the server saved exactly the locked constraints.
func (e *Engine) Apply(
	ctx context.Context,
	store ports.EnvironmentStore,
	graph *domain.LockedGraph,
	environment string,
) (bool, error) {
	if _, err := store.GetEnvironment(ctx, environment); err != nil {
		return false, err
	}

	want := graph.Constraints()
	e.logger.Debug("locking " + environment + " to " + graph.Path)

	saved, err := store.SetCookbookVersions(ctx, environment, want)
	if err != nil {
		return false, err
	}

	return maps.Equal(saved, want), nil
}
