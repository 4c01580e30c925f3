// Package release implements the cookbook release workflow: version channels,
// environment resolution, lockfile application and frozen uploads.
package release

import (
	"slices"

	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/zerr"
)

type parsedVersion struct {
	raw     string
	version domain.SemanticVersion
}

// Classify splits versions into the production and development channels by patch parity.
// Both results are ordered most recent first. Duplicates are kept.
// A single malformed version fails the whole call.
func Classify(versions []string) (production, development []string, err error) {
	parsed := make([]parsedVersion, 0, len(versions))
	for _, raw := range versions {
		v, err := domain.ParseVersion(raw)
		if err != nil {
			return nil, nil, zerr.Wrap(err, "failed to classify versions")
		}
		parsed = append(parsed, parsedVersion{raw: raw, version: v})
	}

	slices.SortStableFunc(parsed, func(a, b parsedVersion) int {
		return b.version.Compare(a.version)
	})

	production = make([]string, 0, len(parsed))
	development = make([]string, 0, len(parsed))
	for _, p := range parsed {
		if p.version.Channel() == domain.ChannelDevelopment {
			development = append(development, p.raw)
		} else {
			production = append(production, p.raw)
		}
	}

	return production, development, nil
}
