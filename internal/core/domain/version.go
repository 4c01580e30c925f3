// Package domain contains the core models of cookbook versions, environments and locks.
package domain

import (
	"cmp"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// Channel is the release channel a version belongs to.
type Channel int

const (
	// ChannelProduction holds versions with an even patch number.
	ChannelProduction Channel = iota
	// ChannelDevelopment holds versions with an odd patch number.
	ChannelDevelopment
)

// String returns the channel name.
func (c Channel) String() string {
	if c == ChannelDevelopment {
		return "development"
	}
	return "production"
}

// SemanticVersion is a cookbook version in major.minor.patch form.
type SemanticVersion struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// ParseVersion parses a strict major.minor.patch string.
// Pre-release and build metadata suffixes are rejected because the Chef server does not accept them.
func ParseVersion(s string) (SemanticVersion, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(ErrMalformedVersion, "cannot parse version"), "version", s)
		return SemanticVersion{}, zerr.With(wrapped, "reason", err.Error())
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return SemanticVersion{}, zerr.With(
			zerr.Wrap(ErrMalformedVersion, "pre-release and build metadata are not supported"),
			"version", s,
		)
	}
	return SemanticVersion{Major: v.Major(), Minor: v.Minor(), Patch: v.Patch()}, nil
}

// MustParseVersion is like ParseVersion but panics on error. Intended for tests and constants.
func MustParseVersion(s string) SemanticVersion {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as major.minor.patch.
func (v SemanticVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Channel derives the release channel from the parity of the patch number.
func (v SemanticVersion) Channel() Channel {
	if v.Patch%2 == 1 {
		return ChannelDevelopment
	}
	return ChannelProduction
}

// IsDevelopment reports whether the version is an unreleased development build.
func (v SemanticVersion) IsDevelopment() bool {
	return v.Channel() == ChannelDevelopment
}

// Compare returns -1, 0 or +1 comparing major, then minor, then patch.
func (v SemanticVersion) Compare(o SemanticVersion) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, o.Patch)
}
