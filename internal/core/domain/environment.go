package domain

import "go.trai.ch/zerr"

// ProductionEnvironment is the label of the base environment of a node cookbook.
const ProductionEnvironment = "production"

// EnvironmentRecord is an environment as stored on the Chef server.
type EnvironmentRecord struct {
	// RawName is the environment name on the server.
	RawName string
	// DeployedVersions maps cookbook names to the version constraint pinned in the environment.
	DeployedVersions map[string]string
}

// ResolvedEnvironment is an environment as shown for one cookbook.
type ResolvedEnvironment struct {
	DisplayName string `json:"name" yaml:"name"`
	// DeployedVersion is empty when versions were not requested.
	DeployedVersion string `json:"version,omitempty" yaml:"version,omitempty"`
}

// LockTarget is the environment a lockfile is applied to.
type LockTarget struct {
	EnvironmentLabel    string
	FullEnvironmentName string
}

// NewLockTarget computes the server environment name for a node cookbook and a label.
// The production label maps to node_<base>, any other label to node_<base>_<label>.
func NewLockTarget(cookbook CookbookIdentity, label string) (LockTarget, error) {
	if !cookbook.IsNodeScoped() {
		return LockTarget{}, zerr.With(zerr.Wrap(ErrNotNodeCookbook, "cannot target an environment"), "cookbook", cookbook.Name())
	}

	name := NodeCookbookPrefix + cookbook.BaseName()
	if label != ProductionEnvironment {
		name += "_" + label
	}

	return LockTarget{EnvironmentLabel: label, FullEnvironmentName: name}, nil
}

// IsProduction reports whether the target is the production environment.
func (t LockTarget) IsProduction() bool {
	return t.EnvironmentLabel == ProductionEnvironment
}
