package release

import (
	"slices"
	"strings"

	"go.trai.ch/cheflow/internal/core/domain"
)

// ResolveEnvironments turns raw environment records into display names for the cookbook.
//
// The "<name>_" prefix is stripped from each record name. A name that is the cookbook name
// itself, or nothing once stripped, is the production environment. With includeVersions,
// records that do not pin the cookbook are left out. Results are sorted by display name;
// colliding names are kept as they are.
func ResolveEnvironments(
	cookbook domain.CookbookIdentity,
	records []domain.EnvironmentRecord,
	includeVersions bool,
) []domain.ResolvedEnvironment {
	name := cookbook.Name()
	prefix := name + "_"

	resolved := make([]domain.ResolvedEnvironment, 0, len(records))
	for _, rec := range records {
		display := strings.TrimPrefix(rec.RawName, prefix)
		if display == name || display == "" {
			display = domain.ProductionEnvironment
		}

		env := domain.ResolvedEnvironment{DisplayName: display}
		if includeVersions {
			version, ok := rec.DeployedVersions[name]
			if !ok {
				continue
			}
			env.DeployedVersion = version
		}
		resolved = append(resolved, env)
	}

	slices.SortStableFunc(resolved, func(a, b domain.ResolvedEnvironment) int {
		return strings.Compare(a.DisplayName, b.DisplayName)
	})

	return resolved
}
