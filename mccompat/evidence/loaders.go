package evidence

import (
	"strings"

	"github.com/scylladb/go-set/strset"
)

var (
	// KnownLoaders is the set of loader identifiers a check target may
	// name. Anything else cannot be meaningfully compared against
	// descriptor or catalog data.
	KnownLoaders = strset.New("fabric", "forge", "neoforge", "quilt", "liteloader", "rift")

	fabricFamily = strset.New("fabric", "quilt")
	forgeFamily  = strset.New("forge", "neoforge")
)

// LoaderCompatible reports whether a mod built for one loader can run
// under another: quilt loads fabric mods and neoforge loads forge mods,
// so members of the same family are treated as interchangeable.
func LoaderCompatible(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return true
	}
	if fabricFamily.Has(a) && fabricFamily.Has(b) {
		return true
	}
	if forgeFamily.Has(a) && forgeFamily.Has(b) {
		return true
	}
	return false
}
