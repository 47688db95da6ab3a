package tablefile

import (
	"fmt"
	"strings"

	"enumkit/enumlike"
	"enumkit/internal/common"
	"enumkit/internal/diagnostic"
)

// CheckUnique reports, as warnings, every key sel derives from more than
// one entry of t. Such keys are silently overwritten by enumlike.Remap.
func CheckUnique[V any, I comparable](
	name string, t *enumlike.Table[string, V], sel enumlike.Selector[string, V, I],
) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, c := range enumlike.Collisions(t, sel) {
		winner, _ := common.Last(c.Sources)

		diags.AddWarning(diagnostic.CodeDuplicateKey,
			fmt.Sprintf("%s %v is shared by %s; %s wins",
				sel.Name(), c.Key, strings.Join(c.Sources, ", "), winner),
			name, winner, 0)
	}

	return diags
}
