package check

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/linkcheck"
)

// Fingerprint computes an xxhash over the ordered bad links of a result,
// including each link's reason and sources.
func Fingerprint(result *linkcheck.Result) string {
	var b strings.Builder
	for _, link := range result.BadLinks {
		b.WriteString(string(link.Reference))
		b.WriteByte(0)
		b.WriteString(string(link.Reason))
		for _, source := range link.Sources {
			b.WriteByte(0)
			b.WriteString(source)
		}
		b.WriteByte('\n')
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(b.String()))
}
