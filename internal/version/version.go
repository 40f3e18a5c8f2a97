// Package version provides ordering for the dotted version strings found in
// the Creative Cloud products feed. Feed versions are usually plain semver
// ("20.0.0") but four-segment ("13.0.1.1") and alphanumeric segments occur,
// so strict semver parsing is tried first with a loose segment-wise
// comparison as fallback.
package version

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare returns -1, 0, or 1 depending on whether a is less than, equal to,
// or greater than b under dotted-version ordering.
func Compare(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}
	return compareLoose(a, b)
}

// Less reports whether a orders strictly before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// compareLoose compares version strings segment by segment. Numeric segments
// compare numerically, anything else lexicographically, and missing segments
// count as zero. Mixed numeric/non-numeric segments order numeric last; feed
// versions are all-numeric in practice, so the mixed rule only pins down a
// stable total order.
func compareLoose(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}

	for i := 0; i < n; i++ {
		sa, sb := "0", "0"
		if i < len(as) {
			sa = as[i]
		}
		if i < len(bs) {
			sb = bs[i]
		}

		if c := compareSegment(sa, sb); c != 0 {
			return c
		}
	}
	return 0
}

func compareSegment(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case errA == nil:
		return 1
	case errB == nil:
		return -1
	default:
		return strings.Compare(a, b)
	}
}
