package identity

import (
	"errors"
	"fmt"
)

var ErrSiteCountMismatch = errors.New("site count mismatch")

// SiteCountMismatchError is returned when two profiles do not cover the same
// number of sites. Comparing them would silently drop sites.
type SiteCountMismatchError struct {
	Sample1, Sample2 string
	Sites1, Sites2   int
}

func (e *SiteCountMismatchError) Error() string {
	return fmt.Sprintf("%s: %s has %d sites but %s has %d", ErrSiteCountMismatch, e.Sample1, e.Sites1, e.Sample2, e.Sites2)
}

func (e *SiteCountMismatchError) Is(target error) bool {
	return target == ErrSiteCountMismatch
}
