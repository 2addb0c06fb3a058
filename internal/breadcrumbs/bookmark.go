// Package breadcrumbs keeps per-session navigation history: the trail of
// recently viewed objects and the user's bookmarked pages.
package breadcrumbs

import (
	"encoding/gob"
	"errors"
)

var ErrMissingOID = errors.New("bookmark oid is required")

// Bookmark identifies a rendered domain object. OID is opaque to this package.
type Bookmark struct {
	OID    string `json:"oid"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Parent string `json:"parent,omitempty"`
}

func (b Bookmark) Validate() error {
	if b.OID == "" {
		return ErrMissingOID
	}
	return nil
}

func init() {
	gob.Register(&BreadcrumbModel{})
	gob.Register(&BookmarkedPagesModel{})
}
