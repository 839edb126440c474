// Package model defines the core data structures for the mekiki engine.
package model

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
)

// Condition describes the declared physical state of a listed item.
type Condition string

const (
	// ConditionNew represents new or unused items.
	ConditionNew Condition = "new"
	// ConditionGood represents items without noticeable damage.
	ConditionGood Condition = "good"
	// ConditionFair represents items with visible wear.
	ConditionFair Condition = "fair"
	// ConditionPoor represents junk or for-parts items.
	ConditionPoor Condition = "poor"
)

// Valid reports whether the condition is one of the known values.
func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// MaxTags is the maximum number of tags a draft may carry.
const MaxTags = 10

// ListingDraft is an immutable snapshot of a draft or published listing.
// Callers build a fresh draft from current form state on every evaluation;
// the engine never mutates it.
type ListingDraft struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CategoryCode string    `json:"categoryCode"`
	Condition    Condition `json:"condition"`
	Price        int64     `json:"price"`
	Tags         []string  `json:"tags,omitempty"`
	ImageCount   int       `json:"imageCount"`

	// ImageDescription is an externally produced summary of what the
	// listing photos show. It is forwarded opaquely to the AI risk
	// assessment and never interpreted locally.
	ImageDescription string `json:"imageDescription,omitempty"`
}

// SearchText returns the combined title and description used by
// keyword-based heuristics.
func (d ListingDraft) SearchText() string {
	return d.Title + " " + d.Description
}

// Hash returns a stable content hash of the draft, used as a cache and
// history key. Tag order does not affect the hash.
func (d ListingDraft) Hash() string {
	tags := make([]string, len(d.Tags))
	copy(tags, d.Tags)
	sort.Strings(tags)

	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s|%d|%s|%d|%s",
		d.Title,
		d.Description,
		d.CategoryCode,
		d.Condition,
		d.Price,
		strings.Join(tags, ","),
		d.ImageCount,
		d.ImageDescription,
	)
	return fmt.Sprintf("%x", h.Sum(nil))
}
