// Package album maps free-form recording titles to one of a fixed set of
// show names.
//
// Matching is a substring test on compact keys (lower-cased, whitespace
// removed) so "SaturdayNightVibes" and "saturday  night vibes" resolve to the
// same show. Categories are tested in declaration order and the first hit
// wins; titles that match nothing fall back to Specials.
package album
