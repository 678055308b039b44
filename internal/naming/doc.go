// Package naming decodes structured recording filenames and derives the
// canonical name a processed file is stored under.
//
// Source files follow
//
//	<artist> - <YYYY-MM-DD> <HH>h<MM>m<SS>s - <title>.m4a
//
// and are renamed to
//
//	<title>-<YYYY-MM-DDThh:mm:ssZ>.m4a
//
// The capture time is treated as UTC and copied verbatim; no timezone
// conversion or calendar validation takes place.
package naming
