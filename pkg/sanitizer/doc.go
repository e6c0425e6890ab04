// Package sanitizer holds the input cleaning steps applied before identifiers
// and bank account numbers are validated.
//
// Helpers are plain string transforms so they can be chained with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.NormalizeUnicode,
//	    sanitizer.StripSeparators,
//	)
//
//	clean("998-993-11 84") // "9989931184"
//
// Unicode normalisation is delegated to golang.org/x/text/unicode/norm.
// All helpers are stateless and safe for concurrent use.
package sanitizer
