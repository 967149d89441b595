// Package master builds the immutable lookup index the QC engine validates
// content rows against.
//
// Five reference sheets feed the index:
//
//   - brands, colors, sizes: one value of interest per row, read from the
//     first column regardless of its header
//   - categories: top-level category to expected template name
//   - template rules: one FieldRule per (template, field) pair
//
// # Building
//
//	idx := master.Build(master.Sources{
//	    Brands:     brands.Records,
//	    Colors:     colors.Records,
//	    Sizes:      sizes.Records,
//	    Categories: categories.Records,
//	    Rules:      rules.Records,
//	})
//
// Malformed rows never fail the build. Rows missing a required key are
// skipped and optional columns fall back to permissive defaults (not
// mandatory, Open kind, no allowed values).
//
// # Duplicate rules
//
// When a template declares the same field twice, the last declaration wins
// and keeps the position of the first. Each replacement is recorded as a
// Warning so callers can surface it as a data-quality issue.
package master
