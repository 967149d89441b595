// Auditor checks catalog content sheets against brand, color, size,
// category and template-rule masters before upload.
//
// Each content row is resolved to its template through its top-level
// category, then validated for category, template, header and value
// conformance. The original sheet is written back with three QC columns
// appended.
//
// Usage:
//
//	# Audit the CSV files in the current directory
//	auditor run
//
//	# Audit another directory and write a JSON report
//	auditor run --dir ./upload --format json
//
//	# Re-audit whenever an input file changes
//	auditor watch --config auditor.yaml
//
//	# Inspect the masters
//	auditor masters stats
//	auditor masters search colors "navy blu"
package main

func main() {
	Execute()
}
