// Package engine audits a content batch against the master index.
//
// A run has three stages:
//
//  1. Build: the master sheets become an immutable master.Index.
//  2. Resolve: each content row is mapped to its top-level category, the
//     template that category expects, the template it declares, and the
//     rules of the declared template.
//  3. Validate: category, template, header and value checks produce a
//     RowVerdict with an ordered list of diagnostics.
//
// Verdicts are aggregated into a Report with summary statistics.
//
// # Basic Usage
//
//	eng := engine.New(engine.DefaultOptions())
//	report, err := eng.Run(engine.Inputs{
//	    Brands:        brands,
//	    Colors:        colors,
//	    Sizes:         sizes,
//	    Categories:    categories,
//	    TemplateRules: rules,
//	    Content:       content,
//	})
//	if err != nil {
//	    // only missing input tables fail a run
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d/%d rows passed\n", report.Stats.Passed, report.Stats.Total)
//
// # Failure Semantics
//
// Row problems never abort a run. Every check runs for every row and each
// problem is recorded as a Diagnostic, so one report lists everything that
// is wrong with a row. The only run-level error is a missing input table,
// reported before any row is processed.
//
// # Checks
//
// Category: the top-level category must be present and mapped to a template.
//
// Template: the declared template must be present and, when the category is
// mapped, equal (case-insensitively) to the expected template.
//
// Header: every mandatory field of the declared template must appear in the
// batch header row. Computed once per template.
//
// Value: for each rule of the declared template, mandatory fields must be
// non-blank, Single fields must not contain the pipe delimiter, brand, color
// and size name columns must hold master values, and enumerated fields must
// hold allowed values.
package engine
