// Package rcfile models pylint configuration files.
//
// A configuration file is an ordered list of named sections, each holding a
// flat mapping from option name to a scalar or comma-separated list value:
//
//	[MESSAGES CONTROL]
//	disable=bad-continuation,
//	        no-member
//
//	[FORMAT]
//	max-line-length=88
//
// The package decodes and encodes the Python configparser dialect of INI
// (Load, Parse, Encode), checks a document's syntactic well-formedness
// (Verify), and projects the recognized options into a typed view
// (ResolveSettings). It deliberately stops there: evaluating the options
// against Python source is the consuming linter's job, not ours.
//
// Option lookup is section-agnostic because the consumer treats section
// headers as grouping sugar: an option is recognized wherever it appears,
// with its canonical section preferred when present in several.
package rcfile
