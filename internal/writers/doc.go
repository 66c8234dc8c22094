// Package writers owns everything that ends up on disk or stdout.
//
// Design:
//   • GroupFile writes one group's matches for one input file and only
//     becomes visible under its final name on Commit.
//   • Summary writers render a report.Summary (text, json, tsv).
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers
