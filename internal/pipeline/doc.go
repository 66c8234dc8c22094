// Package pipeline classifies every read of every input file and writes the
// matching reads of each motif group to that group's output file.
//
// Each input file moves through Pending → Opened → Streaming and ends either
// Completed or Failed. A failure is confined to its file: it is reported in
// that file's result and the run continues with the next file.
package pipeline
