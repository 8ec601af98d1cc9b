// Package cli implements the interactive Pulse client: a read-eval-print
// loop over the credential form engine, the feed loader and the post
// mutator, plus the plain-text feed renderer.
package cli
