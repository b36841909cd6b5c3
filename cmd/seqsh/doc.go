/*
Package seqsh/main provides an interactive command line sandbox for the
sequence containers of this module. It keeps one contiguous (vector) and
one linked (dlist) sequence around and lets users mutate and inspect them
with short commands, useful for experimenting with the containers'
behavior (growth, sub-sequence extraction, equality, hashing) without
writing a test program.

Type 'help' at the prompt for the list of commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seqs.seqsh'
func tracer() tracing.Trace {
	return tracing.Select("seqs.seqsh")
}
