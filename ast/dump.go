package ast

import "github.com/sanity-io/litter"

// Dump pretty-prints a parsed File for debugging; it's what tartc's
// -dump flag prints.
func Dump(f *File) string {
	return litter.Sdump(f)
}
