// Package jdmio reads and writes the two text formats of the tool set.
//
// JDM file: one "k,l,value" record per line, non-negative integers.
// Edge-list file: one "u,v" pair per line, vertex ids as integers.
//
// Readers trim surrounding whitespace, skip blank lines silently and skip
// malformed lines with a logged warning; every skipped line is reported as a
// *LineError in the returned ReadReport. Only I/O failures abort a read.
//
// Writers emit records in the order given. WriteFileAtomic stages output in a
// temporary file next to the destination and renames it into place only after
// the writer callback succeeded, so a failed run never leaves a partial file.
package jdmio
