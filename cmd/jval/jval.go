// Copyright (C) 2024 Quillbit Labs. All Rights Reserved.

// Program jval parses a JSON file and reports whether it is well formed.
// It exits 0 if the file parses cleanly, and nonzero with a diagnostic on
// stderr otherwise. The parsed tree is discarded.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/quillbit/jval"
	"github.com/quillbit/jval/ast"
)

var (
	app = kingpin.New("jval", "Check that a JSON file parses cleanly.")

	filePath = app.Arg("file", "Path of the JSON file to parse.").Required().ExistingFile()
	strict   = app.Flag("strict", "Reject trailing data after the first value.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	f, err := os.Open(*filePath)
	app.FatalIfError(err, "open input")
	defer f.Close()

	cur := jval.NewByteCursor(f)
	if *strict {
		_, err = ast.ParseSingle(cur)
	} else {
		_, err = ast.Parse(cur)
	}
	app.FatalIfError(err, "parse %s", *filePath)
}
