package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	swagen "github.com/reoring/swagen"
	"github.com/reoring/swagen/backend/golang"
	_ "github.com/reoring/swagen/backend/python"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "generate":
		generateCmd(os.Args[2:])
	case "backends":
		for _, name := range swagen.Backends() {
			fmt.Println(name)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "swagen CLI\n\nUsage:\n  swagen generate [-backend go|python] [-pkg name] [-o out] swagger.(yaml|json)\n  swagen backends\n\nNotes:\n  - Pass `-` as the input file to read the document from stdin.")
}

func generateCmd(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var backendName string
	var out string
	var pkg string
	var modelsOnly bool
	fs.StringVar(&backendName, "backend", "go", "target language backend")
	fs.StringVar(&pkg, "pkg", "", "package name for the go backend output")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	fs.BoolVar(&modelsOnly, "models-only", false, "skip the helper prologue")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	input := fs.Arg(0)

	data, err := readInput(input)
	if err != nil {
		fatalf("reading %s: %v", input, err)
	}

	doc, d, err := decode(input, data)
	if err != nil {
		fatalf("decoding %s: %v", input, err)
	}
	report(d)

	var backend swagen.Backend
	if backendName == "go" && pkg != "" {
		backend = golang.New(golang.Options{Package: pkg})
	} else {
		backend, err = swagen.LookupBackend(backendName)
		if err != nil {
			fatalf("%v (available: %s)", err, strings.Join(swagen.Backends(), ", "))
		}
	}

	w, closeOut, err := openOutput(out)
	if err != nil {
		fatalf("opening output: %v", err)
	}
	defer closeOut()

	if modelsOnly {
		d, err = swagen.GenerateModels(doc, backend, w)
	} else {
		d, err = swagen.Generate(doc, backend, w)
	}
	if err != nil {
		fatalf("generating models: %v", err)
	}
	report(d)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func decode(path string, data []byte) (*swagen.Document, swagen.Diag, error) {
	if strings.HasSuffix(path, ".json") {
		return swagen.DecodeJSON(data)
	}
	return swagen.DecodeYAML(data)
}

func openOutput(out string) (io.Writer, func(), error) {
	if out == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func report(d swagen.Diag) {
	if d == nil || !d.HasWarnings() {
		return
	}
	for _, w := range d.Warnings() {
		slog.Warn(w)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
