package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/polywire/format"
	"github.com/signadot/polywire/ir"
)

var docSep = []byte("\n---\n")

// readDocs reads the documents of path, "-" being standard input. Documents
// are separated by a line holding "---".
func readDocs(cfg *MainConfig, cc *cli.Context, path string) ([]*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	fmat := cfg.inFormat(path)
	theLog.Debug("reading", "path", path, "format", fmat)
	var res []*ir.Node
	for i, doc := range bytes.Split(d, docSep) {
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}
		node, err := format.Read(fmat, doc)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d of %s: %w", i, path, err)
		}
		res = append(res, node)
	}
	return res, nil
}

// readDoc reads path, which must hold exactly one document.
func readDoc(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	docs, err := readDocs(cfg, cc, path)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("%s: expected 1 document, got %d", path, len(docs))
	}
	return docs[0], nil
}

// writeDocs writes nodes in the output format, separated by "---" lines.
func writeDocs(cfg *MainConfig, w io.Writer, nodes ...*ir.Node) error {
	fmat := cfg.outFormat()
	for i, node := range nodes {
		if i > 0 {
			if _, err := w.Write(docSep[1:]); err != nil {
				return err
			}
		}
		d, err := format.Write(fmat, node, cfg.encOpts(w)...)
		if err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if fmat == format.WireFormat {
			d = append(d, '\n')
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
	}
	return nil
}

// eachDoc calls f on every document of files, or of standard input if there
// are none.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, f func(*ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		docs, err := readDocs(cfg, cc, file)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if err := f(doc); err != nil {
				return fmt.Errorf("error processing %s: %w", file, err)
			}
		}
	}
	return nil
}
