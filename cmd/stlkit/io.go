package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/stlkit/pkg/stl"
	"github.com/philipparndt/stlkit/pkg/storage"
	"github.com/spf13/cobra"
)

// stdio is the path that selects stdin or stdout.
const stdio = "-"

// input is a document together with what is known about its encoding.
type input struct {
	path   string
	doc    *stl.Document
	format stl.Format
	// binary is only set for uncompressed binary files.
	binary *stl.BinaryInfo
}

func readInput(cmd *cobra.Command, path string) (*input, error) {
	in, err := loadInput(cmd, path)
	if err != nil {
		log.LogRead(cmd.Context(), path, "", 0, err)
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	log.LogRead(cmd.Context(), path, in.format.String(), in.doc.Len(), nil)
	return in, nil
}

func loadInput(cmd *cobra.Command, path string) (*input, error) {
	if path == stdio {
		doc, format, err := stl.Decode(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return &input{path: path, doc: doc, format: format}, nil
	}

	if storage.CompressionFromPath(path) != storage.CompressionNone {
		doc, format, err := storage.Open(path)
		if err != nil {
			return nil, err
		}
		return &input{path: path, doc: doc, format: format}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	format, err := stl.DetectFormat(file)
	if err != nil {
		return nil, err
	}
	if format == stl.FormatText {
		doc, err := stl.ReadText(file)
		if err != nil {
			return nil, err
		}
		return &input{path: path, doc: doc, format: format}, nil
	}

	doc, info, err := stl.ReadBinaryInfo(file)
	if err != nil {
		return nil, err
	}
	return &input{path: path, doc: doc, format: format, binary: &info}, nil
}

// outputFormat resolves a --to flag value, falling back to the config.
func outputFormat(flag string) (stl.Format, error) {
	if flag != "" {
		return stl.ParseFormat(flag)
	}
	return cfg.OutputFormat()
}

func writeOutput(cmd *cobra.Command, path string, doc *stl.Document, format stl.Format) error {
	opts := storage.Options{Format: format, BinaryHeader: cfg.Output.BinaryHeader}

	var err error
	if path == stdio {
		err = storage.Write(cmd.OutOrStdout(), doc, storage.CompressionNone, opts)
	} else {
		err = storage.Save(path, doc, opts)
	}
	log.LogWrite(cmd.Context(), path, format.String(), doc.Len(), err)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// transformFile reads in, applies fn and writes the result to out.
func transformFile(cmd *cobra.Command, in, out, to string, fn func(*stl.Document)) error {
	format, err := outputFormat(to)
	if err != nil {
		return err
	}
	src, err := readInput(cmd, in)
	if err != nil {
		return err
	}
	if fn != nil {
		fn(src.doc)
	}
	return writeOutput(cmd, out, src.doc, format)
}

// derivedPath names the output for in when no explicit path is given:
// "part.stl.gz" converted to text becomes "part.text.stl.gz" in dir.
func derivedPath(in, dir string, format stl.Format) string {
	compression := storage.CompressionFromPath(in)
	base := filepath.Base(storage.TrimExtension(in))
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if dir == "" {
		dir = filepath.Dir(in)
	}
	return filepath.Join(dir, stem+"."+format.String()+".stl"+compression.Extension())
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
