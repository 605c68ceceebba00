package db

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/videodb/internal/display"
	"github.com/backmassage/videodb/internal/record"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Merge consolidates the given database files into one sorted, headered
// database named from root ("<root> - Merged.tsv"). Preconditions are
// checked up front: if any input is missing the merge aborts before a
// single byte is written. Temporary artifacts (the header file and the
// unsorted concatenation) are removed on the way out.
func Merge(root string, inputs []string, log Logger) error {
	for _, in := range inputs {
		if _, err := os.Stat(in); err != nil {
			return fmt.Errorf("invalid/inaccessible file: %q", in)
		}
	}

	headerPath := Name(root, "Header")
	if err := os.WriteFile(headerPath, []byte(record.Header()), 0o644); err != nil {
		return fmt.Errorf("write header file: %w", err)
	}
	defer removeTemp(headerPath, log)

	tempPath := Name(root, "Merged - Temp")
	if err := concat(inputs, tempPath); err != nil {
		return err
	}
	defer removeTemp(tempPath, log)
	log.Info("Merged %q into '%s'", inputs, tempPath)

	elapsed, err := Sort(tempPath)
	if err != nil {
		return err
	}
	log.Info("Sorted '%s' in descending order of resolution stats in %s",
		tempPath, display.FormatDuration(elapsed, false))

	finalPath := Name(root, "Merged")
	if err := concat([]string{headerPath, tempPath}, finalPath); err != nil {
		return err
	}
	log.Info("Merged '%s' and '%s' into '%s'", headerPath, tempPath, finalPath)
	return nil
}

// concat copies the inputs into target in argument order, stripping a
// leading UTF-8 BOM from each input (legacy databases carry one).
func concat(inputs []string, target string) error {
	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %q: %w", target, err)
	}
	for _, in := range inputs {
		if err := copyStripBOM(out, in); err != nil {
			out.Close()
			return err
		}
	}
	return out.Close()
}

func copyStripBOM(out io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("append %q: %w", path, err)
	}
	return nil
}

func removeTemp(path string, log Logger) {
	if err := os.Remove(path); err == nil {
		log.Info("Deleted temporary file '%s'", path)
	}
}
