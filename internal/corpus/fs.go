// Package corpus provides document sources: implementations of
// services.DocumentSource that enumerate documents and read their content
// into lines.
package corpus

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/documentterm/docrank/internal/errors"
	"github.com/documentterm/docrank/model"
)

// FSSource reads every regular file under a root directory as one document.
// The document identifier is the file path. Plain files are read line by
// line; ".pdf" files go through PDF text extraction. filepath.WalkDir visits
// files in lexical order, so repeated loads of the same directory produce
// the same document order.
type FSSource struct {
	root string
}

// NewFSSource creates a document source over the given directory.
func NewFSSource(root string) *FSSource {
	return &FSSource{root: root}
}

// Documents walks the root directory and reads every regular file. Any
// failure (missing directory, unreadable file) aborts the whole load with a
// SourceUnavailableError; no partial corpus is returned.
func (s *FSSource) Documents() ([]model.Document, error) {
	if _, err := os.Stat(s.root); err != nil {
		return nil, errors.NewSourceUnavailableError(s.root, err)
	}

	var documents []model.Document
	err := filepath.WalkDir(s.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return errors.NewSourceUnavailableError(path, err)
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		lines, err := readDocument(path)
		if err != nil {
			return errors.NewSourceUnavailableError(path, err)
		}
		documents = append(documents, model.Document{ID: path, Lines: lines})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return documents, nil
}

// readDocument dispatches on the file extension.
func readDocument(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return readPDF(path)
	}
	return readLines(path)
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func readPDF(path string) ([]string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	plainText, err := reader.GetPlainText()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plainText); err != nil {
		return nil, err
	}
	return strings.Split(buf.String(), "\n"), nil
}
