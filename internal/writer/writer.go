// Package writer stores generated statements as numbered .sql files.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/Ivan-Kats/xlsx2update/internal/errors"
	"github.com/Ivan-Kats/xlsx2update/internal/query"
)

// FileName returns the name of the k-th statement file, k starting at 1.
func FileName(k int) string {
	return fmt.Sprintf("update_query_part_%d.sql", k)
}

// ArgsFileName returns the name of the bind-argument file that accompanies
// the k-th statement in params mode.
func ArgsFileName(k int) string {
	return fmt.Sprintf("update_query_part_%d.args.yaml", k)
}

// Writer writes statement k to Dir/update_query_part_<k>.sql.
type Writer struct {
	Dir string
	// Transaction wraps each file in BEGIN; ... COMMIT;.
	Transaction bool
	// OnWrite is called after each file is written.
	OnWrite func(k int, path string)
}

// WriteAll writes the statements in order and returns the paths written.
// It stops at the first failure; files already written are left in place.
func (w *Writer) WriteAll(statements []query.Statement) ([]string, error) {
	if len(statements) == 0 {
		return nil, nil
	}

	dir := w.Dir
	if dir == "" {
		dir = "."
	}
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperrors.Wrap(apperrors.Output, "mkdir out dir", err)
		}
	}

	paths := make([]string, 0, len(statements))
	for i, stmt := range statements {
		path, err := w.write(dir, i+1, stmt)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
		if w.OnWrite != nil {
			w.OnWrite(i+1, path)
		}
	}
	return paths, nil
}

func (w *Writer) write(dir string, k int, stmt query.Statement) (string, error) {
	text := strings.TrimSpace(stmt.SQL)
	if w.Transaction {
		text = "BEGIN;\n" + text + "\nCOMMIT;"
	}

	path := filepath.Join(dir, FileName(k))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", apperrors.Wrap(apperrors.Output, "write "+FileName(k), err)
	}

	if len(stmt.Args) > 0 {
		data, err := yaml.Marshal(stmt.Args)
		if err != nil {
			return "", apperrors.Wrap(apperrors.Output, "encode arguments", err)
		}
		if err := os.WriteFile(filepath.Join(dir, ArgsFileName(k)), data, 0o644); err != nil {
			return "", apperrors.Wrap(apperrors.Output, "write "+ArgsFileName(k), err)
		}
	}
	return path, nil
}
