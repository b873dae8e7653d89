package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMalformedDocument berarti dokumen ada tapi bukan JSON yang valid.
var ErrMalformedDocument = errors.New("malformed json document")

// Store membaca dan menulis dokumen JSON bernama di satu direktori.
// Setiap operasi bekerja pada seluruh dokumen (whole-document replace),
// tidak ada partial write yang bisa diobservasi pembaca.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load men-decode dokumen bernama ke out. Dokumen yang tidak ada bukan
// error: out dibiarkan apa adanya (caller memberikan koleksi kosong).
func (s *Store) Load(name string, out interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read document %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, name, err)
	}
	return nil
}

// Save menulis seluruh koleksi ke dokumen bernama. Tulis ke file sementara
// dulu lalu rename, supaya pembaca tidak pernah melihat dokumen setengah jadi.
func (s *Store) Save(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}

	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace document %s: %w", name, err)
	}
	return nil
}
