package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"github.com/bodgit/sevenzip"
	"github.com/thelolagemann/gomechip/internal/types"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrRomUnreadable is returned when a ROM file cannot be read or
// unpacked.
var ErrRomUnreadable = errors.New("rom unreadable")

// LoadFile loads the given file and performs decompression if necessary.
// Archives are unpacked to their first file, reading at most one byte
// more than the largest ROM that fits in memory.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRomUnreadable, err)
	}

	data, err = unpack(filepath.Ext(filename), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRomUnreadable, filename, err)
	}
	return data, nil
}

func unpack(ext string, data []byte) ([]byte, error) {
	var decoder io.ReadCloser
	var err error

	// try to assert the compression type from the file extension
	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".zip":
		var r *zip.Reader
		if r, err = zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, errors.New("empty archive")
		}
		decoder, err = r.File[0].Open()
	case ".7z":
		var r *sevenzip.Reader
		if r, err = sevenzip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, errors.New("empty archive")
		}
		decoder, err = r.File[0].Open()
	default:
		// return the data as is
		return data, nil
	}
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	return io.ReadAll(io.LimitReader(decoder, int64(types.MaxROMSize)+1))
}
