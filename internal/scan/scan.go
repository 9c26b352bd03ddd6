// Package scan aggregates ssh_config entries from configuration
// directories. It owns the file-system side of conversion: walking a
// tree, deciding which files are configuration rather than key material,
// and folding every parsed host entry into one document for the engine
// to render.
package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/thoreinstein/sshconv/internal/convert"
	"github.com/thoreinstein/sshconv/internal/errors"
	"github.com/thoreinstein/sshconv/internal/logging"
	"github.com/thoreinstein/sshconv/pkg/fileutil"
	"github.com/thoreinstein/sshconv/pkg/sshconfig"
)

// Directory walks root and returns one document holding the entries of
// every ssh_config file beneath it, in walk order. Files named like key
// material are skipped, as are files that are unreadable, oversized, not
// UTF-8, or not in the ssh format. A missing root reports ErrNotFound.
//
// The walk checks ctx between files; the per-file work itself is not
// cancellable.
func Directory(ctx context.Context, root string) (*sshconfig.Document, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrNotFound, root)
		}
		return nil, errors.Wrapf(err, "reading %s", root)
	}

	logger := logging.FromContext(ctx)
	doc := &sshconfig.Document{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			logger.Debug("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if IsKeyMaterial(d.Name()) {
			logger.Debug("skipping key material", "path", path)
			return nil
		}

		data, err := fileutil.ReadFileWithLimit(path)
		if err != nil {
			logger.Debug("skipping unreadable file", "path", path, "error", err)
			return nil
		}
		if !utf8.Valid(data) {
			logger.Debug("skipping binary file", "path", path)
			return nil
		}

		text := string(data)
		if convert.Detect(text) != convert.FormatSSH {
			logger.Debug("skipping non-ssh file", "path", path)
			return nil
		}

		parsed := sshconfig.Parse(text)
		doc.Hosts = append(doc.Hosts, parsed.Hosts...)
		logger.Debug("collected entries", "path", path, "entries", len(parsed.Hosts))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %s", root)
	}

	return doc, nil
}

// IsKeyMaterial reports whether a file name identifies SSH key material
// rather than configuration. The match is case-insensitive: public keys
// by the .pub suffix, private keys by the id_ prefix, PEM files by the
// .pem suffix, and the known_hosts and authorized_keys databases by
// name.
func IsKeyMaterial(name string) bool {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".pub"),
		strings.HasSuffix(lower, ".pem"),
		strings.HasPrefix(lower, "id_"),
		lower == "known_hosts",
		lower == "authorized_keys":
		return true
	}
	return false
}
