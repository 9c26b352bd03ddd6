package convert

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/sshconv/pkg/sshconfig"
)

// Convert translates text from source to target. A FormatAuto source is
// detected from the text; the target must always be concrete. When source
// and target agree the input is returned unchanged, byte for byte,
// without a reparse.
func Convert(text string, source, target Format) (string, error) {
	if !target.Valid() {
		return "", errors.Wrapf(ErrUnsupportedFormat, "target %q", string(target))
	}
	if source == FormatAuto {
		source = Detect(text)
	} else if !source.Valid() {
		return "", errors.Wrapf(ErrUnsupportedFormat, "source %q", string(source))
	}

	if source == target {
		return text, nil
	}

	doc, err := parse(text, source)
	if err != nil {
		return "", err
	}
	return Render(doc, target)
}

// parse reads text of a known format into a document. The ssh path is
// total; the structured paths reject text failing their grammar or
// lacking the hosts shape.
func parse(text string, source Format) (*sshconfig.Document, error) {
	switch source {
	case FormatSSH:
		return sshconfig.Parse(text), nil

	case FormatYAML:
		// An empty stream decodes to nothing at all; reject it rather
		// than invent an empty document.
		if strings.TrimSpace(text) == "" {
			return nil, errors.Wrap(ErrInvalidInput, "parsing yaml: empty input")
		}
		doc := &sshconfig.Document{}
		if err := yaml.Unmarshal([]byte(text), doc); err != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "parsing yaml: %v", err)
		}
		return doc, nil

	case FormatJSON:
		// The yaml decoder below accepts a superset of JSON, so strict
		// grammar is enforced up front.
		if !json.Valid([]byte(text)) {
			return nil, errors.Wrap(ErrInvalidInput, "parsing json: malformed syntax")
		}
		doc := &sshconfig.Document{}
		if err := doc.UnmarshalJSON([]byte(text)); err != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "parsing json: %v", err)
		}
		return doc, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedFormat, "source %q", string(source))
}

// Render serializes a document into the target format. The ssh and yaml
// renderings end in a newline; json carries none, matching
// json.MarshalIndent.
func Render(doc *sshconfig.Document, target Format) (string, error) {
	switch target {
	case FormatSSH:
		return sshconfig.Format(doc), nil

	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return "", errors.Wrap(err, "encoding yaml")
		}
		if err := enc.Close(); err != nil {
			return "", errors.Wrap(err, "encoding yaml")
		}
		return buf.String(), nil

	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "encoding json")
		}
		return string(data), nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "target %q", string(target))
}
