// Package graphfile reads and writes prerequisite graphs and item lists.
//
// A graph file is a single mapping from item to its list of
// prerequisites. The encoding is chosen by extension:
//
//	.json   plain JSON
//	.jsonc  JSON with comments and trailing commas
//	.yaml   YAML (also .yml)
//	.toml   TOML, one key per item
//	.cbor   CBOR, written with core deterministic encoding
//
// Any of these may carry an extra .zst suffix for zstd compression.
package graphfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/unlockpath/graph"
	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format names a graph encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
	FormatCBOR  Format = "cbor"
)

const compressedSuffix = ".zst"

// ErrUnknownFormat is returned for an extension no decoder handles.
var ErrUnknownFormat = errors.New("unknown graph format")

var (
	cborEnc   cbor.EncMode
	cborDec   cbor.DecMode
	digestEnc cbor.EncMode

	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error

	// Sorted map keys keep the encoding deterministic.
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("graphfile: CBOR encoder initialization failed: " + err.Error())
	}
	digestOpts := cbor.CoreDetEncOptions()
	digestOpts.NilContainers = cbor.NilContainerAsEmpty
	digestEnc, err = digestOpts.EncMode()
	if err != nil {
		panic("graphfile: CBOR digest encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("graphfile: CBOR decoder initialization failed: " + err.Error())
	}

	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("graphfile: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("graphfile: zstd decoder initialization failed: " + err.Error())
	}
}

// FormatFromPath returns the encoding for path and whether it is zstd
// compressed.
func FormatFromPath(path string) (Format, bool, error) {
	name := strings.ToLower(filepath.Base(path))
	compressed := strings.HasSuffix(name, compressedSuffix)
	name = strings.TrimSuffix(name, compressedSuffix)

	switch filepath.Ext(name) {
	case ".json":
		return FormatJSON, compressed, nil
	case ".jsonc":
		return FormatJSONC, compressed, nil
	case ".yaml", ".yml":
		return FormatYAML, compressed, nil
	case ".toml":
		return FormatTOML, compressed, nil
	case ".cbor":
		return FormatCBOR, compressed, nil
	default:
		return "", false, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Decode parses data in the given format.
func Decode(format Format, data []byte) (graph.Graph, error) {
	g := graph.Graph{}
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &g)
	case FormatJSONC:
		err = json.Unmarshal(jsonc.ToJSON(data), &g)
	case FormatYAML:
		err = yaml.Unmarshal(data, &g)
	case FormatTOML:
		_, err = toml.Decode(string(data), &g)
	case FormatCBOR:
		err = cborDec.Unmarshal(data, &g)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s graph: %w", format, err)
	}
	return g, nil
}

// Encode serializes g in the given format. JSONC is written as JSON.
func Encode(format Format, g graph.Graph) ([]byte, error) {
	if g == nil {
		g = graph.Graph{}
	}
	switch format {
	case FormatJSON, FormatJSONC:
		data, err := json.MarshalIndent(g, "", " ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(map[string][]string(g))
	case FormatTOML:
		var builder strings.Builder
		if err := toml.NewEncoder(&builder).Encode(map[string][]string(g)); err != nil {
			return nil, err
		}
		return []byte(builder.String()), nil
	case FormatCBOR:
		return cborEnc.Marshal(map[string][]string(g))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Load reads the graph file at path.
func Load(path string) (graph.Graph, error) {
	format, compressed, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", path, err)
	}
	if compressed {
		data, err = zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress graph %s: %w", path, err)
		}
	}

	g, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Write stores g at path, encoded according to its extension.
func Write(path string, g graph.Graph) error {
	format, compressed, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Encode(format, g)
	if err != nil {
		return fmt.Errorf("encode graph %s: %w", path, err)
	}
	if compressed {
		data = zstdEncoder.EncodeAll(data, nil)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write graph %s: %w", path, err)
	}
	return nil
}
