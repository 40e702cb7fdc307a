// Package store persists scraped word counts and the log of collected pages.
package store

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes and decodes a word-count snapshot.
type Codec interface {
	Marshal(counts map[string]int) ([]byte, error)
	Unmarshal(data []byte) (map[string]int, error)
	Name() string
}

// CodecFor picks a codec from the file extension: .json, .msgpack/.mpk, .cbor,
// anything else is plain text.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON{}
	case ".msgpack", ".mpk":
		return Msgpack{}
	case ".cbor":
		return CBOR{}
	default:
		return Text{}
	}
}

type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Marshal(counts map[string]int) ([]byte, error) {
	return json.MarshalIndent(counts, "", "  ")
}

func (JSON) Unmarshal(data []byte) (map[string]int, error) {
	counts := map[string]int{}
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

type Msgpack struct{}

func (Msgpack) Name() string { return "msgpack" }

func (Msgpack) Marshal(counts map[string]int) ([]byte, error) {
	return msgpack.Marshal(counts)
}

func (Msgpack) Unmarshal(data []byte) (map[string]int, error) {
	counts := map[string]int{}
	if err := msgpack.Unmarshal(data, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// CBOR uses core deterministic encoding so snapshots diff cleanly.
type CBOR struct{}

var cborEnc, _ = cbor.CoreDetEncOptions().EncMode()

func (CBOR) Name() string { return "cbor" }

func (CBOR) Marshal(counts map[string]int) ([]byte, error) {
	return cborEnc.Marshal(counts)
}

func (CBOR) Unmarshal(data []byte) (map[string]int, error) {
	counts := map[string]int{}
	if err := cbor.Unmarshal(data, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
