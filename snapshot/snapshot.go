package snapshot

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/signadot/rtdbview/encode"
	"github.com/signadot/rtdbview/ir"
	"github.com/signadot/rtdbview/parse"
)

// FileName is the default snapshot name for a database path, e.g.
// firebase_players_p1.json, or firebase_root.json for the root.
func FileName(dbPath string) string {
	p := strings.Trim(strings.TrimSpace(dbPath), "/")
	if p == "" {
		return "firebase_root.json"
	}
	return "firebase_" + strings.ReplaceAll(p, "/", "_") + ".json"
}

// Save writes the raw response text to file unchanged.
func Save(file string, data []byte) error {
	if err := os.WriteFile(file, data, 0644); err != nil {
		return fmt.Errorf("error saving snapshot: %w", err)
	}
	return nil
}

// Load reads and leniently parses a snapshot.
func Load(file string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if node == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, file)
	}
	return node, nil
}

func wire(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true), encode.EncodeSortKeys(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pretty(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeSortKeys(true)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
