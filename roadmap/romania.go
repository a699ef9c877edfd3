package roadmap

import (
	"bytes"
	_ "embed"
)

//go:embed romania.yaml
var romaniaYAML []byte

// Romania returns a fresh Table of the classic 20-city Romania road map with
// straight-line distances to Bucharest as the heuristic. Some roads carry
// different lengths per direction (Hirsova→Eforie is 86, Eforie→Hirsova 75).
//
// The data is embedded and known to be valid; Romania panics only if the
// embedded document has been corrupted at build time.
func Romania() *Table {
	t, err := Load(bytes.NewReader(romaniaYAML))
	if err != nil {
		panic("roadmap: embedded Romania table: " + err.Error())
	}

	return t
}
