package world

import (
	_ "embed"
)

//go:embed defaults/map.txt
var defaultMap []byte

//go:embed defaults/establishments.yaml
var defaultEstablishments []byte

// DefaultMap returns the embedded town map, used to seed the data
// directory and as a parse fallback.
func DefaultMap() []byte {
	return defaultMap
}

// DefaultEstablishments returns the embedded establishment directory.
func DefaultEstablishments() []byte {
	return defaultEstablishments
}
