package bibtex

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultAliases are the well-known citation aliases, keyed by BIP number.
// An aliased entry can be cited as bip:taproot instead of bip:0341.
var defaultAliases = map[int]string{
	32:  "hdwallets",
	173: "bech32",
	324: "v2transport",
	327: "musig",
	340: "schnorr",
	341: "taproot",
	342: "tapscript",
	349: "internalkey",
	350: "bech32m",
}

// DefaultAliases returns a copy of the built-in alias table.
func DefaultAliases() map[int]string {
	out := make(map[int]string, len(defaultAliases))
	for n, a := range defaultAliases {
		out[n] = a
	}
	return out
}

// LoadAliases returns the built-in alias table merged with the overrides
// file at path, a YAML mapping of BIP number to alias:
//
//	341: taproot
//	9999: myproposal
//
// A missing file is not an error; the built-ins are returned as-is.
func LoadAliases(path string) (map[int]string, error) {
	merged := DefaultAliases()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return merged, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading aliases %s: %w", path, err)
	}

	var overrides map[int]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing aliases %s: %w", path, err)
	}
	for n, a := range overrides {
		merged[n] = a
	}
	return merged, nil
}
