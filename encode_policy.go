package rebalance

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// this file handles the policy file format: a small YAML document declaring
// the class targets and the symbol universe. Example:
//
//	targets:
//	  STOCKS_USA_SP500: 0.40
//	  BONDS_CORP: 0.10
//	symbols:
//	  VOO: STOCKS_USA_SP500
//	  VCIT: BONDS_CORP

// DecodePolicy reads a policy from 'r' in the YAML policy format.
func DecodePolicy(r io.Reader) (Policy, error) {
	var doc struct {
		Targets map[AssetClass]Percent `yaml:"targets"`
		Symbols map[string]AssetClass  `yaml:"symbols"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Policy{}, fmt.Errorf("cannot parse policy file: %w", err)
	}
	if len(doc.Targets) == 0 {
		return Policy{}, fmt.Errorf("policy file declares no targets")
	}
	if len(doc.Symbols) == 0 {
		return Policy{}, fmt.Errorf("policy file declares no symbols")
	}
	return NewPolicy(doc.Symbols, doc.Targets)
}

// LoadPolicy reads a policy from the YAML file at 'path'.
func LoadPolicy(path string) (Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return Policy{}, fmt.Errorf("could not open policy file %q: %w", path, err)
	}
	defer f.Close()
	p, err := DecodePolicy(f)
	if err != nil {
		return Policy{}, fmt.Errorf("could not decode policy file %q: %w", path, err)
	}
	return p, nil
}

// EncodePolicy writes the policy to 'w' in the YAML policy format.
func EncodePolicy(w io.Writer, p Policy) error {
	doc := struct {
		Targets map[AssetClass]Percent `yaml:"targets"`
		Symbols map[string]AssetClass  `yaml:"symbols"`
	}{Targets: p.targets, Symbols: p.classes}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}
