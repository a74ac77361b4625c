package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Dialect is one named delimiter/enclosure pair from a profile file.
type Dialect struct {
	Delimiter string `yaml:"delimiter"`
	Enclosure string `yaml:"enclosure"`
}

func (d Dialect) delimiter() byte {
	if d.Delimiter == "" {
		return ','
	}
	return d.Delimiter[0]
}

func (d Dialect) enclosure() byte {
	if d.Enclosure == "" {
		return '"'
	}
	return d.Enclosure[0]
}

// validate rejects multi-byte control characters early, with the profile
// name in the message.
func (d Dialect) validate(name string) error {
	if len(d.Delimiter) > 1 {
		return fmt.Errorf("profile %q: delimiter must be a single byte", name)
	}
	if len(d.Enclosure) > 1 {
		return fmt.Errorf("profile %q: enclosure must be a single byte", name)
	}
	return nil
}

// Profiles is a set of named dialects loaded from a YAML file, e.g.
//
//	dialects:
//	  excel-de:
//	    delimiter: ";"
//	  pipes:
//	    delimiter: "|"
//	    enclosure: "'"
type Profiles struct {
	Dialects map[string]Dialect `yaml:"dialects"`
}

// LoadProfiles reads and decodes a dialect profile file.
func LoadProfiles(path string) (*Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Profiles
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for name, d := range p.Dialects {
		if err := d.validate(name); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// Dialect looks up a dialect by name.
func (p *Profiles) Dialect(name string) (Dialect, error) {
	d, ok := p.Dialects[name]
	if !ok {
		return Dialect{}, fmt.Errorf("unknown profile %q", name)
	}
	return d, nil
}
