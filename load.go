package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type RawElement struct {
	Orbitals []string `toml:"orbitals" yaml:"orbitals"`
	Atoms    []int    `toml:"atoms" yaml:"atoms"`
}

type RawConf struct {
	Report   string                `toml:"report" yaml:"report"`
	MOs      []int                 `toml:"mos" yaml:"mos"`
	Range    string                `toml:"range" yaml:"range"`
	Section  string                `toml:"section" yaml:"section"`
	Debug    string                `toml:"debug" yaml:"debug"`
	Plot     string                `toml:"plot" yaml:"plot"`
	Elements map[string]RawElement `toml:"elements" yaml:"elements"`

	// element symbols in the order they appear in the file
	order []string
}

// ToConfig validates rc and converts it to a Config. Relative paths
// are taken relative to dir.
func (rc RawConf) ToConfig(dir string) (conf Config, err error) {
	mos := append([]int(nil), rc.MOs...)
	if rc.Range != "" {
		more, err := ParseMOs(rc.Range)
		if err != nil {
			return conf, err
		}
		mos = append(mos, more...)
	}
	conf.Selection, err = NewSelection(mos)
	if err != nil {
		return conf, err
	}
	if len(rc.Elements) == 0 {
		return conf, fmt.Errorf("%w: no elements given", ErrBadConfig)
	}
	order := rc.order
	if len(order) != len(rc.Elements) {
		order = make([]string, 0, len(rc.Elements))
		for sym := range rc.Elements {
			order = append(order, sym)
		}
		sort.Strings(order)
	}
	for _, sym := range order {
		e := rc.Elements[sym]
		if len(e.Orbitals) == 0 {
			return conf, fmt.Errorf("%w: no orbitals for %s",
				ErrBadConfig, sym)
		}
		conf.Filter = append(conf.Filter, ElementRule{
			Symbol:   sym,
			Orbitals: e.Orbitals,
			Atoms:    e.Atoms,
		})
	}
	conf.Report = resolve(dir, rc.Report)
	conf.Debug = resolve(dir, rc.Debug)
	conf.Plot = resolve(dir, rc.Plot)
	conf.Section = rc.Section
	return
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

type Config struct {
	Report    string
	Selection Selection
	Filter    Filter
	Section   string
	Debug     string
	Plot      string
}

// LoadConfig reads a TOML config, or a YAML one if filename ends in
// .yaml or .yml
func LoadConfig(filename string) (Config, error) {
	cont, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	// Defaults
	rc := RawConf{
		Section: UNO_SECTION,
		Debug:   "parsing_debug.txt",
		Plot:    "contributions.png",
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = decodeYAML(cont, &rc)
	default:
		err = decodeTOML(cont, &rc)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrBadConfig, filename, err)
	}
	return rc.ToConfig(filepath.Dir(filename))
}

func decodeTOML(cont []byte, rc *RawConf) error {
	md, err := toml.Decode(string(cont), rc)
	if err != nil {
		return err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return fmt.Errorf("unknown keys %v", undec)
	}
	for _, key := range md.Keys() {
		if len(key) == 2 && key[0] == "elements" {
			rc.order = append(rc.order, key[1])
		}
	}
	return nil
}

func decodeYAML(cont []byte, rc *RawConf) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(cont, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return nil
	}
	if err := doc.Content[0].Decode(rc); err != nil {
		return err
	}
	root := doc.Content[0]
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "elements" {
			continue
		}
		elems := root.Content[i+1]
		for j := 0; j+1 < len(elems.Content); j += 2 {
			rc.order = append(rc.order, elems.Content[j].Value)
		}
	}
	return nil
}
