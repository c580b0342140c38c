// diag-compute evaluates a single diagnostic against a parameter bundle
// read from a YAML file, without running the server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/pkg/bundle"
	"github.com/chrissnell/oceandiags/pkg/derived"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v2"
)

type bundleFile struct {
	Fields map[string]struct {
		Data  []float64 `yaml:"data"`
		Shape []int     `yaml:"shape"`
		Units string    `yaml:"units,omitempty"`
	} `yaml:"fields"`
}

type output struct {
	Diagnostic string    `json:"diagnostic"`
	Name       string    `json:"name"`
	Data       []float64 `json:"data"`
	Shape      []int     `json:"shape"`
	Units      string    `json:"units,omitempty"`
}

func main() {
	input := flag.String("input", "bundle.yaml", "Path to the YAML parameter bundle")
	diagnostic := flag.String("diagnostic", "", "Diagnostic to compute, e.g. ocean.total_heat_content")
	format := flag.String("format", "json", "Output format: 'json' or 'msgpack'")
	outFile := flag.String("output", "-", "Output file, '-' for stdout")
	list := flag.Bool("list", false, "List available diagnostics and exit")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *list {
		for _, name := range derived.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	if *diagnostic == "" {
		log.Error("no diagnostic given. Run with -list to see what is available.")
		os.Exit(1)
	}

	b, err := loadBundle(*input)
	if err != nil {
		log.Errorf("Failed to load bundle: %v", err)
		os.Exit(1)
	}

	field, err := derived.Compute(*diagnostic, b)
	if err != nil {
		log.Errorf("Failed to compute %s: %v", *diagnostic, err)
		os.Exit(1)
	}

	out := output{
		Diagnostic: *diagnostic,
		Name:       field.Name,
		Data:       field.Data,
		Shape:      field.Shape,
		Units:      field.Units,
	}

	if err := writeOutput(out, *format, *outFile); err != nil {
		log.Errorf("Failed to write output: %v", err)
		os.Exit(1)
	}
}

func loadBundle(path string) (*bundle.Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var bf bundleFile
	if err := yaml.Unmarshal(raw, &bf); err != nil {
		return nil, fmt.Errorf("invalid bundle file: %w", err)
	}
	if len(bf.Fields) == 0 {
		return nil, fmt.Errorf("bundle file %s contains no fields", path)
	}

	b := bundle.New()
	for name, f := range bf.Fields {
		field, err := bundle.NewField(name, f.Data, f.Shape, f.Units)
		if err != nil {
			return nil, err
		}
		b.Attach(field)
	}
	return b, nil
}

func writeOutput(out output, format, path string) error {
	var encoded []byte
	var err error

	switch format {
	case "json":
		encoded, err = json.MarshalIndent(out, "", "  ")
		encoded = append(encoded, '\n')
	case "msgpack":
		encoded, err = msgpack.Marshal(out)
	default:
		err = fmt.Errorf("unsupported output format: %s. Use 'json' or 'msgpack'", format)
	}
	if err != nil {
		return err
	}

	if path == "-" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	return os.WriteFile(path, encoded, 0o644)
}
