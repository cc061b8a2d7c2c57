// Command f2q generates and converts fermion-to-qubit Hamiltonian
// documents from the command line.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"f2q/chart"
	"f2q/code/qubits"
	"f2q/gen"
	"f2q/internal/f2qerr"
	"f2q/maps/jordanwigner"
	"f2q/serialize"
	"f2q/terms"
)

// Exit codes, stable across releases.
const (
	exitOK            = 0
	exitBadArgs       = 1
	exitFileError     = 2
	exitInternal      = 3
	exitSerialization = 11
)

func usage() {
	fmt.Println(`usage: f2q <generate|convert> [options]

Subcommands:
  generate   Generate a pseudo-random Hamiltonian and write it as a
             sumrepr document.
             Flags:
               -terms     <int>              one-electron term count      (default: 4)
               -terms2    <int>              two-electron term count      (default: 2)
               -orbitals  <int>              orbital index bound           (default: 8)
               -scale     <float>            coefficient magnitude scale   (default: 1.0)
               -seed      <string>           PRNG seed (required)
               -format    <json|yaml|toml>   output format                 (default: json)
               -jw                           apply the fermion-to-qubit map before writing
               -out       <path>             output path (default: stdout)
               -chart     <path>             also render a weight-histogram HTML chart
                                             (requires -jw)

  convert    Round-trip a sumrepr document between formats.
             Flags:
               -in     <path>               input path (required)
               -from   <json|yaml|toml>     input format (default: json)
               -to     <json|yaml|toml>     output format (default: json)
               -out    <path>               output path (default: stdout)
               -digest                      print the SHA3-256 digest of the
                                            canonical JSON encoding to stderr`)
	os.Exit(exitBadArgs)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "convert":
		err = runConvert(os.Args[2:])
	default:
		usage()
		return
	}
	if err == nil {
		os.Exit(exitOK)
	}
	fmt.Fprintln(os.Stderr, "f2q:", err)
	os.Exit(exitCodeFor(err))
}

// cliError pins a deliberate exit code to an error, so main need not
// reclassify errors returned from deep within a subcommand.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func badArgs(format string, args ...interface{}) error {
	return &cliError{code: exitBadArgs, err: fmt.Errorf(format, args...)}
}

func fileError(err error) error {
	return &cliError{code: exitFileError, err: err}
}

func serializationError(err error) error {
	return &cliError{code: exitSerialization, err: err}
}

func exitCodeFor(err error) int {
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	if errors.Is(err, f2qerr.ErrBadIndex) || errors.Is(err, f2qerr.ErrBadFormat) {
		return exitSerialization
	}
	return exitInternal
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return nil, badArgs("input path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fileError(err)
	}
	return data, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	terms1 := fs.Int("terms", 4, "one-electron term count")
	terms2 := fs.Int("terms2", 2, "two-electron term count")
	orbitals := fs.Int("orbitals", 8, "orbital index bound")
	scale := fs.Float64("scale", 1.0, "coefficient magnitude scale")
	seed := fs.String("seed", "", "PRNG seed")
	format := fs.String("format", "json", "output format: json|yaml|toml")
	jw := fs.Bool("jw", false, "apply the fermion-to-qubit map before writing")
	out := fs.String("out", "", "output path (default: stdout)")
	chartPath := fs.String("chart", "", "render a weight-histogram HTML chart to this path")
	if err := fs.Parse(args); err != nil {
		return badArgs("generate: %v", err)
	}
	if *seed == "" {
		return badArgs("generate: -seed is required")
	}
	if *orbitals <= 0 {
		return badArgs("generate: -orbitals must be positive")
	}
	if *chartPath != "" && !*jw {
		return badArgs("generate: -chart requires -jw")
	}

	fermionSum, err := gen.Generate(gen.Config{
		Seed:        []byte(*seed),
		NumOrbitals: uint32(*orbitals),
		NumOneBody:  *terms1,
		NumTwoBody:  *terms2,
		CoeffScale:  *scale,
	})
	if err != nil {
		return err
	}

	var jsonDoc []byte
	var qubitSum *terms.SumRepr[float64, qubits.Pauli]
	if *jw {
		qubitSum = terms.NewSumRepr[float64, qubits.Pauli]()
		if err := jordanwigner.New(fermionSum).AddTo(qubitSum); err != nil {
			return err
		}
		jsonDoc, err = serialize.EncodePauliSum(qubitSum)
	} else {
		jsonDoc, err = serialize.EncodeFermionSum(fermionSum)
	}
	if err != nil {
		return serializationError(err)
	}

	payload, err := reencodeFromJSON(jsonDoc, *format)
	if err != nil {
		return serializationError(err)
	}
	if err := writeOutput(*out, payload); err != nil {
		return fileError(err)
	}

	if *chartPath != "" {
		f, err := os.Create(*chartPath)
		if err != nil {
			return fileError(err)
		}
		defer f.Close()
		if err := chart.Render(qubitSum, f); err != nil {
			return err
		}
	}
	return nil
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	in := fs.String("in", "", "input path")
	from := fs.String("from", "json", "input format: json|yaml|toml")
	to := fs.String("to", "json", "output format: json|yaml|toml")
	out := fs.String("out", "", "output path (default: stdout)")
	digest := fs.Bool("digest", false, "print the SHA3-256 digest of the canonical JSON encoding")
	if err := fs.Parse(args); err != nil {
		return badArgs("convert: %v", err)
	}

	data, err := readInput(*in)
	if err != nil {
		return err
	}

	rawJSON, err := toJSONBytes(*from, data)
	if err != nil {
		return serializationError(err)
	}

	canonical, err := canonicalize(rawJSON)
	if err != nil {
		return serializationError(err)
	}

	payload, err := reencodeFromJSON(canonical, *to)
	if err != nil {
		return serializationError(err)
	}
	if err := writeOutput(*out, payload); err != nil {
		return fileError(err)
	}

	if *digest {
		fmt.Fprintln(os.Stderr, serialize.Digest(canonical))
	}
	return nil
}

// envelope peeks at a document's encoding without committing to either
// domain type.
type envelope struct {
	Encoding string `json:"encoding"`
}

// canonicalize decodes a sumrepr document through its real domain type
// (coalescing duplicate codes, validating indices and Pauli text) and
// re-encodes it, giving JSON the bit-exact round trip the other formats
// only approximate.
func canonicalize(rawJSON []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(rawJSON, &env); err != nil {
		return nil, f2qerr.Format("sumrepr envelope: " + err.Error())
	}
	switch env.Encoding {
	case "fermions":
		repr, err := serialize.DecodeFermionSum(rawJSON)
		if err != nil {
			return nil, err
		}
		return serialize.EncodeFermionSum(repr)
	case "qubits":
		repr, err := serialize.DecodePauliSum(rawJSON)
		if err != nil {
			return nil, err
		}
		return serialize.EncodePauliSum(repr)
	default:
		return nil, f2qerr.Format("unknown sumrepr encoding " + env.Encoding)
	}
}

// toJSONBytes brings an arbitrary-format document to JSON bytes. YAML and
// TOML inputs go through a generic map, exactly as a plain format
// transcoder would: they carry no fermion/qubit domain semantics until
// canonicalize validates them.
func toJSONBytes(format string, data []byte) ([]byte, error) {
	switch format {
	case "json":
		return data, nil
	case "yaml":
		var v map[string]interface{}
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return json.Marshal(v)
	case "toml":
		var v map[string]interface{}
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return json.Marshal(v)
	default:
		return nil, f2qerr.Format("unknown format " + format)
	}
}

// reencodeFromJSON renders canonical JSON bytes in the requested format.
func reencodeFromJSON(jsonDoc []byte, format string) ([]byte, error) {
	switch format {
	case "json":
		return jsonDoc, nil
	case "yaml":
		var v map[string]interface{}
		if err := json.Unmarshal(jsonDoc, &v); err != nil {
			return nil, err
		}
		return yaml.Marshal(v)
	case "toml":
		var v map[string]interface{}
		if err := json.Unmarshal(jsonDoc, &v); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, f2qerr.Format("unknown format " + format)
	}
}
