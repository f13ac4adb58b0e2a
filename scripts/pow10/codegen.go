package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

const tmpl = `// Code generated by scripts/pow10/codegen.go; DO NOT EDIT.

package bignum

import "math/big"

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = [...]*big.Int{
{{- range .}}
	mustParseBig("{{.}}"),
{{- end}}
}
`

func main() {
	maxPower := flag.Int("max", 100, "largest cached power of ten")
	output := flag.String("o", "pow10_data.go", "output file")
	flag.Parse()

	// Compute the decimal representation of each power
	powers := generatePowers(*maxPower)

	// Generate Go code from the powers using a template
	code, err := generateGoCode(powers)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile(*output, code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func generatePowers(maxPower int) []string {
	powers := make([]string, 0, maxPower+1)
	for i := 0; i <= maxPower; i++ {
		powers = append(powers, "1"+strings.Repeat("0", i))
	}
	return powers
}

func generateGoCode(powers []string) ([]byte, error) {
	t, err := template.New("pow10").Parse(tmpl)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = t.Execute(&output, powers)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
