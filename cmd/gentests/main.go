package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/emanaev/lambdatoy/pkg/lambda"
)

type TestCase struct {
	Name     string
	Program  string
	Expected string
}

const testTemplate = `
package gentests
import _ "embed"
import "testing"
import "github.com/emanaev/lambdatoy/cmd/gentests/helper"
//go:embed input.lam
var input string
//go:embed expected.lam
var expected string
func Test_%s_Evaluation(t *testing.T) {
	gentests.CheckEvaluation(t, "%s", input, expected)
}
`

func main() {
	tests := []TestCase{
		// Beta reduction basics
		{"001_identity", "(@x x) 5.", "5 ."},
		{"002_const", "(@x @y x) 1 2.", "1 ."},
		{"003_binding_reuse", ":twice = @f @x f (f x). twice I 9.", "9 ."},
		{"004_skk", "S K K 5.", "5 ."},

		// Literals
		{"005_string", `"hello world".`, `"hello world" .`},
		{"007_quote_escape", `"say ""hi""".`, `"say \"hi\"" .`},
		{"008_float", "2.5. 1E3.", "2.5 .\n1000 ."},

		// Prelude combinators
		{"006_true_false", "T 1 2. F 1 2.", "1 .\n2 ."},
		{"010_compose", "B I I 3.", "3 ."},

		// Normal forms that are not literals
		{"009_free_var", "y.", "y ."},
		{"011_abs_render", "@a K a 1.", "@a a ."},

		// Environment shadowing within one batch
		{"012_shadow", ":v = 1. v. :v = 2. v.", "1 .\n2 ."},
	}

	baseDir := "cmd/gentests/generated"
	os.MkdirAll(baseDir, 0755)

	for _, tc := range tests {
		dir := filepath.Join(baseDir, tc.Name)
		os.MkdirAll(dir, 0755)

		// Reject cases that do not parse before committing them
		if _, err := lambda.Parse(tc.Program); err != nil {
			fmt.Printf("Error parsing program for %s: %v\n", tc.Name, err)
			continue
		}

		testGo := fmt.Sprintf(testTemplate, tc.Name, tc.Name)

		os.WriteFile(filepath.Join(dir, "input.lam"), []byte(tc.Program), 0644)
		os.WriteFile(filepath.Join(dir, "expected.lam"), []byte(tc.Expected), 0644)
		os.WriteFile(filepath.Join(dir, "evaluation_test.go"), []byte(testGo), 0644)
	}

	fmt.Printf("Generated %d tests\n", len(tests))
}
