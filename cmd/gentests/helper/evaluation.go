package gentests

import (
	"strings"
	"testing"

	"github.com/emanaev/lambdatoy/pkg/lambda"
)

// CheckEvaluation runs program in a fresh session preloaded with the
// combinator prelude and compares the rendering of each reduced bare term
// against the corresponding line of expected. Binding statements produce no
// output and are skipped, matching the CLI driver.
func CheckEvaluation(t *testing.T, testName string, program string, expected string) {
	env := lambda.NewEnv()
	if err := lambda.LoadPrelude(env); err != nil {
		t.Fatalf("%s: prelude: %v", testName, err)
	}

	events, err := lambda.Eval(program, env)
	if err != nil {
		t.Fatalf("%s: eval error: %v", testName, err)
	}

	var got []string
	for _, ev := range events {
		if ev.Kind == lambda.Reduced {
			got = append(got, ev.Text)
		}
	}

	var want []string
	for _, line := range strings.Split(expected, "\n") {
		if strings.TrimSpace(line) != "" {
			want = append(want, strings.TrimSpace(line))
		}
	}

	if len(got) != len(want) {
		t.Fatalf("%s: got %d results, want %d\ngot:  %v\nwant: %v", testName, len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s: result %d:\ngot:  %s\nwant: %s", testName, i, got[i], want[i])
		}
	}
}
