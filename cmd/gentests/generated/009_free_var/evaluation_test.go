package gentests

import _ "embed"
import "testing"
import "github.com/emanaev/lambdatoy/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed expected.lam
var expected string

func Test_009_free_var_Evaluation(t *testing.T) {
	gentests.CheckEvaluation(t, "009_free_var", input, expected)
}
