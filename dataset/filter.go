package dataset

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

/*
Filter takes a dataset and a boolean expression over attribute names and
returns a new dataset with the records for which the expression holds, in
their original order. Every record attribute is available to the expression
as a string variable, e.g. `outlook != "overcast" && windy == "false"`.

The expression is compiled once. An empty expression returns a shallow copy
of the dataset. A record for which the expression cannot be evaluated makes
Filter return an error naming its index.
*/
func Filter(ds Dataset, expression string) (Dataset, error) {
	if strings.TrimSpace(expression) == "" {
		result := make(Dataset, len(ds))
		copy(result, ds)
		return result, nil
	}
	program, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", expression, err)
	}
	var result Dataset
	for i, r := range ds {
		ok, err := matches(program, r)
		if err != nil {
			return nil, fmt.Errorf("evaluating filter on record #%d: %w", i, err)
		}
		if ok {
			result = append(result, r)
		}
	}
	return result, nil
}

func matches(program *vm.Program, r Record) (bool, error) {
	env := make(map[string]interface{}, len(r))
	for k, v := range r {
		env[k] = v
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("filter returned %T instead of bool", out)
	}
	return ok, nil
}
