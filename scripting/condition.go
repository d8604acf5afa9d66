// Package scripting evaluates the small tengo expressions level data uses to
// gate objects and scene exits.
package scripting

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Env is what a condition can see. Nil functions read as false and zero.
type Env struct {
	Flag    func(key string) bool
	Enemies func() int
}

const conditionPrelude = `
flag := __engine.flag
enemies := __engine.enemies
`

// Condition is a compiled boolean expression such as
// `!flag("Level2_Completed")` or `enemies() == 0`.
type Condition struct {
	Source   string
	compiled *tengo.Compiled
}

func Compile(expr string) (*Condition, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("scripting: empty condition")
	}

	src := conditionPrelude + "__result := (" + expr + ")\n"
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__engine", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scripting: compile %q: %w", expr, err)
	}
	return &Condition{Source: expr, compiled: compiled}, nil
}

// Eval runs the condition against env and reports its truthiness.
func (c *Condition) Eval(env Env) (bool, error) {
	if c == nil || c.compiled == nil {
		return false, fmt.Errorf("scripting: nil condition")
	}
	if err := c.compiled.Set("__engine", buildEngine(env)); err != nil {
		return false, err
	}
	if err := c.compiled.Run(); err != nil {
		return false, fmt.Errorf("scripting: run %q: %w", c.Source, err)
	}
	return c.compiled.Get("__result").Bool(), nil
}

func buildEngine(env Env) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["flag"] = &tengo.UserFunction{Name: "flag", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if env.Flag == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		if env.Flag(objectAsString(args[0])) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["enemies"] = &tengo.UserFunction{Name: "enemies", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if env.Enemies == nil {
			return &tengo.Int{Value: 0}, nil
		}
		return &tengo.Int{Value: int64(env.Enemies())}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
