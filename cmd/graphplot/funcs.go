package main

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// functions are the templates selectable with --func.
var functions = map[string]func(x float64) float64{
	"x*10":     func(x float64) float64 { return x * 10 },
	"x^2":      func(x float64) float64 { return x * x },
	"x^3":      func(x float64) float64 { return x * x * x },
	"x*sin(x)": func(x float64) float64 { return x * math.Sin(x) },
	"exp(x)":   math.Exp,
	"ln(x)":    math.Log,
}

func functionNames() []string {
	names := make([]string, 0, len(functions))
	for n := range functions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func function(name string) (func(x float64) float64, error) {
	f, ok := functions[strings.ReplaceAll(name, " ", "")]
	if !ok {
		return nil, fmt.Errorf("unknown function %q (known: %s)", name,
			strings.Join(functionNames(), ", "))
	}
	return f, nil
}
