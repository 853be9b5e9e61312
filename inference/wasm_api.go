//go:build js && wasm

package inference

import (
	"fmt"
	"strings"
	"syscall/js"
)

// InferVariance runs the pipeline on its first argument and returns
//
//	{ generated: string, simplified: string, solution: string, error: string }
//
// where each list is rendered one entry per line. On malformed input the three
// lists are empty, so the page clears whatever it displayed before
func InferVariance(_ js.Value, args []js.Value) (ret any) {
	resultObj := func(v View, errMsg string) any {
		return js.ValueOf(map[string]any{
			"generated":  strings.Join(v.Generated, "\n"),
			"simplified": strings.Join(v.Simplified, "\n"),
			"solution":   strings.Join(v.Solution, "\n"),
			"error":      errMsg,
		})
	}
	defer func() {
		if r := recover(); r != nil {
			ret = resultObj(EmptyView, "inference panicked: "+fmt.Sprint(r))
		}
	}()

	if len(args) < 1 {
		return resultObj(EmptyView, "expected the declarations as argument")
	}
	res, err := Run(args[0].String(), DefaultOptions())
	if err != nil {
		return resultObj(EmptyView, err.Error())
	}
	return resultObj(res.View(true), "")
}
