//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cottand/variance/inference"
)

func main() {
	js.Global().Set("InferVariance", js.FuncOf(inference.InferVariance))

	// wait indefinitely so that Go does not terminate execution
	// and the function remains available
	<-make(chan struct{})
}
