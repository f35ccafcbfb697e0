// Package main is the entry point for the datatable CLI, a small inspection
// tool over exported table documents. The engine itself is a library; this
// command only drives the untyped manifest path.
package main

func main() {
	Execute()
}
