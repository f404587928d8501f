// Package main provides the rampcurve CLI, which compiles temperature
// recipes into time/temperature profiles and groups them into plots.
package main

func main() {
	Execute()
}
