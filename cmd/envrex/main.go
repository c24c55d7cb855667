// Command envrex evaluates environment-mutation DSL scripts and renders
// or applies the resulting command log.
package main

import "github.com/cairnforge/envrex/internal/cmd"

func main() {
	cmd.Execute()
}
