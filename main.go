// Command doctestgen materializes annotated code samples from documentation
// into standalone test files, and checks the links those documents reference.
package main

import "github.com/gaurav-prasanna/doctestgen/cmd"

func main() {
	cmd.Execute()
}
