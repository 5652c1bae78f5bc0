// Command amankeys extracts keywords and key phrases from text.
package main

import (
	"os"

	"github.com/Aman-CERP/amankeys/cmd/amankeys/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute()))
}
