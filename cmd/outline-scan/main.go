// outline-scan runs the reference detector over outline files and
// prints every resolved verse, one per line.
package main

import (
	"fmt"
	"os"

	"outliner/refscan"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: outline-scan <outline.txt> [...]")
		os.Exit(1)
	}

	engine := refscan.NewEngine()
	exitCode := 0
	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("%s: read error: %v\n", path, err)
			exitCode = 1
			continue
		}

		refs := engine.Scan(string(data))
		if len(refs) == 0 {
			fmt.Printf("%s: no references found\n", path)
			continue
		}
		for _, r := range refs {
			fmt.Printf("%s:%d-%d: %s (%q)\n", path, r.Start, r.End, r.Key.Ref(), r.Text)
		}
	}
	os.Exit(exitCode)
}
