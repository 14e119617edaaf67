// Command linter запрещает panic, а также os.Exit и log.Fatal вне функции main.
package main

import "golang.org/x/tools/go/analysis/singlechecker"

func main() {
	singlechecker.Main(Analyzer)
}
