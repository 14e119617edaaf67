package exits

import (
	"log"
	stdos "os"
)

func stop() {
	stdos.Exit(1)   // want `os.Exit\(\) should only be called from main function in main package`
	log.Fatalf("x") // want `log.Fatalf\(\) should only be called from main function in main package`
	log.Println("allowed")
}
