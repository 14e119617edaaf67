package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) > 2 {
		log.Fatal("too many arguments")
	}
	os.Exit(0)
}

func helper() {
	os.Exit(2) // want `os.Exit\(\) should only be called from main function in main package`
}
