package main

import (
	"log"
	"os"

	"github.com/TFMV/filewalker/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("filewalker: ")

	// Set up a deferred function to recover from panics.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v", r)
			os.Exit(1)
		}
	}()

	err := cmd.Execute()
	if err != nil {
		log.Print(err)
	}
	os.Exit(cmd.ExitCode(err))
}
