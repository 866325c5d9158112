package main

import "os"

func main() {
	os.Exit(1) // want "os.Exit cannot be called in main function"
}
