package main

import (
	"os"
)

// @title        Study Question Generator API
// @version      1.0
// @description  Turns study material, topics or OCR text into quiz questions using Gemini.
// @BasePath     /api
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
