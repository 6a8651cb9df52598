package main

import (
	"context"
	"fmt"
	"os"

	translator "aiupstart.com/translator"
	"aiupstart.com/translator/internal/config"
	"aiupstart.com/translator/internal/runner"
	"aiupstart.com/translator/internal/utils"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // Loads .env file if present

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: translator <hacker_file> [--verbose]")
		os.Exit(1)
	}
	filePath := os.Args[1]
	verbose := len(os.Args) > 2 && os.Args[2] == "--verbose"
	if verbose {
		utils.SetVerbose()
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		utils.Logger.Fatal().Err(err).Str("file", filePath).Msg("Cannot read input file")
	}

	// Toolchain config (optional)
	cfg, _ := config.Load(config.DefaultPath)

	registry := runner.NewRegistry(cfg)
	extractor := translator.MarkerBlockExtractor{}

	// Strictly sequential: each block runs to completion before the next
	// starts. A block's failure is reported and the loop moves on; it never
	// changes the process exit code.
	ctx := context.Background()
	for _, block := range extractor.ExtractBlocks(string(content)) {
		utils.Logger.Debug().
			Str("block", block.ID).
			Str("language", block.Language).
			Msgf("Executing code:\n%s", block.Code)
		result := registry.Run(ctx, block)
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "[%s] Error: %s\n", block.Language, result.Err)
		} else {
			fmt.Printf("[%s] Output:\n%s\n", block.Language, result.Output)
		}
	}
}
