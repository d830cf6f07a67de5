package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BeerReview/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Beer Review"), kong.Description("BeerReview is a beer rating service."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
