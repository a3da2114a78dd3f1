package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/cellwire/cellwire/cmd/codegen/templates"
	"github.com/cespare/xxhash/v2"
	"github.com/urfave/cli/v3"
)

const (
	maxArityKey = "arity"
	outKey      = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the arity-expanded CombineLatest constructors",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxArityKey,
				Usage: "Highest CombineLatest arity to generate",
				Value: 6,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Generated file path",
				Value: "cell/combine_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen started")
	defer func() {
		log.Printf("Codegen finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(maxArityKey))
	out := cmd.String(outKey)
	log.Printf("Max arity: %d", maxArity)

	contents := []byte(templates.CombineGen(maxArity))

	// Leave the file untouched when the render is identical, so builds that
	// watch mtimes do not churn.
	if existing, err := os.ReadFile(out); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64(contents) {
			log.Printf("%s is up to date", out)
			return nil
		}
	}

	return os.WriteFile(out, contents, 0644)
}
