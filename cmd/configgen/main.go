package main

import (
	"flag"
	"log"

	"github.com/danmuck/ocppcodec/internal/config"
)

const defaultPath = "cmd/ocppctl/config.toml"

func main() {
	output := flag.String("output", defaultPath, "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", defaultPath, "config path for validation")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		cfg, err := config.Load(*input)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated ocppctl config at %s (protocol %s, listen %s)", *input, cfg.Protocol, cfg.ListenAddr)
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote ocppctl config template to %s", *output)
}
