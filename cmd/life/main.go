package main

import (
	"errors"
	"log"
	"os"

	"conway-fb/internal/app"
)

func main() {
	cfg, err := app.ParseArgs("life", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if !cfg.Headless {
		err := app.Run(cfg)
		if err == nil {
			return
		}
		if !errors.Is(err, app.ErrNoWindow) {
			log.Fatal(err)
		}
		log.Printf("%v; running headless", err)
	}

	if err := app.RunHeadless(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
