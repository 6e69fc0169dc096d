package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/akshat7606/QuickC/internal/cab/app"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("cab", pflag.ContinueOnError)
	envFile := flags.String("env-file", "", "dotenv file to load before reading the environment (default: .env if present)")
	showVersion := flags.BoolP("version", "v", false, "print the version and exit")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if *showVersion {
		fmt.Println("cab", app.BuildVersion)
		return
	}

	cfg, err := app.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
