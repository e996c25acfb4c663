// Command mlkemkat runs ML-KEM-768 against a NIST-style known-answer-test
// vector file and reports conformance.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/DavidBuchanan314/mlkem768"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	app := &cli.App{
		Name:  "mlkemkat",
		Usage: "verify ML-KEM-768 against a NIST known-answer-test vector file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "path to a kat_MLKEM_768.rsp vector file",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only print a final summary line",
			},
		},
		Action: func(c *cli.Context) error {
			return run(&log, c.String("file"), c.Bool("quiet"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("mlkemkat failed")
	}
}

func run(log *zerolog.Logger, path string, quiet bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := mlkem768.ReadKATFile(f)
	if err != nil {
		return err
	}
	if !quiet {
		log.Info().Int("records", len(records)).Str("file", path).Msg("loaded KAT vectors")
	}

	var failures int
	for _, rec := range records {
		if err := mlkem768.MLKEM768.Verify(rec); err != nil {
			failures++
			if !quiet {
				log.Error().Int("count", rec.Count).Err(err).Msg("KAT record failed")
			}
			continue
		}
		if !quiet {
			log.Info().Int("count", rec.Count).Msg("KAT record passed")
		}
	}

	if failures > 0 {
		log.Error().Int("failures", failures).Int("total", len(records)).Msg("KAT run failed")
		os.Exit(1)
	}
	log.Info().Int("total", len(records)).Msg("all KAT records passed")
	return nil
}
