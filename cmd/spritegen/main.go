package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/uhogames/spritegen"
	"github.com/urfave/cli/v2"
)

const (
	defaultDB  = "spritegen.db"
	defaultOut = "assets/sprites"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func newGenerator(c *cli.Context) (*spritegen.Generator, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return spritegen.New(c.String("db"), logger)
}

func main() {
	app := cli.NewApp()

	app.Name = "spritegen"
	app.Usage = "Procedural 16-bit sprite sheet generator"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SPRITEGEN_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to asset catalog",
		},
		&cli.StringFlag{
			Name:    "out",
			EnvVars: []string{"SPRITEGEN_OUT"},
			Value:   defaultOut,
			Usage:   "output directory for generated sheets",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "player",
			Usage:       "Generate the basic player sheet and large preview",
			Description: "",
			Action: func(c *cli.Context) error {
				g, err := newGenerator(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer g.Close()

				if err := g.SavePlayer(c.String("out")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "legendary",
			Usage:       "Generate the legendary player strip and urban tileset",
			Description: "",
			Action: func(c *cli.Context) error {
				g, err := newGenerator(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer g.Close()

				if err := g.Legendary(filepath.Join(c.String("out"), "legendary")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "all",
			Usage:       "Generate every asset",
			Description: "",
			Action: func(c *cli.Context) error {
				g, err := newGenerator(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer g.Close()

				if err := g.SavePlayer(c.String("out")); err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := g.Legendary(filepath.Join(c.String("out"), "legendary")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "quantize",
			Usage:       "Reduce an image to a 16 color paletted PNG",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, err := newGenerator(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer g.Close()

				if err := g.ImportImage(c.Args().First(), c.String("out")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Refresh the asset catalog from sheets on disk",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, err := newGenerator(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer g.Close()

				if err := g.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
