package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/user/attmon/config"
	"github.com/user/attmon/logger"
)

var cfg *config.Config

func main() {
	app := cli.NewApp()

	app.Name = "attmon"
	app.Usage = "Dissect captured ATT traffic"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "YAML configuration file"},
		cli.StringFlag{Name: "log-level, l", Usage: "TRACE, DEBUG, INFO, WARN or ERROR (overrides the config)"},
		cli.StringFlag{Name: "storage, s", Usage: "attribute database root (overrides the config)"},
	}

	app.Commands = []cli.Command{
		{
			Name:      "dissect",
			Aliases:   []string{"d"},
			Usage:     "Dissect a JSON Lines capture",
			ArgsUsage: "FILE|-",
			Action:    dissect,
			Flags: []cli.Flag{
				cli.StringFlag{Name: "format, f", Usage: "text or json (overrides the config)"},
				cli.StringFlag{Name: "metrics-addr", Usage: "serve Prometheus metrics on this address"},
			},
		},
		{
			Name:      "decode",
			Usage:     "Dissect a single ATT PDU given in hex",
			ArgsUsage: "HEX",
			Action:    decode,
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "in", Usage: "PDU was received from the peer"},
				cli.UintFlag{Name: "handle", Value: 0x0040, Usage: "connection handle"},
				cli.UintFlag{Name: "cid", Value: 0x0004, Usage: "L2CAP channel id"},
				cli.StringFlag{Name: "local", Usage: "local adapter address, enables attribute lookup"},
				cli.StringFlag{Name: "peer", Usage: "peer device address"},
				cli.StringFlag{Name: "format, f", Usage: "text or json (overrides the config)"},
				cli.StringFlag{Name: "save", Usage: "append the PDU to this capture file"},
			},
		},
	}

	app.Before = setup
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "attmon: %v\n", err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) error {
	var err error
	if path := c.GlobalString("config"); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
	} else {
		cfg = config.Default()
	}

	if level := c.GlobalString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if dir := c.GlobalString("storage"); dir != "" {
		cfg.StorageDir = dir
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid settings")
	}

	logger.SetOutput(os.Stderr)
	logger.SetLevel(cfg.Logging.LogLevel())
	return nil
}

// outputFormat returns the format requested on the command line or in the
// config
func outputFormat(c *cli.Context) (string, error) {
	format := c.String("format")
	if format == "" {
		return cfg.Output, nil
	}
	if format != config.OutputText && format != config.OutputJSON {
		return "", errors.Errorf("unknown format %q", format)
	}
	return format, nil
}
