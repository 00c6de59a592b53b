/*
 * Copyright (C) 2026 The "MysteriumNetwork/ipnotify" Authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/mysteriumnetwork/ipnotify/cmd"
	"github.com/mysteriumnetwork/ipnotify/cmd/commands/version"
	"github.com/mysteriumnetwork/ipnotify/config"
	"github.com/mysteriumnetwork/ipnotify/logconfig"
	"github.com/mysteriumnetwork/ipnotify/metadata"
)

var versionCommand = version.NewCommand(metadata.VersionAsSummary())

func main() {
	logconfig.Bootstrap()

	if err := NewCommand().Run(os.Args); err != nil {
		log.Error().Err(err).Msg("Failed to execute command")
		os.Exit(1)
	}
}

// NewCommand function creates application master command
func NewCommand() *cli.App {
	cli.VersionPrinter = func(ctx *cli.Context) {
		_ = versionCommand.Action(ctx)
	}

	app := cli.NewApp()
	app.Name = "ipnotify"
	app.Usage = "Resolves the public IP address and pushes it to a Bark device"
	app.Authors = []*cli.Author{
		{Name: `The "MysteriumNetwork/ipnotify" Authors`},
	}
	app.Version = metadata.VersionAsString()
	// lookup URLs may carry commas in their query, lists come from repeating the flag
	app.DisableSliceFlagSeparator = true
	config.RegisterFlagsDirectory(&app.Flags)
	config.RegisterFlagsLogger(&app.Flags)
	config.RegisterFlagsLookup(&app.Flags)
	config.RegisterFlagsNetwork(&app.Flags)
	app.Commands = []*cli.Command{
		versionCommand,
	}
	app.Action = runAction

	return app
}

// runAction performs a single pass. Lookup and notification failures are
// reported in logs only, configuration errors abort the run.
func runAction(ctx *cli.Context) error {
	if err := config.ParseFlagsDirectory(ctx); err != nil {
		return err
	}
	logOptions := config.ParseFlagsLogger(ctx)
	logconfig.Configure(&logOptions)
	config.ParseFlagsLookup(ctx)
	config.ParseFlagsNetwork(ctx)

	if err := config.Validate(config.Current); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	runCtx, cancel := cmd.InterruptContext(ctx.Context)
	defer cancel()

	di := &cmd.Dependencies{}
	if err := di.Bootstrap(cmd.GetOptions()); err != nil {
		return err
	}

	di.Runner.Run(runCtx)
	di.Report.Log()
	return nil
}
