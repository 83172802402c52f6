/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command dxenigma encrypts and decrypts message streams on a configurable
// rotor machine.
//
//	dxenigma CONFIG [INPUT [OUTPUT]]
//
// CONFIG is a machine description, in YAML when it ends in .yaml or .yml
// and in text form otherwise. INPUT and OUTPUT default to standard input
// and output.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"dirpx.dev/dxenigma/dxcore/config"
	"dirpx.dev/dxenigma/dxcore/stream"
	"dirpx.dev/dxenigma/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dxenigma CONFIG [INPUT [OUTPUT]]",
		Short: "Rotor cipher machine simulator",
		Long: `dxenigma runs a rotor cipher machine over a message stream.

Lines starting with '*' select rotors, positions and plugboard, for example

  * B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)

Every other line is converted under the current settings and printed in
groups of five symbols.`,
		Args:          cobra.RangeArgs(1, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runConvert,
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level: info, debug or trace")
	rootCmd.Flags().Int("group", stream.DefaultGroupSize, "Output group size, 0 for none")

	rootCmd.AddCommand(
		newCatalogCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	group, _ := cmd.Flags().GetInt("group")
	if group < 0 {
		return fmt.Errorf("--group must be non-negative, got %d", group)
	}
	logger := logging.NewLogger(level, cmd.ErrOrStderr())

	desc, err := config.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", "path", args[0], "alphabet", desc.Alphabet.String(),
		"slots", desc.Slots, "pawls", desc.Pawls, "rotors", len(desc.Rotors))

	m, err := desc.NewMachine()
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) > 1 {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = cmd.OutOrStdout()
	if len(args) > 2 {
		f, err := os.Create(args[2])
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	p := stream.New(m, stream.WithLogger(logger), stream.WithGroupSize(group))
	return p.Run(cmd.Context(), in, out)
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the built-in naval machine description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			desc := config.Naval()
			switch format {
			case "yaml":
				data, err := desc.YAML()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case "text":
				_, err := io.WriteString(cmd.OutOrStdout(), desc.Text())
				return err
			default:
				return fmt.Errorf("unknown format %q (want yaml or text)", format)
			}
		},
	}
	cmd.Flags().String("format", "yaml", "Output format: yaml or text")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dxenigma version %s\n", version)
		},
	}
}
