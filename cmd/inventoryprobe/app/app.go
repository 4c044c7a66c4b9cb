// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/ironcore-dev/inventory-probe/internal/probe"
	"github.com/ironcore-dev/inventory-probe/internal/report"
)

const Name string = "inventoryprobe"

var (
	sourceName string
	noPause    bool
)

func NewCommand() *cobra.Command {
	opts := zap.Options{}

	root := &cobra.Command{
		Use:   Name,
		Short: "Print hardware and network identification of this host for the asset form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// main prints the returned error.
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			logf.SetLogger(zap.New(zap.UseFlagOptions(&opts), zap.WriteTo(cmd.ErrOrStderr())))
			log := logf.Log.WithName(Name)

			source, err := probe.NewSource(log.WithName("source"), sourceName)
			if err != nil {
				return err
			}
			return Run(cmd.Context(), log, probe.NewProbe(log.WithName("probe"), source), cmd.InOrStdin(), cmd.OutOrStdout(), !noPause)
		},
	}

	goFlags := flag.NewFlagSet(Name, flag.ContinueOnError)
	opts.BindFlags(goFlags)
	root.Flags().AddGoFlagSet(goFlags)
	root.Flags().StringVar(&sourceName, "source", probe.SourcePowerShell,
		fmt.Sprintf("Where hardware data is read from, one of %v.", probe.SourceNames()))
	root.Flags().BoolVar(&noPause, "no-pause", false, "Exit right after printing the report instead of waiting for Enter.")

	return root
}

// Run prints the banner, collects the inventory, renders it to out and, if
// pause is set, waits for the user to acknowledge on in. A cancelled ctx ends
// the run with ctx.Err() instead of printing a partial report or waiting.
func Run(ctx context.Context, log logr.Logger, p *probe.Probe, in io.Reader, out io.Writer, pause bool) error {
	if err := report.Header(out); err != nil {
		return err
	}

	inv, err := p.Collect(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted while collecting inventory: %w", err)
	}
	log.V(1).Info("Rendering report", "hostname", inv.Identity.Hostname)

	if err := report.Render(out, inv); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}
	if !pause {
		return nil
	}
	return report.Pause(ctx, in, out)
}
