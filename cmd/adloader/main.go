/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/insolar/adloader"
	"github.com/insolar/adloader/attackers"
	"github.com/insolar/adloader/internal/config"
	"github.com/insolar/adloader/workload"
)

type phase struct {
	name     string
	cfg      adloader.RunnerConfig
	attacker string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the CLI, errors go to stderr and give exit code 1
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cfgPath string
	rootCmd := cobra.Command{
		Use:           "adloader",
		Short:         "seeds the ad API with campaigns and queries it at a constant rate",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	rootCmd.AddCommand(
		seedCommand(&cfgPath),
		loadCommand(&cfgPath),
		runCommand(&cfgPath),
		attackersCommand(),
	)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func seedCommand(cfgPath *string) *cobra.Command {
	var attacker string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "create campaigns, fixed amount of iterations",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			return runPhases(cmd.Context(), cmd.OutOrStdout(), conf, phase{"seed", conf.SeedRunnerConfig(), attacker})
		},
	}
	cmd.Flags().StringVar(&attacker, "attacker", attackers.CreateCampaignLabel, attackerFlagUsage())
	return cmd
}

func loadCommand(cfgPath *string) *cobra.Command {
	var attacker string
	cmd := &cobra.Command{
		Use:   "load",
		Short: "query campaigns at a constant arrival rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			return runPhases(cmd.Context(), cmd.OutOrStdout(), conf, phase{"load", conf.LoadRunnerConfig(), attacker})
		},
	}
	cmd.Flags().StringVar(&attacker, "attacker", attackers.QueryCampaignsLabel, attackerFlagUsage())
	return cmd
}

func runCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "seed campaigns, then query them at a constant arrival rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			return runPhases(cmd.Context(), cmd.OutOrStdout(), conf,
				phase{"seed", conf.SeedRunnerConfig(), attackers.CreateCampaignLabel},
				phase{"load", conf.LoadRunnerConfig(), attackers.QueryCampaignsLabel},
			)
		},
	}
}

func attackersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attackers",
		Short: "list registered attackers",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range adloader.RegisteredAttackers() {
				cmd.Println(name)
			}
		},
	}
}

func attackerFlagUsage() string {
	return "attacker name, one of: " + strings.Join(adloader.RegisteredAttackers(), ", ")
}

func runPhases(ctx context.Context, out io.Writer, conf config.Config, phases ...phase) error {
	gen, err := workload.NewGenerator(conf.Catalogs, workload.NewRandomSource(conf.RandomSeed))
	if err != nil {
		return err
	}
	for _, p := range phases {
		prototype, err := adloader.AttackerFromString(p.attacker)
		if err != nil {
			return err
		}
		cfg := p.cfg
		r, err := adloader.NewRunner(&cfg, attackers.WithGenerator(prototype, gen), nil)
		if err != nil {
			return fmt.Errorf("%s phase: %w", p.name, err)
		}
		s, err := r.Run(ctx)
		if err != nil {
			return fmt.Errorf("%s phase: %w", p.name, err)
		}
		fmt.Fprintf(out, "%s: requests %d, success %.2f%%, max rps %.2f, dropped %d\n",
			p.name, s.Total.Requests, s.Total.Success*100, s.MaxTickRate, s.DroppedIterations)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return nil
}
