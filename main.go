package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Flags
var (
	reportFlag string
	mosFlag    string
	verbose    bool
	redirect   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loewdin",
		Short: "Sum Loewdin orbital populations by element",
		Long: `loewdin reads the LOEWDIN REDUCED ORBITAL POPULATIONS PER UNO
section of an ORCA output file and sums, for a chosen set of MOs, the
percentage contribution of selected orbitals of each element and of
individually tracked atoms.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&reportFlag, "report", "",
		"ORCA output file, overriding the config")
	pf.StringVar(&mosFlag, "mos", "",
		`MOs to analyze like "520-529" or "1,2,5", overriding the config`)
	pf.BoolVarP(&verbose, "verbose", "v", false,
		"log every parsed and skipped row to stderr")
	pf.BoolVar(&redirect, "redirect", false,
		"send stdout and stderr to <config>.out and <config>.log")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(dumpCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}

// setup loads the config named by args[0] and applies the overriding
// flags
func setup(args []string) (Config, error) {
	infile := args[0]
	if redirect {
		if err := DupOutErr(TrimExt(infile)); err != nil {
			return Config{}, err
		}
	}
	conf, err := LoadConfig(infile)
	if err != nil {
		return conf, err
	}
	if reportFlag != "" {
		conf.Report = reportFlag
	}
	if mosFlag != "" {
		mos, err := ParseMOs(mosFlag)
		if err != nil {
			return conf, err
		}
		conf.Selection, err = NewSelection(mos)
		if err != nil {
			return conf, err
		}
	}
	return conf, nil
}

func rowLogger() *log.Logger {
	if verbose {
		return log.New(os.Stderr, "", 0)
	}
	return log.New(io.Discard, "", 0)
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <config>",
		Short: "Analyze a report, print the tables and draw the chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := setup(args)
			if err != nil {
				return err
			}
			return Run(cmd.OutOrStdout(), conf, rowLogger())
		},
	}
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <config>",
		Short: "Rerun the analysis every time the report is written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := setup(args)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()
			run := func() error {
				return Run(cmd.OutOrStdout(), conf, rowLogger())
			}
			// an unfinished calculation has no section yet
			if err := run(); err != nil {
				log.Println(err)
			}
			log.Printf("watching %s\n", conf.Report)
			return Watch(ctx, conf.Report, run)
		},
	}
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <config>",
		Short: "Only write the parsed rows to the debug file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := setup(args)
			if err != nil {
				return err
			}
			if conf.Debug == "" {
				return fmt.Errorf("%w: no debug file configured",
					ErrBadConfig)
			}
			res, err := AnalyzeFile(conf, rowLogger())
			if res == nil {
				return err
			}
			if err := DumpRecords(res.Records, conf.Debug); err != nil {
				return err
			}
			log.Printf("Loewdin parsed data written to %s\n", conf.Debug)
			return err
		},
	}
}

// Run analyzes the report of conf, writes the tables to w and writes
// the debug dump and chart if configured. Nothing is drawn when no
// selected MO was found.
func Run(w io.Writer, conf Config, logger *log.Logger) error {
	res, err := AnalyzeFile(conf, logger)
	if res == nil {
		return err
	}
	if conf.Debug != "" {
		if err := DumpRecords(res.Records, conf.Debug); err != nil {
			return err
		}
		log.Printf("Loewdin parsed data written to %s\n", conf.Debug)
	}
	if err != nil {
		return err
	}
	WriteReport(w, res)
	if conf.Plot != "" {
		if err := SavePlot(res, conf.Plot); err != nil {
			return fmt.Errorf("drawing %s: %w", conf.Plot, err)
		}
		log.Printf("chart written to %s\n", conf.Plot)
	}
	return nil
}
