/*
Copyright © 2025 the OttoFTAF authors.
This file is part of OttoFTAF.

OttoFTAF is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

OttoFTAF is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with OttoFTAF.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package ottoutil holds the command-line interface for OttoFTAF and
// the TOML case file format it reads.
package ottoutil

import (
	"fmt"
	"os"
	"sort"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/ottoftaf"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log is the logger the commands report progress to.
var Log = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to OttoFTAF.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "case",
			usage: `
              case specifies the location of the TOML case file
              describing the engine and the cycle to solve.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), engineCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "zeta",
			usage: `
              zeta overrides the residual gas fraction. Negative values
              select the built-in regression estimate.`,
			defaultVal: -1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "pvplot",
			usage: `
              pvplot specifies a file to write a pressure-volume diagram
              of the solved cycle to. The file extension selects the
              format. Empty means no diagram.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "tvplot",
			usage: `
              tvplot specifies a file to write a temperature-volume
              diagram of the solved cycle to. Empty means no diagram.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "states",
			usage: `
              states specifies a file to write the state at every mesh
              point of the solved cycle to as comma-separated values.
              Empty means no state output.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "logscale",
			usage: `
              logscale plots the diagrams with logarithmic axes.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "sweep.start",
			usage: `
              sweep.start is the first equivalence ratio of a sweep.`,
			defaultVal: 0.6,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "sweep.end",
			usage: `
              sweep.end is the last equivalence ratio of a sweep.`,
			defaultVal: 1.2,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "sweep.n",
			usage: `
              sweep.n is the number of cycles to solve in a sweep.`,
			defaultVal: 7,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "sweep.out",
			usage: `
              sweep.out specifies a file to write the sweep results to
              as comma-separated values. Empty means standard output.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "sweep.plot",
			usage: `
              sweep.plot specifies a file to write an efficiency plot of
              the sweep to. Empty means no plot.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("OTTOFTAF")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(engineCmd)
	Root.AddCommand(sweepCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("ottoftaf: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// readCase reads the case file named by the "case" option.
func readCase() (*Case, error) {
	caseFile := Cfg.GetString("case")
	if caseFile == "" {
		return nil, fmt.Errorf("ottoftaf: a case file must be given with --case")
	}
	return ReadCase(os.ExpandEnv(caseFile))
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "ottoftaf",
	Short: "An air-fuel Otto cycle model with finite-time heat addition.",
	Long: `OttoFTAF models spark-ignition engine cycles with an air-fuel working
substance whose composition evolves over a finite combustion duration.
Use the subcommands specified below to access the model functionality.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'OTTOFTAF_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of OttoFTAF.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("OttoFTAF v%s\n", ottoftaf.Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve one cycle.",
	Long: `run solves the cycle described by the case file and reports the
thermal efficiency, net work, and back work ratio. Diagrams of the
solution can be requested with --pvplot and --tvplot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := readCase()
		if err != nil {
			return err
		}
		cyc, err := c.Cycle()
		if err != nil {
			return err
		}
		var res *ottoftaf.Results
		if zeta := Cfg.GetFloat64("zeta"); zeta >= 0 {
			res, err = cyc.RunZeta(zeta)
		} else {
			res, err = cyc.Run()
		}
		if err != nil {
			return err
		}
		Log.WithFields(logrus.Fields{
			"eta":   res.Eta,
			"w_net": res.NetWork,
			"rbw":   res.BackWorkRatio,
			"zeta":  res.Zeta,
		}).Info("cycle solved")
		if f := Cfg.GetString("states"); f != "" {
			w, err := os.Create(f)
			if err != nil {
				return err
			}
			if err := cyc.WriteStates(w); err != nil {
				w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}
		}
		if f := Cfg.GetString("pvplot"); f != "" {
			if err := cyc.PVDiagram(f, Cfg.GetBool("logscale")); err != nil {
				return err
			}
		}
		if f := Cfg.GetString("tvplot"); f != "" {
			if err := cyc.TVDiagram(f, Cfg.GetBool("logscale")); err != nil {
				return err
			}
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var engineCmd = &cobra.Command{
	Use:   "engine",
	Short: "Complete the engine geometry.",
	Long: `engine completes the partial engine geometry given in the case file
and prints every parameter that could be determined from it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := readCase()
		if err != nil {
			return err
		}
		e, err := c.SolveEngine()
		if err != nil {
			return err
		}
		names := make([]string, 0, len(e))
		for name := range e {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			cmd.Printf("%-4s = %g\n", name, e[name])
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep [start end n]",
	Short: "Solve cycles over a range of equivalence ratios.",
	Long: `sweep solves the case once for each of a range of equivalence ratios
and writes the results as comma-separated values. The range is taken
from the sweep.start, sweep.end, and sweep.n options or from the three
positional arguments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := Cfg.GetFloat64("sweep.start")
		end := Cfg.GetFloat64("sweep.end")
		n := Cfg.GetInt("sweep.n")
		if len(args) == 3 {
			var err error
			if start, err = cast.ToFloat64E(args[0]); err != nil {
				return fmt.Errorf("ottoftaf: invalid sweep start %s: %v", args[0], err)
			}
			if end, err = cast.ToFloat64E(args[1]); err != nil {
				return fmt.Errorf("ottoftaf: invalid sweep end %s: %v", args[1], err)
			}
			if n, err = cast.ToIntE(args[2]); err != nil {
				return fmt.Errorf("ottoftaf: invalid sweep count %s: %v", args[2], err)
			}
		} else if len(args) != 0 {
			return fmt.Errorf("ottoftaf: sweep takes either no arguments or start, end, and n")
		}
		c, err := readCase()
		if err != nil {
			return err
		}
		pts, err := Sweep(c, SweepRange(start, end, n))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if f := Cfg.GetString("sweep.out"); f != "" {
			w, err := os.Create(f)
			if err != nil {
				return err
			}
			defer w.Close()
			out = w
		}
		if err := WriteCSV(out, pts); err != nil {
			return err
		}

		s := Summarize(pts)
		Log.WithFields(logrus.Fields{
			"eta_mean": s.EtaMean,
			"eta_min":  s.EtaMin,
			"eta_max":  s.EtaMax,
			"slope":    s.Slope,
			"r2":       s.RSquared,
		}).Info("sweep finished")

		if f := Cfg.GetString("sweep.plot"); f != "" {
			return PlotEta(f, pts)
		}
		return nil
	},
	DisableAutoGenTag: true,
}
