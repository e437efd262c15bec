/*
 * Copyright (C) 2021 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package main

import (
	"fmt"
	"net/netip"
	"os"
	"strings"

	"github.com/netreduce/net-reduce/pkg/config"
	"github.com/netreduce/net-reduce/pkg/ingest"
	"github.com/netreduce/net-reduce/pkg/operational"
	"github.com/netreduce/net-reduce/pkg/parse"
	"github.com/netreduce/net-reduce/pkg/reduce"
	"github.com/netreduce/net-reduce/pkg/write"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	buildVersion       = "unknown"
	buildDate          = "unknown"
	cfgFile            string
	logLevel           string
	envPrefix          = "NET-REDUCE"
	defaultCfgFileName = ".net-reduce"
	opts               config.Options
)

// rootCmd represents the root command
var rootCmd = &cobra.Command{
	Use:     "net-reduce",
	Short:   "Reduce a list of CIDRs/IP addresses to its minimal covering set",
	Version: fmt.Sprintf("%s (%s)", buildVersion, buildDate),
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

// initConfig use config file and ENV variables if set.
func initConfig() {
	v := viper.New()

	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".net-reduce" (without extension).
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal(err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(defaultCfgFileName)
	}

	// Read environment variables that match prefix
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// If a config file is found, read it in.
	cfgErr := v.ReadInConfig()

	bindFlags(rootCmd, v)

	// initialize logger
	initLogger()

	if cfgErr != nil && cfgFile != "" {
		log.Errorf("Read config error: %v", cfgErr)
	}
}

func initLogger() {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.ErrorLevel
	}
	log.SetLevel(ll)
	log.SetFormatter(&log.TextFormatter{DisableColors: false, FullTimestamp: true, PadLevelText: true, DisableQuote: true})
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if strings.Contains(f.Name, ".") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, ".", "_"))
			_ = v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix))
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func initFlags() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $HOME/%s)", defaultCfgFileName))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warning, error")
	rootCmd.PersistentFlags().StringVarP(&opts.Input.FileName, "file", "f", "", "File to read from, if not specified stdin is used")
	rootCmd.PersistentFlags().StringVarP(&opts.Output.Format, "output-format", "o", config.FormatList, "Output format: list, json, yaml")
}

func main() {
	// Initialize flags (command line parameters)
	initFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newIngester() ingest.Ingester {
	if opts.Input.FileName == "" {
		return ingest.NewIngestStdin()
	}
	ing, err := ingest.NewIngestFile(opts.Input.FileName)
	if err != nil {
		log.Errorf("failed to initialize ingester: %s", err)
		os.Exit(1)
	}
	return ing
}

func run() {
	if err := opts.Validate(); err != nil {
		log.Errorf("invalid configuration: %s", err)
		os.Exit(1)
	}

	metrics := operational.NewMetrics()

	lines, err := newIngester().Ingest()
	if err != nil {
		log.Errorf("failed to read input: %s", err)
		os.Exit(1)
	}
	metrics.LinesRead.Add(float64(len(lines)))

	prefixes := make([]netip.Prefix, 0, len(lines))
	for _, line := range lines {
		pfx, ok := parse.Prefix(line)
		if !ok {
			metrics.LinesDiscarded.Inc()
			continue
		}
		metrics.PrefixesParsed.Inc()
		prefixes = append(prefixes, pfx)
	}

	reduced := reduce.Reduce(prefixes)
	metrics.PrefixesOut.Add(float64(len(reduced)))

	out := make([]string, 0, len(reduced))
	for _, pfx := range reduced {
		out = append(out, pfx.String())
	}

	writer, err := write.NewWriter(opts.Output.Format, os.Stdout)
	if err != nil {
		log.Errorf("failed to initialize writer: %s", err)
		os.Exit(1)
	}
	if err := writer.Write(out); err != nil {
		log.Errorf("failed to write output: %s", err)
		os.Exit(1)
	}

	metrics.LogSummary()
}
