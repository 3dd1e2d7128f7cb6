package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	buildVersion = "unknown"
	logLevel     string
	envPrefix    = "BOUNDSTREE"
)

// rootCmd represents the root command
var rootCmd = &cobra.Command{
	Use:     "boundstree",
	Short:   "Exercise, benchmark and check dynamic bounding volume trees",
	Version: buildVersion,
}

// initConfig binds flags to environment variables with the BOUNDSTREE_
// prefix, so e.g. --entries can also arrive as BOUNDSTREE_ENTRIES.
func initConfig() {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	bindFlags(rootCmd, v)
	for _, sub := range rootCmd.Commands() {
		bindFlags(sub, v)
	}

	initLogger()
}

func initLogger() {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.InfoLevel
	}
	log.SetLevel(ll)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, PadLevelText: true})
}

// bindFlags applies viper values to any flag the command line left unset.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		name := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		_ = v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, name))

		if !f.Changed && v.IsSet(f.Name) {
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func main() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warning, error")

	rootCmd.AddCommand(benchCommand())
	rootCmd.AddCommand(checkCommand())
	rootCmd.AddCommand(genCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
