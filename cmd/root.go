package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/viper"
)

var cfgFile string

// logger is built from the debug/quiet settings before any command runs.
var logger *log.Logger

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vip8 [command]",
	Short: "CHIP-8 interpreter",
	Long: "An interpreter for CHIP-8, the byte-code language originally written for the COSMAC VIP " +
		"and Telmac 1800 8-bit systems. Programs run at a configurable instruction rate with 60Hz timers.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(viper.GetBool("debug"), viper.GetBool("quiet"))
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("Using config file", log.String("path", used))
		}
	},
	Run: Root,
}

func Root(cmd *cobra.Command, args []string) {
	fmt.Println("Enter command as `vip8 start /path/ROM`")
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vip8.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log errors")
	cobra.CheckErr(viper.BindPFlag("debug", flags.Lookup("debug")))
	cobra.CheckErr(viper.BindPFlag("quiet", flags.Lookup("quiet")))

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(disasmCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".vip8" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".vip8")
	}

	setDefaults(viper.GetViper())

	viper.SetEnvPrefix("vip8")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		os.Exit(1)
	}
}

func newLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
