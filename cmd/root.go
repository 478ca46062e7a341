package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "binarize",
	Short: "Page binarization with global and local thresholding",
	Long: `Converts images to grayscale and binarizes them with a fixed threshold,
Otsu's method, Bernsen's local thresholding or Sauvola's method.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.binarize.yaml)")
	pf.String("db", "binarize.sqlite", "run journal database")
	pf.Bool("record", false, "record runs in the journal")
	pf.Bool("normalize", false, "stretch contrast to the full range before thresholding")
	pf.Bool("invert", false, "write white on black")
	pf.Int("workers", runtime.NumCPU(), "number of CPUs to use")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")

	viper.BindPFlag("db", pf.Lookup("db"))
	viper.BindPFlag("record", pf.Lookup("record"))
	viper.BindPFlag("normalize", pf.Lookup("normalize"))
	viper.BindPFlag("invert", pf.Lookup("invert"))
	viper.BindPFlag("workers", pf.Lookup("workers"))
	viper.BindPFlag("log.level", pf.Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".binarize" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".binarize")
	}

	viper.AutomaticEnv() // read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("BINARIZE")

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.WithField("file", viper.ConfigFileUsed()).Debug("Using config file")
	}
}

// setup applies the settings shared by every command.
func setup(cmd *cobra.Command, args []string) error {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	level, err := logrus.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	if n := viper.GetInt("workers"); n > 0 {
		runtime.GOMAXPROCS(n)
	}
	return nil
}
