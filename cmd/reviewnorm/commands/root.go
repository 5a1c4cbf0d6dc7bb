// Package commands implements the CLI commands for reviewnorm.
package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/reviewnorm/internal/logger"
)

// configErr records why no config file was read.
var configErr error

var rootCmd = &cobra.Command{
	Use:   "reviewnorm",
	Short: "Normalize review text for sentiment modelling",
	Long: `Reviewnorm cleans, tokenizes and lemmatizes collections of reviews.

Documents are read one per line, or as a JSON, JSONL or YAML array, and
written back in the same order with exactly one output per input.

Examples:
  # Clean one review per line
  reviewnorm clean -i reviews.txt

  # Lemmatize a JSON array of reviews and print per-document records
  reviewnorm normalize -i reviews.json --input-format json --format json --records

  # Plot the length distribution of the normalized corpus
  reviewnorm histogram -i reviews.txt --bins 20`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		err := logger.Init(logger.Options{
			Level:  viper.GetString("log_level"),
			Debug:  viper.GetBool("debug"),
			Quiet:  viper.GetBool("quiet"),
			JSON:   viper.GetBool("log_json"),
			Output: cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		if configErr != nil {
			logger.Debug("no config file loaded", "reason", configErr)
		} else {
			logger.Debug("using config file", "path", viper.ConfigFileUsed())
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.reviewnorm.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log errors")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("log-json", false, "log as JSON")

	// Input
	flags.StringP("input", "i", "-", "input file (- for stdin)")
	flags.String("input-format", "lines", "input format: lines, json, jsonl, yaml")
	flags.String("field", "", "object field holding the review text (json, jsonl, yaml)")
	flags.String("max-input-size", "64MiB", "max input size (e.g., 512KB, 1GiB)")

	// Output
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.StringP("format", "f", "text", "output format: text, json, jsonl, yaml")

	// Cleaning
	flags.Int("min-token-length", 3, "drop tokens shorter than this many characters")
	flags.StringSlice("extra-stopwords", nil, "additional stopwords to remove")
	flags.StringSlice("keep-stopwords", nil, "stopwords to keep")
	flags.Bool("skip-stopwords", false, "keep all stopwords")
	flags.Bool("skip-contractions", false, "do not expand contractions")
	flags.Bool("keep-urls", false, "do not remove URLs")
	flags.Bool("strip-markup", false, "convert HTML to text before cleaning")
	flags.String("lemmatizer", "dictionary", "lemmatizer backend: dictionary, stem, none")
	flags.Bool("strict", false, "fail when any document is not text")
	flags.Bool("stats", false, "print run statistics to stderr")

	for _, name := range []string{
		"config", "debug", "quiet", "log-level", "log-json",
		"min-token-length", "extra-stopwords", "keep-stopwords", "skip-stopwords",
		"skip-contractions", "keep-urls", "strip-markup", "lemmatizer",
	} {
		_ = viper.BindPFlag(strings.ReplaceAll(name, "-", "_"), flags.Lookup(name))
	}
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".reviewnorm")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("REVIEWNORM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Read config file (a missing file is not an error)
	configErr = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
