package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"lg/bodyviz-api/internal/body"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bodyviz",
	Short: "Body metrics and silhouette scaling from the command line.",
	Long: `bodyviz computes BMI, body-fat estimate and ideal weight range for a set of
body stats, and emits the per-segment scales that drive the 2D silhouette and
the 3D mannequin.

Defaults for every stat can be kept in $HOME/.bodyviz.yaml or set through
BODYVIZ_HEIGHT, BODYVIZ_WEIGHT, BODYVIZ_SEX and BODYVIZ_AGE.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute runs the root command. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bodyviz.yaml)")
	pf.Float64("height", 175, "height in centimeters")
	pf.Float64("weight", 72, "weight in kilograms")
	pf.String("sex", "male", "male or female")
	pf.Int("age", 28, "age in years")
	pf.StringP("format", "f", "json", "output format: json or yaml")

	bindFlags()
}

func bindFlags() {
	pf := rootCmd.PersistentFlags()
	for _, key := range []string{"height", "weight", "sex", "age", "format"} {
		viper.BindPFlag(key, pf.Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set. A missing
// config file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".bodyviz")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("bodyviz")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}

// statsFromConfig assembles BodyStats from flags, env and config file, in
// viper's usual precedence, and checks them against the input bounds.
func statsFromConfig() (body.BodyStats, error) {
	sex, err := body.ParseSex(viper.GetString("sex"))
	if err != nil {
		return body.BodyStats{}, err
	}
	s := body.BodyStats{
		HeightCM: viper.GetFloat64("height"),
		WeightKG: viper.GetFloat64("weight"),
		Sex:      sex,
		Age:      viper.GetInt("age"),
	}
	if err := s.Validate(); err != nil {
		return body.BodyStats{}, err
	}
	return s, nil
}

// writeOutput encodes v to w in the configured format.
func writeOutput(w io.Writer, v any) error {
	switch format := strings.ToLower(viper.GetString("format")); format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
