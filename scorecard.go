package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"scorecard/pkg"
	"scorecard/pkg/config"
)

func EncodeCommand() *cobra.Command {

	var configFile string
	var saveConfigFile string
	var params pkg.EncodingParameters
	var output pkg.OutputParameters
	defaults := config.Default()

	var cmd = &cobra.Command{
		Use:   "encode -i dataFile -t labelColumn [-f features] [-o modelFile]",
		Short: "Bins the categorical features of the data and computes their WOE and IV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(configFile)
			if err != nil {
				return err
			}
			applyBinningFlags(cmd, conf, params)
			if err := conf.Validate(); err != nil {
				return err
			}
			if saveConfigFile != "" {
				if err := config.Save(saveConfigFile, conf); err != nil {
					return err
				}
			}
			params.Binning = conf.Binning
			params.Workers = conf.Workers
			return pkg.EncodeAndSave(params, output)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML file with binning settings (optional)")
	cmd.Flags().StringVarP(&saveConfigFile, "save-config", "", "", "write the effective settings to this YAML file (optional)")
	cmd.Flags().StringVarP(&params.DataFile, "input", "i", "", "name of data file (optional, uses stdin if not present)")
	cmd.Flags().StringVarP(&params.LabelColumn, "label-column", "t", "", "column holding the 0/1 label")
	cmd.Flags().StringVarP(&params.WeightColumn, "weight-column", "w", "", "column holding sample weights (optional)")
	cmd.Flags().StringSliceVarP(&params.FeatureColumns, "features", "f", nil, "columns to encode, all other columns when empty")
	cmd.Flags().IntVarP(&params.Workers, "workers", "n", defaults.Workers, "number of features encoded concurrently")
	cmd.Flags().IntVarP(&params.Binning.MaxDistinctValues, "max-values", "", defaults.Binning.MaxDistinctValues, "features with more distinct values are skipped")
	cmd.Flags().IntVarP(&params.Binning.MaxBins, "max-bins", "", defaults.Binning.MaxBins, "merge until fewer bins than this remain")
	cmd.Flags().Float64VarP(&params.Binning.MinBinFraction, "min-bin-fraction", "", defaults.Binning.MinBinFraction, "minimum share of rows per bin")
	cmd.Flags().IntVarP(&params.Binning.MinBinsFloor, "min-bins", "", defaults.Binning.MinBinsFloor, "stop merging small bins once this many bins remain")
	cmd.Flags().BoolVarP(&params.Binning.SmoothZeroCounts, "smooth", "", defaults.Binning.SmoothZeroCounts, "count an empty class as 1 when computing WOE")

	cmd.Flags().StringVarP(&output.ModelFile, "output", "o", "", "name of the file to save the model to (optional)")
	cmd.Flags().StringVarP(&output.CSVFile, "csv", "", "", "name of the file to save the bins to as CSV (optional)")
	cmd.Flags().StringVarP(&output.YAMLFile, "yaml", "", "", "name of the file to save the bins to as YAML (optional)")
	cmd.Flags().BoolVarP(&output.ShowBins, "show-bins", "b", false, "print the bins of every feature")

	_ = cmd.MarkFlagRequired("label-column")

	return cmd
}

// applyBinningFlags copies the flags set on the command line over the config file values.
func applyBinningFlags(cmd *cobra.Command, conf *config.Config, params pkg.EncodingParameters) {
	flags := cmd.Flags()
	if flags.Changed("workers") {
		conf.Workers = params.Workers
	}
	if flags.Changed("max-values") {
		conf.Binning.MaxDistinctValues = params.Binning.MaxDistinctValues
	}
	if flags.Changed("max-bins") {
		conf.Binning.MaxBins = params.Binning.MaxBins
	}
	if flags.Changed("min-bin-fraction") {
		conf.Binning.MinBinFraction = params.Binning.MinBinFraction
	}
	if flags.Changed("min-bins") {
		conf.Binning.MinBinsFloor = params.Binning.MinBinsFloor
	}
	if flags.Changed("smooth") {
		conf.Binning.SmoothZeroCounts = params.Binning.SmoothZeroCounts
	}
}

func ApplyCommand() *cobra.Command {
	var modelFile string
	var inputFile string
	var outputFile string
	var features []string

	var cmd = &cobra.Command{
		Use:   "apply -m modelFile [-i dataFile] [-o outputFile] [-f features]",
		Short: "Replaces the raw values of the encoded features by their WOE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return pkg.Apply(modelFile, inputFile, outputFile, features)
		},
	}

	cmd.Flags().StringVarP(&modelFile, "model", "m", "", "name of the model written by encode")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "name of data input file (optional, uses stdin if not present)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "name of output file (optional, uses stdout if not present)")
	cmd.Flags().StringSliceVarP(&features, "features", "f", nil, "encoded features to transform, all when empty")

	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func PlotCommand() *cobra.Command {
	var configFile string
	var params pkg.PlotParameters

	var cmd = &cobra.Command{
		Use:   "plot -i predictionsFile [-d outputDir]",
		Short: "Renders ROC, KS and score distribution charts from split,label,probability rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(configFile)
			if err != nil {
				return err
			}
			params.Score = conf.Score
			return pkg.Plot(params)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML file with score settings (optional)")
	cmd.Flags().StringVarP(&params.PredictionsFile, "input", "i", "", "CSV file with split, label and probability columns")
	cmd.Flags().StringVarP(&params.OutputDir, "output-dir", "d", ".", "directory to write the charts to")
	cmd.Flags().StringVarP(&params.Split, "split", "s", "", "split used for the KS and score charts (default: first split)")
	cmd.Flags().IntVarP(&params.Bins, "bins", "", 50, "number of score histogram bins")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

var logLevel string
var logFormat string

func main() {

	Main := &cobra.Command{Use: "scorecard", PersistentPreRunE: setupLogging, SilenceUsage: true}

	Main.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info", "Logging level: info, warn, error or debug")
	Main.PersistentFlags().StringVarP(&logFormat, "log-format", "", "pretty", "Logging format: pretty or json")

	Main.AddCommand(EncodeCommand())
	Main.AddCommand(ApplyCommand())
	Main.AddCommand(PlotCommand())

	if err := Main.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {

	switch logLevel {
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		return fmt.Errorf("invalid logging level %s", logLevel)
	}

	switch logFormat {
	case "pretty":
		setupPrettyLogging()
	case "json":
	default:
		return fmt.Errorf("invalid log format %s", logFormat)
	}
	return nil
}

func setupPrettyLogging() {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	writer.FormatFieldValue = func(i interface{}) string {
		switch v := i.(type) {
		case json.Number:
			val, _ := v.Float64()
			return fmt.Sprintf("%.3f", val)
		default:
			return fmt.Sprintf("%s", i)
		}

	}
	log.Logger = log.Output(writer)

}
