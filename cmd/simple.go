package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var simpleCmd = &cobra.Command{
	Use:   "simple INPUT OUTPUT",
	Short: "Binarize with a fixed global threshold",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := binarizeFile(args[0], args[1], simpleMethod)
		return err
	},
}

func init() {
	rootCmd.AddCommand(simpleCmd)

	simpleCmd.Flags().IntP("threshold", "t", 127, "pixels below this level turn black")
	viper.BindPFlag("threshold", simpleCmd.Flags().Lookup("threshold"))
}
