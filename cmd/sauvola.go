package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sauvolaCmd = &cobra.Command{
	Use:   "sauvola INPUT OUTPUT",
	Short: "Binarize with Sauvola's local thresholding",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := binarizeFile(args[0], args[1], sauvolaMethod)
		return err
	},
}

func init() {
	rootCmd.AddCommand(sauvolaCmd)

	f := sauvolaCmd.Flags()
	f.IntP("window", "w", 0, "window size (needs to be odd). Set automatically based on resolution if not set.")
	f.Float64P("k", "k", 0.5, "controls the overall threshold level. Set it lower for very light text (try 0.1 or 0.2).")
	viper.BindPFlag("sauvola.window", f.Lookup("window"))
	viper.BindPFlag("sauvola.k", f.Lookup("k"))
}
