package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var bernsenCmd = &cobra.Command{
	Use:   "bernsen INPUT OUTPUT",
	Short: "Binarize with Bernsen's local thresholding",
	Long: `Each pixel is compared to the midrange of its window. Windows whose contrast
is below the contrast limit are considered background: white on bright pages,
black on dark ones.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := binarizeFile(args[0], args[1], bernsenMethod)
		return err
	},
}

func init() {
	rootCmd.AddCommand(bernsenCmd)

	f := bernsenCmd.Flags()
	f.IntP("window", "r", 7, "window size")
	f.IntP("contrast", "l", 30, "contrast limit")
	f.String("background", "bright", "page background (bright or dark)")
	viper.BindPFlag("bernsen.window", f.Lookup("window"))
	viper.BindPFlag("bernsen.contrast", f.Lookup("contrast"))
	viper.BindPFlag("bernsen.background", f.Lookup("background"))
}
