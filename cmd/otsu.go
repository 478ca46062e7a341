package cmd

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/ArnaudCalmettes/binarize/imp"
	"github.com/ArnaudCalmettes/binarize/models"
	"github.com/spf13/cobra"
)

var graphFile string

var otsuCmd = &cobra.Command{
	Use:   "otsu INPUT OUTPUT",
	Short: "Binarize with the threshold selected by Otsu's method",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var res imp.OtsuResult
		_, err := binarizeFile(args[0], args[1], func(gray *image.Gray) (*image.Gray, models.Run, error) {
			return otsuMethod(gray, &res)
		})
		if err != nil || graphFile == "" {
			return err
		}
		return writeGraph(graphFile, filepath.Base(args[0]), res)
	},
}

var histogramCmd = &cobra.Command{
	Use:   "histogram INPUT GRAPH",
	Short: "Graph the histogram and Otsu criterion of an image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		gray, err := load(args[0])
		if err != nil {
			return err
		}
		h, err := imp.NewHistogram(gray)
		if err != nil {
			return err
		}
		res, err := imp.Otsu(h)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "threshold: %d (bin %d, edge %.2f)\n", res.Threshold.Level(), res.Threshold.Index, res.Threshold.Value)
		return writeGraph(args[1], filepath.Base(args[0]), res)
	},
}

func writeGraph(path, title string, res imp.OtsuResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := imp.GraphOtsu(res, title, f); err != nil {
		f.Close()
		return err
	}
	logger.WithField("graph", path).Info("Histogram graph written")
	return f.Close()
}

func init() {
	rootCmd.AddCommand(otsuCmd)
	rootCmd.AddCommand(histogramCmd)

	otsuCmd.Flags().StringVar(&graphFile, "graph", "", "also write a PNG graph of the histogram to this file")
}
