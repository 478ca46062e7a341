package cmd

import (
	"fmt"
	"io/ioutil"
	"sort"
	"strings"

	"github.com/ArnaudCalmettes/binarize/imp"
	"github.com/ArnaudCalmettes/binarize/input"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	ocrMethod string
	ocrExpect string
	ocrSave   string
)

var ocrCmd = &cobra.Command{
	Use:   "ocr INPUT",
	Short: "Binarize a page and recognize its text",
	Long: `Binarizes a page with the given method and runs tesseract on the result.
With --expect, the recognized text is scored against a reference transcription,
which helps comparing binarization methods and parameters.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, ok := methods[ocrMethod]
		if !ok {
			return fmt.Errorf("unknown method %q (want one of %s)", ocrMethod, strings.Join(methodNames(), ", "))
		}
		if ocrSave != "" {
			if err := imp.CheckFormat(ocrSave); err != nil {
				return err
			}
		}

		bin, run, err := binarize(args[0], m)
		if err != nil {
			return err
		}
		if ocrSave != "" {
			if err := imp.Save(ocrSave, bin); err != nil {
				return err
			}
		}

		var langs []string
		if l := viper.GetString("ocr.lang"); l != "" {
			langs = strings.Split(l, "+")
		}
		text, err := input.Text(bin, langs...)
		if err != nil {
			return fmt.Errorf("couldn't recognize text: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)

		if ocrExpect == "" {
			return nil
		}
		want, err := ioutil.ReadFile(ocrExpect)
		if err != nil {
			return err
		}
		score := input.Compare(text, string(want))
		logger.WithFields(logrus.Fields{
			"method":   run.Method,
			"params":   run.Params(),
			"distance": score.Distance,
			"accuracy": fmt.Sprintf("%.2f%%", score.Accuracy*100),
		}).Info("OCR scored")
		return nil
	},
}

func methodNames() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	rootCmd.AddCommand(ocrCmd)

	f := ocrCmd.Flags()
	f.StringVarP(&ocrMethod, "method", "m", "otsu", "binarization method ("+strings.Join(methodNames(), ", ")+")")
	f.StringVar(&ocrExpect, "expect", "", "reference transcription to score the result against")
	f.StringVar(&ocrSave, "save", "", "also save the binarized page to this file")
	f.String("lang", "eng", "tesseract languages, joined with '+'")
	viper.BindPFlag("ocr.lang", f.Lookup("lang"))
}
