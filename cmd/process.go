package cmd

import (
	"fmt"
	"image"
	"time"

	"github.com/ArnaudCalmettes/binarize/imp"
	"github.com/ArnaudCalmettes/binarize/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// A method binarizes a grayscale page and describes the parameters it used.
type method func(gray *image.Gray) (*image.Gray, models.Run, error)

var methods = map[string]method{
	"simple":  simpleMethod,
	"otsu":    func(gray *image.Gray) (*image.Gray, models.Run, error) { return otsuMethod(gray, nil) },
	"bernsen": bernsenMethod,
	"sauvola": sauvolaMethod,
}

// load reads a page and turns it into grayscale.
func load(path string) (*image.Gray, error) {
	img, err := imp.ReadFile(path)
	if err != nil {
		return nil, err
	}
	gray := imp.ToGray(img)
	if viper.GetBool("normalize") {
		norm := image.NewGray(gray.Bounds())
		if err := imp.Normalize(gray, norm); err != nil {
			return nil, err
		}
		gray = norm
	}
	return gray, nil
}

// binarize applies m to the page at path.
func binarize(path string, m method) (*image.Gray, models.Run, error) {
	start := time.Now()
	gray, err := load(path)
	if err != nil {
		return nil, models.Run{}, err
	}

	bin, run, err := m(gray)
	if err != nil {
		return nil, run, fmt.Errorf("couldn't binarize %s: %w", path, err)
	}
	if viper.GetBool("invert") {
		if err := imp.Invert(bin, bin); err != nil {
			return nil, run, err
		}
	}

	b := bin.Bounds()
	run.Input = path
	run.Width, run.Height = b.Dx(), b.Dy()
	run.Duration = time.Since(start)
	return bin, run, nil
}

// binarizeFile applies m to the page at in and saves the result to out.
// Nothing is written if any step fails.
func binarizeFile(in, out string, m method) (models.Run, error) {
	if err := imp.CheckFormat(out); err != nil {
		return models.Run{}, err
	}
	bin, run, err := binarize(in, m)
	if err != nil {
		return run, err
	}
	if err := imp.Save(out, bin); err != nil {
		return run, err
	}
	run.Output = out

	logger.WithFields(logrus.Fields{
		"method":   run.Method,
		"input":    in,
		"output":   out,
		"params":   run.Params(),
		"duration": run.Duration,
	}).Info("Page binarized")

	if err := record(&run); err != nil {
		logger.WithError(err).Warn("Couldn't record run")
	}
	return run, nil
}

func simpleMethod(gray *image.Gray) (*image.Gray, models.Run, error) {
	t := viper.GetInt("threshold")
	run := models.Run{Method: "simple", Threshold: t}
	if t < 0 || t > 255 {
		return nil, run, fmt.Errorf("threshold %d out of [0, 255]", t)
	}
	bin, err := imp.Binarize(gray, uint8(t))
	return bin, run, err
}

// otsuMethod also hands the Otsu result to keep, if not nil.
func otsuMethod(gray *image.Gray, keep *imp.OtsuResult) (*image.Gray, models.Run, error) {
	run := models.Run{Method: "otsu"}
	bin, res, err := imp.OtsuThreshold(gray)
	if err != nil {
		return nil, run, err
	}
	run.Threshold = int(res.Threshold.Level())
	logger.WithFields(logrus.Fields{
		"index": res.Threshold.Index,
		"value": res.Threshold.Value,
	}).Debug("Otsu threshold selected")
	if keep != nil {
		*keep = res
	}
	return bin, run, nil
}

func bernsenMethod(gray *image.Gray) (*image.Gray, models.Run, error) {
	run := models.Run{
		Method:     "bernsen",
		Threshold:  -1,
		WindowSize: viper.GetInt("bernsen.window"),
		Contrast:   viper.GetInt("bernsen.contrast"),
	}
	bg, err := imp.ParseBackground(viper.GetString("bernsen.background"))
	if err != nil {
		return nil, run, err
	}
	run.Background = bg.String()
	bin, err := imp.Bernsen(gray, run.WindowSize, run.Contrast, bg)
	return bin, run, err
}

func sauvolaMethod(gray *image.Gray) (*image.Gray, models.Run, error) {
	run := models.Run{
		Method:     "sauvola",
		Threshold:  -1,
		WindowSize: viper.GetInt("sauvola.window"),
		K:          viper.GetFloat64("sauvola.k"),
	}
	if run.WindowSize == 0 {
		// TODO: estimate from the text line height instead of the page width
		run.WindowSize = gray.Bounds().Dx() / 60
		logger.WithField("window", run.WindowSize).Info("Set window size from resolution")
	}
	bin, err := imp.IntegralSauvola(gray, run.K, run.WindowSize)
	return bin, run, err
}
