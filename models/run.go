package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
)

// A Run records one binarization: where the page came from, where the
// result went, and the parameters that produced it.
type Run struct {
	gorm.Model
	Input      string `gorm:"index"`
	Output     string
	Method     string
	Width      int
	Height     int
	Threshold  int // global level for simple and otsu runs, -1 otherwise
	WindowSize int
	Contrast   int
	Background string
	K          float64
	Duration   time.Duration
}

func (r Run) String() string {
	return fmt.Sprintf("Run{method=%v, input=%v, output=%v}", r.Method, r.Input, r.Output)
}

// Params returns a short description of the run's parameters.
func (r Run) Params() string {
	switch r.Method {
	case "simple", "otsu":
		return fmt.Sprintf("t=%d", r.Threshold)
	case "bernsen":
		return fmt.Sprintf("r=%d l=%d bg=%s", r.WindowSize, r.Contrast, r.Background)
	case "sauvola":
		return fmt.Sprintf("w=%d k=%.2f", r.WindowSize, r.K)
	}
	return ""
}

// BeforeSave is executed just before a Run is saved into the DB
func (r *Run) BeforeSave() error {
	if r.Input == "" {
		return errors.New("missing run input")
	}
	if r.Method == "" {
		return errors.New("run method can't be empty")
	}
	return nil
}

// Create creates a new run in the DB
func (r *Run) Create(db *gorm.DB) error {
	return db.Create(r).Error
}

// ListRuns returns the most recent runs, newest first. A limit <= 0
// returns all of them.
func ListRuns(db *gorm.DB, limit int) (runs []Run, err error) {
	q := db.Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err = q.Find(&runs).Error
	return
}

// FindRuns returns all runs made on given input, newest first.
func FindRuns(db *gorm.DB, input string) (runs []Run, err error) {
	err = db.Where("input = ?", input).Order("id desc").Find(&runs).Error
	return
}

// Migrate creates or updates the tables of all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Run{}).Error
}
