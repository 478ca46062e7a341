package models

import (
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a different database
	db.DB().SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func TestRuns(t *testing.T) {
	db := openDB(t)

	runs := []Run{
		{Input: "a.jpg", Output: "a_simple.png", Method: "simple", Threshold: 127},
		{Input: "a.jpg", Output: "a_otsu.png", Method: "otsu", Threshold: 141},
		{Input: "b.jpg", Output: "b.png", Method: "bernsen", Threshold: -1, WindowSize: 7, Contrast: 30, Background: "bright", Duration: time.Second},
	}
	for i := range runs {
		require.NoError(t, runs[i].Create(db))
	}

	all, err := ListRuns(db, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "b.png", all[0].Output, "newest first")
	assert.Equal(t, time.Second, all[0].Duration)

	last, err := ListRuns(db, 2)
	require.NoError(t, err)
	assert.Len(t, last, 2)

	found, err := FindRuns(db, "a.jpg")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "otsu", found[0].Method)
	assert.Equal(t, 141, found[0].Threshold)
}

func TestRunValidation(t *testing.T) {
	db := openDB(t)
	assert.Error(t, (&Run{Method: "otsu"}).Create(db))
	assert.Error(t, (&Run{Input: "a.jpg"}).Create(db))
}

func TestRunParams(t *testing.T) {
	cases := []struct {
		run  Run
		want string
	}{
		{Run{Method: "simple", Threshold: 127}, "t=127"},
		{Run{Method: "bernsen", WindowSize: 7, Contrast: 30, Background: "dark"}, "r=7 l=30 bg=dark"},
		{Run{Method: "sauvola", WindowSize: 31, K: 0.5}, "w=31 k=0.50"},
		{Run{Method: "unknown"}, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.run.Params())
	}
}
