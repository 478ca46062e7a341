package cmd

import (
	"github.com/ArnaudCalmettes/binarize/models"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Perform automatic database migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		logger.WithField("db", viper.GetString("db")).Info("Journal migrated")
		return nil
	},
}

// openDB opens the run journal and makes sure its tables are up to date.
func openDB() (*gorm.DB, error) {
	db, err := gorm.Open("sqlite3", viper.GetString("db"))
	if err != nil {
		return nil, err
	}
	if err := models.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// record saves run in the journal if recording is enabled.
func record(run *models.Run) error {
	if !viper.GetBool("record") {
		return nil
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	return run.Create(db)
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
