// Command matrafl runs the nutrition diary server and its maintenance tasks.
package main

import (
	"Matrafl-Backend/cmd/config"
	"Matrafl-Backend/internal/utils"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "matrafl",
	Short:         "matrafl keeps a food, recipe and weight diary",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(exportCmd)
}

// bootstrap loads configuration, builds the process logger and opens the
// database. The logger is installed as zap's global logger.
func bootstrap() (*gorm.DB, *zap.Logger, error) {
	utils.LoadConfigFile(configPath)

	log, err := utils.NewLogger(utils.GetConfig("LOG_LEVEL"), utils.GetConfig("LOG_FILE"))
	if err != nil {
		return nil, nil, err
	}
	zap.ReplaceGlobals(log)

	db, err := config.ConnectDB()
	if err != nil {
		return nil, nil, err
	}
	return db, log, nil
}
