package main

import (
	"Matrafl-Backend/cmd/config"
	"Matrafl-Backend/domain"
	"Matrafl-Backend/internal/utils/storage"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportUsername string
	exportUpload   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump one user's data as JSON, to stdout or to S3",
	Example: `  matrafl export --username alice > backup.json
  matrafl export --username alice --upload`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportUsername, "username", "", "account to export")
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false, "upload to the configured S3 bucket instead of printing")
	_ = exportCmd.MarkFlagRequired("username")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	services := config.NewServices(db, log)
	u, err := services.User.GetUserByUsername(cmd.Context(), exportUsername)
	if err != nil {
		return err
	}

	doc, err := services.Export.ExportAll(cmd.Context(), u.ID)
	if err != nil {
		return err
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	if !exportUpload {
		fmt.Fprintln(cmd.OutOrStdout(), string(body))
		return nil
	}

	s3, err := storage.NewAwsS3(cmd.Context())
	if err != nil {
		return err
	}
	url, err := s3.UploadFile(cmd.Context(), exportKey(doc), body, "application/json")
	if err != nil {
		return err
	}
	log.Info("export uploaded", zap.String("user_id", u.ID), zap.String("url", url))
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}

func exportKey(doc domain.ExportDocument) string {
	return fmt.Sprintf("exports/%s/%s", doc.UserID, domain.ExportFilename(doc.ExportedAt))
}
