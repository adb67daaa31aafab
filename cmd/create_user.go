package main

import (
	"Matrafl-Backend/cmd/config"
	"Matrafl-Backend/domain"
	"Matrafl-Backend/internal/utils"
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var newUsername string

var createUserCmd = &cobra.Command{
	Use:     "create-user",
	Short:   "Create an account; the password is read from the first line of stdin",
	Example: `  printf '%s\n' "$PASSWORD" | matrafl create-user --username alice`,
	RunE:    runCreateUser,
}

func init() {
	createUserCmd.Flags().StringVar(&newUsername, "username", "", "login name of the new account")
	_ = createUserCmd.MarkFlagRequired("username")
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd.InOrStdin())
	if err != nil {
		return err
	}

	req := domain.CreateUserRequest{Username: newUsername, Password: password}
	utils.InitValidator()
	if err := utils.Validate.Struct(req); err != nil {
		return fmt.Errorf("invalid account details: %w", err)
	}

	db, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	created, err := config.NewServices(db, log).User.CreateUser(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", created.Username, created.ID)
	return nil
}

// readPassword returns the first line of r without its line ending.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("no password on stdin")
	}
	return line, nil
}
