package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"postboard/app/config"
	"postboard/app/repositories"

	"github.com/spf13/cobra"
)

func dbCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the posts database",
	}
	cmd.PersistentFlags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "badger database directory")
	cmd.PersistentFlags().StringVar(&cfg.BackupDir, "backup-dir", cfg.BackupDir, "directory for database backups")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Initialize a new empty database",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return initDB(cmd.OutOrStdout(), cfg.DBPath)
			},
		},
		&cobra.Command{
			Use:   "clean",
			Short: "Remove the database",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return cleanDB(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.DBPath)
			},
		},
		&cobra.Command{
			Use:   "backup",
			Short: "Create a backup of the database",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := backupDB(cmd.OutOrStdout(), cfg.DBPath, cfg.BackupDir)
				return err
			},
		},
		&cobra.Command{
			Use:   "restore <file>",
			Short: "Restore the database from a backup",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return restoreDB(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.DBPath, args[0])
			},
		},
	)
	return cmd
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// confirm asks a y/N question; anything but y or Y is a no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, _ := bufio.NewReader(in).ReadString('\n')
	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y"
}

func initDB(out io.Writer, dbPath string) error {
	if exists(dbPath) {
		fmt.Fprintln(out, "Database already exists. Use 'db clean' first if you want to reinitialize.")
		return nil
	}
	if err := os.MkdirAll(dbPath, 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}
	db, err := repositories.Open(dbPath)
	if err != nil {
		return err
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	fmt.Fprintln(out, "Database initialized successfully")
	return nil
}

func cleanDB(in io.Reader, out io.Writer, dbPath string) error {
	if !exists(dbPath) {
		fmt.Fprintln(out, "Database is already clean (does not exist)")
		return nil
	}
	if !confirm(in, out, "Are you sure you want to clean the database? This cannot be undone.") {
		fmt.Fprintln(out, "Operation cancelled")
		return nil
	}
	if err := os.RemoveAll(dbPath); err != nil {
		return fmt.Errorf("clean database: %w", err)
	}
	fmt.Fprintln(out, "Database cleaned successfully")
	return nil
}

// backupDB writes a full badger backup into backupDir and returns its path.
func backupDB(out io.Writer, dbPath, backupDir string) (string, error) {
	if !exists(dbPath) {
		fmt.Fprintln(out, "No database exists to backup")
		return "", nil
	}
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	db, err := repositories.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer db.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().UnixNano()))
	f, err := os.Create(backupFile)
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		return "", fmt.Errorf("backup database: %w", err)
	}
	fmt.Fprintf(out, "Database backed up successfully to %s\n", backupFile)
	return backupFile, nil
}

func restoreDB(in io.Reader, out io.Writer, dbPath, backupFile string) error {
	if !exists(backupFile) {
		fmt.Fprintf(out, "Backup file does not exist: %s\n", backupFile)
		return nil
	}
	if exists(dbPath) {
		if !confirm(in, out, "Existing database found. Do you want to replace it?") {
			fmt.Fprintln(out, "Operation cancelled")
			return nil
		}
		if err := os.RemoveAll(dbPath); err != nil {
			return fmt.Errorf("remove existing database: %w", err)
		}
	}
	if err := os.MkdirAll(dbPath, 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}

	db, err := repositories.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		return fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	if err := db.Load(f, 4); err != nil {
		return fmt.Errorf("restore database: %w", err)
	}
	fmt.Fprintln(out, "Database restored successfully")
	return nil
}
