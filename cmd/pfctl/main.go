package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"projectforge/config"
	"projectforge/internal/domain/entity"
	"projectforge/internal/domain/history"
	"projectforge/internal/domain/service"
	"projectforge/internal/errors"
	"projectforge/internal/infra/auth"
	logs "projectforge/internal/infra/log"
	"projectforge/internal/infra/persistence/migrations"
	"projectforge/internal/infra/persistence/postgres"
	"projectforge/internal/infra/pubsub"
	"projectforge/internal/usecase"
	"projectforge/internal/usecase/impl"

	_ "github.com/jackc/pgx/v5/stdlib"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const dsnEnv = "PROJECTFORGE_DSN"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// env bundles what every database command needs. The caller must defer Close.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
	sqlDB  *sql.DB
}

func (e *env) Close() {
	if e.sqlDB != nil {
		_ = e.sqlDB.Close()
	}
}

func newEnv() (*env, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, errors.Wrap(err, "creating logger")
	}
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to PostgreSQL")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "getting sql.DB")
	}

	return &env{
		cfg:    cfg,
		logger: logger,
		db:     db.Session(&gorm.Session{SkipDefaultTransaction: true}),
		sqlDB:  sqlDB,
	}, nil
}

// openSQL prefers an explicit DSN so migrations run without a config file.
func openSQL(cmd *cobra.Command) (*sql.DB, func(), error) {
	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		dsn = os.Getenv(dsnEnv)
	}
	if dsn != "" {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening database")
		}

		return db, func() { _ = db.Close() }, nil
	}

	e, err := newEnv()
	if err != nil {
		return nil, nil, err
	}

	return e.sqlDB, e.Close, nil
}

var rootCmd = &cobra.Command{
	Use:          "pfctl",
	Short:        "ProjectForge maintenance tool",
	SilenceUsage: true,
}

// migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closeDB, err := openSQL(cmd)
		if err != nil {
			return err
		}
		defer closeDB()

		if err := migrations.MigrateUp(db); err != nil {
			return errors.Wrap(err, "migrating")
		}

		status, err := migrations.ReadStatus(db)
		if err != nil {
			return errors.Wrap(err, "reading migration status")
		}
		fmt.Printf("Schema at version %d\n", status.Version)

		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closeDB, err := openSQL(cmd)
		if err != nil {
			return err
		}
		defer closeDB()

		status, err := migrations.ReadStatus(db)
		if err != nil {
			return errors.Wrap(err, "reading migration status")
		}

		fmt.Printf("Version:  %d\n", status.Version)
		fmt.Printf("Latest:   %d\n", status.Latest)
		fmt.Printf("Dirty:    %t\n", status.Dirty)
		fmt.Printf("UpToDate: %t\n", status.UpToDate())

		return nil
	},
}

// token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetInt64("user")
		if userID <= 0 {
			return errors.New("--user is required")
		}

		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		user, err := postgres.NewUserRepository(e.db).FindByID(cmd.Context(), userID)
		if err != nil {
			return errors.Wrapf(err, "loading user %d", userID)
		}
		if user.Deleted || user.Deactivated {
			return errors.Errorf("user %s is not active", user.Username)
		}

		tokens, err := auth.NewJWTService(e.cfg, service.SystemClock{})
		if err != nil {
			return errors.Wrap(err, "creating token service")
		}
		access, refresh, err := tokens.GenerateTokens(user.ID, user.Username)
		if err != nil {
			return errors.Wrap(err, "generating tokens")
		}

		fmt.Printf("Access:  %s\n", access)
		fmt.Printf("Refresh: %s\n", refresh)

		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the change history of an entity",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("entity")
		id, _ := cmd.Flags().GetInt64("id")
		asJSON, _ := cmd.Flags().GetBool("json")
		xlsx, _ := cmd.Flags().GetString("xlsx")
		if name == "" || id <= 0 {
			return errors.New("--entity and --id are required")
		}

		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		entries, err := loadHistory(cmd.Context(), e, history.CurrentName(name), id)
		if err != nil {
			return err
		}

		switch {
		case xlsx != "":
			return exportHistory(cmd.Context(), e, entries, xlsx)
		case asJSON:
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			return enc.Encode(entries)
		default:
			return printHistory(entries)
		}
	},
}

func newHistoryService(e *env) usecase.HistoryUsecase {
	return impl.NewHistoryService(impl.HistoryServiceParams{
		TxManager: postgres.NewTransactionManager(e.db),
		Users:     postgres.NewUserRepository(e.db),
		Publisher: pubsub.NewNoopPublisher(e.logger),
		Clock:     service.SystemClock{},
		Config:    e.cfg,
		Logger:    e.logger,
	})
}

func loadHistory(ctx context.Context, e *env, name string, id int64) ([]entity.DisplayHistoryEntry, error) {
	svc := newHistoryService(e)
	masters, err := svc.LoadHistory(ctx, usecase.EntityRef{EntityName: name, EntityID: id})
	if err != nil {
		return nil, errors.Wrap(err, "loading history")
	}
	entries, err := svc.DisplayEntries(ctx, masters)
	if err != nil {
		return nil, errors.Wrap(err, "resolving history entries")
	}

	return entries, nil
}

func exportHistory(ctx context.Context, e *env, entries []entity.DisplayHistoryEntry, path string) error {
	data, err := newHistoryService(e).Export(ctx, entries)
	if err != nil {
		return errors.Wrap(err, "exporting history")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	fmt.Printf("Wrote %d entries to %s\n", len(entries), path)

	return nil
}

func printHistory(entries []entity.DisplayHistoryEntry) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MASTER\tMODIFIED AT\tBY\tOP\tPROPERTY\tOLD\tNEW")
	for _, entry := range entries {
		by := entry.ModifiedByName
		if by == "" {
			by = entry.ModifiedBy
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			strconv.FormatInt(entry.MasterID, 10),
			entry.ModifiedAt.Format(time.DateTime),
			by,
			entry.EntityOpType,
			entry.PropertyName,
			entry.OldValue,
			entry.NewValue,
		)
	}

	return w.Flush()
}

func init() {
	// migrate command
	migrateCmd.PersistentFlags().String("dsn", "", "PostgreSQL DSN, defaults to $"+dsnEnv+" or the config file")
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	// token command
	tokenCmd.Flags().Int64("user", 0, "User id")

	// history command
	historyCmd.Flags().StringP("entity", "e", "", "Entity name, legacy class names are accepted")
	historyCmd.Flags().Int64("id", 0, "Entity id")
	historyCmd.Flags().Bool("json", false, "Print entries as JSON")
	historyCmd.Flags().String("xlsx", "", "Write entries to a spreadsheet")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(historyCmd)
}
