package bootstrap

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glog "gorm.io/gorm/logger"

	"github.com/campus-connect/CampusTalk/internal/models"
	"github.com/campus-connect/CampusTalk/pkg/config"
	"github.com/campus-connect/CampusTalk/pkg/logger"
)

// Options controls database initialization behavior.
type Options struct {
	// InitSQLPath points to a .sql script file (optional); skip if empty
	InitSQLPath string
	// AutoMigrate whether to migrate entities (default true)
	AutoMigrate bool
	// SeedFAQ whether to seed the built-in campus FAQ data when the
	// table is empty (default true)
	SeedFAQ bool
}

// SetupDatabase is the unified entry: connect, run optional init SQL,
// migrate entities, seed the FAQ corpus.
func SetupDatabase(opts *Options) (*gorm.DB, error) {
	if opts == nil {
		opts = &Options{AutoMigrate: true, SeedFAQ: true}
	}

	db, err := openDatabase(config.GlobalConfig.DBDriver, config.GlobalConfig.DSN)
	if err != nil {
		logger.Error("init database failed", zap.Error(err))
		return nil, err
	}

	if opts.InitSQLPath != "" {
		if err := RunInitSQL(db, opts.InitSQLPath); err != nil {
			logger.Error("run init sql failed", zap.String("path", opts.InitSQLPath), zap.Error(err))
			return nil, err
		}
	}

	if opts.AutoMigrate {
		if err := RunMigrations(db); err != nil {
			logger.Error("migration failed", zap.Error(err))
			return nil, err
		}
		logger.Info("migration success",
			zap.String("database", config.GlobalConfig.DBDriver),
			zap.String("dsn", config.GlobalConfig.DSN),
		)
	}

	if opts.SeedFAQ {
		service := SeedService{db: db}
		if err := service.SeedAll(); err != nil {
			logger.Error("seed failed", zap.Error(err))
			return nil, err
		}
	}

	logger.Info("system bootstrap - database initialization complete")
	return db, nil
}

func openDatabase(driver, dsn string) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: glog.Default.LogMode(glog.Warn)}
	switch strings.ToLower(driver) {
	case "mysql":
		return gorm.Open(mysql.Open(dsn), gcfg)
	case "postgres":
		return gorm.Open(postgres.Open(dsn), gcfg)
	case "sqlite", "":
		return gorm.Open(sqlite.Open(dsn), gcfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

// RunMigrations migrates every persisted entity.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.FAQEntry{},
		&models.ChatLog{},
	)
}

// RunInitSQL executes statements from a local .sql file split on
// semicolons. Idempotent scripts should protect themselves with IF NOT
// EXISTS.
func RunInitSQL(db *gorm.DB, sqlFilePath string) error {
	f, err := os.Open(sqlFilePath)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		sb      strings.Builder
		scanner = bufio.NewScanner(f)
	)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "--") || strings.HasPrefix(trim, "#") {
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n")
		if strings.HasSuffix(trim, ";") {
			stmt := strings.TrimSpace(sb.String())
			sb.Reset()
			if stmt != "" {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
		}
	}
	rest := strings.TrimSpace(sb.String())
	if rest != "" {
		if err := db.Exec(rest).Error; err != nil {
			return err
		}
	}
	return scanner.Err()
}
