package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-connect/CampusTalk/internal/models"
	"github.com/campus-connect/CampusTalk/pkg/config"
	"github.com/campus-connect/CampusTalk/pkg/persona"
)

func TestSetupDatabaseSeedsFAQ(t *testing.T) {
	config.GlobalConfig = &config.Config{DBDriver: "sqlite", DSN: ":memory:"}

	db, err := SetupDatabase(&Options{AutoMigrate: true, SeedFAQ: true})
	require.NoError(t, err)

	n, err := models.CountFAQEntries(db)
	require.NoError(t, err)
	assert.EqualValues(t, len(defaultFAQ), n)

	store, err := models.LoadCorpus(db)
	require.NoError(t, err)
	primary, generic := store.For(persona.TypeStudent)
	assert.NotEmpty(t, primary)
	assert.NotEmpty(t, generic)
}

func TestSeedIsIdempotent(t *testing.T) {
	config.GlobalConfig = &config.Config{DBDriver: "sqlite", DSN: ":memory:"}

	db, err := SetupDatabase(&Options{AutoMigrate: true, SeedFAQ: true})
	require.NoError(t, err)

	service := SeedService{db: db}
	require.NoError(t, service.SeedAll())

	n, err := models.CountFAQEntries(db)
	require.NoError(t, err)
	assert.EqualValues(t, len(defaultFAQ), n)
}

func TestSetupDatabaseRejectsUnknownDriver(t *testing.T) {
	config.GlobalConfig = &config.Config{DBDriver: "oracle", DSN: "whatever"}

	_, err := SetupDatabase(&Options{})
	assert.Error(t, err)
}
