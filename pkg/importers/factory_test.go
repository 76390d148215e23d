package importers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malhotra1432/rasa-1/internal/testutils"
	"github.com/malhotra1432/rasa-1/pkg/importers"
	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

func TestLoadFromConfig_DefaultChain(t *testing.T) {
	dir := t.TempDir()
	configPath := testutils.WriteFile(t, dir, "config.yml", "language: en\n")
	domainPath := testutils.WriteFile(t, dir, "domain.yml", "intents:\n  - greet\n")

	imp, err := importers.LoadFromConfig(importers.LoadConfig{
		ConfigPath: configPath,
		DomainPath: domainPath,
	})
	require.NoError(t, err)

	// The outermost decorator is the E2E importer.
	_, ok := imp.(*importers.E2EImporter)
	assert.True(t, ok, "expected *E2EImporter, got %T", imp)

	domain, err := imp.GetDomain(context.Background())
	require.NoError(t, err)
	assert.Contains(t, domain.Intents, "greet")
}

func TestLoadFromConfig_NamedImporters(t *testing.T) {
	dir := t.TempDir()
	configPath := testutils.WriteFile(t, dir, "config.yml", `
importers:
  - name: RasaFileImporter
  - name: NotARealImporter
    some_arg: 42
`)
	domainPath := testutils.WriteFile(t, dir, "domain.yml", "intents:\n  - greet\n")

	// The unknown importer is skipped, not fatal.
	imp, err := importers.LoadFromConfig(importers.LoadConfig{
		ConfigPath: configPath,
		DomainPath: domainPath,
	})
	require.NoError(t, err)

	domain, err := imp.GetDomain(context.Background())
	require.NoError(t, err)
	assert.Contains(t, domain.Intents, "greet")
}

func TestLoadFromConfig_MultiProjectSpec(t *testing.T) {
	dir := t.TempDir()
	configPath := testutils.WriteFile(t, dir, "config.yml", `
importers:
  - name: MultiProjectImporter
imports:
  - sub
`)
	testutils.WriteFile(t, dir, "sub/config.yml", "language: en\n")
	testutils.WriteFile(t, dir, "sub/domain.yml", "intents:\n  - imported\n")

	imp, err := importers.LoadFromConfig(importers.LoadConfig{ConfigPath: configPath})
	require.NoError(t, err)

	domain, err := imp.GetDomain(context.Background())
	require.NoError(t, err)
	assert.Contains(t, domain.Intents, "imported")
}

func TestLoadFromConfig_SpecArgsOverridePaths(t *testing.T) {
	dir := t.TempDir()
	otherDomain := testutils.WriteFile(t, dir, "other_domain.yml", "intents:\n  - overridden\n")
	configPath := testutils.WriteFile(t, dir, "config.yml", `
importers:
  - name: RasaFileImporter
    domain_path: `+otherDomain+`
    unknown_key: ignored
`)

	imp, err := importers.LoadFromConfig(importers.LoadConfig{
		ConfigPath: configPath,
		DomainPath: dir + "/missing.yml",
	})
	require.NoError(t, err)

	domain, err := imp.GetDomain(context.Background())
	require.NoError(t, err)
	assert.Contains(t, domain.Intents, "overridden")
}

func TestLoadFromConfig_TrainingTypes(t *testing.T) {
	dir := t.TempDir()
	configPath := testutils.WriteFile(t, dir, "config.yml", "language: en\n")
	domainPath := testutils.WriteFile(t, dir, "domain.yml", "intents:\n  - greet\n")
	testutils.WriteFile(t, dir, "data/nlu.yml", "nlu:\n  - intent: greet\n    examples: |\n      - hi\n")

	base := importers.LoadConfig{
		ConfigPath:    configPath,
		DomainPath:    domainPath,
		TrainingPaths: []string{dir + "/data"},
	}
	ctx := context.Background()

	t.Run("core suppresses NLU data", func(t *testing.T) {
		cfg := base
		cfg.TrainingType = importers.TrainingTypeCore
		imp, err := importers.LoadFromConfig(cfg)
		require.NoError(t, err)

		nlu, err := imp.GetNLUData(ctx, "")
		require.NoError(t, err)
		assert.True(t, nlu.IsEmpty())

		domain, err := imp.GetDomain(ctx)
		require.NoError(t, err)
		assert.Contains(t, domain.Intents, "greet")
	})

	t.Run("nlu suppresses domain and stories", func(t *testing.T) {
		cfg := base
		cfg.TrainingType = importers.TrainingTypeNLU
		imp, err := importers.LoadFromConfig(cfg)
		require.NoError(t, err)

		domain, err := imp.GetDomain(ctx)
		require.NoError(t, err)
		assert.True(t, domain.IsEmpty())

		stories, err := imp.GetStories(ctx)
		require.NoError(t, err)
		assert.True(t, stories.IsEmpty())

		nlu, err := imp.GetNLUData(ctx, "")
		require.NoError(t, err)
		require.Len(t, nlu.Examples, 1)
	})

	t.Run("unknown type fails", func(t *testing.T) {
		cfg := base
		cfg.TrainingType = importers.TrainingType("bogus")
		_, err := importers.LoadFromConfig(cfg)
		assert.Error(t, err)
	})
}

func TestRegister_CustomImporter(t *testing.T) {
	stub := testutils.NewStubImporter()
	domain := training.EmptyDomain()
	domain.Intents["custom"] = map[string]any{}
	stub.Domain = domain

	importers.Register("StubImporter", func(params importers.ImporterParams) (ports.TrainingDataImporter, error) {
		return stub, nil
	})

	dir := t.TempDir()
	configPath := testutils.WriteFile(t, dir, "config.yml", "importers:\n  - name: StubImporter\n")

	imp, err := importers.LoadFromConfig(importers.LoadConfig{ConfigPath: configPath})
	require.NoError(t, err)

	got, err := imp.GetDomain(context.Background())
	require.NoError(t, err)
	assert.Contains(t, got.Intents, "custom")
}
