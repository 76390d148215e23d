package importers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malhotra1432/rasa-1/internal/testutils"
	"github.com/malhotra1432/rasa-1/pkg/importers"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

func populatedStub() *testutils.StubImporter {
	stub := testutils.NewStubImporter()
	stub.Domain = training.Domain{Intents: map[string]map[string]any{"greet": {}}}
	stub.Stories = training.StoryGraph{Steps: []training.StoryStep{{Name: "one"}}}
	stub.Config = training.Config{"language": "en"}
	stub.NLU = training.Data{Examples: []training.Message{training.NewMessage("hi", "greet")}}
	return stub
}

func TestCoreOnlyImporterSuppressesNLUData(t *testing.T) {
	ctx := context.Background()
	stub := populatedStub()
	imp := importers.NewCoreOnlyImporter(stub)

	nlu, err := imp.GetNLUData(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, training.EmptyData(), nlu)
	assert.Equal(t, 0, stub.Calls("get_nlu_data"), "NLU files must never be read")

	domain, err := imp.GetDomain(ctx)
	require.NoError(t, err)
	assert.Equal(t, stub.Domain, domain)

	stories, err := imp.GetStories(ctx)
	require.NoError(t, err)
	assert.Equal(t, stub.Stories, stories)

	config, err := imp.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, stub.Config, config)
}

func TestNLUOnlyImporterSuppressesCoreData(t *testing.T) {
	ctx := context.Background()
	stub := populatedStub()
	imp := importers.NewNLUOnlyImporter(stub)

	domain, err := imp.GetDomain(ctx)
	require.NoError(t, err)
	assert.Equal(t, training.EmptyDomain(), domain)
	assert.Equal(t, 0, stub.Calls("get_domain"), "dialogue files must never be read")

	stories, err := imp.GetStories(ctx)
	require.NoError(t, err)
	assert.Equal(t, training.EmptyStoryGraph(), stories)
	assert.Equal(t, 0, stub.Calls("get_stories"))

	nlu, err := imp.GetNLUData(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, stub.NLU, nlu)

	config, err := imp.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, stub.Config, config)
}
