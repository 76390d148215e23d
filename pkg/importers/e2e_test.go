package importers_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malhotra1432/rasa-1/internal/testutils"
	"github.com/malhotra1432/rasa-1/pkg/importers"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

func TestE2EImporterCachesStories(t *testing.T) {
	ctx := context.Background()

	stub := testutils.NewStubImporter()
	stub.Stories = training.StoryGraph{Steps: []training.StoryStep{{Name: "one"}}}

	imp := importers.NewE2EImporter(stub)

	first, err := imp.GetStories(ctx)
	require.NoError(t, err)
	second, err := imp.GetStories(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, stub.Calls("get_stories"), "second call must hit the cache")
}

func TestE2EImporterConcurrentCallersShareOneFetch(t *testing.T) {
	ctx := context.Background()

	stub := testutils.NewStubImporter()
	stub.Stories = training.StoryGraph{Steps: []training.StoryStep{{Name: "one"}}}

	imp := importers.NewE2EImporter(stub)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := imp.GetStories(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, stub.Calls("get_stories"))
}

func TestE2EImporterFailedFetchIsRetried(t *testing.T) {
	ctx := context.Background()

	stub := testutils.NewStubImporter()
	stub.Err = errors.New("disk on fire")

	imp := importers.NewE2EImporter(stub)

	_, err := imp.GetStories(ctx)
	require.Error(t, err)

	stub.Err = nil
	stub.Stories = training.StoryGraph{Steps: []training.StoryStep{{Name: "recovered"}}}

	stories, err := imp.GetStories(ctx)
	require.NoError(t, err)
	assert.Len(t, stories.Steps, 1)
	assert.Equal(t, 2, stub.Calls("get_stories"), "failures must not be cached")
}

func TestE2EImporterDomainFromStories(t *testing.T) {
	ctx := context.Background()

	stub := testutils.NewStubImporter()
	stub.Domain = training.DomainWithActions([]string{"action_known"})
	stub.Stories = training.StoryGraph{Steps: []training.StoryStep{
		{Name: "one", Events: []training.Event{
			training.ActionExecuted{ActionName: "", ActionText: "Hello there!"},
			training.ActionExecuted{ActionName: "action_known"},
			training.UserUttered{Text: "hi", IntentName: "greet"},
		}},
		{Name: "two", Events: []training.Event{
			training.ActionExecuted{ActionText: "Hello there!"},
			training.ActionExecuted{ActionText: "Anything else?"},
		}},
	}}

	domain, err := importers.NewE2EImporter(stub).GetDomain(ctx)
	require.NoError(t, err)

	assert.Contains(t, domain.Actions, "action_known")
	assert.Contains(t, domain.Actions, "Hello there!")
	assert.Contains(t, domain.Actions, "Anything else?")

	count := 0
	for _, action := range domain.Actions {
		if action == "Hello there!" {
			count++
		}
	}
	assert.Equal(t, 1, count, "duplicate literal texts collapse to one action")
}

func TestE2EImporterNLUData(t *testing.T) {
	ctx := context.Background()

	stub := testutils.NewStubImporter()
	stub.NLU = training.Data{Examples: []training.Message{training.NewMessage("good evening", "greet")}}
	stub.Stories = training.StoryGraph{Steps: []training.StoryStep{
		{Name: "one", Events: []training.Event{
			training.UserUttered{Text: "hi", IntentName: "greet"},
			training.ActionExecuted{ActionName: "utter_greet"},
			training.SlotSet{Name: "seen", Value: true},
		}},
	}}

	nlu, err := importers.NewE2EImporter(stub).GetNLUData(ctx, "en")
	require.NoError(t, err)

	// One synthetic example per built-in action, in front of everything else.
	require.Greater(t, len(nlu.Examples), len(training.DefaultActionNames))
	for i, name := range training.DefaultActionNames {
		assert.Equal(t, training.MessageFromAction(name, ""), nlu.Examples[i])
	}

	assert.Contains(t, nlu.Examples, training.NewMessage("good evening", "greet"), "wrapped NLU data survives")
	assert.Contains(t, nlu.Examples, training.NewMessage("hi", "greet"), "user turns become examples")
	assert.Contains(t, nlu.Examples, training.MessageFromAction("utter_greet", ""), "action turns become action examples")

	total := len(training.DefaultActionNames) + 1 + 2
	assert.Len(t, nlu.Examples, total, "slot events contribute nothing")
}

func TestE2EImporterPassThroughConfig(t *testing.T) {
	ctx := context.Background()

	stub := testutils.NewStubImporter()
	stub.Config = training.Config{"language": "en"}

	config, err := importers.NewE2EImporter(stub).GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, stub.Config, config)
}

func TestE2EImporterUnwrap(t *testing.T) {
	stub := testutils.NewStubImporter()
	imp := importers.NewE2EImporter(stub)

	var unwrapped any = imp.Unwrap()
	assert.Same(t, stub, unwrapped)
}
