package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/trophycase/pkg/achievements"
	"github.com/agentstation/trophycase/pkg/errors"
	"github.com/agentstation/trophycase/pkg/identity"
	"github.com/agentstation/trophycase/pkg/logging"
	"github.com/agentstation/trophycase/pkg/parse"
	"github.com/agentstation/trophycase/pkg/sources"
)

type fakeSource struct {
	id       sources.ID
	payloads []sources.Payload
	err      error
	calls    int
}

func (f *fakeSource) ID() sources.ID { return f.id }

func (f *fakeSource) Fetch(_ context.Context, _ *sources.Request) ([]sources.Payload, error) {
	f.calls++
	return f.payloads, f.err
}

type fakeWriter struct {
	calls int
	last  *achievements.Set
	err   error
}

func (w *fakeWriter) Persist(_ context.Context, _ *sources.Request, set *achievements.Set) error {
	w.calls++
	w.last = set
	return w.err
}

func testRequest(t *testing.T) *sources.Request {
	t.Helper()
	root := t.TempDir()
	return &sources.Request{
		AccountRoot: root,
		Platform:    "PC",
		Title:       "Portal 2",
		Identity:    identity.Resolve(root, "PC", "Portal 2"),
	}
}

func arrayPayload(data string, trusted bool) sources.Payload {
	return sources.Payload{
		Data:    []byte(data),
		Shape:   parse.ShapeArray,
		Trusted: trusted,
		Origin:  "test",
	}
}

func TestResolveMergesChainInOrder(t *testing.T) {
	logging.DisableLoggingForTest(t)

	trusted := &fakeSource{
		id:       sources.RemoteSchemaID,
		payloads: []sources.Payload{arrayPayload(`[{"name":"A","description":"from schema"},{"name":"B"}]`, true)},
	}
	untrusted := &fakeSource{
		id:       sources.HeuristicID,
		payloads: []sources.Payload{arrayPayload(`[{"name":"A","unlocked":true},{"name":"C","unlocked":true}]`, false)},
	}

	writer := &fakeWriter{}
	engine := New(sources.NewChain(trusted, untrusted), writer)

	set, err := engine.Resolve(context.Background(), testRequest(t))
	require.NoError(t, err)

	require.Equal(t, 2, set.Len(), "untrusted payload cannot insert C")
	a, _ := set.Get("A")
	assert.Equal(t, "from schema", a.Description)
	assert.True(t, a.Unlocked, "untrusted payload still updates existing entries")

	assert.Equal(t, 1, writer.calls)
	assert.Same(t, set, writer.last)
}

func TestResolveCompletePayloadShortCircuits(t *testing.T) {
	logging.DisableLoggingForTest(t)

	canonical := &fakeSource{
		id: sources.CanonicalCacheID,
		payloads: []sources.Payload{{
			Data:     []byte(`[{"name":"Cached","unlocked":true}]`),
			Shape:    parse.ShapeArray,
			Trusted:  true,
			Complete: true,
			Origin:   "cache",
		}},
	}
	later := &fakeSource{id: sources.HeuristicID}

	writer := &fakeWriter{}
	engine := New(sources.NewChain(canonical, later), writer)

	set, err := engine.Resolve(context.Background(), testRequest(t))
	require.NoError(t, err)

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, 0, later.calls, "chain stops at a complete payload")
	assert.Equal(t, 0, writer.calls, "a complete payload is not rewritten")
}

func TestResolveEmptyCompletePayloadShortCircuits(t *testing.T) {
	logging.DisableLoggingForTest(t)

	canonical := &fakeSource{
		id: sources.CanonicalCacheID,
		payloads: []sources.Payload{{
			Data:     []byte(`[]`),
			Shape:    parse.ShapeArray,
			Trusted:  true,
			Complete: true,
		}},
	}
	later := &fakeSource{
		id:       sources.HeuristicID,
		payloads: []sources.Payload{arrayPayload(`[{"name":"X"}]`, true)},
	}

	engine := New(sources.NewChain(canonical, later), nil)

	set, err := engine.Resolve(context.Background(), testRequest(t))
	require.NoError(t, err)

	assert.Equal(t, 0, set.Len(), "an empty reconciled cache is authoritative")
	assert.Equal(t, 0, later.calls)
}

func TestResolveSkipsFailingSource(t *testing.T) {
	logging.DisableLoggingForTest(t)

	broken := &fakeSource{
		id:  sources.WebScrapeID,
		err: errors.ErrSourceUnavailable,
	}
	working := &fakeSource{
		id:       sources.EmulatorStoreID,
		payloads: []sources.Payload{arrayPayload(`[{"name":"Survivor"}]`, true)},
	}

	engine := New(sources.NewChain(broken, working), nil)

	set, err := engine.Resolve(context.Background(), testRequest(t))
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
}

func TestResolveWriterErrorSwallowed(t *testing.T) {
	logging.DisableLoggingForTest(t)

	src := &fakeSource{
		id:       sources.RemoteSchemaID,
		payloads: []sources.Payload{arrayPayload(`[{"name":"A"}]`, true)},
	}
	writer := &fakeWriter{err: errors.ErrSourceUnavailable}
	engine := New(sources.NewChain(src), writer)

	set, err := engine.Resolve(context.Background(), testRequest(t))
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, 1, writer.calls)
}

func TestResolveEmptySetNotPersisted(t *testing.T) {
	logging.DisableLoggingForTest(t)

	writer := &fakeWriter{}
	engine := New(sources.NewChain(&fakeSource{id: sources.HeuristicID}), writer)

	set, err := engine.Resolve(context.Background(), testRequest(t))
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, 0, writer.calls)
}

func TestResolveCanceledContext(t *testing.T) {
	logging.DisableLoggingForTest(t)

	src := &fakeSource{id: sources.RemoteSchemaID}
	engine := New(sources.NewChain(src), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	set, err := engine.Resolve(ctx, testRequest(t))
	require.ErrorIs(t, err, errors.ErrCanceled)
	assert.NotNil(t, set)
	assert.Equal(t, 0, src.calls)
}
