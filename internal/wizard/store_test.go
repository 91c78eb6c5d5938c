package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()
	assert.Zero(t, store.Len())

	sess := store.Create(&fakeLookup{}, &fakeClients{}, &fakeOrders{})
	require.NotNil(t, sess.Wizard)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, store.Len())

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)

	store.Delete(sess.ID)
	assert.Zero(t, store.Len())
	store.Delete(sess.ID) // no-op
}

func TestStoreSessionsAreIndependent(t *testing.T) {
	store := NewStore()
	a := store.Create(&fakeLookup{}, &fakeClients{}, &fakeOrders{})
	b := store.Create(&fakeLookup{}, &fakeClients{}, &fakeOrders{})

	require.NoError(t, a.Wizard.SetClientField("first_name", "محمد"))
	assert.Empty(t, b.Wizard.Snapshot().Client.FirstName)
	assert.NotEqual(t, a.ID, b.ID)
}
