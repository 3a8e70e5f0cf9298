package audit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type auditedThing struct {
	ID   int64
	Name string
}

type thingOp string

const (
	thingCreated thingOp = "thing_created"
	thingDeleted thingOp = "thing_deleted"
)

func newThingLog() *Log[auditedThing, int64, thingOp] {
	return NewLog[auditedThing, int64, thingOp](func(t auditedThing) int64 { return t.ID })
}

func registerThing(t *testing.T, log *Log[auditedThing, int64, thingOp], op thingOp, id int64, user string) *Record[auditedThing, thingOp] {
	t.Helper()
	rec, err := log.Register(NewRecord(op, &auditedThing{ID: id}, user))
	require.NoError(t, err)
	return rec
}

func TestLogRegister(t *testing.T) {
	t.Run("appends records in order", func(t *testing.T) {
		log := newThingLog()
		registerThing(t, log, thingCreated, 1, "alice")
		registerThing(t, log, thingDeleted, 1, "alice")
		assert.Equal(t, 2, log.Size())
	})

	t.Run("rejects nil record", func(t *testing.T) {
		log := newThingLog()
		_, err := log.Register(nil)
		require.Error(t, err)
	})

	t.Run("stores an independent copy", func(t *testing.T) {
		log := newThingLog()
		snapshot := &auditedThing{ID: 1, Name: "before"}
		_, err := log.Register(NewRecord(thingCreated, snapshot, "alice"))
		require.NoError(t, err)

		snapshot.Name = "after"
		records := log.Records()
		require.Len(t, records, 1)
		assert.Equal(t, "before", records[0].Snapshot.Name)
	})
}

func TestLogFindByID(t *testing.T) {
	log := newThingLog()
	rec := registerThing(t, log, thingCreated, 1, "alice")

	found, err := log.FindByID(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, found.ID)

	_, err = log.FindByID(uuid.New())
	require.Error(t, err)
}

func TestLogHistory(t *testing.T) {
	log := newThingLog()
	registerThing(t, log, thingCreated, 1, "alice")
	registerThing(t, log, thingCreated, 2, "alice")
	registerThing(t, log, thingDeleted, 1, "bob")

	history, err := log.History(1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, thingCreated, history[0].Kind)
	assert.Equal(t, thingDeleted, history[1].Kind)

	none, err := log.History(99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLogFindByDateRange(t *testing.T) {
	log := newThingLog()
	registerThing(t, log, thingCreated, 1, "alice")

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("matches records inside the range", func(t *testing.T) {
		records, err := log.FindByDateRange(&past, &future)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("nil bounds yield empty result", func(t *testing.T) {
		records, err := log.FindByDateRange(nil, &future)
		require.NoError(t, err)
		assert.Empty(t, records)

		records, err = log.FindByDateRange(&past, nil)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("inverted range yields empty result", func(t *testing.T) {
		records, err := log.FindByDateRange(&future, &past)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("range outside the records yields empty result", func(t *testing.T) {
		farPast := now.Add(-48 * time.Hour)
		records, err := log.FindByDateRange(&farPast, &past)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestLogFindByUser(t *testing.T) {
	log := newThingLog()
	registerThing(t, log, thingCreated, 1, "alice")
	registerThing(t, log, thingCreated, 2, "bob")

	records, err := log.FindByUser("alice")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "alice", records[0].User)

	empty, err := log.FindByUser("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLogFindByKind(t *testing.T) {
	log := newThingLog()
	registerThing(t, log, thingCreated, 1, "alice")
	registerThing(t, log, thingDeleted, 1, "alice")

	records, err := log.FindByKind(thingDeleted)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, thingDeleted, records[0].Kind)

	empty, err := log.FindByKind(thingOp(""))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRecordBuilders(t *testing.T) {
	rec := NewRecord(thingCreated, &auditedThing{ID: 1}, "alice")
	amount := decimal.NewFromInt(42)
	rec.WithAmount(amount).WithDetails("initial deposit")

	require.NotNil(t, rec.Amount)
	assert.True(t, rec.Amount.Equal(amount))
	assert.Equal(t, "initial deposit", rec.Details)
	assert.NotEqual(t, uuid.Nil, rec.ID)
}
