package persist_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	customerModel "frontdesk/internal/domains/customer/model"
	"frontdesk/internal/persist"
	"frontdesk/internal/persist/mocks"
	"frontdesk/internal/store"
	"frontdesk/shared/failure"
)

const testKey = "crownInnHotelData"

func TestCommit_WritesEnvelopeUnderKey(t *testing.T) {
	ctrl := gomock.NewController(t)

	st := store.New()
	st.Customers = append(st.Customers, customerModel.Customer{
		ID:    st.NextCustomerID(),
		Name:  "Asha Rao",
		Phone: "9876500001",
	})

	var saved []byte

	kv := mocks.NewMockKV(ctrl)
	kv.EXPECT().
		Save(gomock.Any(), testKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value []byte) error {
			saved = value
			return nil
		})

	committer := persist.NewCommitter(kv, st, testKey, "4.0")
	require.NoError(t, committer.Commit(context.Background()))

	var env store.Envelope
	require.NoError(t, json.Unmarshal(saved, &env))
	assert.Equal(t, "4.0", env.Version)
	require.Len(t, env.Customers, 1)
	assert.Equal(t, "Asha Rao", env.Customers[0].Name)
	assert.Equal(t, int64(2), env.NextCustomerID)
	assert.NotEmpty(t, env.LastSaved)
}

func TestCommit_SaveFailureIsPersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	kv := mocks.NewMockKV(ctrl)
	kv.EXPECT().
		Save(gomock.Any(), testKey, gomock.Any()).
		Return(errors.New("disk full"))

	committer := persist.NewCommitter(kv, store.New(), testKey, "4.0")
	err := committer.Commit(context.Background())

	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.KindPersistence))
}

func TestRestore_MissingKeyStartsFresh(t *testing.T) {
	ctrl := gomock.NewController(t)

	kv := mocks.NewMockKV(ctrl)
	kv.EXPECT().
		Load(gomock.Any(), testKey).
		Return(nil, false, nil)

	st := store.New()
	committer := persist.NewCommitter(kv, st, testKey, "4.0")

	require.NoError(t, committer.Restore(context.Background()))

	assert.Empty(t, st.Customers)
	assert.Equal(t, int64(1), st.NextCustomerID())
}

func TestRestore_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := store.New()
	src.Customers = append(src.Customers, customerModel.Customer{
		ID:    src.NextCustomerID(),
		Name:  "Asha Rao",
		Phone: "9876500001",
	})

	blob, err := json.Marshal(src.Snapshot("4.0"))
	require.NoError(t, err)

	kv := mocks.NewMockKV(ctrl)
	kv.EXPECT().
		Load(gomock.Any(), testKey).
		Return(blob, true, nil)

	dst := store.New()
	committer := persist.NewCommitter(kv, dst, testKey, "4.0")

	require.NoError(t, committer.Restore(context.Background()))

	require.Len(t, dst.Customers, 1)
	assert.Equal(t, "Asha Rao", dst.Customers[0].Name)
	assert.Equal(t, int64(2), dst.NextCustomerID())
}

func TestRestore_LoadFailureIsPersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	kv := mocks.NewMockKV(ctrl)
	kv.EXPECT().
		Load(gomock.Any(), testKey).
		Return(nil, false, errors.New("i/o error"))

	committer := persist.NewCommitter(kv, store.New(), testKey, "4.0")
	err := committer.Restore(context.Background())

	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.KindPersistence))
}

func TestRestore_CorruptBlobIsPersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	kv := mocks.NewMockKV(ctrl)
	kv.EXPECT().
		Load(gomock.Any(), testKey).
		Return([]byte("{not json"), true, nil)

	committer := persist.NewCommitter(kv, store.New(), testKey, "4.0")
	err := committer.Restore(context.Background())

	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.KindPersistence))
}
