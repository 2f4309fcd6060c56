package services

import (
	"context"
	"testing"

	"pawmate_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreReturnsSameSlot(t *testing.T) {
	store := NewSessionStore()
	a := store.user("u")
	b := store.user("u")
	assert.Same(t, a, b)
	assert.NotSame(t, a, store.user("w"))
}

// A user has one active cursor: opening the likes inbox ends a discovery
// session and starting discovery ends a likes session.
func TestCursorsSupersedeAcrossEngines(t *testing.T) {
	ctx := context.Background()

	profileStore := newFakeProfileStore(
		testProfile("u", ptrFloat(53.90), ptrFloat(27.56)),
		testProfile("c1", ptrFloat(53.91), ptrFloat(27.57)),
		testProfile("liker", ptrFloat(53.92), ptrFloat(27.56)),
	)
	ledger := newFakeLedger()
	notifier := &fakeNotifier{}
	sessions := NewSessionStore()

	swipe := &SwipeService{
		Candidates: &CandidateService{Profiles: profileStore, Ledger: ledger},
		Profiles:   profileStore,
		Ledger:     ledger,
		Reports:    newFakeReportLog(),
		Notifier:   notifier,
		Sessions:   sessions,
	}
	likes := &LikesInboxService{
		Profiles: profileStore,
		Ledger:   ledger,
		Notifier: notifier,
		Sessions: sessions,
	}

	require.NoError(t, ledger.UpsertReaction(ctx, "liker", "u", models.StateLike))

	ev, err := swipe.Start(ctx, "u", models.ModeAll)
	require.NoError(t, err)
	require.Equal(t, EventCandidate, ev.Kind)

	inboxEv, err := likes.Open(ctx, "u")
	require.NoError(t, err)
	require.Equal(t, EventLikeEntry, inboxEv.Kind)

	// the discovery cursor is gone
	ev, err = swipe.React(ctx, "u", models.ReactionLike, "c1")
	require.NoError(t, err)
	assert.Equal(t, EventNotBrowsing, ev.Kind)

	ev, err = swipe.Start(ctx, "u", models.ModeAll)
	require.NoError(t, err)
	require.Equal(t, EventCandidate, ev.Kind)

	// and now the likes cursor is gone
	inboxEv, err = likes.React(ctx, "u", models.InboxSkip, "liker")
	require.NoError(t, err)
	assert.Equal(t, EventNotBrowsing, inboxEv.Kind)
}
