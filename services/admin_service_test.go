package services

import (
	"context"
	"testing"

	"pawmate_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminHarness(t *testing.T, profiles ...models.PetProfile) (*AdminService, *fakeProfileStore, *fakeReportLog, *fakeNotifier) {
	t.Setenv("ADMIN_USER_IDS", "mod1, mod2")
	store := newFakeProfileStore(profiles...)
	reports := newFakeReportLog()
	notifier := &fakeNotifier{}
	return NewAdminService(store, reports, notifier), store, reports, notifier
}

func TestIsAdmin(t *testing.T) {
	svc, _, _, _ := newAdminHarness(t)
	assert.True(t, svc.IsAdmin("mod1"))
	assert.True(t, svc.IsAdmin("mod2"))
	assert.False(t, svc.IsAdmin("visitor"))
	assert.False(t, svc.IsAdmin(""))
}

func TestListComplaintsJoinsProfiles(t *testing.T) {
	ctx := context.Background()
	svc, _, reports, _ := newAdminHarness(t, testProfile("bad", nil, nil))
	require.NoError(t, reports.AddReport(ctx, models.Report{ReportID: "r1", ReporterID: "u", ReportedID: "bad", Description: "spam"}))
	require.NoError(t, reports.AddReport(ctx, models.Report{ReportID: "r2", ReporterID: "u", ReportedID: "gone", Description: "rude"}))

	complaints, err := svc.ListComplaints(ctx)
	require.NoError(t, err)
	require.Len(t, complaints, 2)

	require.NotNil(t, complaints[0].Profile)
	assert.Equal(t, "bad", complaints[0].Profile.UserID)
	assert.Nil(t, complaints[1].Profile, "already deleted profiles join as nil")
}

func TestResolveComplaintRemoveProfile(t *testing.T) {
	ctx := context.Background()
	svc, store, reports, notifier := newAdminHarness(t, testProfile("bad", nil, nil))
	require.NoError(t, reports.AddReport(ctx, models.Report{ReportID: "r1", ReporterID: "u", ReportedID: "bad"}))
	require.NoError(t, reports.AddReport(ctx, models.Report{ReportID: "r2", ReporterID: "w", ReportedID: "bad"}))
	require.NoError(t, reports.AddReport(ctx, models.Report{ReportID: "r3", ReporterID: "u", ReportedID: "other"}))

	require.NoError(t, svc.ResolveComplaint(ctx, "r1", ResolveRemoveProfile))

	profile, err := store.GetProfile(ctx, "bad")
	require.NoError(t, err)
	assert.Nil(t, profile)

	// every report against the removed user is closed, the rest stay
	remaining, err := reports.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "r3", remaining[0].ReportID)

	sent := notifier.notifications()
	require.Len(t, sent, 1)
	assert.Equal(t, "chan-bad", sent[0].Channel)
	assert.Contains(t, sent[0].Text, "removed by a moderator")
}

func TestResolveComplaintKeepProfile(t *testing.T) {
	ctx := context.Background()
	svc, store, reports, notifier := newAdminHarness(t, testProfile("ok", nil, nil))
	require.NoError(t, reports.AddReport(ctx, models.Report{ReportID: "r1", ReporterID: "u", ReportedID: "ok"}))
	require.NoError(t, reports.AddReport(ctx, models.Report{ReportID: "r2", ReporterID: "w", ReportedID: "ok"}))

	require.NoError(t, svc.ResolveComplaint(ctx, "r1", ResolveKeepProfile))

	profile, err := store.GetProfile(ctx, "ok")
	require.NoError(t, err)
	assert.NotNil(t, profile)

	remaining, err := reports.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "r2", remaining[0].ReportID)
	assert.Empty(t, notifier.notifications())
}

func TestResolveComplaintErrors(t *testing.T) {
	ctx := context.Background()
	svc, _, reports, _ := newAdminHarness(t)

	assert.Error(t, svc.ResolveComplaint(ctx, "missing", ResolveRemoveProfile))

	require.NoError(t, reports.AddReport(ctx, models.Report{ReportID: "r1", ReporterID: "u", ReportedID: "x"}))
	assert.Error(t, svc.ResolveComplaint(ctx, "r1", "shrug"))
}
