package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"pawmate_server/models"
)

// Complaint is a report joined with the reported profile. Profile is nil when
// the reported user was already deleted.
type Complaint struct {
	Report  models.Report      `json:"report"`
	Profile *models.PetProfile `json:"profile,omitempty"`
}

// Moderation verdicts
const (
	ResolveRemoveProfile = "remove_profile"
	ResolveKeepProfile   = "keep_profile"
)

// AdminService implements the moderation workflow behind the static allow-list
type AdminService struct {
	Profiles  ProfileStore
	Reports   ReportLog
	Notifier  Notifier
	allowList map[string]struct{}
}

func NewAdminService(profiles ProfileStore, reports ReportLog, notifier Notifier) *AdminService {
	allowList := make(map[string]struct{})
	for _, id := range strings.Split(os.Getenv("ADMIN_USER_IDS"), ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			allowList[id] = struct{}{}
		}
	}

	return &AdminService{
		Profiles:  profiles,
		Reports:   reports,
		Notifier:  notifier,
		allowList: allowList,
	}
}

// IsAdmin checks the static allow-list
func (as *AdminService) IsAdmin(userID string) bool {
	_, ok := as.allowList[userID]
	return ok
}

// ListComplaints returns every open report joined with the reported profile
func (as *AdminService) ListComplaints(ctx context.Context) ([]Complaint, error) {
	reports, err := as.Reports.ListReports(ctx)
	if err != nil {
		return nil, err
	}

	var complaints []Complaint
	for _, report := range reports {
		profile, err := as.Profiles.GetProfile(ctx, report.ReportedID)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, Complaint{Report: report, Profile: profile})
	}
	return complaints, nil
}

// ResolveComplaint closes a report. remove_profile deletes the reported
// profile, cascades every report against that user and best-effort notifies
// them; keep_profile drops just this report.
func (as *AdminService) ResolveComplaint(ctx context.Context, reportID, action string) error {
	report, err := as.Reports.GetReport(ctx, reportID)
	if err != nil {
		return err
	}
	if report == nil {
		return fmt.Errorf("report '%s' not found", reportID)
	}

	switch action {
	case ResolveRemoveProfile:
		// channel needed after the profile is gone
		profile, err := as.Profiles.GetProfile(ctx, report.ReportedID)
		if err != nil {
			return err
		}

		if err := as.Profiles.DeleteProfile(ctx, report.ReportedID); err != nil {
			return err
		}
		if err := as.Reports.DeleteReportsAgainst(ctx, report.ReportedID); err != nil {
			return err
		}

		if profile != nil {
			notifyBestEffort(as.Notifier, profile.NotifyChannel,
				"Your profile was removed by a moderator. You can fill in a new one that follows the rules.")
		}
		log.Printf("🔨 Moderation removed profile %s (report %s)", report.ReportedID, reportID)
		return nil

	case ResolveKeepProfile:
		return as.Reports.DeleteReport(ctx, reportID)

	default:
		return fmt.Errorf("invalid resolution '%s'", action)
	}
}
