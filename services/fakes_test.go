package services

import (
	"context"
	"errors"
	"sync"

	"pawmate_server/models"
)

// In-memory implementations of the store interfaces for testing the
// discovery and session engines without DynamoDB.

type fakeProfileStore struct {
	mu       sync.Mutex
	profiles []models.PetProfile // slice keeps a stable scan order
}

func newFakeProfileStore(profiles ...models.PetProfile) *fakeProfileStore {
	return &fakeProfileStore{profiles: profiles}
}

func (f *fakeProfileStore) GetProfile(_ context.Context, userID string) (*models.PetProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.UserID == userID {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileStore) GetAllProfilesExcept(_ context.Context, userID string) ([]models.PetProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.PetProfile
	for _, p := range f.profiles {
		if p.UserID != userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProfileStore) SaveProfile(_ context.Context, profile models.PetProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.profiles {
		if p.UserID == profile.UserID {
			f.profiles[i] = profile
			return nil
		}
	}
	f.profiles = append(f.profiles, profile)
	return nil
}

func (f *fakeProfileStore) UpdateProfileFields(_ context.Context, userID string, updates map[string]interface{}) (*models.PetProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.profiles {
		if f.profiles[i].UserID != userID {
			continue
		}
		p := &f.profiles[i]
		for k, v := range updates {
			switch k {
			case "petName":
				p.PetName = v.(string)
			case "age":
				p.Age = v.(int)
			case "breed":
				p.Breed = v.(string)
			case "about":
				p.About = v.(string)
			case "photoRef":
				p.PhotoRef = v.(string)
			case "contactHandle":
				p.ContactHandle = v.(string)
			case "latitude":
				lat := v.(float64)
				p.Latitude = &lat
			case "longitude":
				lon := v.(float64)
				p.Longitude = &lon
			}
		}
		copied := *p
		return &copied, nil
	}
	return nil, errors.New("profile not found")
}

func (f *fakeProfileStore) DeleteProfile(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.profiles {
		if p.UserID == userID {
			f.profiles = append(f.profiles[:i], f.profiles[i+1:]...)
			return nil
		}
	}
	return nil
}

type pairKey struct {
	actor  string
	target string
}

type fakeLedger struct {
	mu      sync.Mutex
	records map[pairKey]models.RelationshipRecord
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{records: make(map[pairKey]models.RelationshipRecord)}
}

func (f *fakeLedger) put(rec models.RelationshipRecord) {
	f.records[pairKey{rec.ActorID, rec.TargetID}] = rec
}

func (f *fakeLedger) get(actorID, targetID string) (models.RelationshipRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[pairKey{actorID, targetID}]
	return rec, ok
}

func (f *fakeLedger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

func (f *fakeLedger) UpsertReaction(_ context.Context, actorID, targetID, state string) error {
	if !models.ValidReactionStates[state] {
		return errors.New("invalid reaction state")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put(models.RelationshipRecord{ActorID: actorID, TargetID: targetID, State: state})
	return nil
}

func (f *fakeLedger) ExcludedIDs(_ context.Context, userID string) (map[string]struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	excluded := make(map[string]struct{})
	for key := range f.records {
		if key.actor == userID {
			excluded[key.target] = struct{}{}
		}
		if key.target == userID {
			excluded[key.actor] = struct{}{}
		}
	}
	return excluded, nil
}

func (f *fakeLedger) InboundLikes(_ context.Context, userID string) ([]models.RelationshipRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var likes []models.RelationshipRecord
	for _, rec := range f.records {
		if rec.TargetID == userID && rec.State == models.StateLike {
			likes = append(likes, rec)
		}
	}
	return likes, nil
}

func (f *fakeLedger) UnseenMutualMatches(_ context.Context, userID string) ([]models.RelationshipRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matches []models.RelationshipRecord
	for _, rec := range f.records {
		if rec.TargetID == userID && rec.State == models.StateMutualMatch && !rec.SeenByTarget {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

func (f *fakeLedger) MarkMatchSeen(_ context.Context, actorID, targetID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[pairKey{actorID, targetID}]
	if !ok {
		return errors.New("record not found")
	}
	rec.SeenByTarget = true
	f.put(rec)
	return nil
}

func (f *fakeLedger) Reciprocate(_ context.Context, userID, likerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	likeKey := pairKey{likerID, userID}
	if rec, ok := f.records[likeKey]; !ok || rec.State != models.StateLike {
		return errors.New("no like to reciprocate")
	}
	f.put(models.RelationshipRecord{ActorID: userID, TargetID: likerID, State: models.StateMutualMatch})
	delete(f.records, likeKey)
	return nil
}

type fakeReportLog struct {
	mu      sync.Mutex
	reports []models.Report
}

func newFakeReportLog() *fakeReportLog {
	return &fakeReportLog{}
}

func (f *fakeReportLog) AddReport(_ context.Context, report models.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeReportLog) GetReport(_ context.Context, reportID string) (*models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reports {
		if r.ReportID == reportID {
			copied := r
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeReportLog) ListReports(_ context.Context) ([]models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Report(nil), f.reports...), nil
}

func (f *fakeReportLog) DeleteReport(_ context.Context, reportID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.reports {
		if r.ReportID == reportID {
			f.reports = append(f.reports[:i], f.reports[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeReportLog) DeleteReportsAgainst(_ context.Context, reportedID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []models.Report
	for _, r := range f.reports {
		if r.ReportedID != reportedID {
			kept = append(kept, r)
		}
	}
	f.reports = kept
	return nil
}

type sentNotification struct {
	Channel string
	Text    string
}

type fakeNotifier struct {
	mu       sync.Mutex
	sent     []sentNotification
	failWith error
}

func (f *fakeNotifier) Notify(channelRef, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, sentNotification{Channel: channelRef, Text: text})
	return nil
}

func (f *fakeNotifier) notifications() []sentNotification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentNotification(nil), f.sent...)
}

func ptrFloat(f float64) *float64 {
	return &f
}

func testProfile(userID string, lat, lon *float64) models.PetProfile {
	return models.PetProfile{
		UserID:        userID,
		PetName:       "Pet of " + userID,
		Age:           3,
		Breed:         "mixed",
		ContactHandle: userID + "_handle",
		NotifyChannel: "chan-" + userID,
		Latitude:      lat,
		Longitude:     lon,
	}
}
