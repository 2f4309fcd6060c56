package services

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"pawmate_server/models"
	"pawmate_server/utils"
)

// DefaultNearbyRadiusKm bounds the "nearby" discovery mode
const DefaultNearbyRadiusKm = 100.0

// CandidateView pairs a profile with its distance from the requester,
// when both sides have coordinates. Never persisted.
type CandidateView struct {
	Profile    models.PetProfile `json:"profile"`
	DistanceKm *float64          `json:"distanceKm,omitempty"`
}

// CandidateService produces the ordered candidate list for a discovery session
type CandidateService struct {
	Profiles ProfileStore
	Ledger   RelationshipLedger
}

func nearbyRadiusKm() float64 {
	if v := os.Getenv("NEARBY_RADIUS_KM"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
			return r
		}
	}
	return DefaultNearbyRadiusKm
}

// ListCandidates returns the eligible candidates for the user in the given
// mode. "nearby" filters to the configured radius and sorts nearest first;
// "all" is unranked and keeps candidates without coordinates. Missing
// requester profile or location degrades to an empty result, never an error.
func (cs *CandidateService) ListCandidates(ctx context.Context, userID, mode string) ([]CandidateView, error) {
	requester, err := cs.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requester profile: %w", err)
	}
	if requester == nil {
		return nil, nil
	}
	if mode == models.ModeNearby && !requester.HasLocation() {
		return nil, nil
	}

	excluded, err := cs.Ledger.ExcludedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute exclusion set: %w", err)
	}

	profiles, err := cs.Profiles.GetAllProfilesExcept(ctx, userID)
	if err != nil {
		return nil, err
	}

	var candidates []CandidateView
	for _, profile := range profiles {
		if _, seen := excluded[profile.UserID]; seen {
			continue
		}
		if mode == models.ModeNearby && !profile.HasLocation() {
			continue
		}

		view := CandidateView{Profile: profile}
		if requester.HasLocation() && profile.HasLocation() {
			d := utils.RoundKm(utils.CalculateDistance(*requester.Latitude, *requester.Longitude, *profile.Latitude, *profile.Longitude))
			view.DistanceKm = &d
		}

		if mode == models.ModeNearby {
			if view.DistanceKm == nil || *view.DistanceKm > nearbyRadiusKm() {
				continue
			}
		}

		candidates = append(candidates, view)
	}

	if mode == models.ModeNearby {
		// nearest first, ties keep insertion order
		sort.SliceStable(candidates, func(i, j int) bool {
			return *candidates[i].DistanceKm < *candidates[j].DistanceKm
		})
	}

	return candidates, nil
}
