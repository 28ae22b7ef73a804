package usecase

import "github.com/transit-graph/internal/domain"

type destinationKey struct {
	lineID          int
	destinationName string
}

// GroupVisitsByDestination groups visits by line and destination name.
// Groups come out in order of first appearance, and each group's
// representative fields are taken from its first visit.
func GroupVisitsByDestination(visits []domain.RealtimeVisit) []domain.RealtimeDestination {
	index := make(map[destinationKey]int)
	groups := make([]domain.RealtimeDestination, 0)

	for _, v := range visits {
		key := destinationKey{lineID: v.LineID, destinationName: v.DestinationName}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.RealtimeDestination{
				StopID:             v.StopID,
				LineID:             v.LineID,
				Name:               v.Name,
				DestinationName:    v.DestinationName,
				LineColour:         v.LineColour,
				TransportationType: v.TransportationType,
			})
		}
		groups[i].Visits = append(groups[i].Visits, v)
	}
	return groups
}

// GroupVisitsByPlatform groups visits sharing a platform name. Visits
// without a platform are left out.
func GroupVisitsByPlatform(visits []domain.RealtimeVisit) []domain.RealtimePlatform {
	index := make(map[string]int)
	groups := make([]domain.RealtimePlatform, 0)

	for _, v := range visits {
		if v.Platform == nil || *v.Platform == "" {
			continue
		}
		name := *v.Platform
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, domain.RealtimePlatform{Name: name})
		}
		groups[i].Visits = append(groups[i].Visits, v)
	}
	return groups
}

// CollectUniqueDeviations returns every distinct deviation across visits.
// Deviations are equal when both id and header match.
func CollectUniqueDeviations(visits []domain.RealtimeVisit) []domain.Deviation {
	seen := make(map[domain.Deviation]struct{})
	unique := make([]domain.Deviation, 0)

	for _, v := range visits {
		for _, d := range v.Deviations {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			unique = append(unique, d)
		}
	}
	return unique
}

// FilterVisits keeps visits in the given direction, then truncates to limit.
// Empty direction and non-positive limit disable the respective step.
func FilterVisits(visits []domain.RealtimeVisit, direction string, limit int) []domain.RealtimeVisit {
	filtered := visits
	if direction != "" {
		filtered = make([]domain.RealtimeVisit, 0, len(visits))
		for _, v := range visits {
			if v.Direction == direction {
				filtered = append(filtered, v)
			}
		}
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}
