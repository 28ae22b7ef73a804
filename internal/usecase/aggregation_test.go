package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/usecase"
)

func strPtr(s string) *string { return &s }

func visit(lineID int, destination, platform string, deviations ...domain.Deviation) domain.RealtimeVisit {
	v := domain.RealtimeVisit{
		StopID:             3010011,
		LineID:             lineID,
		DestinationName:    destination,
		Name:               destination + " line",
		Direction:          "1",
		LineColour:         "0B91EF",
		TransportationType: domain.TransportationTram,
		Deviations:         deviations,
	}
	if platform != "" {
		v.Platform = strPtr(platform)
	}
	return v
}

func TestGroupVisitsByDestination(t *testing.T) {
	visits := []domain.RealtimeVisit{
		visit(17, "Rikshospitalet", "A"),
		visit(18, "Rikshospitalet", "A"),
		visit(17, "Grefsen", "B"),
		visit(17, "Rikshospitalet", "B"),
	}
	visits[3].Name = "other name"

	groups := usecase.GroupVisitsByDestination(visits)
	require.Len(t, groups, 3)

	assert.Equal(t, 17, groups[0].LineID)
	assert.Equal(t, "Rikshospitalet", groups[0].DestinationName)
	assert.Len(t, groups[0].Visits, 2)
	// representative comes from the first visit of the group
	assert.Equal(t, "Rikshospitalet line", groups[0].Name)

	assert.Equal(t, 18, groups[1].LineID)
	assert.Equal(t, "Grefsen", groups[2].DestinationName)

	total := 0
	for _, g := range groups {
		for _, v := range g.Visits {
			assert.Equal(t, g.LineID, v.LineID)
			assert.Equal(t, g.DestinationName, v.DestinationName)
		}
		total += len(g.Visits)
	}
	assert.Equal(t, len(visits), total)
}

func TestGroupVisitsByDestination_Empty(t *testing.T) {
	groups := usecase.GroupVisitsByDestination(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupVisitsByPlatform(t *testing.T) {
	visits := []domain.RealtimeVisit{
		visit(17, "Rikshospitalet", "A"),
		visit(18, "Grefsen", ""),
		visit(19, "Ljabru", "B"),
		visit(17, "Grefsen", "A"),
	}
	emptyPlatform := visit(11, "Kjelsås", "")
	emptyPlatform.Platform = strPtr("")
	visits = append(visits, emptyPlatform)

	groups := usecase.GroupVisitsByPlatform(visits)
	require.Len(t, groups, 2)

	assert.Equal(t, "A", groups[0].Name)
	assert.Len(t, groups[0].Visits, 2)
	assert.Equal(t, "B", groups[1].Name)
	assert.Len(t, groups[1].Visits, 1)

	for _, g := range groups {
		assert.NotEmpty(t, g.Name)
		for _, v := range g.Visits {
			require.NotNil(t, v.Platform)
			assert.Equal(t, g.Name, *v.Platform)
		}
	}
}

func TestCollectUniqueDeviations(t *testing.T) {
	a := domain.Deviation{ID: 1, Header: "A"}
	b := domain.Deviation{ID: 2, Header: "B"}
	c := domain.Deviation{ID: 3, Header: "C"}

	visits := []domain.RealtimeVisit{
		visit(17, "Rikshospitalet", "A", a, b),
		visit(18, "Grefsen", "B", b, c),
	}

	got := usecase.CollectUniqueDeviations(visits)
	assert.ElementsMatch(t, []domain.Deviation{a, b, c}, got)

	reversed := []domain.RealtimeVisit{visits[1], visits[0]}
	assert.ElementsMatch(t, got, usecase.CollectUniqueDeviations(reversed))
}

func TestCollectUniqueDeviations_SameIDDifferentHeader(t *testing.T) {
	visits := []domain.RealtimeVisit{
		visit(17, "Rikshospitalet", "A", domain.Deviation{ID: 1, Header: "Delay"}),
		visit(17, "Rikshospitalet", "A", domain.Deviation{ID: 1, Header: "Delay, updated"}),
	}

	assert.Len(t, usecase.CollectUniqueDeviations(visits), 2)
}

func TestFilterVisits(t *testing.T) {
	visits := []domain.RealtimeVisit{
		visit(17, "Rikshospitalet", "A"),
		visit(17, "Grefsen", "A"),
		visit(18, "Ljabru", "B"),
	}
	visits[1].Direction = "2"

	assert.Len(t, usecase.FilterVisits(visits, "", 0), 3)
	assert.Len(t, usecase.FilterVisits(visits, "1", 0), 2)
	assert.Len(t, usecase.FilterVisits(visits, "", 1), 1)

	got := usecase.FilterVisits(visits, "1", 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Rikshospitalet", got[0].DestinationName)
}
