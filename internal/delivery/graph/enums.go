package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/transit-graph/internal/domain"
)

func newTransportationTypeEnum() *graphql.Enum {
	return graphql.NewEnum(graphql.EnumConfig{
		Name:        "TransportationType",
		Description: "A mode of transport, or walking",
		Values: graphql.EnumValueConfigMap{
			"WALKING":       &graphql.EnumValueConfig{Value: domain.TransportationWalking},
			"AIRPORT_BUS":   &graphql.EnumValueConfig{Value: domain.TransportationAirportBus},
			"BUS":           &graphql.EnumValueConfig{Value: domain.TransportationBus},
			"DUMMY":         &graphql.EnumValueConfig{Value: domain.TransportationDummy},
			"AIRPORT_TRAIN": &graphql.EnumValueConfig{Value: domain.TransportationAirportTrain},
			"BOAT":          &graphql.EnumValueConfig{Value: domain.TransportationBoat},
			"TRAIN":         &graphql.EnumValueConfig{Value: domain.TransportationTrain},
			"TRAM":          &graphql.EnumValueConfig{Value: domain.TransportationTram},
			"METRO":         &graphql.EnumValueConfig{Value: domain.TransportationMetro},
		},
	})
}

func newPlaceTypeEnum() *graphql.Enum {
	return graphql.NewEnum(graphql.EnumConfig{
		Name:        "PlaceType",
		Description: "A kind of place",
		Values: graphql.EnumValueConfigMap{
			"AREA":   &graphql.EnumValueConfig{Value: domain.PlaceTypeArea},
			"STOP":   &graphql.EnumValueConfig{Value: domain.PlaceTypeStop},
			"STREET": &graphql.EnumValueConfig{Value: domain.PlaceTypeStreet},
			"POI":    &graphql.EnumValueConfig{Value: domain.PlaceTypePOI},
		},
	})
}
