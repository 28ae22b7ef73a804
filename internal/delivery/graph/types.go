package graph

import (
	"context"

	"github.com/graphql-go/graphql"
	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/usecase"
	"github.com/transit-graph/internal/usecase/dto"
)

// sourceAs достает источник поля независимо от того, пришел он значением или указателем
func sourceAs[T any](src interface{}) (T, bool) {
	switch v := src.(type) {
	case T:
		return v, true
	case *T:
		if v != nil {
			return *v, true
		}
	}
	var zero T
	return zero, false
}

func (b *schemaBuilder) buildLocationTypes() {
	b.geoLocation = graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoLocation",
		Fields: graphql.Fields{
			"latitude": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					g, _ := sourceAs[domain.GeoLocation](p.Source)
					return g.Lat, nil
				},
			},
			"longitude": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					g, _ := sourceAs[domain.GeoLocation](p.Source)
					return g.Lng, nil
				},
			},
		},
	})

	b.utmLocation = graphql.NewObject(graphql.ObjectConfig{
		Name: "UtmLocation",
		Fields: graphql.Fields{
			"x": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"y": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	b.deviation = graphql.NewObject(graphql.ObjectConfig{
		Name: "Deviation",
		Fields: graphql.Fields{
			"id":     &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"header": &graphql.Field{Type: graphql.String},
		},
	})
}

func (b *schemaBuilder) buildInterfaces() {
	b.placeInterface = graphql.NewInterface(graphql.InterfaceConfig{
		Name:        "PlaceInterface",
		Description: "Common fields of every place",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.String},
			"district":  &graphql.Field{Type: graphql.String},
			"placeType": &graphql.Field{Type: b.placeType},
		},
		ResolveType: func(p graphql.ResolveTypeParams) *graphql.Object {
			switch p.Value.(type) {
			case *domain.Stop, domain.Stop:
				return b.stop
			case *domain.POI, domain.POI:
				return b.poi
			case *domain.Area, domain.Area:
				return b.area
			case *domain.Street, domain.Street:
				return b.street
			}
			return nil
		},
	})

	b.stageInterface = graphql.NewInterface(graphql.InterfaceConfig{
		Name:        "TravelStageInterface",
		Description: "Common fields of every travel stage",
		Fields: graphql.Fields{
			"departureTime":      &graphql.Field{Type: graphql.String},
			"arrivalTime":        &graphql.Field{Type: graphql.String},
			"travelTimeMins":     &graphql.Field{Type: graphql.Int},
			"transportationType": &graphql.Field{Type: b.transportationType},
		},
		ResolveType: func(p graphql.ResolveTypeParams) *graphql.Object {
			switch p.Value.(type) {
			case *domain.WalkingStage, domain.WalkingStage:
				return b.walkingStage
			case *domain.TransitStage, domain.TransitStage:
				return b.transitStage
			}
			return nil
		},
	})
}

func placeFields(b *schemaBuilder) graphql.Fields {
	return graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":        &graphql.Field{Type: graphql.String},
		"district":    &graphql.Field{Type: graphql.String},
		"placeType":   &graphql.Field{Type: b.placeType},
		"geoLocation": &graphql.Field{Type: b.geoLocation},
		"utmLocation": &graphql.Field{Type: b.utmLocation},
	}
}

func (b *schemaBuilder) buildStop() {
	b.stop = graphql.NewObject(graphql.ObjectConfig{
		Name:       "Stop",
		Interfaces: []*graphql.Interface{b.placeInterface},
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			fields := placeFields(b)
			fields["shortName"] = &graphql.Field{Type: graphql.String}
			fields["zone"] = &graphql.Field{Type: graphql.String}
			fields["isHub"] = &graphql.Field{Type: graphql.Boolean}
			fields["walkingTimeMins"] = &graphql.Field{Type: graphql.Int}
			fields["lines"] = &graphql.Field{
				Type: graphql.NewList(b.line),
				Args: graphql.FieldConfigArgument{
					"transportationType": &graphql.ArgumentConfig{Type: graphql.NewList(b.transportationType)},
					"id":                 &graphql.ArgumentConfig{Type: graphql.NewList(graphql.ID)},
				},
				Resolve: b.resolveStopLines,
			}
			fields["realtime"] = &graphql.Field{
				Type: b.realtime,
				Args: graphql.FieldConfigArgument{
					"transportationType": &graphql.ArgumentConfig{Type: graphql.NewList(b.transportationType)},
					"lineNames":          &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				},
				Resolve: b.resolveStopRealtime,
			}
			return fields
		}),
	})
}

func (b *schemaBuilder) resolveStopLines(p graphql.ResolveParams) (interface{}, error) {
	stop, ok := sourceAs[domain.Stop](p.Source)
	if !ok {
		return nil, nil
	}
	types := transportationTypesArg(p.Args, "transportationType")

	var ids []int
	raw, _ := p.Args["id"].([]interface{})
	for _, r := range raw {
		id, err := parseID(r)
		if err != nil {
			return nil, toGraphError(invalidID("id", r))
		}
		ids = append(ids, id)
	}

	return b.async(p, func(ctx context.Context) (interface{}, error) {
		lines, err := b.stops.GetStopLines(ctx, stop.ID, dto.StopLinesRequest{})
		if err != nil {
			return nil, err
		}
		return usecase.FilterLines(lines, types, ids), nil
	})
}

// realtimeSource - все визиты остановки; срезы по direction/limit делаются на уровне полей
type realtimeSource struct {
	visits []domain.RealtimeVisit
}

func (b *schemaBuilder) resolveStopRealtime(p graphql.ResolveParams) (interface{}, error) {
	stop, ok := sourceAs[domain.Stop](p.Source)
	if !ok {
		return nil, nil
	}
	types := transportationTypesArg(p.Args, "transportationType")
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}
	req := dto.StopRealtimeRequest{
		TransportTypes: names,
		LineNames:      stringsArg(p.Args, "lineNames"),
	}

	return b.async(p, func(ctx context.Context) (interface{}, error) {
		visits, err := b.stops.GetStopVisits(ctx, stop.ID, req)
		if err != nil {
			return nil, err
		}
		return &realtimeSource{visits: visits}, nil
	})
}

func (b *schemaBuilder) buildRealtime() {
	deviations := &graphql.Field{Type: graphql.NewList(b.deviation)}

	b.realtimeVisit = graphql.NewObject(graphql.ObjectConfig{
		Name: "RealtimeVisit",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"expectedArrival":    &graphql.Field{Type: graphql.String},
				"recordedAtTime":     &graphql.Field{Type: graphql.String},
				"name":               &graphql.Field{Type: graphql.String},
				"destinationName":    &graphql.Field{Type: graphql.String},
				"direction":          &graphql.Field{Type: graphql.String},
				"platform":           &graphql.Field{Type: graphql.String},
				"lowFloor":           &graphql.Field{Type: graphql.Boolean},
				"inCongestion":       &graphql.Field{Type: graphql.Boolean},
				"monitored":          &graphql.Field{Type: graphql.Boolean},
				"transportationType": &graphql.Field{Type: b.transportationType},
				"deviations":         deviations,
				"stop": &graphql.Field{
					Type: b.stop,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						v, _ := sourceAs[domain.RealtimeVisit](p.Source)
						return b.lazyStop(p, v.StopID)
					},
				},
				"line": &graphql.Field{
					Type: b.line,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						v, _ := sourceAs[domain.RealtimeVisit](p.Source)
						return b.lazyLine(p, v.LineID)
					},
				},
			}
		}),
	})

	b.realtimeDestination = graphql.NewObject(graphql.ObjectConfig{
		Name: "RealtimeDestination",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"name":               &graphql.Field{Type: graphql.String},
				"destinationName":    &graphql.Field{Type: graphql.String},
				"color":              &graphql.Field{Type: graphql.String},
				"transportationType": &graphql.Field{Type: b.transportationType},
				"visits":             &graphql.Field{Type: graphql.NewList(b.realtimeVisit)},
				"deviations":         deviations,
				"stop": &graphql.Field{
					Type: b.stop,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						d, _ := sourceAs[dto.DestinationView](p.Source)
						return b.lazyStop(p, d.StopID)
					},
				},
				"line": &graphql.Field{
					Type: b.line,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						d, _ := sourceAs[dto.DestinationView](p.Source)
						return b.lazyLine(p, d.LineID)
					},
				},
			}
		}),
	})

	b.realtimePlatform = graphql.NewObject(graphql.ObjectConfig{
		Name: "RealtimePlatform",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"name":         &graphql.Field{Type: graphql.String},
				"visits":       &graphql.Field{Type: graphql.NewList(b.realtimeVisit)},
				"destinations": &graphql.Field{Type: graphql.NewList(b.realtimeDestination)},
				"deviations":   deviations,
			}
		}),
	})

	b.realtime = graphql.NewObject(graphql.ObjectConfig{
		Name: "Realtime",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"visits": &graphql.Field{
					Type: graphql.NewList(b.realtimeVisit),
					Args: graphql.FieldConfigArgument{
						"limit":     &graphql.ArgumentConfig{Type: graphql.Int},
						"direction": &graphql.ArgumentConfig{Type: graphql.String},
					},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						src, _ := sourceAs[realtimeSource](p.Source)
						limit := 0
						if l := intArg(p.Args, "limit"); l != nil {
							limit = *l
						}
						return usecase.FilterVisits(src.visits, stringArg(p.Args, "direction"), limit), nil
					},
				},
				"platforms": &graphql.Field{
					Type: graphql.NewList(b.realtimePlatform),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						src, _ := sourceAs[realtimeSource](p.Source)
						return usecase.PlatformViews(src.visits), nil
					},
				},
				"destinations": &graphql.Field{
					Type: graphql.NewList(b.realtimeDestination),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						src, _ := sourceAs[realtimeSource](p.Source)
						return usecase.DestinationViews(src.visits), nil
					},
				},
				"deviations": &graphql.Field{
					Type: graphql.NewList(b.deviation),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						src, _ := sourceAs[realtimeSource](p.Source)
						return usecase.CollectUniqueDeviations(src.visits), nil
					},
				},
			}
		}),
	})
}

func (b *schemaBuilder) buildLine() {
	b.line = graphql.NewObject(graphql.ObjectConfig{
		Name: "Line",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":                 &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
				"name":               &graphql.Field{Type: graphql.String},
				"transportationType": &graphql.Field{Type: b.transportationType},
				"color":              &graphql.Field{Type: graphql.String},
				"stops": &graphql.Field{
					Type: graphql.NewList(b.stop),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						line, ok := sourceAs[domain.Line](p.Source)
						if !ok {
							return nil, nil
						}
						return b.async(p, func(ctx context.Context) (interface{}, error) {
							return b.lines.GetLineStops(ctx, line.ID)
						})
					},
				},
			}
		}),
	})
}

func (b *schemaBuilder) buildPlaces() {
	b.nearbyStop = graphql.NewObject(graphql.ObjectConfig{
		Name: "NearbyStop",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"walkingTimeMins": &graphql.Field{Type: graphql.Int},
				"stop":            &graphql.Field{Type: b.stop},
			}
		}),
	})

	b.poi = graphql.NewObject(graphql.ObjectConfig{
		Name:       "POI",
		Interfaces: []*graphql.Interface{b.placeInterface},
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			fields := placeFields(b)
			fields["nearbyStops"] = &graphql.Field{
				Type: graphql.NewList(b.nearbyStop),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					poi, ok := sourceAs[domain.POI](p.Source)
					if !ok {
						return nil, nil
					}
					return usecase.NearbyStops(&poi), nil
				},
			}
			return fields
		}),
	})

	b.area = graphql.NewObject(graphql.ObjectConfig{
		Name:       "Area",
		Interfaces: []*graphql.Interface{b.placeInterface},
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			fields := placeFields(b)
			fields["stops"] = &graphql.Field{Type: graphql.NewList(b.stop)}
			return fields
		}),
	})

	b.house = graphql.NewObject(graphql.ObjectConfig{
		Name: "House",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"name":        &graphql.Field{Type: graphql.String},
				"streetName":  &graphql.Field{Type: graphql.String},
				"streetId":    &graphql.Field{Type: graphql.ID},
				"district":    &graphql.Field{Type: graphql.String},
				"geoLocation": &graphql.Field{Type: b.geoLocation},
				"utmLocation": &graphql.Field{Type: b.utmLocation},
			}
		}),
	})

	b.street = graphql.NewObject(graphql.ObjectConfig{
		Name:       "Street",
		Interfaces: []*graphql.Interface{b.placeInterface},
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
				"name":      &graphql.Field{Type: graphql.String},
				"district":  &graphql.Field{Type: graphql.String},
				"placeType": &graphql.Field{Type: b.placeType},
				"houses": &graphql.Field{
					Type: graphql.NewList(b.house),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						street, ok := sourceAs[domain.Street](p.Source)
						if !ok {
							return nil, nil
						}
						return b.async(p, func(ctx context.Context) (interface{}, error) {
							return b.places.GetStreetHouses(ctx, street.ID)
						})
					},
				},
			}
		}),
	})
}

func (b *schemaBuilder) buildPlanner() {
	common := func() graphql.Fields {
		return graphql.Fields{
			"departureTime":      &graphql.Field{Type: graphql.String},
			"arrivalTime":        &graphql.Field{Type: graphql.String},
			"travelTimeMins":     &graphql.Field{Type: graphql.Int},
			"transportationType": &graphql.Field{Type: b.transportationType},
		}
	}

	b.walkingStage = graphql.NewObject(graphql.ObjectConfig{
		Name:       "WalkingTravelStage",
		Interfaces: []*graphql.Interface{b.stageInterface},
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			fields := common()
			fields["arrivalGeoLocation"] = &graphql.Field{Type: b.geoLocation}
			fields["arrivalUtmLocation"] = &graphql.Field{Type: b.utmLocation}
			fields["departureGeoLocation"] = &graphql.Field{Type: b.geoLocation}
			fields["departureUtmLocation"] = &graphql.Field{Type: b.utmLocation}
			return fields
		}),
	})

	b.transitStage = graphql.NewObject(graphql.ObjectConfig{
		Name:       "TransitTravelStage",
		Interfaces: []*graphql.Interface{b.stageInterface},
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			fields := common()
			fields["lineName"] = &graphql.Field{Type: graphql.String}
			fields["destinationName"] = &graphql.Field{Type: graphql.String}
			fields["color"] = &graphql.Field{Type: graphql.String}
			fields["departureStop"] = &graphql.Field{Type: b.stop}
			fields["arrivalStop"] = &graphql.Field{Type: b.stop}
			fields["line"] = &graphql.Field{
				Type: b.line,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					stage, _ := sourceAs[domain.TransitStage](p.Source)
					return b.lazyLine(p, stage.LineID)
				},
			}
			return fields
		}),
	})

	b.travelProposal = graphql.NewObject(graphql.ObjectConfig{
		Name: "TravelProposal",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"departureTime":  &graphql.Field{Type: graphql.String},
				"arrivalTime":    &graphql.Field{Type: graphql.String},
				"travelTimeMins": &graphql.Field{Type: graphql.Int},
				"remarks":        &graphql.Field{Type: graphql.NewList(graphql.String)},
				"zones":          &graphql.Field{Type: graphql.NewList(graphql.String)},
				"stages":         &graphql.Field{Type: graphql.NewList(b.stageInterface)},
			}
		}),
	})
}

func (b *schemaBuilder) lazyStop(p graphql.ResolveParams, id int) (interface{}, error) {
	return b.async(p, func(ctx context.Context) (interface{}, error) {
		return b.stops.GetStop(ctx, id)
	})
}

func (b *schemaBuilder) lazyLine(p graphql.ResolveParams, id int) (interface{}, error) {
	return b.async(p, func(ctx context.Context) (interface{}, error) {
		return b.lines.GetLine(ctx, id)
	})
}
