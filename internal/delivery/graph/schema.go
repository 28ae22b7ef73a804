package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/pkg/errors"
	"github.com/transit-graph/internal/pkg/validator"
	"github.com/transit-graph/internal/usecase"
	"github.com/transit-graph/internal/usecase/dto"
	"go.uber.org/zap"
)

// ServerVersion - версия, которую отдает поле serverVersion
const ServerVersion = "1.0"

type schemaBuilder struct {
	stops   *usecase.StopUseCase
	lines   *usecase.LineUseCase
	places  *usecase.PlaceUseCase
	planner *usecase.PlannerUseCase
	logger  *zap.Logger
	now     func() time.Time

	transportationType *graphql.Enum
	placeType          *graphql.Enum
	placeInterface     *graphql.Interface
	stageInterface     *graphql.Interface

	geoLocation         *graphql.Object
	utmLocation         *graphql.Object
	deviation           *graphql.Object
	line                *graphql.Object
	stop                *graphql.Object
	nearbyStop          *graphql.Object
	poi                 *graphql.Object
	area                *graphql.Object
	street              *graphql.Object
	house               *graphql.Object
	realtime            *graphql.Object
	realtimeVisit       *graphql.Object
	realtimeDestination *graphql.Object
	realtimePlatform    *graphql.Object
	walkingStage        *graphql.Object
	transitStage        *graphql.Object
	travelProposal      *graphql.Object
}

// NewSchema - сборка GraphQL схемы поверх use case'ов
func NewSchema(
	stops *usecase.StopUseCase,
	lines *usecase.LineUseCase,
	places *usecase.PlaceUseCase,
	planner *usecase.PlannerUseCase,
	logger *zap.Logger,
) (graphql.Schema, error) {
	b := &schemaBuilder{
		stops:   stops,
		lines:   lines,
		places:  places,
		planner: planner,
		logger:  logger,
		now:     time.Now,
	}
	return b.build()
}

func (b *schemaBuilder) build() (graphql.Schema, error) {
	b.transportationType = newTransportationTypeEnum()
	b.placeType = newPlaceTypeEnum()

	b.buildLocationTypes()
	b.buildInterfaces()
	b.buildLine()
	b.buildStop()
	b.buildRealtime()
	b.buildPlaces()
	b.buildPlanner()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: b.query(),
		Types: []graphql.Type{
			b.stop, b.poi, b.area, b.street,
			b.walkingStage, b.transitStage,
		},
	})
}

func (b *schemaBuilder) query() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"serverVersion": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return ServerVersion, nil
				},
			},
			"utcTime": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.now().UTC().Format(domain.DisplayTimeLayout), nil
				},
			},
			"stop": &graphql.Field{
				Type: b.stop,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _, err := idArg(p.Args, "id")
					if err != nil {
						return nil, toGraphError(err)
					}
					return b.lazyStop(p, id)
				},
			},
			"line": &graphql.Field{
				Type: b.line,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _, err := idArg(p.Args, "id")
					if err != nil {
						return nil, toGraphError(err)
					}
					return b.lazyLine(p, id)
				},
			},
			"places": &graphql.Field{
				Type: graphql.NewList(b.placeInterface),
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"type": &graphql.ArgumentConfig{Type: graphql.NewList(b.placeType)},
				},
				Resolve: b.resolvePlaces,
			},
			"pointStops": &graphql.Field{
				Type: graphql.NewList(b.stop),
				Args: graphql.FieldConfigArgument{
					"location":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(locationInput)},
					"maxDistance": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: b.resolvePointStops,
			},
			"areaStops": &graphql.Field{
				Type: graphql.NewList(b.stop),
				Args: graphql.FieldConfigArgument{
					"sw": &graphql.ArgumentConfig{Type: graphql.NewNonNull(locationInput)},
					"ne": &graphql.ArgumentConfig{Type: graphql.NewNonNull(locationInput)},
				},
				Resolve: b.resolveAreaStops,
			},
			"travelPlanner": &graphql.Field{
				Type: graphql.NewList(b.travelProposal),
				Args: graphql.FieldConfigArgument{
					"origin":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(plannerLocationInput)},
					"destination": &graphql.ArgumentConfig{Type: graphql.NewNonNull(plannerLocationInput)},
					"time": &graphql.ArgumentConfig{
						Type:        graphql.String,
						Description: "Departure time, RFC3339. Defaults to now.",
					},
					"isAfter": &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: b.resolveTravelPlanner,
			},
		},
	})
}

func (b *schemaBuilder) resolvePlaces(p graphql.ResolveParams) (interface{}, error) {
	req := dto.PlaceSearchRequest{
		Name:  stringArg(p.Args, "name"),
		Types: placeTypesArg(p.Args, "type"),
	}
	if err := validator.Validate(req); err != nil {
		return nil, toGraphError(err)
	}

	return b.async(p, func(ctx context.Context) (interface{}, error) {
		places, err := b.places.SearchPlaces(ctx, req)
		if err != nil {
			return nil, err
		}
		// PlaceType не описывает неизвестные типы мест
		known := make([]domain.Place, 0, len(places))
		for _, place := range places {
			if _, other := place.(*domain.OtherPlace); other {
				continue
			}
			known = append(known, place)
		}
		return known, nil
	})
}

func (b *schemaBuilder) resolvePointStops(p graphql.ResolveParams) (interface{}, error) {
	var req dto.ClosestStopsRequest
	if err := decodeArg(p.Args, "location", &req.Location); err != nil {
		return nil, toGraphError(err)
	}
	req.MaxDistance = intArg(p.Args, "maxDistance")
	if err := validator.Validate(req); err != nil {
		return nil, toGraphError(err)
	}

	return b.async(p, func(ctx context.Context) (interface{}, error) {
		return b.places.GetClosestStops(ctx, req)
	})
}

func (b *schemaBuilder) resolveAreaStops(p graphql.ResolveParams) (interface{}, error) {
	var req dto.AreaStopsRequest
	if err := decodeArg(p.Args, "sw", &req.SW); err != nil {
		return nil, toGraphError(err)
	}
	if err := decodeArg(p.Args, "ne", &req.NE); err != nil {
		return nil, toGraphError(err)
	}

	return b.async(p, func(ctx context.Context) (interface{}, error) {
		return b.places.GetAreaStops(ctx, req)
	})
}

func (b *schemaBuilder) resolveTravelPlanner(p graphql.ResolveParams) (interface{}, error) {
	var req dto.TravelPlanRequest
	if err := decodeArg(p.Args, "origin", &req.Origin); err != nil {
		return nil, toGraphError(err)
	}
	if err := decodeArg(p.Args, "destination", &req.Destination); err != nil {
		return nil, toGraphError(err)
	}
	t, err := timeArg(p.Args, "time")
	if err != nil {
		return nil, toGraphError(err)
	}
	req.Time = t
	if isAfter, ok := p.Args["isAfter"].(bool); ok {
		req.IsAfter = &isAfter
	}

	return b.async(p, func(ctx context.Context) (interface{}, error) {
		return b.planner.PlanTravel(ctx, req)
	})
}

type asyncResult struct {
	value interface{}
	err   error
}

// async запускает загрузку в горутине и возвращает thunk, который graphql-go дождется
// после обхода соседних полей
func (b *schemaBuilder) async(p graphql.ResolveParams, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	ctx := p.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ch := make(chan asyncResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				b.logger.Error("Panic in resolver",
					zap.String("field", p.Info.FieldName),
					zap.Any("panic", r))
				ch <- asyncResult{err: errors.ErrInternalServer.Wrap(fmt.Errorf("panic: %v", r))}
			}
		}()
		value, err := fn(ctx)
		if err != nil {
			ch <- asyncResult{err: toGraphError(err)}
			return
		}
		ch <- asyncResult{value: value}
	}()

	return func() (interface{}, error) {
		r := <-ch
		return r.value, r.err
	}, nil
}

// toGraphError приводит ошибку к *AppError, чтобы код попал в extensions
func toGraphError(err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := errors.As(err); ok {
		return appErr
	}
	return errors.ErrInternalServer.Wrap(err)
}

func invalidID(name string, raw interface{}) error {
	return errors.InvalidRequest(map[string]interface{}{name: raw})
}
