package graph

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/pkg/errors"
)

var geoLocationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "GeoLocationInput",
	Description: "A location in lat/lon format",
	Fields: graphql.InputObjectConfigFieldMap{
		"lat": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"lng": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var utmLocationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "UtmLocationInput",
	Description: "A location in UTM32 format",
	Fields: graphql.InputObjectConfigFieldMap{
		"x": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"y": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var locationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "LocationInput",
	Description: "A location in either lat/lon or UTM32 format. UTM wins when both are given.",
	Fields: graphql.InputObjectConfigFieldMap{
		"geoLocation": &graphql.InputObjectFieldConfig{Type: geoLocationInput},
		"utmLocation": &graphql.InputObjectFieldConfig{Type: utmLocationInput},
	},
})

var stopIDInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "StopIdInput",
	Description: "id of a stop",
	Fields: graphql.InputObjectConfigFieldMap{
		"id": &graphql.InputObjectFieldConfig{Type: graphql.ID},
	},
})

var areaIDInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "AreaIdInput",
	Description: "id of an area",
	Fields: graphql.InputObjectConfigFieldMap{
		"id": &graphql.InputObjectFieldConfig{Type: graphql.ID},
	},
})

var plannerLocationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PlannerLocationInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"geo":  &graphql.InputObjectFieldConfig{Type: geoLocationInput},
		"utm":  &graphql.InputObjectFieldConfig{Type: utmLocationInput},
		"stop": &graphql.InputObjectFieldConfig{Type: stopIDInput},
		"area": &graphql.InputObjectFieldConfig{Type: areaIDInput},
	},
})

// decodeArg copies an input object argument into out through its json tags.
func decodeArg(args map[string]interface{}, name string, out interface{}) error {
	raw, ok := args[name]
	if !ok || raw == nil {
		return nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return errors.ErrInvalidRequest.Wrap(err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return errors.InvalidRequest(map[string]interface{}{name: err.Error()})
	}
	return nil
}

func idArg(args map[string]interface{}, name string) (int, bool, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return 0, false, nil
	}
	id, err := parseID(raw)
	if err != nil {
		return 0, false, errors.InvalidRequest(map[string]interface{}{name: raw})
	}
	return id, true, nil
}

func parseID(raw interface{}) (int, error) {
	return strconv.Atoi(strings.TrimSpace(fmt.Sprint(raw)))
}

func intArg(args map[string]interface{}, name string) *int {
	if v, ok := args[name].(int); ok {
		return &v
	}
	return nil
}

func stringArg(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

func transportationTypesArg(args map[string]interface{}, name string) []domain.TransportationType {
	list, _ := args[name].([]interface{})
	types := make([]domain.TransportationType, 0, len(list))
	for _, item := range list {
		if t, ok := item.(domain.TransportationType); ok {
			types = append(types, t)
		}
	}
	return types
}

func placeTypesArg(args map[string]interface{}, name string) []string {
	list, _ := args[name].([]interface{})
	types := make([]string, 0, len(list))
	for _, item := range list {
		if t, ok := item.(domain.PlaceType); ok {
			types = append(types, string(t))
		}
	}
	return types
}

func stringsArg(args map[string]interface{}, name string) []string {
	list, _ := args[name].([]interface{})
	values := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

func timeArg(args map[string]interface{}, name string) (*time.Time, error) {
	s := stringArg(args, name)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, errors.InvalidRequest(map[string]interface{}{name: s})
	}
	return &t, nil
}
