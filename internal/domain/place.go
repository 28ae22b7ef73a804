package domain

// PlaceType - тип места в upstream API
type PlaceType string

const (
	PlaceTypeStop   PlaceType = "Stop"
	PlaceTypePOI    PlaceType = "POI"
	PlaceTypeArea   PlaceType = "Area"
	PlaceTypeStreet PlaceType = "Street"
)

// KnownPlaceTypes returns the place types the graph exposes as their own variants.
func KnownPlaceTypes() []PlaceType {
	return []PlaceType{PlaceTypeArea, PlaceTypeStop, PlaceTypeStreet, PlaceTypePOI}
}

// IsKnown reports whether t is one of the four exposed variants
func (t PlaceType) IsKnown() bool {
	switch t {
	case PlaceTypeStop, PlaceTypePOI, PlaceTypeArea, PlaceTypeStreet:
		return true
	}
	return false
}

// PlaceInfo holds the fields every place variant shares.
type PlaceInfo struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	District string    `json:"district"`
	Type     PlaceType `json:"placeType"`
}

// Place is the closed set of place variants: *Stop, *POI, *Area, *Street
// and *OtherPlace for place types the upstream adds later.
type Place interface {
	Info() PlaceInfo
	isPlace()
}

// Stop - остановка общественного транспорта
type Stop struct {
	ID              int         `json:"id"`
	Name            string      `json:"name"`
	District        string      `json:"district"`
	Type            PlaceType   `json:"placeType"`
	ShortName       string      `json:"shortName"`
	Zone            string      `json:"zone"`
	IsHub           bool        `json:"isHub"`
	GeoLocation     GeoLocation `json:"geoLocation"`
	UTMLocation     UTMLocation `json:"utmLocation"`
	WalkingTimeMins *int        `json:"walkingTimeMins"`
}

func (s *Stop) Info() PlaceInfo {
	return PlaceInfo{ID: s.ID, Name: s.Name, District: s.District, Type: s.Type}
}

// POI - точка интереса с ближайшими остановками
type POI struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	District    string      `json:"district"`
	Type        PlaceType   `json:"placeType"`
	GeoLocation GeoLocation `json:"geoLocation"`
	UTMLocation UTMLocation `json:"utmLocation"`
	NearbyStops []Stop      `json:"nearbyStops"`
}

func (p *POI) Info() PlaceInfo {
	return PlaceInfo{ID: p.ID, Name: p.Name, District: p.District, Type: p.Type}
}

// Area - район; координаты берутся из его центра
type Area struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	District    string      `json:"district"`
	Type        PlaceType   `json:"placeType"`
	GeoLocation GeoLocation `json:"geoLocation"`
	UTMLocation UTMLocation `json:"utmLocation"`
	Stops       []Stop      `json:"stops"`
}

func (a *Area) Info() PlaceInfo {
	return PlaceInfo{ID: a.ID, Name: a.Name, District: a.District, Type: a.Type}
}

// Street has no coordinates of its own; its houses are fetched on demand.
type Street struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	District string    `json:"district"`
	Type     PlaceType `json:"placeType"`
}

func (s *Street) Info() PlaceInfo {
	return PlaceInfo{ID: s.ID, Name: s.Name, District: s.District, Type: s.Type}
}

// OtherPlace keeps places whose type is not one of the known variants.
type OtherPlace struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	District string    `json:"district"`
	Type     PlaceType `json:"placeType"`
}

func (o *OtherPlace) Info() PlaceInfo {
	return PlaceInfo{ID: o.ID, Name: o.Name, District: o.District, Type: o.Type}
}

func (*Stop) isPlace()       {}
func (*POI) isPlace()        {}
func (*Area) isPlace()       {}
func (*Street) isPlace()     {}
func (*OtherPlace) isPlace() {}

// House - дом на улице
type House struct {
	StreetName  string      `json:"streetName"`
	StreetID    int         `json:"streetId"`
	District    string      `json:"district"`
	Name        string      `json:"name"`
	GeoLocation GeoLocation `json:"geoLocation"`
	UTMLocation UTMLocation `json:"utmLocation"`
}
