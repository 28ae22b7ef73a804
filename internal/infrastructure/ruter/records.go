package ruter

import "encoding/json"

// Wire records as returned by the upstream API. Fields the format
// guarantees are pointers so that an absent value is detectable.

type rawPoint struct {
	X *float64 `json:"X"`
	Y *float64 `json:"Y"`
}

// rawPlace covers stops, POIs, areas and streets; the collection endpoints mix them.
type rawPlace struct {
	ID             *int       `json:"ID"`
	Name           *string    `json:"Name"`
	ShortName      string     `json:"ShortName"`
	Zone           string     `json:"Zone"`
	X              *float64   `json:"X"`
	Y              *float64   `json:"Y"`
	IsHub          bool       `json:"IsHub"`
	District       string     `json:"District"`
	PlaceType      string     `json:"PlaceType"`
	WalkingMinutes int        `json:"WalkingMinutes"`
	Stops          []rawPlace `json:"Stops"`
	Center         *rawPoint  `json:"Center"`
}

type rawLine struct {
	ID             *int    `json:"ID"`
	Name           *string `json:"Name"`
	Transportation int     `json:"Transportation"`
	LineColour     string  `json:"LineColour"`
}

type rawDeviation struct {
	ID     int    `json:"ID"`
	Header string `json:"Header"`
}

type rawMonitoredCall struct {
	ExpectedArrivalTime   *string `json:"ExpectedArrivalTime"`
	DeparturePlatformName *string `json:"DeparturePlatformName"`
}

type rawVehicleJourney struct {
	LineRef           *string           `json:"LineRef"`
	DestinationName   string            `json:"DestinationName"`
	PublishedLineName string            `json:"PublishedLineName"`
	DirectionRef      string            `json:"DirectionRef"`
	MonitoredCall     *rawMonitoredCall `json:"MonitoredCall"`
	InCongestion      bool              `json:"InCongestion"`
	Monitored         bool              `json:"Monitored"`
	VehicleMode       *int              `json:"VehicleMode"`
	VehicleFeatureRef *string           `json:"VehicleFeatureRef"`
}

type rawVisitExtensions struct {
	Deviations []rawDeviation `json:"Deviations"`
	LineColour string         `json:"LineColour"`
}

type rawVisit struct {
	MonitoringRef           *string             `json:"MonitoringRef"`
	RecordedAtTime          *string             `json:"RecordedAtTime"`
	MonitoredVehicleJourney *rawVehicleJourney  `json:"MonitoredVehicleJourney"`
	Extensions              *rawVisitExtensions `json:"Extensions"`
}

type rawStage struct {
	Transportation int       `json:"Transportation"`
	DepartureTime  string    `json:"DepartureTime"`
	ArrivalTime    string    `json:"ArrivalTime"`
	TravelTime     string    `json:"TravelTime"`
	WalkingTime    string    `json:"WalkingTime"`
	ArrivalPoint   *rawPoint `json:"ArrivalPoint"`
	DeparturePoint *rawPoint `json:"DeparturePoint"`
	LineID         int       `json:"LineID"`
	Destination    string    `json:"Destination"`
	DepartureStop  *rawPlace `json:"DepartureStop"`
	ArrivalStop    *rawPlace `json:"ArrivalStop"`
	LineName       string    `json:"LineName"`
	LineColour     string    `json:"LineColour"`
}

type rawProposal struct {
	DepartureTime   string            `json:"DepartureTime"`
	ArrivalTime     string            `json:"ArrivalTime"`
	TotalTravelTime *string           `json:"TotalTravelTime"`
	Remarks         []json.RawMessage `json:"Remarks"`
	Stages          []rawStage        `json:"Stages"`
}

type rawTravelResponse struct {
	TravelProposals []rawProposal `json:"TravelProposals"`
}

type rawHouse struct {
	Name *string  `json:"Name"`
	X    *float64 `json:"X"`
	Y    *float64 `json:"Y"`
}

type rawStreet struct {
	ID       *int       `json:"ID"`
	Name     *string    `json:"Name"`
	District string     `json:"District"`
	Houses   []rawHouse `json:"Houses"`
}
