package domain

import "time"

// TravelProposal - вариант поездки от планировщика
type TravelProposal struct {
	DepartureTime  string        `json:"departureTime"`
	ArrivalTime    string        `json:"arrivalTime"`
	TravelTimeMins int           `json:"travelTimeMins"`
	Remarks        []string      `json:"remarks"`
	Zones          []string      `json:"zones"`
	Stages         []TravelStage `json:"stages"`
}

type StageKind string

const (
	StageKindWalking StageKind = "Walking"
	StageKindTransit StageKind = "Transit"
)

// StageInfo holds the fields every stage variant shares.
type StageInfo struct {
	Kind               StageKind
	DepartureTime      string
	ArrivalTime        string
	TravelTimeMins     int
	TransportationType TransportationType
}

// TravelStage is either *WalkingStage or *TransitStage. The variant is
// fixed when the stage is normalized and recorded in Kind.
type TravelStage interface {
	Info() StageInfo
	isTravelStage()
}

// WalkingStage - пеший участок маршрута
type WalkingStage struct {
	Kind                 StageKind          `json:"kind"`
	DepartureTime        string             `json:"departureTime"`
	ArrivalTime          string             `json:"arrivalTime"`
	TravelTimeMins       int                `json:"travelTimeMins"`
	TransportationType   TransportationType `json:"transportationType"`
	ArrivalGeoLocation   GeoLocation        `json:"arrivalGeoLocation"`
	ArrivalUTMLocation   UTMLocation        `json:"arrivalUtmLocation"`
	DepartureGeoLocation GeoLocation        `json:"departureGeoLocation"`
	DepartureUTMLocation UTMLocation        `json:"departureUtmLocation"`
}

func (w *WalkingStage) Info() StageInfo {
	return StageInfo{
		Kind:               w.Kind,
		DepartureTime:      w.DepartureTime,
		ArrivalTime:        w.ArrivalTime,
		TravelTimeMins:     w.TravelTimeMins,
		TransportationType: w.TransportationType,
	}
}

// TransitStage - участок маршрута на транспорте
type TransitStage struct {
	Kind               StageKind          `json:"kind"`
	DepartureTime      string             `json:"departureTime"`
	ArrivalTime        string             `json:"arrivalTime"`
	TravelTimeMins     int                `json:"travelTimeMins"`
	TransportationType TransportationType `json:"transportationType"`
	LineID             int                `json:"line"`
	DestinationName    string             `json:"destinationName"`
	DepartureStop      Stop               `json:"departureStop"`
	ArrivalStop        Stop               `json:"arrivalStop"`
	LineName           string             `json:"lineName"`
	Color              string             `json:"color"`
}

func (t *TransitStage) Info() StageInfo {
	return StageInfo{
		Kind:               t.Kind,
		DepartureTime:      t.DepartureTime,
		ArrivalTime:        t.ArrivalTime,
		TravelTimeMins:     t.TravelTimeMins,
		TransportationType: t.TransportationType,
	}
}

func (*WalkingStage) isTravelStage() {}
func (*TransitStage) isTravelStage() {}

// TravelQuery - запрос к планировщику
type TravelQuery struct {
	Origin      PlannerLocation
	Destination PlannerLocation
	Time        time.Time
	IsAfter     bool
}
