package domain

// DisplayTimeLayout - формат времени для отображения клиентам
const DisplayTimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700"

// Deviation - уведомление об отклонении от расписания.
// Two deviations are the same notice when both ID and Header match.
type Deviation struct {
	ID     int    `json:"id"`
	Header string `json:"header"`
}

// RealtimeVisit - прогнозируемое прибытие транспорта на остановку
type RealtimeVisit struct {
	StopID             int                `json:"stopId"`
	LineID             int                `json:"lineId"`
	DestinationName    string             `json:"destinationName"`
	Name               string             `json:"name"`
	Direction          string             `json:"direction"`
	RecordedAtTime     string             `json:"recordedAtTime"`
	ExpectedArrival    string             `json:"expectedArrival"`
	Deviations         []Deviation        `json:"deviations"`
	LineColour         string             `json:"lineColour"`
	Platform           *string            `json:"platform"`
	InCongestion       bool               `json:"inCongestion"`
	Monitored          bool               `json:"monitored"`
	TransportationType TransportationType `json:"transportationType"`
	LowFloor           bool               `json:"lowFloor"`
}

// RealtimeDestination groups visits of one line towards one destination.
type RealtimeDestination struct {
	StopID             int                `json:"stopId"`
	LineID             int                `json:"lineId"`
	Name               string             `json:"name"`
	DestinationName    string             `json:"destinationName"`
	LineColour         string             `json:"lineColour"`
	TransportationType TransportationType `json:"transportationType"`
	Visits             []RealtimeVisit    `json:"visits"`
}

// RealtimePlatform groups visits departing from the same platform.
type RealtimePlatform struct {
	Name   string          `json:"name"`
	Visits []RealtimeVisit `json:"visits"`
}

// VisitFilter narrows stop visits upstream. Empty slices mean no filter.
type VisitFilter struct {
	TransportTypes []TransportationType
	LineNames      []string
}
