package domain

import "strings"

// TransportationType - вид транспорта в нумерации статических данных о линиях
type TransportationType int

const (
	TransportationWalking      TransportationType = 0
	TransportationAirportBus   TransportationType = 1
	TransportationBus          TransportationType = 2
	TransportationDummy        TransportationType = 3
	TransportationAirportTrain TransportationType = 4
	TransportationBoat         TransportationType = 5
	TransportationTrain        TransportationType = 6
	TransportationTram         TransportationType = 7
	TransportationMetro        TransportationType = 8
)

var transportationTypeNames = map[TransportationType]string{
	TransportationWalking:      "Walking",
	TransportationAirportBus:   "AirportBus",
	TransportationBus:          "Bus",
	TransportationDummy:        "Dummy",
	TransportationAirportTrain: "AirportTrain",
	TransportationBoat:         "Boat",
	TransportationTrain:        "Train",
	TransportationTram:         "Tram",
	TransportationMetro:        "Metro",
}

// Realtime vehicle modes use their own numbering.
var vehicleModeToTransportationType = map[int]TransportationType{
	0: TransportationBus,
	1: TransportationBoat,
	2: TransportationTrain,
	3: TransportationTram,
	4: TransportationMetro,
}

// TransportationTypeFromVehicleMode maps a realtime vehicle mode code to the line transportation type.
func TransportationTypeFromVehicleMode(mode int) (TransportationType, bool) {
	t, ok := vehicleModeToTransportationType[mode]
	return t, ok
}

// String returns the upstream name of the type, e.g. "AirportBus".
func (t TransportationType) String() string {
	if name, ok := transportationTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// IsValid checks the value belongs to the enum
func (t TransportationType) IsValid() bool {
	_, ok := transportationTypeNames[t]
	return ok
}

// ParseTransportationType accepts the upstream name case-insensitively
// ("Bus", "airportbus") as well as the enum style "AIRPORT_BUS".
func ParseTransportationType(s string) (TransportationType, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for t, name := range transportationTypeNames {
		if strings.ToLower(name) == normalized {
			return t, true
		}
	}
	return 0, false
}

// AllTransportationTypes returns the enum in numeric order
func AllTransportationTypes() []TransportationType {
	return []TransportationType{
		TransportationWalking,
		TransportationAirportBus,
		TransportationBus,
		TransportationDummy,
		TransportationAirportTrain,
		TransportationBoat,
		TransportationTrain,
		TransportationTram,
		TransportationMetro,
	}
}
