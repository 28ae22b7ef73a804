package domain

// Line - линия общественного транспорта
type Line struct {
	ID                 int                `json:"id"`
	Name               string             `json:"name"`
	TransportationType TransportationType `json:"transportationType"`
	Color              string             `json:"color"`
}
