package model

// Room — комната мира. Trading engine использует её только для адресации
// (где стоит магазин) и для широковещательных сообщений.
type Room struct {
	VNum RoomID
	Name string
}
