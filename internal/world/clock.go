package world

// HoursPerDay — длина игровых суток.
const HoursPerDay = 24

// Clock — игровое время. Магазины читают только час суток;
// продвигает время игровой цикл.
type Clock struct {
	hour int32
	day  int32
}

// Hour returns the current game hour, 0..23.
func (c *Clock) Hour() int32 {
	return c.hour
}

// Day returns the number of whole game days elapsed.
func (c *Clock) Day() int32 {
	return c.day
}

// SetHour forces the game hour (boot, tests).
func (c *Clock) SetHour(h int32) {
	c.hour = ((h % HoursPerDay) + HoursPerDay) % HoursPerDay
}

// Advance moves the clock forward n game hours.
func (c *Clock) Advance(n int32) {
	for ; n > 0; n-- {
		c.hour++
		if c.hour >= HoursPerDay {
			c.hour = 0
			c.day++
		}
	}
}
