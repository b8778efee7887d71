package world

// ObjectIDGenerator выдаёт уникальные object ID для сущностей мира.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: reserved (0 = invalid)
//	0x10000000 - 0x1FFFFFFF: players
//	0x20000000 - 0x2FFFFFFF: NPCs
//	0x30000000 - 0x3FFFFFFF: items
type ObjectIDGenerator struct {
	nextPlayerID uint32
	nextNpcID    uint32
	nextItemID   uint32
}

// NewObjectIDGenerator creates a generator with range bases preset.
func NewObjectIDGenerator() *ObjectIDGenerator {
	return &ObjectIDGenerator{
		nextPlayerID: 0x10000000,
		nextNpcID:    0x20000000,
		nextItemID:   0x30000000,
	}
}

// NextPlayerID generates the next unique player object ID.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	g.nextPlayerID++
	return g.nextPlayerID
}

// NextNpcID generates the next unique NPC object ID.
func (g *ObjectIDGenerator) NextNpcID() uint32 {
	g.nextNpcID++
	return g.nextNpcID
}

// NextItemID generates the next unique item object ID.
func (g *ObjectIDGenerator) NextItemID() uint32 {
	g.nextItemID++
	return g.nextItemID
}
