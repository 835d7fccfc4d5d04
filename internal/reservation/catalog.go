package reservation

import "fmt"

// Catalog é o conjunto fixo de quartos reserváveis, na ordem de carga.
// Não muda depois de construído, então dispensa lock.
type Catalog struct {
	rooms    []Room
	byNumber map[int]int
}

func NewCatalog(rooms []Room) (*Catalog, error) {
	c := &Catalog{
		rooms:    make([]Room, 0, len(rooms)),
		byNumber: make(map[int]int, len(rooms)),
	}
	for _, r := range rooms {
		if _, ok := c.byNumber[r.Number]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateRoom, r.Number)
		}
		if r.Rate < 0 {
			return nil, fmt.Errorf("%w: room %d has rate %g", ErrInvalidRate, r.Number, r.Rate)
		}
		c.byNumber[r.Number] = len(c.rooms)
		c.rooms = append(c.rooms, r)
	}
	return c, nil
}

// DefaultRooms são os quartos de exemplo carregados na inicialização.
func DefaultRooms() []Room {
	return []Room{
		{Number: 101, Type: "Single", Rate: 100},
		{Number: 102, Type: "Double", Rate: 150},
		{Number: 103, Type: "Suite", Rate: 250},
		{Number: 104, Type: "Single", Rate: 100},
		{Number: 105, Type: "Double", Rate: 150},
	}
}

func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultRooms())
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Rooms() []Room {
	out := make([]Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

func (c *Catalog) Lookup(number int) (Room, bool) {
	i, ok := c.byNumber[number]
	if !ok {
		return Room{}, false
	}
	return c.rooms[i], true
}

func (c *Catalog) Len() int { return len(c.rooms) }
