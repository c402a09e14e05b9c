package model

const (
	EntityName = "room"

	TypeSingle = "Single"
	TypeDouble = "Double"
	TypeDeluxe = "Deluxe"

	StatusVacant      = "Vacant"
	StatusOccupied    = "Occupied"
	StatusMaintenance = "Under Maintenance"
)

// Room is one unit of the fixed inventory. The hundreds digit of the
// room number encodes the floor. Rooms are created once at first run and
// persist indefinitely; status transitions are driven by booking
// creation, checkout, or a manual override.
type Room struct {
	ID         int64    `json:"id"`
	RoomNumber int      `json:"room_number"`
	Floor      int      `json:"floor"`
	Type       string   `json:"type"`
	Price      float64  `json:"price"`
	Status     string   `json:"status"`
	Capacity   int      `json:"capacity"`
	Amenities  []string `json:"amenities"`
}

// ValidStatus reports whether s is one of the three room states.
func ValidStatus(s string) bool {
	return s == StatusVacant || s == StatusOccupied || s == StatusMaintenance
}

// DefaultInventory returns the fixed 24-room inventory created on first
// run: 8 singles on floor 1, 8 doubles on floor 2, 8 deluxe on floor 3.
// IDs are left unset; the caller allocates them from the store.
func DefaultInventory() []Room {
	rooms := make([]Room, 0, 24)

	for i := 1; i <= 8; i++ {
		rooms = append(rooms, Room{
			RoomNumber: 100 + i,
			Floor:      1,
			Type:       TypeSingle,
			Price:      1500,
			Status:     StatusVacant,
			Capacity:   1,
			Amenities:  []string{"AC", "WiFi", "TV", "Bathroom"},
		})
	}

	for i := 1; i <= 8; i++ {
		rooms = append(rooms, Room{
			RoomNumber: 200 + i,
			Floor:      2,
			Type:       TypeDouble,
			Price:      2500,
			Status:     StatusVacant,
			Capacity:   2,
			Amenities:  []string{"AC", "WiFi", "TV", "Bathroom", "Mini Fridge"},
		})
	}

	for i := 1; i <= 8; i++ {
		rooms = append(rooms, Room{
			RoomNumber: 300 + i,
			Floor:      3,
			Type:       TypeDeluxe,
			Price:      3500,
			Status:     StatusVacant,
			Capacity:   4,
			Amenities:  []string{"AC", "WiFi", "TV", "Bathroom", "Mini Fridge", "Balcony", "Room Service"},
		})
	}

	return rooms
}
