package employees

import "time"

const DefaultPosition = "Staff"

type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Name     *string `json:"name"`
	Position *string `json:"position"`
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Position == nil
}
