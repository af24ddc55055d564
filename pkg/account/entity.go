package account

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a study-buddy user.
// Email is the identity key; Name is only a display name.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
