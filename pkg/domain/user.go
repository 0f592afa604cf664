package domain

import "github.com/google/uuid"

// UserID identifies the owner of leads and batches. A defined type over
// uuid.UUID so lead, batch and user IDs cannot be mixed up.
type UserID uuid.UUID
