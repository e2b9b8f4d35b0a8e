package domain

import "time"

// TrustRelationship - направленное ребро "truster доверяет trusted"
type TrustRelationship struct {
	TrusterID int
	TrustedID int
	CreatedAt time.Time
}
