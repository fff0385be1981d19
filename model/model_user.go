package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is an account. The auth handlers own writes to it; feed code only
// resolves usernames from it.
type User struct {
	ID           bson.ObjectID `json:"id"       bson:"_id,omitempty"`
	Username     string        `json:"username" bson:"username"`
	PasswordHash []byte        `json:"-"        bson:"password_hash"`
	Joined       time.Time     `json:"joined"   bson:"joined"`
}
