package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is a validated score a user gives a menu item.
type Rating struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID     int64              `json:"userId" bson:"userId"`
	MenuItemID int64              `json:"menuItemId" bson:"menuItemId"`
	Score      int                `json:"rating" bson:"rating"`
	Comment    string             `json:"comment" bson:"comment"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
