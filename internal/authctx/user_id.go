// Package authctx reads the authenticated identity that the JWT
// middleware stashed in the request Locals.
package authctx

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserIDFrom returns the viewer's id, or false for anonymous requests.
func UserIDFrom(c *fiber.Ctx) (bson.ObjectID, bool) {
	s, _ := c.Locals("user_id").(string)
	if s == "" {
		return bson.NilObjectID, false
	}
	oid, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.NilObjectID, false
	}
	return oid, true
}
