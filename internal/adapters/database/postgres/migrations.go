package postgres

import "github.com/collegevents/backend/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.User{},
	&entity.Society{},
	&entity.Event{},
	&entity.Registration{},
	&entity.Notification{},
	&entity.Announcement{},
	&entity.Query{},
}
