package models

// All returns every model in dependency order, for migrations
func All() []interface{} {
	return []interface{}{
		&Car{},
		&NewsFeedItem{},
		&Ticket{},
		&Movie{},
		&Singer{},
		&Song{},
		&Company{},
		&Product{},
		&Project{},
		&User{},
		&Library{},
		&Book{},
		&Room{},
		&Document{},
		&Report{},
	}
}
